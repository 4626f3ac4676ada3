package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/joshuapare/etsvibes/internal/logger"
	"github.com/joshuapare/etsvibes/internal/profile"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report money and experience whenever the game writes a save",
		Long: `The watch command monitors every save directory and prints the money and
experience of a save each time its game.sii changes. New save slots are picked
up as the game creates them. Stop with Ctrl+C.

Example:
  etsvibes watch
  etsvibes watch --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, os.Stdout, nil)
		},
	}
	return cmd
}

// runWatch blocks until ctx is done. ready, if non-nil, is closed once every
// directory is being watched.
func runWatch(ctx context.Context, out io.Writer, ready chan<- struct{}) error {
	d := newDetector()
	profiles := d.Profiles()
	if len(profiles) == 0 {
		return errors.New("no profiles found")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Slot dirs map to their save; save roots map to their profile so new
	// slots can be added as they appear.
	slots := make(map[string]profile.SaveFile)
	roots := make(map[string]profile.Profile)
	for _, p := range profiles {
		root := filepath.Join(p.Path, "save")
		if err := w.Add(root); err != nil {
			logger.Warn("watch failed", "path", root, "error", err)
			continue
		}
		roots[root] = p
		for _, s := range d.Saves(p) {
			if err := w.Add(s.Dir); err != nil {
				logger.Warn("watch failed", "path", s.Dir, "error", err)
				continue
			}
			slots[s.Dir] = s
		}
	}
	if len(roots) == 0 {
		return errors.New("no save directories could be watched")
	}

	if !jsonOut {
		fmt.Fprintf(out, "Watching %d save(s) in %d profile(s). Press Ctrl+C to stop.\n", len(slots), len(roots))
	}
	if ready != nil {
		close(ready)
	}

	last := make(map[string]saveSummary)
	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			dir, base := filepath.Split(ev.Name)
			dir = filepath.Clean(dir)

			if p, isRoot := roots[dir]; isRoot && ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if _, known := slots[ev.Name]; !known {
						if err := w.Add(ev.Name); err == nil {
							slots[ev.Name] = profile.SaveFile{Profile: p, Dir: ev.Name, Name: base}
							logger.Debug("watching new save", "path", ev.Name)
						}
					}
				}
				continue
			}

			s, isSlot := slots[dir]
			if !isSlot || base != profile.GameFile {
				continue
			}

			// The game writes in several chunks; a half-written file fails to
			// decode and is reported on the next event.
			sum := summarize(s)
			if sum.Error != "" {
				logger.Debug("save not readable yet", "path", s.GamePath(), "error", sum.Error)
				continue
			}
			if prev, seen := last[s.Dir]; seen && prev.Money == sum.Money && prev.XP == sum.XP {
				continue
			}
			last[s.Dir] = sum

			if jsonOut {
				if err := enc.Encode(sum); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(out, "%s %s / %s: money %s, XP %s\n",
				mutedStyle.Render(sum.Modified.Format("15:04:05")),
				sum.Profile, sum.Save,
				successStyle.Render(formatValue(sum.Money, true)),
				warningStyle.Render(formatValue(sum.XP, false)))
		}
	}
}
