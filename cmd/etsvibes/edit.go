package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/etsvibes/internal/logger"
	"github.com/joshuapare/etsvibes/internal/profile"
	"github.com/joshuapare/etsvibes/pkg/save"
)

var (
	editMoney   int64
	editXP      int64
	editProfile string
	editEncrypt bool
)

// editResult is the JSON shape of an edit.
type editResult struct {
	Profile   string        `json:"profile"`
	Save      string        `json:"save"`
	Path      string        `json:"path"`
	Changes   []save.Change `json:"changes"`
	Encrypted bool          `json:"encrypted"`
	InfoSync  bool          `json:"info_synced"`
}

func init() {
	rootCmd.AddCommand(newEditCmd())
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <save>",
		Short: "Set money and/or experience in one save",
		Long: `The edit command changes money_account and/or experience_points in a single
save. The save is matched by slot name (e.g. "autosave", "1"); use --profile to
pick a profile when several have a slot with that name.

A backup of game.sii is written next to it the first time it is modified.

Example:
  etsvibes edit autosave --money 1000000
  etsvibes edit 3 --xp 500000 --profile trucker
  etsvibes edit autosave --money 1000000 --encrypt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var edits save.Edits
			if cmd.Flags().Changed("money") {
				edits.Money = &editMoney
			}
			if cmd.Flags().Changed("xp") {
				edits.XP = &editXP
			}
			return runEdit(args, edits)
		},
	}

	cmd.Flags().Int64VarP(&editMoney, "money", "m", 0, "New money balance")
	cmd.Flags().Int64VarP(&editXP, "xp", "x", 0, "New experience points")
	cmd.Flags().StringVarP(&editProfile, "profile", "p", "", "Profile name filter (case-insensitive substring)")
	cmd.Flags().BoolVar(&editEncrypt, "encrypt", false, "Re-encrypt the save if it was encrypted")
	return cmd
}

func runEdit(args []string, edits save.Edits) error {
	if edits.Empty() {
		return errors.New("nothing to do: pass --money and/or --xp")
	}
	if edits.Money != nil && *edits.Money < 0 {
		return fmt.Errorf("money must not be negative: %d", *edits.Money)
	}
	if edits.XP != nil && *edits.XP < 0 {
		return fmt.Errorf("xp must not be negative: %d", *edits.XP)
	}

	saveName := args[0]
	s, ok := newDetector().Find(saveName, editProfile)
	if !ok {
		if editProfile != "" {
			return fmt.Errorf("save %q not found in profile %q", saveName, editProfile)
		}
		return fmt.Errorf("save %q not found", saveName)
	}
	printVerbose("Editing %s\n", s.GamePath())

	res, err := applyEdits(s, edits, encryptOnSave(editEncrypt))
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s %s / %s\n", titleStyle.Render("Save:"), res.Profile, res.Save)
	for _, c := range res.Changes {
		label := changeLabel(c.Key)
		if !c.Applied {
			printInfo("  %s %s\n", warningStyle.Render("!"), fmt.Sprintf("%s: %s not found, unchanged", label, c.Key))
			continue
		}
		money := c.Key == save.KeyMoney
		printInfo("  %s: %s -> %s\n", label, formatValue(c.Old, money), successStyle.Render(formatValue(c.New, money)))
	}
	if res.InfoSync {
		printVerbose("  %s\n", mutedStyle.Render("info.sii updated"))
	}
	printInfo("%s\n", successStyle.Render("Save updated successfully."))
	return nil
}

// applyEdits loads a save, applies the edits and writes it back. Money edits
// are mirrored into info.sii; a failing info sync is logged, not returned.
func applyEdits(s profile.SaveFile, edits save.Edits, encrypt bool) (editResult, error) {
	res := editResult{
		Profile: s.Profile.DisplayName(),
		Save:    s.Name,
		Path:    s.GamePath(),
	}

	ed := save.NewEditor(s.Sink())
	if err := ed.Load(); err != nil {
		return res, fmt.Errorf("failed to load %s: %w", s.GamePath(), err)
	}
	res.Changes = ed.Apply(edits)

	write := ed.Save
	if encrypt {
		write = ed.SaveEncrypted
	}
	if err := write(); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", s.GamePath(), err)
	}
	res.Encrypted = encrypt && ed.WasEncrypted()

	if edits.Money != nil {
		synced, err := save.SyncInfoMoney(s.InfoSink(), *edits.Money, encrypt)
		if err != nil {
			logger.Warn("info sync failed", "path", s.InfoPath(), "error", err)
		}
		res.InfoSync = synced && err == nil
	}
	return res, nil
}

func changeLabel(key string) string {
	switch key {
	case save.KeyMoney:
		return "Money"
	case save.KeyXP:
		return "XP"
	default:
		return key
	}
}
