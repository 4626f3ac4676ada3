package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles and their saves",
		Long: `The list command scans every game data directory for profiles and prints
each profile's saves with their money, experience and modification time.

Example:
  etsvibes list
  etsvibes list --root ~/ets2-backup
  etsvibes list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	d := newDetector()
	profiles := d.Profiles()

	if jsonOut {
		summaries := []saveSummary{}
		for _, p := range profiles {
			for _, s := range d.Saves(p) {
				summaries = append(summaries, summarize(s))
			}
		}
		return printJSON(summaries)
	}

	if len(profiles) == 0 {
		printInfo("No profiles found.\n")
		return nil
	}

	for _, p := range profiles {
		printInfo("\n%s %s\n", titleStyle.Render("Profile:"), p.DisplayName())
		printVerbose("  %s\n", mutedStyle.Render(p.Path))

		saves := d.Saves(p)
		if len(saves) == 0 {
			printInfo("  %s\n", mutedStyle.Render("no saves"))
			continue
		}

		rows := make([][]string, 0, len(saves))
		for _, s := range saves {
			sum := summarize(s)
			modified := "?"
			if !sum.Modified.IsZero() {
				modified = sum.Modified.Format("2006-01-02 15:04")
			}
			if sum.Error != "" {
				printVerbose("  %s: %s\n", s.Name, sum.Error)
				rows = append(rows, []string{s.Name, "error", "error", modified})
				continue
			}
			rows = append(rows, []string{
				s.Name,
				formatValue(sum.Money, true),
				formatValue(sum.XP, false),
				modified,
			})
		}
		printInfo("%s\n", savesTable(rows).String())
	}

	printInfo("\n%s\n", mutedStyle.Render(fmt.Sprintf("%d profile(s)", len(profiles))))
	return nil
}
