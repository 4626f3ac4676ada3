package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/etsvibes/internal/logger"
	"github.com/joshuapare/etsvibes/pkg/save"
)

var quickEncrypt bool

// quickResult is the JSON shape of a batch edit.
type quickResult struct {
	Key     string   `json:"key"`
	Value   int64    `json:"value"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}

func init() {
	rootCmd.AddCommand(newQuickCmd(), newQuickXPCmd())
}

func newQuickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick [money]",
		Short: "Set money in every save",
		Long: `The quick command sets money_account in every save of every profile. The
amount defaults to the configured money value (50.000.000 unless changed).

Example:
  etsvibes quick
  etsvibes quick 2000000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuick(args, save.KeyMoney)
		},
	}
	cmd.Flags().BoolVar(&quickEncrypt, "encrypt", false, "Re-encrypt saves that were encrypted")
	return cmd
}

func newQuickXPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick-xp [xp]",
		Short: "Set experience points in every save",
		Long: `The quick-xp command sets experience_points in every save of every profile.
The amount defaults to the configured xp value (10.000.000 unless changed).

Example:
  etsvibes quick-xp
  etsvibes quick-xp 250000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuick(args, save.KeyXP)
		},
	}
	cmd.Flags().BoolVar(&quickEncrypt, "encrypt", false, "Re-encrypt saves that were encrypted")
	return cmd
}

// runQuick applies one edit to all saves. A save that cannot be loaded or
// written is logged and skipped; the batch carries on.
func runQuick(args []string, key string) error {
	value := cfg.Money
	if key == save.KeyXP {
		value = cfg.XP
	}
	if len(args) == 1 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		value = n
	}

	var edits save.Edits
	if key == save.KeyXP {
		edits.XP = &value
	} else {
		edits.Money = &value
	}

	saves := newDetector().AllSaves()
	if len(saves) == 0 {
		return fmt.Errorf("no saves found")
	}

	res := quickResult{Key: key, Value: value}
	encrypt := encryptOnSave(quickEncrypt)
	for _, s := range saves {
		out, err := applyEdits(s, edits, encrypt)
		if err != nil {
			logger.Warn("batch edit failed", "path", s.GamePath(), "error", err)
			printVerbose("  %s %s: %v\n", errorStyle.Render("x"), s.Name, err)
			res.Failed = append(res.Failed, s.GamePath())
			continue
		}
		if len(out.Changes) == 0 || !out.Changes[0].Applied {
			res.Skipped++
			printVerbose("  %s %s / %s: %s not found\n", warningStyle.Render("!"), out.Profile, out.Save, key)
			continue
		}
		res.Updated++
		printVerbose("  %s %s / %s\n", successStyle.Render("✓"), out.Profile, out.Save)
	}

	if jsonOut {
		return printJSON(res)
	}

	formatted := formatValue(strconv.FormatInt(value, 10), key == save.KeyMoney)
	printInfo("%s %s set to %s in %d save(s)\n",
		successStyle.Render("✓"), changeLabel(key), formatted, res.Updated)
	if res.Skipped > 0 {
		printInfo("%s %d save(s) without %s\n", warningStyle.Render("!"), res.Skipped, key)
	}
	if len(res.Failed) > 0 {
		printInfo("%s %d save(s) failed (see --verbose or the log)\n", errorStyle.Render("x"), len(res.Failed))
	}
	return nil
}
