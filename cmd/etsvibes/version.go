package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/joshuapare/etsvibes/internal/games"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion() error {
	platform := games.CurrentPlatform()
	var installed []string
	if !noDetect {
		for _, g := range games.Detect(platform, games.EnvFromOS()) {
			installed = append(installed, g.Name)
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"version":  version,
			"commit":   commit,
			"date":     date,
			"platform": string(platform),
			"go":       runtime.Version(),
			"games":    installed,
		})
	}

	fmt.Println(bannerStyle.Render("etsvibes " + version))
	fmt.Printf("  commit:   %s\n", commit)
	fmt.Printf("  built:    %s\n", date)
	fmt.Printf("  platform: %s (%s/%s)\n", platform, runtime.GOOS, runtime.GOARCH)
	if len(installed) == 0 {
		fmt.Printf("  games:    %s\n", mutedStyle.Render("none detected"))
		return nil
	}
	for _, name := range installed {
		fmt.Printf("  game:     %s\n", name)
	}
	return nil
}
