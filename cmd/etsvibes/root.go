package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/joshuapare/etsvibes/internal/config"
	"github.com/joshuapare/etsvibes/internal/games"
	"github.com/joshuapare/etsvibes/internal/logger"
	"github.com/joshuapare/etsvibes/internal/profile"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	debug      bool
	configPath string
	extraRoots []string
	noDetect   bool

	// cfg is loaded in PersistentPreRunE.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "etsvibes",
	Short: "Save editor for Euro Truck Simulator 2 and American Truck Simulator",
	Long: `etsvibes reads and edits Euro Truck Simulator 2 and American Truck Simulator
save games. It decrypts ScsC saves, changes money and experience in place and
writes the result back, keeping a one-time backup of every file it touches.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $"+config.EnvVar+" or <config dir>/etsvibes/config.ini)")
	rootCmd.PersistentFlags().StringArrayVar(&extraRoots, "root", nil, "Additional game data directory to search (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&noDetect, "no-detect", false, "Only search --root and configured roots")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads the config file and initializes logging.
func setup() error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	opts := logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}
	if debug {
		opts = logger.Options{Enabled: true, Level: slog.LevelDebug, Writer: os.Stderr}
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	logger.Debug("config loaded", "path", cfg.Path, "roots", len(cfg.Roots))
	return nil
}

// searchRoots lists the game data directories to scan: --root flags, then
// configured roots, then auto-detected install locations.
func searchRoots() []string {
	roots := append([]string{}, extraRoots...)
	roots = append(roots, cfg.Roots...)
	if !noDetect {
		roots = append(roots, games.Roots(games.CurrentPlatform(), games.EnvFromOS())...)
	}
	return roots
}

func newDetector() *profile.Detector {
	d := profile.NewDetector(searchRoots())
	printVerbose("Searching %d root(s)\n", len(d.Roots))
	return d
}

// encryptOnSave reports whether saves that were encrypted are re-encrypted.
func encryptOnSave(flag bool) bool {
	return flag || cfg.Encrypt
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, errorStyle.Render("Error:")+" "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
