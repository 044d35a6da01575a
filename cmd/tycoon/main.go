// tycoon is a metal detector idle game for the terminal.
//
// Usage:
//
//	tycoon play              - Title menu, then play the save slot
//	tycoon serve             - Start SSH server for remote play
//	tycoon finds             - Print the ledger of notable finds
//	tycoon catalog [section] - List metals, variants, detectors, bags or areas
//	tycoon info <id>         - Show one catalog entry
//	tycoon odds              - Show metal odds for a detector and area
//	tycoon export / import   - Move a save between machines
//	tycoon slots / reset     - List or wipe save slots
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.tycoon/tycoon.db)
//	--slot <name>     - Save slot (default: metal_detector_save)
//	--config <path>   - Game config YAML
//	--catalog <path>  - Catalog YAML replacing the built-in tables
//	--pace <name>     - relaxed, normal or hardcore
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/config"
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/save"
	"github.com/vovakirdan/metal-tycoon/internal/storage"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagSlot        string
	flagConfig      string
	flagCatalogPath string
	flagPace        string
	flagVerbose     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tycoon",
	Short: "Metal Detector Tycoon - sweep, dig and get rich in your terminal",
	Long: `Metal Detector Tycoon is an idle game about sweeping a field with a metal
detector, digging up whatever beeps, and spending the proceeds on better gear
and new dig sites.

Examples:
  tycoon play
  tycoon play --slot weekend --pace relaxed
  tycoon serve --ssh :2222
  tycoon odds --detector 5 --area farm
  tycoon info platnum`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to save database")
	pf.StringVar(&flagSlot, "slot", save.DefaultSlot, "Save slot name")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagCatalogPath, "catalog", "", "Path to a catalog YAML replacing the built-in one")
	pf.StringVar(&flagPace, "pace", "normal", "Pace preset: relaxed, normal, hardcore")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(findsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(oddsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadCatalog returns the --catalog file or the embedded catalog.
func loadCatalog() (*catalog.Catalog, error) {
	if flagCatalogPath == "" {
		return catalog.Default(), nil
	}
	data, err := os.ReadFile(flagCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}
	return catalog.Load(data)
}

// loadGameConfig reads the config file and applies the pace preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	pace, ok := config.ParsePace(flagPace)
	if !ok {
		return config.GameConfig{}, fmt.Errorf("unknown pace %q (want relaxed, normal or hardcore)", flagPace)
	}
	config.ApplyPace(&cfg, pace)
	return cfg, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the save database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// fileLogger logs to ~/.tycoon/tycoon.log; the terminal belongs to the game.
func fileLogger() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".tycoon")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "tycoon.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tycoon",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f
}

// stderrLogger is used by the server and the one-shot commands.
func stderrLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
