package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/metal-tycoon/internal/platform/tui"
)

var (
	flagNoMenu bool
	flagBell   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the title menu for the save slot, then play.
Progress is saved on every find, sale and purchase, every 30 seconds, and on quit.

Controls:
  Arrows/WASD  - Sweep the detector
  Space (hold) - Dig when the signal is strong
  Enter / Esc  - Collect or leave a find, buy in the shop
  Tab          - Shop          T - Travel
  I            - Bag           X - Sell everything
  H/?          - Encyclopedia  M - Mute
  P            - Pause         Q - Save and quit

Pace options:
  relaxed  - Wider detection radius, faster digging, more items
  normal   - Default tuning
  hardcore - Tight radius, slow digging, fewer items

Examples:
  tycoon play
  tycoon play --slot second-run
  tycoon play --pace hardcore --no-menu
  tycoon play --config ./my-tycoon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the title menu")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell for beeps and cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}
	gameCfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore()
	defer store.Close()

	logger, closer := fileLogger()
	defer closer.Close()

	session := tui.Session{
		Catalog: cat,
		Game:    gameCfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Slot:    flagSlot,
		Logger:  logger,
	}
	if flagBell {
		session.Bell = os.Stdout
	}

	if flagNoMenu {
		if err := tui.Run(session); err != nil {
			fatal("%v", err)
		}
		return
	}

	for {
		choice, err := tui.RunMenu(session)
		if err != nil {
			fatal("%v", err)
		}

		switch choice {
		case tui.ChoicePlay:
			if err := tui.Run(session); err != nil {
				fatal("%v", err)
			}
			session.Runtime = runtimeConfig()
		case tui.ChoiceFinds:
			back, err := tui.RunFinds(session)
			if err != nil {
				fatal("%v", err)
			}
			if !back {
				return
			}
		default:
			return
		}
	}
}
