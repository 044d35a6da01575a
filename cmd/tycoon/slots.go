package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/metal-tycoon/internal/platform/tui"
	"github.com/vovakirdan/metal-tycoon/internal/save"
)

var (
	flagForce bool
	flagYes   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the save slot as a base64 string",
	Long: `Print the slot's progress as a single base64 line that 'tycoon import'
accepts on any machine.

Examples:
  tycoon export > backup.txt
  tycoon export --slot ssh:alice --db ./server.db`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [blob|-]",
	Short: "Load a save string into the slot",
	Long: `Validate an exported save string and write it to the slot.
Reads standard input when the argument is "-" or missing.
An existing slot is only replaced with --force.

Examples:
  tycoon import < backup.txt
  tycoon import eyJ2ZXJzaW9uIjoxLC4uLn0= --slot restored
  tycoon import - --force`,
	Args: cobra.MaximumNArgs(1),
	Run:  runImport,
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List save slots",
	Args:  cobra.NoArgs,
	Run:   runSlots,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the save slot and its finds",
	Long: `Delete all progress and the finds ledger of a slot.

Examples:
  tycoon reset --yes
  tycoon reset --slot old-run --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	importCmd.Flags().BoolVar(&flagForce, "force", false, "Replace an existing slot")
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Confirm deletion")
}

func runExport(_ *cobra.Command, _ []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}
	store := openStore()
	defer store.Close()

	state, found, err := tui.LoadState(store, cat, flagSlot)
	if err != nil {
		fatal("%v", err)
	}
	if !found {
		fatal("slot %q is empty", flagSlot)
	}
	blob, err := save.Export(state)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(blob)
}

func runImport(_ *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}

	blob := "-"
	if len(args) == 1 {
		blob = args[0]
	}
	if blob == "-" {
		data, readErr := io.ReadAll(bufio.NewReader(os.Stdin))
		if readErr != nil {
			fatal("cannot read stdin: %v", readErr)
		}
		blob = string(data)
	}

	state, err := save.Import(cat, strings.TrimSpace(blob))
	if err != nil {
		fatal("%v", err)
	}

	store := openStore()
	defer store.Close()

	if _, found, loadErr := store.LoadState(flagSlot); loadErr == nil && found && !flagForce {
		fatal("slot %q already has a save; use --force to replace it", flagSlot)
	}
	if err := tui.SaveState(store, flagSlot, state); err != nil {
		fatal("%v", err)
	}

	logger := stderrLogger("tycoon")
	logger.Info("save imported",
		"slot", flagSlot,
		"coins", state.Coins,
		"items", len(state.Inventory),
		"detector", state.DetectorLevel,
	)
}

func runSlots(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	slots, err := store.Slots()
	if err != nil {
		fatal("%v", err)
	}
	if len(slots) == 0 {
		fmt.Println("No save slots yet. Run 'tycoon play' to start one.")
		return
	}

	fmt.Printf("  %-24s  %10s  %10s  %s\n", "Slot", "Stored", "Raw", "Updated")
	for _, s := range slots {
		fmt.Printf("  %-24s  %10s  %10s  %s\n",
			s.Slot, humanize.Bytes(uint64(s.Size)), humanize.Bytes(uint64(s.RawSize)), humanize.Time(s.UpdatedAt))
	}
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagYes {
		fatal("this deletes slot %q and its finds; pass --yes to confirm", flagSlot)
	}
	store := openStore()
	defer store.Close()

	if err := store.DeleteState(flagSlot); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Slot %s deleted.\n", flagSlot)
}
