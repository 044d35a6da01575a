package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

var (
	flagOddsDetector int
	flagOddsArea     string
	flagOddsSamples  int
)

var oddsCmd = &cobra.Command{
	Use:   "odds",
	Short: "Show metal odds for a detector and area",
	Long: `Print the chance of each metal for a detector level in an area.
With --samples, also roll that many items and compare the observed shares.

Examples:
  tycoon odds
  tycoon odds --detector 5 --area farm
  tycoon odds --detector 8 --area ruins --samples 100000`,
	Args: cobra.NoArgs,
	Run:  runOdds,
}

func init() {
	oddsCmd.Flags().IntVar(&flagOddsDetector, "detector", 1, "Detector level")
	oddsCmd.Flags().StringVar(&flagOddsArea, "area", "", "Area id (default: starter area)")
	oddsCmd.Flags().IntVar(&flagOddsSamples, "samples", 0, "Items to roll for an empirical check")
}

func runOdds(_ *cobra.Command, _ []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}

	det, ok := cat.Detector(flagOddsDetector)
	if !ok {
		fatal("no detector level %d (levels 1-%d)", flagOddsDetector, len(cat.Detectors))
	}
	area := cat.StarterArea()
	if flagOddsArea != "" {
		if area, ok = cat.Area(flagOddsArea); !ok {
			fatal("unknown area %q%s", flagOddsArea, didYouMean(flagOddsArea, cat.AreaIDs()))
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := loot.NewGenerator(cat, rand.New(rand.NewSource(seed)))
	gen.Configure(det.Level, det.RarityBonus, area.ID)

	fmt.Printf("%s detector (+%.0f%% rarity) at %s\n\n", det.Name, det.RarityBonus*100, area.Name)

	weights := gen.Weights()
	if len(weights) == 0 {
		fallback := gen.GenerateMetal()
		fmt.Printf("Nothing here is within this detector's reach; every find is %s.\n", fallback.Name)
		return
	}

	bar := progress.New(progress.WithWidth(30), progress.WithoutPercentage(), progress.WithSolidFill("#d4af37"))

	var tally loot.Tally
	if flagOddsSamples > 0 {
		tally = gen.Sample(flagOddsSamples)
	}

	for _, w := range weights {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(metalColor(w.Metal))).Render(fmt.Sprintf("%-12s", w.Metal.Name))
		line := fmt.Sprintf("  %s %s %8.4f%%", name, bar.ViewAs(w.P), w.P*100)
		if tally.Rolls > 0 {
			line += fmt.Sprintf("  observed %8.4f%%", tally.Share(w.Metal.ID)*100)
		}
		fmt.Println(line)
	}

	if tally.Rolls == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Rolled %s items: %s with a variant, average value %s\n",
		humanize.Comma(int64(tally.Rolls)),
		humanize.Comma(int64(tally.WithVariant)),
		humanize.Comma(tally.TotalValue/int64(tally.Rolls)),
	)
	for _, v := range cat.RollableVariants() {
		if n := tally.Variants[v.ID]; n > 0 {
			fmt.Printf("  %-10s %s\n", v.Name, humanize.Comma(int64(n)))
		}
	}
}
