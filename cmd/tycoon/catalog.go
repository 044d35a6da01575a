package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
)

var catalogSections = []string{"metals", "variants", "detectors", "bags", "areas"}

var catalogCmd = &cobra.Command{
	Use:   "catalog [section]",
	Short: "List catalog entries",
	Long: `List the game's metals, variants, detectors, bags and areas.
Without a section every table is printed.

Examples:
  tycoon catalog
  tycoon catalog metals
  tycoon catalog areas --catalog ./modded.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: catalogSections,
	Run:       runCatalog,
}

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show one catalog entry",
	Long: `Show everything about a metal, variant, detector, bag or area.
Misspelled ids get suggestions.

Examples:
  tycoon info gold
  tycoon info ruins
  tycoon info legend`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runCatalog(_ *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}

	sections := catalogSections
	if len(args) == 1 {
		section := strings.ToLower(args[0])
		if !slices.Contains(catalogSections, section) {
			fatal("unknown section %q%s", args[0], didYouMean(section, catalogSections))
		}
		sections = []string{section}
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Println()
		}
		switch s {
		case "metals":
			printMetals(cat)
		case "variants":
			printVariants(cat)
		case "detectors":
			printDetectors(cat)
		case "bags":
			printBags(cat)
		case "areas":
			printAreas(cat)
		}
	}
}

func printMetals(cat *catalog.Catalog) {
	fmt.Println("Metals")
	fmt.Printf("  %-12s %-4s %-10s %10s %8s  %s\n", "ID", "Tier", "Rarity", "Value", "Spawn", "Detector")
	for _, m := range cat.Metals {
		rarity := catalog.RarityOf(m.Tier)
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(metalColor(m))).Render(fmt.Sprintf("%-12s", m.ID))
		fmt.Printf("  %s %-4d %-10s %10s %7.3f%%  %d+\n",
			name, m.Tier, rarity, humanize.Comma(m.BaseValue), m.SpawnRate*100, m.MinDetector)
	}
}

func printVariants(cat *catalog.Catalog) {
	fmt.Println("Variants")
	fmt.Printf("  %-10s %6s %10s\n", "ID", "Mult", "Chance")
	for _, v := range cat.RollableVariants() {
		fmt.Printf("  %-10s %5dx %9.3f%%\n", v.ID, v.Multiplier, v.Chance*100)
	}
}

func printDetectors(cat *catalog.Catalog) {
	fmt.Println("Detectors")
	fmt.Printf("  %-3s %-10s %10s %6s %6s  %s\n", "Lvl", "ID", "Cost", "Depth", "Bonus", "Notes")
	for _, d := range cat.Detectors {
		fmt.Printf("  %-3d %-10s %10s %5dm %5.0f%%  %s\n",
			d.Level, d.ID, humanize.Comma(d.Cost), d.Depth, d.RarityBonus*100, d.Description)
	}
}

func printBags(cat *catalog.Catalog) {
	fmt.Println("Bags")
	fmt.Printf("  %-3s %-10s %10s %10s\n", "Lvl", "ID", "Cost", "Capacity")
	for _, b := range cat.Bags {
		fmt.Printf("  %-3d %-10s %10s %10s\n", b.Level, b.ID, humanize.Comma(b.Cost), humanize.Comma(int64(b.Capacity)))
	}
}

func printAreas(cat *catalog.Catalog) {
	fmt.Println("Areas")
	fmt.Printf("  %-10s %-18s %10s  %s\n", "ID", "Name", "Cost", "Metals")
	for _, a := range cat.Areas {
		fmt.Printf("  %-10s %-18s %10s  %s\n", a.ID, a.Name, humanize.Comma(a.Cost), strings.Join(a.Metals, ", "))
	}
}

func runInfo(_ *cobra.Command, args []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}
	id := strings.ToLower(args[0])

	if m, ok := cat.Metal(id); ok {
		rarity := catalog.RarityOf(m.Tier)
		fmt.Printf("%s (%s) - metal\n", m.Name, m.Symbol)
		fmt.Printf("  Tier:        %d, %s\n", m.Tier, rarity)
		fmt.Printf("  Base value:  %s coins\n", humanize.Comma(m.BaseValue))
		fmt.Printf("  Spawn rate:  %.4f%%\n", m.SpawnRate*100)
		fmt.Printf("  Detector:    level %d or better\n", m.MinDetector)
		var areas []string
		for _, a := range cat.Areas {
			if a.Permits(m.ID) {
				areas = append(areas, a.Name)
			}
		}
		if len(areas) > 0 {
			fmt.Printf("  Found at:    %s\n", strings.Join(areas, ", "))
		}
		return
	}
	if v, ok := cat.Variant(id); ok {
		fmt.Printf("%s - variant\n", v.Name)
		fmt.Printf("  Multiplier:  %dx\n", v.Multiplier)
		fmt.Printf("  Chance:      %.4f%% per item\n", v.Chance*100)
		return
	}
	if a, ok := cat.Area(id); ok {
		fmt.Printf("%s - area\n", a.Name)
		fmt.Printf("  Cost:        %s coins\n", humanize.Comma(a.Cost))
		fmt.Printf("  Metals:      %s\n", strings.Join(a.Metals, ", "))
		return
	}
	for _, d := range cat.Detectors {
		if d.ID == id {
			fmt.Printf("%s - detector level %d\n", d.Name, d.Level)
			fmt.Printf("  Cost:        %s coins\n", humanize.Comma(d.Cost))
			fmt.Printf("  Depth:       %dm\n", d.Depth)
			fmt.Printf("  Rarity:      +%.0f%%\n", d.RarityBonus*100)
			fmt.Printf("  %s\n", d.Description)
			return
		}
	}
	for _, b := range cat.Bags {
		if b.ID == id {
			fmt.Printf("%s - bag level %d\n", b.Name, b.Level)
			fmt.Printf("  Cost:        %s coins\n", humanize.Comma(b.Cost))
			fmt.Printf("  Capacity:    %s items\n", humanize.Comma(int64(b.Capacity)))
			return
		}
	}

	fatal("no catalog entry %q%s", args[0], didYouMean(id, allIDs(cat)))
}

func allIDs(cat *catalog.Catalog) []string {
	ids := append(cat.MetalIDs(), cat.VariantIDs()...)
	ids = append(ids, cat.AreaIDs()...)
	for _, d := range cat.Detectors {
		ids = append(ids, d.ID)
	}
	for _, b := range cat.Bags {
		ids = append(ids, b.ID)
	}
	return ids
}

// didYouMean formats suggestions as an error suffix.
func didYouMean(query string, candidates []string) string {
	hits := catalog.Suggest(query, candidates, 3)
	if len(hits) == 0 {
		return ""
	}
	return " (did you mean " + strings.Join(hits, ", ") + "?)"
}

func metalColor(m catalog.Metal) string {
	if m.Color != "" {
		return m.Color
	}
	return catalog.RarityOf(m.Tier).Hex()
}
