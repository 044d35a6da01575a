package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/storage"
)

var (
	flagFindsLimit  int
	flagFindsRecent bool
)

var findsCmd = &cobra.Command{
	Use:   "finds",
	Short: "Show the ledger of notable finds",
	Long: `Print the slot's notable finds: tier 5 metals and up, and anything with a
variant. Sorted by value unless --recent is given.

Examples:
  tycoon finds
  tycoon finds --recent --limit 20
  tycoon finds --slot ssh:alice --db ./server.db`,
	Args: cobra.NoArgs,
	Run:  runFinds,
}

func init() {
	findsCmd.Flags().IntVarP(&flagFindsLimit, "limit", "n", 10, "Number of finds to show")
	findsCmd.Flags().BoolVar(&flagFindsRecent, "recent", false, "Newest first instead of most valuable")
}

func runFinds(_ *cobra.Command, _ []string) {
	cat, err := loadCatalog()
	if err != nil {
		fatal("%v", err)
	}
	store := openStore()
	defer store.Close()

	var finds []storage.FindEntry
	if flagFindsRecent {
		finds, err = store.AllFinds(flagSlot)
		if len(finds) > flagFindsLimit {
			finds = finds[:flagFindsLimit]
		}
	} else {
		finds, err = store.TopFinds(flagSlot, flagFindsLimit)
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Finds - %s\n\n", flagSlot)
	if len(finds) == 0 {
		fmt.Println("No notable finds yet.")
		fmt.Println()
		fmt.Println("Dig up gold or anything with a variant to start the ledger.")
		return
	}

	fmt.Printf("  %-4s  %-28s  %12s  %-16s  %s\n", "Rank", "Find", "Value", "Area", "When")
	fmt.Printf("  %-4s  %-28s  %12s  %-16s  %s\n", "----", "----", "-----", "----", "----")
	for i, f := range finds {
		fmt.Printf("  %-4d  %-28s  %12s  %-16s  %s\n",
			i+1, findLabel(cat, f), humanize.Comma(f.Value), areaLabel(cat, f.Area), humanize.Time(f.FoundAt))
	}

	stats, err := store.FindStats(flagSlot)
	if err == nil && stats.Count > 0 {
		fmt.Println()
		fmt.Printf("%s finds worth %s in total. Best: %s (%s)\n",
			humanize.Comma(int64(stats.Count)), humanize.Comma(stats.TotalValue),
			humanize.Comma(stats.BestValue), catalog.RarityOf(stats.BestTier))
	}
}

func findLabel(cat *catalog.Catalog, f storage.FindEntry) string {
	parts := make([]string, 0, len(f.Variants)+1)
	for _, id := range f.Variants {
		if v, ok := cat.Variant(id); ok {
			parts = append(parts, v.Name)
		}
	}
	name := f.Metal
	if m, ok := cat.Metal(f.Metal); ok {
		name = m.Name
	}
	return strings.Join(append(parts, name), " ")
}

func areaLabel(cat *catalog.Catalog, id string) string {
	if a, ok := cat.Area(id); ok {
		return a.Name
	}
	return id
}
