package catalog

// Builtin returns the hardcoded catalog tables.
// Mirrors defaults/catalog.yaml.
func Builtin() *Catalog {
	c := &Catalog{
		Metals: []Metal{
			{ID: "aluminum", Name: "Aluminum", Symbol: "a", Tier: 1, BaseValue: 1, SpawnRate: 0.40, MinDetector: 1, Color: "#9ca3af"},
			{ID: "copper", Name: "Copper", Symbol: "c", Tier: 2, BaseValue: 5, SpawnRate: 0.25, MinDetector: 1, Color: "#cd7f32"},
			{ID: "brass", Name: "Brass", Symbol: "b", Tier: 3, BaseValue: 15, SpawnRate: 0.15, MinDetector: 2, Color: "#d4af37"},
			{ID: "silver", Name: "Silver", Symbol: "s", Tier: 4, BaseValue: 50, SpawnRate: 0.10, MinDetector: 3, Color: "#c0c0c0"},
			{ID: "gold", Name: "Gold", Symbol: "G", Tier: 5, BaseValue: 200, SpawnRate: 0.06, MinDetector: 5, Color: "#ffd700"},
			{ID: "platinum", Name: "Platinum", Symbol: "P", Tier: 6, BaseValue: 500, SpawnRate: 0.025, MinDetector: 7, Color: "#e5e4e2"},
			{ID: "palladium", Name: "Palladium", Symbol: "D", Tier: 7, BaseValue: 1500, SpawnRate: 0.01, MinDetector: 10, Color: "#cec8b8"},
			{ID: "rhodium", Name: "Rhodium", Symbol: "R", Tier: 8, BaseValue: 5000, SpawnRate: 0.004, MinDetector: 15, Color: "#b0c4de"},
			{ID: "meteorite", Name: "Meteorite", Symbol: "M", Tier: 9, BaseValue: 20000, SpawnRate: 0.0009, MinDetector: 20, Color: "#2d3748"},
			{ID: "unobtainium", Name: "Unobtainium", Symbol: "U", Tier: 10, BaseValue: 100000, SpawnRate: 0.0001, MinDetector: 25, Color: "#a855f7"},
		},
		Variants: []Variant{
			{ID: "normal", Name: "Normal", Multiplier: 1, Chance: 1.0},
			{ID: "shiny", Name: "Shiny", Symbol: "*", Multiplier: 2, Chance: 0.10},
			{ID: "large", Name: "Large", Symbol: "L", Multiplier: 3, Chance: 0.05},
			{ID: "giant", Name: "Giant", Symbol: "G", Multiplier: 8, Chance: 0.01},
			{ID: "pure", Name: "Pure", Symbol: "+", Multiplier: 5, Chance: 0.02},
			{ID: "rainbow", Name: "Rainbow", Symbol: "~", Multiplier: 10, Chance: 0.005},
			{ID: "ancient", Name: "Ancient", Symbol: "A", Multiplier: 15, Chance: 0.002},
			{ID: "cursed", Name: "Cursed", Symbol: "X", Multiplier: 20, Chance: 0.001},
			{ID: "celestial", Name: "Celestial", Symbol: "^", Multiplier: 50, Chance: 0.0002},
			{ID: "mythic", Name: "Mythic", Symbol: "#", Multiplier: 100, Chance: 0.00005},
		},
		Detectors: []Detector{
			{Level: 1, ID: "starter", Name: "Starter", Cost: 0, Depth: 1, RarityBonus: 0, Description: "Basic metal detector"},
			{Level: 2, ID: "scout", Name: "Scout", Cost: 50, Depth: 2, RarityBonus: 0.05, Description: "Faster beeps"},
			{Level: 3, ID: "hunter", Name: "Hunter", Cost: 200, Depth: 3, RarityBonus: 0.10, Description: "Shows metal type hint"},
			{Level: 4, ID: "pro", Name: "Pro", Cost: 1000, Depth: 5, RarityBonus: 0.20, Description: "Pinpoint mode"},
			{Level: 5, ID: "elite", Name: "Elite", Cost: 5000, Depth: 8, RarityBonus: 0.35, Description: "Depth indicator"},
			{Level: 6, ID: "master", Name: "Master", Cost: 20000, Depth: 12, RarityBonus: 0.50, Description: "Auto-identifies metal"},
			{Level: 7, ID: "legend", Name: "Legend", Cost: 100000, Depth: 20, RarityBonus: 0.75, Description: "Detects variants"},
			{Level: 8, ID: "mythical", Name: "Mythical", Cost: 500000, Depth: 50, RarityBonus: 1.00, Description: "Attracts rare metals"},
		},
		Bags: []Bag{
			{Level: 1, ID: "starter", Name: "Starter Bag", Capacity: 10, Cost: 0},
			{Level: 2, ID: "small", Name: "Small Bag", Capacity: 25, Cost: 100},
			{Level: 3, ID: "medium", Name: "Medium Bag", Capacity: 50, Cost: 500},
			{Level: 4, ID: "large", Name: "Large Bag", Capacity: 100, Cost: 2500},
			{Level: 5, ID: "xl", Name: "XL Bag", Capacity: 200, Cost: 10000},
			{Level: 6, ID: "mega", Name: "Mega Bag", Capacity: 500, Cost: 50000},
			{Level: 7, ID: "ultra", Name: "Ultra Bag", Capacity: 1000, Cost: 200000},
			{Level: 8, ID: "infinite", Name: "Infinite Bag", Capacity: 999999, Cost: 1000000},
		},
		Areas: []Area{
			{ID: "beach", Name: "Starter Beach", Cost: 0, Theme: "beach", Ground: "#f4d03f", Metals: []string{"aluminum", "copper"}},
			{ID: "park", Name: "City Park", Cost: 500, Theme: "park", Ground: "#27ae60", Metals: []string{"brass", "silver"}},
			{ID: "farm", Name: "Farm Fields", Cost: 2500, Theme: "farm", Ground: "#8b4513", Metals: []string{"gold"}},
			{ID: "ruins", Name: "Ancient Ruins", Cost: 10000, Theme: "ruins", Ground: "#bdc3c7", Metals: []string{"platinum", "palladium"}},
			{ID: "cemetery", Name: "Haunted Cemetery", Cost: 50000, Theme: "cemetery", Ground: "#2c3e50", Metals: []string{"rhodium", "meteorite"}},
		},
	}
	c.index()
	return c
}
