package config

import (
	_ "embed"
)

//go:embed defaults/tycoon.yaml
var defaultTycoonYAML []byte

// DefaultGameConfig returns the default detector game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:       70,
			Depth:       55,
			BuriedCount: 30,
			MaxDepth:    1,
		},
		Detection: DetectionConfig{
			Radius:    5,
			MoveSpeed: 0.6,
		},
		Dig: DigConfig{
			Speed:          2,
			MinSignal:      0.7,
			Complete:       100,
			HoldWindowMs:   550, // first key repeat arrives after ~500ms
			SoundChance:    0.1,
			PrecisionBonus: true,
		},
		Economy: EconomyConfig{
			BulkThreshold:    50,
			BulkBonusPercent: 10,
			RespawnChance:    0.7,
		},
		Session: SessionConfig{
			AutosaveSeconds: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTycoonYAML
}
