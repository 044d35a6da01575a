// Package config provides YAML-based game configuration loading and the pace
// presets for the detector game.
package config

import "time"

// GameConfig contains all tunables of the detector game.
type GameConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Detection DetectionConfig `yaml:"detection"`
	Dig       DigConfig       `yaml:"dig"`
	Economy   EconomyConfig   `yaml:"economy"`
	Session   SessionConfig   `yaml:"session"`
}

// FieldConfig defines the dig site.
type FieldConfig struct {
	Width       float64 `yaml:"width"`        // world units along x
	Depth       float64 `yaml:"depth"`        // world units along z
	BuriedCount int     `yaml:"buried_count"` // items spawned per field
	MaxDepth    int     `yaml:"max_depth"`    // items are buried 1..max_depth deep
}

// DetectionConfig defines how the detector senses items.
type DetectionConfig struct {
	Radius    float64 `yaml:"radius"`     // signal is 1 - distance/radius
	MoveSpeed float64 `yaml:"move_speed"` // world units per tick
}

// DigConfig defines the dig timing mechanic.
type DigConfig struct {
	Speed          float64 `yaml:"speed"`           // base progress per tick
	MinSignal      float64 `yaml:"min_signal"`      // digging needs a stronger signal
	Complete       float64 `yaml:"complete"`        // progress at which the item comes up
	HoldWindowMs   int     `yaml:"hold_window_ms"`  // key repeat gap still counted as holding
	SoundChance    float64 `yaml:"sound_chance"`    // chance per dig tick of a dig sound
	PrecisionBonus bool    `yaml:"precision_bonus"` // enables the high-signal upgrade roll
}

// EconomyConfig defines selling and respawn rules.
type EconomyConfig struct {
	BulkThreshold    int     `yaml:"bulk_threshold"`
	BulkBonusPercent int64   `yaml:"bulk_bonus_percent"`
	RespawnChance    float64 `yaml:"respawn_chance"` // chance of a replacement after collecting
}

// SessionConfig defines persistence behavior.
type SessionConfig struct {
	AutosaveSeconds int `yaml:"autosave_seconds"`
}

// HoldWindow returns the dig hold window as a duration.
func (c DigConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMs) * time.Millisecond
}

// AutosaveInterval returns the autosave period, 0 when disabled.
func (c SessionConfig) AutosaveInterval() time.Duration {
	if c.AutosaveSeconds <= 0 {
		return 0
	}
	return time.Duration(c.AutosaveSeconds) * time.Second
}
