package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.tycoon/configs/tycoon.yaml -> ./configs/tycoon.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tycoon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tycoon.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTycoonYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and sanitizes the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize replaces values that would break the game with defaults.
func (c *GameConfig) sanitize() {
	def := DefaultGameConfig()
	if c.Field.Width <= 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Depth <= 0 {
		c.Field.Depth = def.Field.Depth
	}
	if c.Field.BuriedCount < 0 {
		c.Field.BuriedCount = 0
	}
	if c.Field.MaxDepth < 1 {
		c.Field.MaxDepth = 1
	}
	if c.Detection.Radius <= 0 {
		c.Detection.Radius = def.Detection.Radius
	}
	if c.Detection.MoveSpeed <= 0 {
		c.Detection.MoveSpeed = def.Detection.MoveSpeed
	}
	if c.Dig.Speed <= 0 {
		c.Dig.Speed = def.Dig.Speed
	}
	if c.Dig.Complete <= 0 {
		c.Dig.Complete = def.Dig.Complete
	}
	if c.Dig.HoldWindowMs <= 0 {
		c.Dig.HoldWindowMs = def.Dig.HoldWindowMs
	}
	c.Dig.MinSignal = clampF(c.Dig.MinSignal, 0, 1)
	c.Dig.SoundChance = clampF(c.Dig.SoundChance, 0, 1)
	c.Economy.RespawnChance = clampF(c.Economy.RespawnChance, 0, 1)
	if c.Economy.BulkBonusPercent < 0 {
		c.Economy.BulkBonusPercent = 0
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tycoon", "configs", filename)
}
