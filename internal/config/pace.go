package config

import "math"

// Pace is a named tuning preset applied on top of the loaded config.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceNormal   Pace = "normal"
	PaceHardcore Pace = "hardcore"
)

// ParsePace returns the pace for a name, and false for unknown names.
func ParsePace(name string) (Pace, bool) {
	switch p := Pace(name); p {
	case PaceRelaxed, PaceNormal, PaceHardcore:
		return p, true
	case "":
		return PaceNormal, true
	default:
		return PaceNormal, false
	}
}

// ApplyPace modifies the config for a preset. Normal leaves it unchanged.
func ApplyPace(cfg *GameConfig, pace Pace) {
	switch pace {
	case PaceRelaxed:
		cfg.Detection.Radius *= 1.4
		cfg.Dig.Speed *= 1.5
		cfg.Economy.RespawnChance = 1
	case PaceHardcore:
		cfg.Detection.Radius *= 0.7
		cfg.Dig.Speed *= 0.6
		cfg.Dig.MinSignal = clampF(cfg.Dig.MinSignal+0.1, 0, 0.95)
		cfg.Economy.RespawnChance = clampF(cfg.Economy.RespawnChance-0.2, 0, 1)
		cfg.Field.BuriedCount = (cfg.Field.BuriedCount*3 + 4) / 5 // 60%, rounded up
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
