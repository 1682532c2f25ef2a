package config

import (
	_ "embed"
)

//go:embed defaults/down.yaml
var defaultDownYAML []byte

// DefaultDownConfig returns the built-in tuning.
func DefaultDownConfig() DownConfig {
	return DownConfig{
		Timing: Timing{
			FallMs:           40,
			FallParachuteMs:  60,
			FallWeightMs:     20,
			WalkMs:           83,
			DamageMs:         10,
			PlayerFlashMs:    80,
			InvulnFlashMs:    80,
			GaugeFlashMs:     60,
			HazardBreakMs:    140,
			GameOverMs:       3400,
			InvulnDurationMs: 4000,
			FPSWindowMs:      1000,
		},
		Rules: Rules{
			HazardPercent:       30,
			ItemPercent:         15,
			ItemSplit:           ItemSplit{Invuln: 33, Parachute: 66},
			WeightCancelPercent: 80,
			StartLife:           100,
			HighScores:          10,
		},
		Effects: Effects{
			Break:  EffectSpec{PeriodMs: 50, Frames: 6},
			Impact: EffectSpec{PeriodMs: 60, Frames: 5},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDownYAML
}
