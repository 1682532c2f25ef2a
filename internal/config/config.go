// Package config loads the YAML tuning file for the game: timer periods,
// probability rolls and effect lifetimes.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DownConfig is the complete tuning set for one game session.
type DownConfig struct {
	Timing  Timing  `yaml:"timing"`
	Rules   Rules   `yaml:"rules"`
	Effects Effects `yaml:"effects"`
}

// Timing holds every timer period in milliseconds.
type Timing struct {
	FallMs           int `yaml:"fall_ms"`            // normal scroll cadence
	FallParachuteMs  int `yaml:"fall_parachute_ms"`  // scroll cadence with a parachute
	FallWeightMs     int `yaml:"fall_weight_ms"`     // scroll cadence with a weight
	WalkMs           int `yaml:"walk_ms"`            // one horizontal step
	DamageMs         int `yaml:"damage_ms"`          // one point of life lost on a hazard
	PlayerFlashMs    int `yaml:"player_flash_ms"`    // player blink while hurt or dead
	InvulnFlashMs    int `yaml:"invuln_flash_ms"`    // invulnerability shimmer step
	GaugeFlashMs     int `yaml:"gauge_flash_ms"`     // life bar red/white pulse
	HazardBreakMs    int `yaml:"hazard_break_ms"`    // contact needed to break a hazard cell
	GameOverMs       int `yaml:"game_over_ms"`       // epilogue before the ranking is updated
	InvulnDurationMs int `yaml:"invuln_duration_ms"` // invulnerability lifetime
	FPSWindowMs      int `yaml:"fps_window_ms"`      // FPS counter window
}

// Rules holds probabilities and limits.
type Rules struct {
	HazardPercent       int       `yaml:"hazard_percent"`
	ItemPercent         int       `yaml:"item_percent"`
	ItemSplit           ItemSplit `yaml:"item_split"`
	WeightCancelPercent int       `yaml:"weight_cancel_percent"` // of the invulnerability duration
	StartLife           int       `yaml:"start_life"`
	HighScores          int       `yaml:"high_scores"`
}

// ItemSplit divides a [0,100) draw between the three power-ups.
// A draw <= Invuln gives invulnerability, <= Parachute a parachute,
// anything above a weight.
type ItemSplit struct {
	Invuln    int `yaml:"invuln"`
	Parachute int `yaml:"parachute"`
}

// Effects configures the transient visual markers.
type Effects struct {
	Break  EffectSpec `yaml:"break"`
	Impact EffectSpec `yaml:"impact"`
}

// EffectSpec is one animation: a frame period and a frame count.
type EffectSpec struct {
	PeriodMs int `yaml:"period_ms"`
	Frames   int `yaml:"frames"`
}

// Ms converts a millisecond setting to a duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate reports every setting that would break the simulation.
func (c DownConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	percent := func(name string, v int) {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%s must be within [0,100], got %d", name, v))
		}
	}

	t := c.Timing
	positive("timing.fall_ms", t.FallMs)
	positive("timing.fall_parachute_ms", t.FallParachuteMs)
	positive("timing.fall_weight_ms", t.FallWeightMs)
	positive("timing.walk_ms", t.WalkMs)
	positive("timing.damage_ms", t.DamageMs)
	positive("timing.player_flash_ms", t.PlayerFlashMs)
	positive("timing.invuln_flash_ms", t.InvulnFlashMs)
	positive("timing.gauge_flash_ms", t.GaugeFlashMs)
	positive("timing.hazard_break_ms", t.HazardBreakMs)
	positive("timing.game_over_ms", t.GameOverMs)
	positive("timing.invuln_duration_ms", t.InvulnDurationMs)
	positive("timing.fps_window_ms", t.FPSWindowMs)

	r := c.Rules
	percent("rules.hazard_percent", r.HazardPercent)
	percent("rules.item_percent", r.ItemPercent)
	percent("rules.item_split.invuln", r.ItemSplit.Invuln)
	percent("rules.item_split.parachute", r.ItemSplit.Parachute)
	if r.ItemSplit.Invuln > r.ItemSplit.Parachute {
		errs = append(errs, fmt.Errorf("rules.item_split.invuln (%d) must not exceed rules.item_split.parachute (%d)",
			r.ItemSplit.Invuln, r.ItemSplit.Parachute))
	}
	percent("rules.weight_cancel_percent", r.WeightCancelPercent)
	positive("rules.start_life", r.StartLife)
	if r.StartLife > 100 {
		errs = append(errs, fmt.Errorf("rules.start_life must not exceed 100, got %d", r.StartLife))
	}
	positive("rules.high_scores", r.HighScores)

	positive("effects.break.period_ms", c.Effects.Break.PeriodMs)
	positive("effects.break.frames", c.Effects.Break.Frames)
	positive("effects.impact.period_ms", c.Effects.Impact.PeriodMs)
	positive("effects.impact.frames", c.Effects.Impact.Frames)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
