package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultDownConfig().Validate(); err != nil {
		t.Fatalf("DefaultDownConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultDownConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultDownConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DownConfig)
		field  string
	}{
		{"zero fall period", func(c *DownConfig) { c.Timing.FallMs = 0 }, "timing.fall_ms"},
		{"negative walk period", func(c *DownConfig) { c.Timing.WalkMs = -1 }, "timing.walk_ms"},
		{"hazard over 100", func(c *DownConfig) { c.Rules.HazardPercent = 101 }, "rules.hazard_percent"},
		{"negative item percent", func(c *DownConfig) { c.Rules.ItemPercent = -5 }, "rules.item_percent"},
		{"split out of order", func(c *DownConfig) { c.Rules.ItemSplit.Invuln = 70 }, "rules.item_split.invuln (70)"},
		{"no high scores", func(c *DownConfig) { c.Rules.HighScores = 0 }, "rules.high_scores"},
		{"life over 100", func(c *DownConfig) { c.Rules.StartLife = 150 }, "rules.start_life"},
		{"no effect frames", func(c *DownConfig) { c.Effects.Impact.Frames = 0 }, "effects.impact.frames"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDownConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %q, expected it to name %s", err, tc.field)
			}
		})
	}
}

func TestLoadDownCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "down.yaml")
	data := "timing:\n  fall_ms: 55\nrules:\n  hazard_percent: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDown(path)
	if err != nil {
		t.Fatalf("LoadDown() error = %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Timing.FallMs != 55 {
		t.Errorf("FallMs = %d, expected 55", cfg.Timing.FallMs)
	}
	if cfg.Rules.HazardPercent != 0 {
		t.Errorf("HazardPercent = %d, expected 0", cfg.Rules.HazardPercent)
	}
	if cfg.Timing.WalkMs != DefaultDownConfig().Timing.WalkMs {
		t.Errorf("WalkMs = %d, expected the default to survive", cfg.Timing.WalkMs)
	}
}

func TestLoadDownCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadDown(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadDown(bad); err == nil {
		t.Error("expected a parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  damage_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadDown(invalid); err == nil {
		t.Error("expected a validation error")
	}
}

func TestLoadDownUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".down", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "down.yaml"), []byte("rules:\n  high_scores: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDown("")
	if err != nil {
		t.Fatalf("LoadDown() error = %v", err)
	}
	if !strings.HasPrefix(src, home) {
		t.Errorf("source = %q, expected the user config", src)
	}
	if cfg.Rules.HighScores != 3 {
		t.Errorf("HighScores = %d, expected 3", cfg.Rules.HighScores)
	}
}

func TestLoadDownFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, src, err := LoadDown("")
	if err != nil {
		t.Fatalf("LoadDown() error = %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultDownConfig() {
		t.Error("embedded fallback should equal the defaults")
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(DefaultDownConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hazard_break_ms: 140") {
		t.Errorf("Marshal output lacks hazard_break_ms:\n%s", data)
	}
}
