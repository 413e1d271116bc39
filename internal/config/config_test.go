package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

func TestDefaultsPerType(t *testing.T) {
	for _, typ := range game.AllTypes() {
		cfg := Default(typ)
		if cfg.Difficulty != game.Medium {
			t.Errorf("%s: default difficulty = %s, want medium", typ, cfg.Difficulty)
		}
	}

	if Default(game.TypeReadingSpeed).Rounds != 10 {
		t.Errorf("reading_speed default rounds = %d, want 10", Default(game.TypeReadingSpeed).Rounds)
	}
	if Default(game.TypeINumbs).ItemCount != 10 {
		t.Errorf("inumbs default item count = %d, want 10", Default(game.TypeINumbs).ItemCount)
	}
	if Default(game.TypeINumbs).FillBoxes {
		t.Error("inumbs boxes default to off")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	data := []byte("difficulty: hard\nrounds: 30\ntraining: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(game.TypeReadingSpeed, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("difficulty = %s, want hard", cfg.Difficulty)
	}
	if cfg.Rounds != 30 {
		t.Errorf("rounds = %d, want 30", cfg.Rounds)
	}
	if !cfg.Training {
		t.Error("training flag not loaded")
	}
	// Unset fields keep their defaults.
	if cfg.Duration != Default(game.TypeReadingSpeed).Duration {
		t.Errorf("duration = %v, want the default %v", cfg.Duration, Default(game.TypeReadingSpeed).Duration)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(game.TypeReadingSpeed, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\n\t-bad"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(game.TypeReadingSpeed, path); err == nil {
		t.Error("expected error for unparseable custom config")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Normalize(game.TypeReadingSpeed, game.Config{
		Difficulty: "impossible",
		Duration:   -5 * time.Second,
		Rounds:     17,
	})
	if cfg.Difficulty != game.Medium {
		t.Errorf("unknown difficulty normalized to %s, want medium", cfg.Difficulty)
	}
	if cfg.Duration != Default(game.TypeReadingSpeed).Duration {
		t.Errorf("negative duration normalized to %v, want default", cfg.Duration)
	}
	if cfg.Rounds != 10 {
		t.Errorf("invalid rounds normalized to %d, want 10", cfg.Rounds)
	}

	kept := Normalize(game.TypeINumbs, game.Config{
		Difficulty: game.Hard,
		Duration:   45 * time.Second,
		ItemCount:  20,
		FillBoxes:  true,
	})
	if kept.Difficulty != game.Hard || kept.Duration != 45*time.Second || kept.ItemCount != 20 || !kept.FillBoxes {
		t.Errorf("valid config was altered: %+v", kept)
	}
}
