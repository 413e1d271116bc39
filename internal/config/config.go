// Package config provides YAML-based session configuration loading and
// per-game defaults for the trainer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkotlyar/mindgym/internal/game"
)

// Default returns the built-in configuration for a game type.
func Default(t game.Type) game.Config {
	switch t {
	case game.TypeReadingSpeed:
		return game.Config{
			Difficulty: game.Medium,
			Duration:   1500 * time.Millisecond,
			Rounds:     10,
		}
	case game.TypeWordMemory:
		return game.Config{
			Difficulty: game.Medium,
			Duration:   2 * time.Second,
		}
	case game.TypeTextComprehension:
		return game.Config{
			Difficulty: game.Medium,
		}
	case game.TypeINumbs:
		return game.Config{
			Difficulty: game.Medium,
			Duration:   30 * time.Second,
			ItemCount:  10,
			FillBoxes:  false,
		}
	case game.TypeTextRecall:
		return game.Config{
			Difficulty: game.Medium,
			Duration:   60 * time.Second,
		}
	default:
		return game.Config{
			Difficulty: game.Medium,
			Duration:   30 * time.Second,
		}
	}
}

// Load resolves the configuration for a game type.
// Search order: customPath -> <user config dir>/mindgym/<type>.yaml ->
// built-in default. A custom path that cannot be read or parsed is an
// error; a broken user-dir file falls through to the default.
func Load(t game.Type, customPath string) (game.Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return game.Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg := Default(t)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return game.Config{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return Normalize(t, cfg), nil
	}

	if userPath := userConfigPath(string(t) + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			cfg := Default(t)
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return Normalize(t, cfg), nil
			}
		}
	}

	return Default(t), nil
}

// userConfigPath returns the per-user config file path, or empty when the
// config directory cannot be resolved.
func userConfigPath(filename string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mindgym", filename)
}

// Normalize clamps a config to the values the games accept: a known
// difficulty, a positive duration, at least one item, and a round count in
// {10, 20, 30} for digit-span.
func Normalize(t game.Type, cfg game.Config) game.Config {
	switch cfg.Difficulty {
	case game.Easy, game.Medium, game.Hard:
	default:
		cfg.Difficulty = game.Medium
	}

	def := Default(t)
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.ItemCount < 1 {
		cfg.ItemCount = def.ItemCount
	}
	if t == game.TypeReadingSpeed {
		switch cfg.Rounds {
		case 10, 20, 30:
		default:
			cfg.Rounds = 10
		}
	}
	return cfg
}
