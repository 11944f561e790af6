// Package config loads server settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/DamienCastello/red-dawn-raid/internal/engine"
)

// Config holds the runtime settings. Every field has an env override so
// deployments can tune the server without a rebuild; the phase windows
// default to the production values in engine.DefaultTimings.
type Config struct {
	Address string `env:"RDR_ADDR" envDefault:":8080"`
	DBPath  string `env:"RDR_DB" envDefault:"red-dawn-raid.db"`

	PhaseDelay           time.Duration `env:"RDR_PHASE_DELAY" envDefault:"5s"`
	ForcePick            time.Duration `env:"RDR_FORCE_PICK" envDefault:"30s"`
	RevealWindow         time.Duration `env:"RDR_REVEAL_WINDOW" envDefault:"20s"`
	RevealWindowNoCombat time.Duration `env:"RDR_REVEAL_WINDOW_NO_COMBAT" envDefault:"4s"`
	NoCombatDelay        time.Duration `env:"RDR_NO_COMBAT_DELAY" envDefault:"1500ms"`
	FightAdvanceDelay    time.Duration `env:"RDR_FIGHT_ADVANCE_DELAY" envDefault:"5s"`
	WeatherNotBefore     time.Duration `env:"RDR_WEATHER_NOT_BEFORE" envDefault:"2s"`
	WeatherModal         time.Duration `env:"RDR_WEATHER_MODAL" envDefault:"6s"`
	WeatherDisplay       time.Duration `env:"RDR_WEATHER_DISPLAY" envDefault:"4s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Timings converts the configured windows into engine timings.
func (c Config) Timings() engine.Timings {
	return engine.Timings{
		PhaseDelay:           c.PhaseDelay,
		ForcePick:            c.ForcePick,
		RevealWindow:         c.RevealWindow,
		RevealWindowNoCombat: c.RevealWindowNoCombat,
		NoCombatDelay:        c.NoCombatDelay,
		FightAdvanceDelay:    c.FightAdvanceDelay,
		WeatherNotBefore:     c.WeatherNotBefore,
		WeatherModal:         c.WeatherModal,
		WeatherDisplay:       c.WeatherDisplay,
	}
}
