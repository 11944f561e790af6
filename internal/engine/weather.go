package engine

import (
	"fmt"
	"time"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// RollWeather performs the vampire's once-per-raid weather roll. The d12
// result maps through the fixed weather table; the derived modifiers replace
// any previous weather-tagged ledger entries. PHASE1 is scheduled after the
// combined display window; the feed message is held back until the modal
// period elapses.
func (e *Engine) RollWeather(g *game.Game, playerID string, now time.Time) error {
	e.Advance(g, now)

	if g.Status != game.StatusActive {
		return ErrGameNotActive
	}
	if g.Phase != game.PhaseWeather {
		return ErrNotWeatherPhase
	}
	p := g.FindPlayer(playerID)
	if p == nil {
		return ErrNotAPlayer
	}
	if p.Role != game.RoleVampire {
		return ErrNotVampire
	}
	nowMs := now.UnixMilli()
	if nowMs < g.WeatherNotBeforeMillis {
		return ErrWeatherTooEarly
	}
	if g.WeatherRoll != 0 {
		return ErrWeatherAlreadySet
	}

	roll := 1 + e.rnd.Intn(12)
	e.applyWeather(g, roll, nowMs)
	return nil
}

// applyWeather derives and stores the weather for the given roll. Calling it
// again with any roll fully replaces the previous weather modifiers.
func (e *Engine) applyWeather(g *game.Game, roll int, nowMs int64) {
	w, ok := game.WeatherForRoll(roll)
	if !ok {
		// The roll is produced internally; an unmapped value is a bug.
		panic(fmt.Sprintf("engine: no weather for roll %d", roll))
	}

	g.WeatherRoll = roll
	g.WeatherStatus = w.Status
	g.WeatherName = w.Name
	g.WeatherDescription = w.Description

	g.RemoveWeatherMods()
	source := game.WeatherSourcePrefix + w.Status
	for _, m := range w.Mods {
		for _, p := range g.Players {
			if m.Role != "" && p.Role != m.Role {
				continue
			}
			g.AddMod(p.ID, game.StatMod{
				Stat:        m.Stat,
				Amount:      m.Amount,
				Source:      source,
				Description: w.ModDescription(m),
			})
		}
	}

	g.AppendHistory(nowMs, fmt.Sprintf("Weather: %s (roll %d). %s", w.Name, roll, w.Description))
	for _, m := range w.Mods {
		g.AppendHistory(nowMs, w.ModDescription(m))
	}

	// The reveal stays out of the feed until the modal period elapses.
	g.WeatherRevealed = false
	g.WeatherModalUntilMillis = nowMs + e.t.WeatherModal.Milliseconds()
	e.planNextPhaseWithDelay(g, game.PhaseHunterPick, nowMs, e.t.WeatherModal+e.t.WeatherDisplay)
}

// revealWeather injects the weather line into the player-facing feed, once.
func (e *Engine) revealWeather(g *game.Game) {
	g.WeatherRevealed = true
	g.AddMessage(fmt.Sprintf("Weather: %s. %s", g.WeatherName, g.WeatherDescription))
}
