package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

func weatherGame() *game.Game {
	g := activeGame()
	g.Phase = game.PhaseWeather
	g.WeatherNotBeforeMillis = base.UnixMilli() + 2000
	return g
}

func TestRollWeather_GuardsAndEmbargo(t *testing.T) {
	e := testEngine()
	g := weatherGame()

	if err := e.RollWeather(g, "h1", base.Add(3*time.Second)); !errors.Is(err, ErrNotVampire) {
		t.Fatalf("hunter rolling weather: got %v", err)
	}
	if err := e.RollWeather(g, "v", base.Add(time.Second)); !errors.Is(err, ErrWeatherTooEarly) {
		t.Fatalf("roll before the embargo: got %v", err)
	}
	if err := e.RollWeather(g, "v", base.Add(2*time.Second)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.WeatherRoll < 1 || g.WeatherRoll > 12 {
		t.Fatalf("weather roll out of range: %d", g.WeatherRoll)
	}
	if err := e.RollWeather(g, "v", base.Add(3*time.Second)); !errors.Is(err, ErrWeatherAlreadySet) {
		t.Fatalf("second roll in the same raid: got %v", err)
	}

	g2 := activeGame()
	g2.Phase = game.PhaseHunterPick
	if err := e.RollWeather(g2, "v", base); !errors.Is(err, ErrNotWeatherPhase) {
		t.Fatalf("roll outside PHASE0: got %v", err)
	}
}

func TestApplyWeather_StormLowersEveryDefense(t *testing.T) {
	e := testEngine()
	g := weatherGame()
	nowMs := base.UnixMilli()

	e.applyWeather(g, 6, nowMs)

	if g.WeatherStatus != "STORM" {
		t.Fatalf("roll 6 must map to STORM, got %s", g.WeatherStatus)
	}
	for _, p := range g.Players {
		if got := g.ModifierTotal(p.ID, game.StatDefense); got != -2 {
			t.Fatalf("player %s: expected -2 DEFENSE, got %+d", p.ID, got)
		}
	}
	if g.PendingNextPhase == nil || *g.PendingNextPhase != game.PhaseHunterPick {
		t.Fatalf("weather roll must schedule PHASE1")
	}
	if g.NextAutoAdvanceAtMillis != nowMs+10000 {
		t.Fatalf("display window must be ten seconds, deadline %d", g.NextAutoAdvanceAtMillis)
	}
}

func TestApplyWeather_FullMoonBoostsOnlyTheVampire(t *testing.T) {
	e := testEngine()
	g := weatherGame()

	e.applyWeather(g, 12, base.UnixMilli())

	if got := g.ModifierTotal("v", game.StatAttack); got != 2 {
		t.Fatalf("vampire attack bonus: got %+d", got)
	}
	for _, id := range []string{"h1", "h2"} {
		if got := g.ModifierTotal(id, game.StatAttack); got != 0 {
			t.Fatalf("hunter %s must not gain the full moon bonus, got %+d", id, got)
		}
	}
}

func TestApplyWeather_ReplacesPreviousWeatherMods(t *testing.T) {
	e := testEngine()
	g := weatherGame()
	nowMs := base.UnixMilli()
	g.AddMod("v", game.StatMod{Stat: game.StatAttack, Amount: 1, Source: "potion", Description: "Potion"})

	e.applyWeather(g, 12, nowMs)
	e.applyWeather(g, 6, nowMs)

	// The full moon bonus is gone; the non-weather entry survives.
	if got := g.ModifierTotal("v", game.StatAttack); got != 1 {
		t.Fatalf("expected only the potion entry, got %+d", got)
	}
	if got := g.ModifierTotal("v", game.StatDefense); got != -2 {
		t.Fatalf("expected the storm penalty, got %+d", got)
	}
}

func TestWeatherReveal_EntersTheFeedAfterTheModal(t *testing.T) {
	e := testEngine()
	g := weatherGame()
	nowMs := base.UnixMilli()
	e.applyWeather(g, 6, nowMs)

	if e.Advance(g, base.Add(5*time.Second)) {
		t.Fatalf("the feed must stay quiet while the modal is up")
	}
	if !e.Advance(g, base.Add(6*time.Second)) {
		t.Fatalf("expected the reveal to enter the feed")
	}
	if !g.WeatherRevealed {
		t.Fatalf("reveal flag not set")
	}
	last := g.Messages[len(g.Messages)-1]
	if !strings.HasPrefix(last, "Weather: Storm.") {
		t.Fatalf("unexpected reveal line: %q", last)
	}
	if e.Advance(g, base.Add(7*time.Second)) {
		t.Fatalf("the reveal must enter the feed only once")
	}
}

func TestWeatherReveal_InjectedWhenTheModalWasSkipped(t *testing.T) {
	e := testEngine()
	g := weatherGame()
	e.applyWeather(g, 6, base.UnixMilli())

	// First poll arrives after the PHASE1 deadline: the transition wins the
	// tick, and the reveal must ride along instead of being dropped.
	if !e.Advance(g, base.Add(11*time.Second)) {
		t.Fatalf("expected the phase transition to apply")
	}
	if g.Phase != game.PhaseHunterPick {
		t.Fatalf("expected PHASE1, got %v", g.Phase)
	}
	if !g.WeatherRevealed {
		t.Fatalf("skipped modal must still surface the weather reveal")
	}
}
