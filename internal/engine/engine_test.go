package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

var base = time.UnixMilli(1_700_000_000_000)

func testEngine() *Engine {
	return New(rand.New(rand.NewSource(1)), DefaultTimings())
}

// activeGame builds a started three-player game with fixed roles: Vlad is the
// vampire, Anna and Bram hunt. The caller sets the phase it needs.
func activeGame() *game.Game {
	g := game.New("g1")
	g.Status = game.StatusActive
	g.Raid = 1
	g.PhaseStartMillis = base.UnixMilli()

	for _, pc := range []struct {
		id, name string
		role     game.Role
		hp       int
	}{
		{"v", "Vlad", game.RoleVampire, 40},
		{"h1", "Anna", game.RoleHunter, 20},
		{"h2", "Bram", game.RoleHunter, 20},
	} {
		p := game.NewPlayer(pc.id, pc.name)
		p.Role = pc.role
		p.HP = pc.hp
		p.Hand = game.StartingHand()
		p.AttackDice = "D6"
		p.DefenseDice = "D6"
		g.Players = append(g.Players, p)
	}
	return g
}

func place(g *game.Game, playerID, card string) {
	g.FindPlayer(playerID).RemoveFromHand(card)
	g.Center = append(g.Center, &game.CenterCard{PlayerID: playerID, Card: card})
}

func schedule(g *game.Game, next game.Phase, dueAt time.Time) {
	g.PendingNextPhase = &next
	g.NextAutoAdvanceAtMillis = dueAt.UnixMilli()
}

func TestAdvance_NoopWhenNothingDue(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Phase = game.PhaseHunterPick
	schedule(g, game.PhaseVampirePick, base.Add(5*time.Second))

	if e.Advance(g, base.Add(4*time.Second)) {
		t.Fatalf("expected no progress before the deadline")
	}
	if g.Phase != game.PhaseHunterPick {
		t.Fatalf("phase changed without a due deadline: %v", g.Phase)
	}
}

func TestAdvance_AppliesDuePendingTransition(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Phase = game.PhaseHunterPick
	schedule(g, game.PhaseVampirePick, base.Add(5*time.Second))

	if !e.Advance(g, base.Add(5*time.Second)) {
		t.Fatalf("expected the due transition to apply")
	}
	if g.Phase != game.PhaseVampirePick {
		t.Fatalf("expected PHASE2, got %v", g.Phase)
	}
	if g.PendingNextPhase != nil || g.NextAutoAdvanceAtMillis != 0 {
		t.Fatalf("scheduling slot not cleared after the transition")
	}
	// The slot is empty, so a second tick at the same instant does nothing.
	if e.Advance(g, base.Add(5*time.Second)) {
		t.Fatalf("expected a no-op tick after the transition")
	}
}

func TestAdvance_InactiveGameNeverProgresses(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Status = game.StatusCreated
	g.Phase = game.PhaseHunterPick
	schedule(g, game.PhaseVampirePick, base)

	if e.Advance(g, base.Add(time.Hour)) {
		t.Fatalf("inactive game must not advance")
	}
}

func TestAdvance_ForcedPicksForStalledHunters(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Phase = game.PhaseHunterPick
	place(g, "h1", game.LocationForest)

	if e.Advance(g, base.Add(29*time.Second)) {
		t.Fatalf("force threshold not reached yet")
	}
	if !e.Advance(g, base.Add(30*time.Second)) {
		t.Fatalf("expected a forced pick at the threshold")
	}
	if !g.HasPlayed("h2") {
		t.Fatalf("stalled hunter was not auto-played")
	}
	if len(g.FindPlayer("h2").Hand) != len(game.AllLocations)-1 {
		t.Fatalf("forced card must come out of the player's own hand")
	}
	if g.HasPlayed("v") {
		t.Fatalf("the vampire must not be forced during the hunter phase")
	}
	if g.PendingNextPhase == nil || *g.PendingNextPhase != game.PhaseVampirePick {
		t.Fatalf("completed hunter phase must schedule PHASE2")
	}
}

func TestAdvance_ForcedVampirePickSchedulesReveal(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Phase = game.PhaseVampirePick
	place(g, "h1", game.LocationForest)
	place(g, "h2", game.LocationLake)

	if !e.Advance(g, base.Add(30*time.Second)) {
		t.Fatalf("expected a forced vampire pick")
	}
	if !g.HasPlayed("v") {
		t.Fatalf("stalled vampire was not auto-played")
	}
	if g.PendingNextPhase == nil || *g.PendingNextPhase != game.PhaseReveal {
		t.Fatalf("forced vampire pick must schedule the reveal, got %v", g.PendingNextPhase)
	}
}

func TestMaintenance_ReturnsCardsAndStartsNextRaid(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Phase = game.PhaseCombat
	place(g, "h1", game.LocationForest)
	place(g, "h2", game.LocationLake)
	place(g, "v", game.LocationManor)
	schedule(g, game.PhaseMaintenance, base)

	if !e.Advance(g, base) {
		t.Fatalf("expected the maintenance transition to apply")
	}
	if g.Phase != game.PhaseMaintenance {
		t.Fatalf("expected PHASE4, got %v", g.Phase)
	}
	if len(g.Center) != 0 {
		t.Fatalf("center board not cleared")
	}
	for _, id := range []string{"h1", "h2", "v"} {
		if got := len(g.FindPlayer(id).Hand); got != len(game.AllLocations) {
			t.Fatalf("player %s hand not restored: %d cards", id, got)
		}
	}
	if g.Raid != 2 {
		t.Fatalf("raid counter not incremented: %d", g.Raid)
	}
	if g.PendingNextPhase == nil || *g.PendingNextPhase != game.PhaseWeather {
		t.Fatalf("maintenance must schedule the next weather phase")
	}
}

func TestWeatherPhaseEntry_ResetsRaidState(t *testing.T) {
	e := testEngine()
	g := activeGame()
	g.Phase = game.PhaseMaintenance
	g.WeatherRoll = 6
	g.WeatherStatus = "STORM"
	g.HarvestedRaid = g.Raid
	g.AddMod("h1", game.StatMod{Stat: game.StatDefense, Amount: -2, Source: game.WeatherSourcePrefix + "STORM"})
	g.AddMod("h1", game.StatMod{Stat: game.StatAttack, Amount: 1, Source: "potion"})
	schedule(g, game.PhaseWeather, base)

	if !e.Advance(g, base) {
		t.Fatalf("expected the weather transition to apply")
	}
	if g.WeatherRoll != 0 || g.WeatherStatus != "" {
		t.Fatalf("weather not cleared on PHASE0 entry")
	}
	if g.HarvestedRaid != 0 {
		t.Fatalf("harvest guard not reset")
	}
	if g.ModifierTotal("h1", game.StatDefense) != 0 {
		t.Fatalf("weather modifiers survived the new raid")
	}
	if g.ModifierTotal("h1", game.StatAttack) != 1 {
		t.Fatalf("non-weather modifiers must survive the new raid")
	}
	if g.WeatherNotBeforeMillis != base.UnixMilli()+2000 {
		t.Fatalf("weather roll must be embargoed for two seconds")
	}
}
