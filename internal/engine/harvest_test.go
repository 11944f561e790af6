package engine

import (
	"testing"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

func TestHarvest_FixedYieldsPerLocation(t *testing.T) {
	e := testEngine()
	g := activeGame()
	enterCombat(t, e, g, map[string]string{
		"h1": game.LocationForest,
		"h2": game.LocationLake,
		"v":  game.LocationManor,
	})

	h1 := g.FindPlayer("h1").Wallet
	if h1.Wood != 1 || h1.Herbs != 2 {
		t.Fatalf("forest yield: got wood=%d herbs=%d", h1.Wood, h1.Herbs)
	}
	h2 := g.FindPlayer("h2").Wallet
	if h2.Fish != 2 || h2.Herbs != 1 {
		t.Fatalf("lake yield: got fish=%d herbs=%d", h2.Fish, h2.Herbs)
	}
	v := g.FindPlayer("v").Wallet
	if v.Garlic != 1 || v.Stone != 1 {
		t.Fatalf("manor yield: got garlic=%d stone=%d", v.Garlic, v.Stone)
	}

	found := false
	for _, m := range g.Messages {
		if m == "Anna harvests 1 wood and 2 herbs from the Forest" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing harvest narrative: %v", g.Messages)
	}
}

func TestHarvest_ContestedLocationYieldsNothing(t *testing.T) {
	e := testEngine()
	g := activeGame()
	enterCombat(t, e, g, map[string]string{
		"h1": game.LocationForest,
		"h2": game.LocationLake,
		"v":  game.LocationForest,
	})

	h1 := g.FindPlayer("h1").Wallet
	if h1.Wood != 0 || h1.Herbs != 0 {
		t.Fatalf("contested forest must not be harvested: %+v", h1)
	}
	h2 := g.FindPlayer("h2").Wallet
	if h2.Fish != 2 || h2.Herbs != 1 {
		t.Fatalf("uncontested lake must still be harvested: %+v", h2)
	}
}

func TestHarvest_AtMostOncePerRaid(t *testing.T) {
	e := testEngine()
	g := activeGame()
	enterCombat(t, e, g, map[string]string{
		"h1": game.LocationForest,
		"h2": game.LocationLake,
		"v":  game.LocationManor,
	})

	if g.HarvestedRaid != g.Raid {
		t.Fatalf("harvest guard not recorded")
	}
	// A second PHASE3 entry within the same raid must not pay out again.
	e.enterCombatPhase(g, base.UnixMilli())
	if w := g.FindPlayer("h1").Wallet; w.Wood != 1 || w.Herbs != 2 {
		t.Fatalf("harvest applied twice: %+v", w)
	}
}

func TestHarvest_VillagePaysPremiumByRole(t *testing.T) {
	e := testEngine()
	g := activeGame()
	enterCombat(t, e, g, map[string]string{
		"h1": game.LocationVillage,
		"v":  game.LocationVillage,
	})

	// Contested village: combat takes priority over the payout.
	if w := g.FindPlayer("h1").Wallet; w.Gold != 0 {
		t.Fatalf("contested village must pay nothing, gold=%d", w.Gold)
	}

	g = activeGame()
	enterCombat(t, e, g, map[string]string{
		"h1": game.LocationVillage,
		"v":  game.LocationManor,
	})
	gold := g.FindPlayer("h1").Wallet.Gold
	if gold < 0 || gold > 90 || gold%10 != 0 {
		t.Fatalf("village gold must be a multiple of ten in [0,90], got %d", gold)
	}
	if g.FindPlayer("h1").Wallet.Blood != 0 {
		t.Fatalf("hunters never collect blood")
	}

	g = activeGame()
	enterCombat(t, e, g, map[string]string{
		"h1": game.LocationForest,
		"v":  game.LocationVillage,
	})
	blood := g.FindPlayer("v").Wallet.Blood
	if blood < 0 || blood > 90 || blood%10 != 0 {
		t.Fatalf("village blood must be a multiple of ten in [0,90], got %d", blood)
	}
	if g.FindPlayer("v").Wallet.Gold != 0 {
		t.Fatalf("the vampire never collects gold")
	}
}
