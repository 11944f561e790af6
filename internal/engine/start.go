package engine

import (
	"time"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// Starting deck counters, shared across the table.
const (
	startVampActions   = 20
	startHunterActions = 35
	startPotions       = 22
)

const baseHP = 20

// Start activates a created game: one random vampire, starting hands, hit
// points scaled to the hunter count, base dice and deck counters. The game
// enters PHASE0 of raid 1.
func (e *Engine) Start(g *game.Game, now time.Time) error {
	if g.Status != game.StatusCreated {
		return ErrGameAlreadyStarted
	}
	if len(g.Players) < 2 {
		return ErrNeedTwoPlayers
	}
	nowMs := now.UnixMilli()

	g.Status = game.StatusActive
	g.Raid = 1

	vampIdx := e.rnd.Intn(len(g.Players))
	for i, p := range g.Players {
		if i == vampIdx {
			p.Role = game.RoleVampire
		} else {
			p.Role = game.RoleHunter
		}
		p.Hand = game.StartingHand()
		p.AttackDice = "D6"
		p.DefenseDice = "D6"
	}
	hunters := len(g.Hunters())
	for _, p := range g.Players {
		if p.Role == game.RoleVampire {
			// The lone vampire scales with the number of opponents.
			p.HP = baseHP + hunters*10
		} else {
			p.HP = baseHP
		}
	}

	g.VampActionsLeft = startVampActions
	g.VampActionsDiscard = 0
	g.HunterActionsLeft = startHunterActions
	g.HunterActionsDiscard = 0
	g.PotionsLeft = startPotions
	g.PotionsDiscard = 0

	g.Center = []*game.CenterCard{}
	g.CombatsQueue = []*game.RoundFight{}
	g.CurrentCombatIndex = nil
	g.CurrentCombat = nil
	g.CurrentCombatNextAdvanceAtMillis = 0
	g.PendingNextPhase = nil
	g.NextAutoAdvanceAtMillis = 0
	g.RaidMods = map[string][]game.StatMod{}

	g.Phase = game.PhaseWeather
	g.PhaseStartMillis = nowMs
	g.AppendHistory(nowMs, "The raid begins.")
	e.enterWeatherPhase(g, nowMs)
	return nil
}
