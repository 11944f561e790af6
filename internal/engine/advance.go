package engine

import (
	"time"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// Advance gives the state machine a chance to progress at the given instant.
// At most one mutation step is applied per call, in priority order: a due
// scheduled transition, then the weather-reveal injection, then combat
// cadence, then forced picks. It reports whether the game changed; callers
// re-invoke (on the next poll) to progress further.
func (e *Engine) Advance(g *game.Game, now time.Time) bool {
	if g.Status != game.StatusActive {
		return false
	}
	nowMs := now.UnixMilli()

	// 1) Apply a scheduled transition once its deadline has passed.
	if g.PendingNextPhase != nil && g.NextAutoAdvanceAtMillis != 0 && nowMs >= g.NextAutoAdvanceAtMillis {
		e.applyPendingPhase(g, nowMs)
		return true
	}

	// 2) Inject the weather reveal into the feed once the modal period ends.
	if g.Phase == game.PhaseWeather && g.WeatherRoll != 0 && !g.WeatherRevealed && nowMs >= g.WeatherModalUntilMillis {
		e.revealWeather(g)
		return true
	}

	// 3) Combat cadence: resolve the current duel, or move the cursor after
	// the post-resolution delay.
	if g.Phase == game.PhaseCombat {
		if r := g.CurrentFight(); r != nil && r.BothRolled() {
			if g.CurrentCombatNextAdvanceAtMillis == 0 {
				e.resolveCurrentFight(g, r, nowMs)
				return true
			}
			if nowMs >= g.CurrentCombatNextAdvanceAtMillis {
				e.advanceCombatCursor(g, nowMs)
				return true
			}
		}
		return false
	}

	// 4) Anti-stall: substitute random picks for unresponsive participants.
	return e.forcePicksIfTimedOut(g, nowMs)
}

func (e *Engine) planNextPhase(g *game.Game, next game.Phase, nowMs int64) {
	e.planNextPhaseWithDelay(g, next, nowMs, e.t.PhaseDelay)
}

func (e *Engine) planNextPhaseWithDelay(g *game.Game, next game.Phase, nowMs int64, delay time.Duration) {
	g.PendingNextPhase = &next
	g.NextAutoAdvanceAtMillis = nowMs + delay.Milliseconds()
}

// applyPendingPhase performs the pending transition and runs the entered
// phase's entry effects.
func (e *Engine) applyPendingPhase(g *game.Game, nowMs int64) {
	to := *g.PendingNextPhase
	g.Phase = to
	g.PendingNextPhase = nil
	g.NextAutoAdvanceAtMillis = 0
	g.PhaseStartMillis = nowMs

	switch to {
	case game.PhaseWeather:
		e.enterWeatherPhase(g, nowMs)
	case game.PhaseHunterPick:
		// If the poll cadence skipped the modal expiry, surface the weather
		// reveal now so it is never lost.
		if g.WeatherRoll != 0 && !g.WeatherRevealed {
			e.revealWeather(g)
		}
		g.AddMessage("Hunters, choose your destination.")
	case game.PhaseVampirePick:
		g.AddMessage("The vampire stalks the night. One destination remains to be chosen.")
	case game.PhaseReveal:
		e.enterRevealPhase(g, nowMs)
	case game.PhaseCombat:
		e.enterCombatPhase(g, nowMs)
	case game.PhaseMaintenance:
		e.enterMaintenancePhase(g, nowMs)
	}
}

func (e *Engine) enterWeatherPhase(g *game.Game, nowMs int64) {
	g.WeatherRoll = 0
	g.WeatherStatus = ""
	g.WeatherName = ""
	g.WeatherDescription = ""
	g.WeatherRevealed = false
	g.WeatherModalUntilMillis = 0
	g.RemoveWeatherMods()
	g.HarvestedRaid = 0
	g.WeatherNotBeforeMillis = nowMs + e.t.WeatherNotBefore.Milliseconds()
	g.Messages = []string{"A new raid begins. The vampire consults the skies."}
}

func (e *Engine) enterRevealPhase(g *game.Game, nowMs int64) {
	for _, cb := range g.Center {
		cb.FaceUp = true
	}
	msgs := e.buildRevealMessages(g)
	g.Messages = msgs
	for _, m := range msgs {
		g.AppendHistory(nowMs, m)
	}
	g.ReadyForPhase3 = []string{}

	window := e.t.RevealWindowNoCombat
	if hasUpcomingCombat(g) {
		window = e.t.RevealWindow
	}
	e.planNextPhaseWithDelay(g, game.PhaseCombat, nowMs, window)
}

func (e *Engine) enterCombatPhase(g *game.Game, nowMs int64) {
	// Harvest runs exactly once per raid, before the queue is built, so no
	// location is both harvested and fought over.
	if g.HarvestedRaid != g.Raid {
		e.applyHarvest(g, nowMs)
		g.HarvestedRaid = g.Raid
	}
	e.buildCombatsQueue(g)
	if len(g.CombatsQueue) == 0 {
		g.AddMessage("No combat this raid.")
		g.AppendHistory(nowMs, "No combat this raid.")
		e.planNextPhaseWithDelay(g, game.PhaseMaintenance, nowMs, e.t.NoCombatDelay)
	}
}

func (e *Engine) enterMaintenancePhase(g *game.Game, nowMs int64) {
	// Return every played card to its owner's hand.
	for _, cb := range g.Center {
		if p := g.FindPlayer(cb.PlayerID); p != nil {
			p.Hand = append(p.Hand, cb.Card)
		}
	}
	g.Center = []*game.CenterCard{}
	g.RaidEffects = map[string]*game.RaidEffects{}
	g.Messages = []string{"Maintenance. Cards return to their owners."}
	g.AppendHistory(nowMs, "Maintenance. Cards return to their owners.")
	g.Raid++
	e.planNextPhase(g, game.PhaseWeather, nowMs)
}

// forcePicksIfTimedOut auto-plays a random card from the hand of every
// participant who stalled past the force threshold. It reports whether any
// pick was made.
func (e *Engine) forcePicksIfTimedOut(g *game.Game, nowMs int64) bool {
	elapsed := nowMs - g.PhaseStartMillis
	if elapsed < e.t.ForcePick.Milliseconds() {
		return false
	}

	forced := false
	switch g.Phase {
	case game.PhaseHunterPick:
		for _, h := range g.Hunters() {
			if g.HasPlayed(h.ID) || len(h.Hand) == 0 {
				continue
			}
			card := h.Hand[e.rnd.Intn(len(h.Hand))]
			h.RemoveFromHand(card)
			g.Center = append(g.Center, &game.CenterCard{PlayerID: h.ID, Card: card})
			forced = true
		}
		if allHuntersSelected(g) && g.PendingNextPhase == nil {
			e.planNextPhase(g, game.PhaseVampirePick, nowMs)
		}
	case game.PhaseVampirePick:
		v := g.Vampire()
		if v != nil && !g.HasPlayed(v.ID) && len(v.Hand) > 0 {
			card := v.Hand[e.rnd.Intn(len(v.Hand))]
			v.RemoveFromHand(card)
			g.Center = append(g.Center, &game.CenterCard{PlayerID: v.ID, Card: card})
			forced = true
		}
		if vampireSelected(g) && g.PendingNextPhase == nil {
			e.planNextPhase(g, game.PhaseReveal, nowMs)
		}
	}
	return forced
}

func allHuntersSelected(g *game.Game) bool {
	hunters := g.Hunters()
	if len(hunters) == 0 {
		return false
	}
	for _, h := range hunters {
		if !g.HasPlayed(h.ID) {
			return false
		}
	}
	return true
}

func vampireSelected(g *game.Game) bool {
	v := g.Vampire()
	return v != nil && g.HasPlayed(v.ID)
}
