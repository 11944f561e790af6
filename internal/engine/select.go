package engine

import (
	"time"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// SelectLocation places one location card from the acting player's hand on
// the center board, face-down. When the selection completes the phase, the
// next phase is scheduled after the settle window.
func (e *Engine) SelectLocation(g *game.Game, playerID, card string, now time.Time) error {
	// A scheduled flip may be due right now.
	e.Advance(g, now)

	if g.Status != game.StatusActive {
		return ErrGameNotActive
	}
	p := g.FindPlayer(playerID)
	if p == nil {
		return ErrNotAPlayer
	}

	switch g.Phase {
	case game.PhaseWeather:
		return ErrWeatherInProgress
	case game.PhaseHunterPick:
		if p.Role != game.RoleHunter {
			return ErrHuntersPhase
		}
	case game.PhaseVampirePick:
		if p.Role != game.RoleVampire {
			return ErrVampirePhase
		}
	default:
		return ErrNotSelectionPhase
	}

	if g.HasPlayed(playerID) {
		return ErrAlreadySelected
	}
	if !p.RemoveFromHand(card) {
		return ErrCardNotInHand
	}
	g.Center = append(g.Center, &game.CenterCard{PlayerID: playerID, Card: card})

	// Settle window: once everyone required has played, schedule the next
	// phase. The window lets latecomers see the board, not accept input.
	nowMs := now.UnixMilli()
	if g.Phase == game.PhaseHunterPick && allHuntersSelected(g) && g.PendingNextPhase == nil {
		e.planNextPhase(g, game.PhaseVampirePick, nowMs)
	} else if g.Phase == game.PhaseVampirePick && vampireSelected(g) && g.PendingNextPhase == nil {
		e.planNextPhase(g, game.PhaseReveal, nowMs)
	}
	return nil
}

// Skip records a ready vote during the reveal window. Once every player has
// voted, the transition to PHASE3 is forced and applied synchronously.
func (e *Engine) Skip(g *game.Game, playerID string, now time.Time) error {
	e.Advance(g, now)

	if g.Status != game.StatusActive {
		return ErrGameNotActive
	}
	if g.Phase != game.PhaseReveal {
		return ErrNotRevealPhase
	}
	if g.FindPlayer(playerID) == nil {
		return ErrNotAPlayer
	}

	g.MarkReady(playerID)
	if g.AllReady() {
		// Override the scheduled deadline and flip immediately.
		next := game.PhaseCombat
		g.PendingNextPhase = &next
		g.NextAutoAdvanceAtMillis = now.UnixMilli()
		e.Advance(g, now)
	}
	return nil
}
