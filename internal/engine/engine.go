// Package engine implements the raid state machine and combat resolution.
// All progress is driven by external invocations observing that a deadline
// has passed; there is no background timer. Callers must serialize access to
// a given game (see the service layer's per-game lock).
package engine

import (
	"math/rand"
	"time"
)

// Timings groups every deadline the state machine schedules. Production uses
// DefaultTimings; tests inject shorter windows.
type Timings struct {
	// PhaseDelay is the settle window scheduled once a selection phase is
	// complete, so latecomers see the board before the next phase.
	PhaseDelay time.Duration
	// ForcePick is the per-phase threshold after which unresponsive
	// participants get a random card auto-played.
	ForcePick time.Duration
	// RevealWindow is the PREPHASE3 duration when a combat is upcoming;
	// RevealWindowNoCombat applies otherwise.
	RevealWindow         time.Duration
	RevealWindowNoCombat time.Duration
	// NoCombatDelay is the pause before PHASE4 when the duel queue is empty.
	NoCombatDelay time.Duration
	// FightAdvanceDelay is the pause after a duel resolves before the queue
	// cursor moves on.
	FightAdvanceDelay time.Duration
	// WeatherNotBefore delays the vampire's weather roll after PHASE0 entry.
	// WeatherModal and WeatherDisplay make up the display window before
	// PHASE1; the feed message is injected once the modal period elapses.
	WeatherNotBefore time.Duration
	WeatherModal     time.Duration
	WeatherDisplay   time.Duration
}

// DefaultTimings returns the production deadlines.
func DefaultTimings() Timings {
	return Timings{
		PhaseDelay:           5 * time.Second,
		ForcePick:            30 * time.Second,
		RevealWindow:         20 * time.Second,
		RevealWindowNoCombat: 4 * time.Second,
		NoCombatDelay:        1500 * time.Millisecond,
		FightAdvanceDelay:    5 * time.Second,
		WeatherNotBefore:     2 * time.Second,
		WeatherModal:         6 * time.Second,
		WeatherDisplay:       4 * time.Second,
	}
}

// Engine advances games through the raid cycle. The random source covers
// dice, weather, forced picks and theft targets; seed it from crypto/rand in
// production and with a fixed seed in tests.
type Engine struct {
	rnd *rand.Rand
	t   Timings
}

// New creates an engine with the given random source and timings.
func New(rnd *rand.Rand, t Timings) *Engine {
	return &Engine{rnd: rnd, t: t}
}
