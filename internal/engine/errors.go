package engine

import "errors"

var (
	ErrGameAlreadyStarted = errors.New("game already started or ended")
	ErrNeedTwoPlayers     = errors.New("need at least 2 players")

	ErrGameNotActive     = errors.New("game not active")
	ErrNotAPlayer        = errors.New("not a player of this game")
	ErrWeatherInProgress = errors.New("weather selection in progress")
	ErrHuntersPhase      = errors.New("hunters phase")
	ErrVampirePhase      = errors.New("vampire phase")
	ErrNotSelectionPhase = errors.New("not a selection phase")
	ErrAlreadySelected   = errors.New("already selected this round")
	ErrCardNotInHand     = errors.New("card not in hand")
	ErrNotRevealPhase    = errors.New("not in the reveal window")
	ErrNotInCombat       = errors.New("not in combat")
	ErrNoRollExpected    = errors.New("no roll expected from you now")
	ErrNotWeatherPhase   = errors.New("not in the weather phase")
	ErrNotVampire        = errors.New("only the vampire rolls the weather")
	ErrWeatherTooEarly   = errors.New("weather roll not open yet")
	ErrWeatherAlreadySet = errors.New("weather already rolled this raid")
)
