package game

// RoundFight is a single attacker-vs-defender dice exchange in the combat
// queue. Rolls are set at most once each, by the matching participant only,
// and the fight is resolved exactly once.
type RoundFight struct {
	ID         string `json:"id"`
	Location   string `json:"location"`
	AttackerID string `json:"attacker_id"`
	DefenderID string `json:"defender_id"`

	AttackerRoll *int `json:"attacker_roll,omitempty"`
	DefenderRoll *int `json:"defender_roll,omitempty"`

	ResolvedAtMillis *int64 `json:"resolved_at_millis,omitempty"`

	// Human-readable modifier trace built at resolution time.
	Breakdown []string `json:"breakdown,omitempty"`
}

// NewRoundFight creates an unresolved duel at the given location.
func NewRoundFight(id, location, attackerID, defenderID string) *RoundFight {
	return &RoundFight{ID: id, Location: location, AttackerID: attackerID, DefenderID: defenderID}
}

// BothRolled reports whether attacker and defender have both rolled.
func (r *RoundFight) BothRolled() bool {
	return r.AttackerRoll != nil && r.DefenderRoll != nil
}
