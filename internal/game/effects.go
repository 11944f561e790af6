package game

// RaidEffects holds per-raid temporary effects granted by potions. The duel
// arithmetic does not consult these yet; they are cleared at maintenance.
type RaidEffects struct {
	// Advantage: roll two dice, keep the best.
	AttackAdvantage  bool `json:"attack_advantage"`
	DefenseAdvantage bool `json:"defense_advantage"`

	Invulnerable  bool `json:"invulnerable"`
	DoubleAttack  bool `json:"double_attack"`
	DoubleDefense bool `json:"double_defense"`

	IgnoreCorruption       bool `json:"ignore_corruption"`
	IgnoreWeatherPenalties bool `json:"ignore_weather_penalties"`
}
