package game

import "strings"

// Stat names a StatMod can apply to.
const (
	StatAttack  = "ATTACK"
	StatDefense = "DEFENSE"
)

// WeatherSourcePrefix tags modifier ledger entries that originate from the
// weather roll. Entries with this prefix are replaced as a block whenever
// weather is (re)derived, never accumulated.
const WeatherSourcePrefix = "weather:"

// StatMod is one signed adjustment in a player's modifier ledger.
type StatMod struct {
	Stat        string `json:"stat"`
	Amount      int    `json:"amount"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

// AddMod appends a modifier to the player's ledger, preserving order.
func (g *Game) AddMod(playerID string, m StatMod) {
	if g.RaidMods == nil {
		g.RaidMods = map[string][]StatMod{}
	}
	g.RaidMods[playerID] = append(g.RaidMods[playerID], m)
}

// ModsFor returns the ledger entries applying to (player, stat), in order.
func (g *Game) ModsFor(playerID, stat string) []StatMod {
	var out []StatMod
	for _, m := range g.RaidMods[playerID] {
		if m.Stat == stat {
			out = append(out, m)
		}
	}
	return out
}

// ModifierTotal is the signed sum of all ledger entries for (player, stat).
// Besides the raw die this is the only influence on roll totals.
func (g *Game) ModifierTotal(playerID, stat string) int {
	total := 0
	for _, m := range g.ModsFor(playerID, stat) {
		total += m.Amount
	}
	return total
}

// RemoveWeatherMods drops every weather-tagged entry from all ledgers.
func (g *Game) RemoveWeatherMods() {
	for id, mods := range g.RaidMods {
		kept := mods[:0]
		for _, m := range mods {
			if !strings.HasPrefix(m.Source, WeatherSourcePrefix) {
				kept = append(kept, m)
			}
		}
		if len(kept) == 0 {
			delete(g.RaidMods, id)
		} else {
			g.RaidMods[id] = kept
		}
	}
}
