package engine

import (
	"fmt"
	"strings"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// groupPlayersByLocation groups the players whose card is on the center
// board by chosen location, preserving center order within each group.
func groupPlayersByLocation(g *game.Game) map[string][]*game.Player {
	groups := map[string][]*game.Player{}
	for _, cb := range g.Center {
		p := g.FindPlayer(cb.PlayerID)
		if p == nil {
			continue
		}
		groups[cb.Card] = append(groups[cb.Card], p)
	}
	return groups
}

func huntersAt(players []*game.Player) []*game.Player {
	var out []*game.Player
	for _, p := range players {
		if p.Role == game.RoleHunter {
			out = append(out, p)
		}
	}
	return out
}

func vampireAt(players []*game.Player, vamp *game.Player) bool {
	if vamp == nil {
		return false
	}
	for _, p := range players {
		if p.ID == vamp.ID {
			return true
		}
	}
	return false
}

// hasUpcomingCombat reports whether any location co-locates the vampire with
// at least one hunter. Always recomputed live from the center; there is no
// cached flag to diverge from the queue builder.
func hasUpcomingCombat(g *game.Game) bool {
	vamp := g.Vampire()
	if vamp == nil {
		return false
	}
	groups := groupPlayersByLocation(g)
	for _, players := range groups {
		if vampireAt(players, vamp) && len(huntersAt(players)) > 0 {
			return true
		}
	}
	return false
}

// buildRevealMessages renders the reveal feed: one combat line per contested
// location, one harvest line per independent harvester.
func (e *Engine) buildRevealMessages(g *game.Game) []string {
	var out []string
	vamp := g.Vampire()
	groups := groupPlayersByLocation(g)

	for _, loc := range game.AllLocations {
		players := groups[loc]
		if len(players) == 0 {
			continue
		}
		label := game.LocationLabel(loc)
		hunters := huntersAt(players)
		vampHere := vampireAt(players, vamp)

		if vampHere && len(hunters) > 0 {
			names := make([]string, len(hunters))
			for i, h := range hunters {
				names[i] = g.NameOf(h.ID)
			}
			out = append(out, fmt.Sprintf("Combat — %s VS %s at %s", g.NameOf(vamp.ID), strings.Join(names, ", "), label))
			continue
		}
		if vampHere {
			out = append(out, fmt.Sprintf("Harvest — %s at %s", g.NameOf(vamp.ID), label))
		}
		for _, h := range hunters {
			out = append(out, fmt.Sprintf("Harvest — %s at %s", g.NameOf(h.ID), label))
		}
	}

	if len(out) == 0 {
		out = append(out, "No cards were played.")
	}
	return out
}
