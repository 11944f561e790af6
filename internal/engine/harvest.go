package engine

import (
	"fmt"
	"strings"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// applyHarvest grants resources to every occupant of a location with no
// vampire/hunter co-location. Base locations grant their fixed yield pair;
// the village grants a role-dependent amount drawn as a multiple of ten in
// [0,90]: gold for hunters, blood for the vampire. Every non-zero grant
// produces one narrative line.
func (e *Engine) applyHarvest(g *game.Game, nowMs int64) {
	vamp := g.Vampire()
	groups := groupPlayersByLocation(g)

	for _, loc := range game.AllLocations {
		players := groups[loc]
		if len(players) == 0 {
			continue
		}
		// Contested locations feed the combat queue, never the harvest.
		if vampireAt(players, vamp) && len(huntersAt(players)) > 0 {
			continue
		}
		label := game.LocationLabel(loc)

		if loc == game.LocationVillage {
			for _, p := range players {
				amount := e.rnd.Intn(10) * 10
				if amount == 0 {
					continue
				}
				res := game.ResourceGold
				if p.Role == game.RoleVampire {
					res = game.ResourceBlood
				}
				p.Wallet.Add(res, amount)
				line := fmt.Sprintf("%s collects %d %s from %s", g.NameOf(p.ID), amount, res, label)
				g.AddMessage(line)
				g.AppendHistory(nowMs, line)
			}
			continue
		}

		yields := game.HarvestYields[loc]
		for _, p := range players {
			parts := make([]string, 0, len(yields))
			for _, y := range yields {
				p.Wallet.Add(y.Resource, y.Amount)
				parts = append(parts, fmt.Sprintf("%d %s", y.Amount, y.Resource))
			}
			line := fmt.Sprintf("%s harvests %s from %s", g.NameOf(p.ID), strings.Join(parts, " and "), label)
			g.AddMessage(line)
			g.AppendHistory(nowMs, line)
		}
	}
}
