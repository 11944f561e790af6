package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DamienCastello/red-dawn-raid/internal/game"
)

// buildCombatsQueue fills the duel queue for the raid. For each hunter
// co-located with the vampire it pushes two duels: hunter-attacks-vampire
// then vampire-attacks-that-hunter (the hunter always acts first).
func (e *Engine) buildCombatsQueue(g *game.Game) {
	g.CombatsQueue = g.CombatsQueue[:0]

	vamp := g.Vampire()
	if vamp == nil {
		g.CurrentCombatIndex = nil
		g.CurrentCombat = nil
		g.CurrentCombatNextAdvanceAtMillis = 0
		return
	}

	groups := groupPlayersByLocation(g)
	for _, loc := range game.AllLocations {
		players := groups[loc]
		if !vampireAt(players, vamp) {
			continue
		}
		for _, h := range huntersAt(players) {
			g.CombatsQueue = append(g.CombatsQueue,
				game.NewRoundFight(uuid.NewString(), loc, h.ID, vamp.ID),
				game.NewRoundFight(uuid.NewString(), loc, vamp.ID, h.ID),
			)
		}
	}

	if len(g.CombatsQueue) > 0 {
		idx := 0
		g.CurrentCombatIndex = &idx
	} else {
		g.CurrentCombatIndex = nil
	}
	g.CurrentCombatNextAdvanceAtMillis = 0
	g.SyncCurrentCombat()
}

// RollDice draws the caller's die for the current duel. The caller must be
// the attacker or the defender of the current duel, and must not have rolled
// yet; the die size comes from the caller's stored dice type.
func (e *Engine) RollDice(g *game.Game, playerID string, now time.Time) error {
	e.Advance(g, now)

	if g.Status != game.StatusActive || g.Phase != game.PhaseCombat {
		return ErrNotInCombat
	}
	r := g.CurrentFight()
	if r == nil {
		return ErrNotInCombat
	}

	switch {
	case playerID == r.AttackerID && r.AttackerRoll == nil:
		p := g.FindPlayer(playerID)
		if p == nil {
			return ErrNotAPlayer
		}
		v := 1 + e.rnd.Intn(game.DiceSides(p.AttackDice))
		r.AttackerRoll = &v
	case playerID == r.DefenderID && r.DefenderRoll == nil:
		p := g.FindPlayer(playerID)
		if p == nil {
			return ErrNotAPlayer
		}
		v := 1 + e.rnd.Intn(game.DiceSides(p.DefenseDice))
		r.DefenderRoll = &v
	default:
		return ErrNoRollExpected
	}
	g.SyncCurrentCombat()
	return nil
}

// resolveCurrentFight applies both rolls plus modifier totals, deals damage,
// attempts the vampire's resource theft, and schedules the next-duel advance.
func (e *Engine) resolveCurrentFight(g *game.Game, r *game.RoundFight, nowMs int64) {
	attacker := g.FindPlayer(r.AttackerID)
	defender := g.FindPlayer(r.DefenderID)
	if attacker == nil || defender == nil {
		// Queue entries reference players owned by this game; a miss means
		// the aggregate is corrupt and guessing would hide it.
		panic(fmt.Sprintf("engine: duel %s references missing player", r.ID))
	}
	an := g.NameOf(attacker.ID)
	dn := g.NameOf(defender.ID)

	var lines []string
	trace := func(name, stat string, roll int, mods []game.StatMod) int {
		lines = append(lines, fmt.Sprintf("%s rolls %d for %s", name, roll, map[string]string{
			game.StatAttack:  "attack",
			game.StatDefense: "defense",
		}[stat]))
		total := roll
		for _, m := range mods {
			total += m.Amount
			lines = append(lines, fmt.Sprintf("  %s %+d -> %d", m.Description, m.Amount, total))
		}
		return total
	}
	atkTotal := trace(an, game.StatAttack, *r.AttackerRoll, g.ModsFor(attacker.ID, game.StatAttack))
	defTotal := trace(dn, game.StatDefense, *r.DefenderRoll, g.ModsFor(defender.ID, game.StatDefense))

	dmg := atkTotal - defTotal
	if dmg < 0 {
		dmg = 0
	}
	if dmg > 0 {
		defender.HP -= dmg
		if defender.HP < 0 {
			defender.HP = 0
		}
	}

	var outcome string
	if dmg > 0 {
		outcome = fmt.Sprintf("%s inflicts %d damage to %s", an, dmg, dn)
	} else {
		outcome = fmt.Sprintf("%s parries %s's attack", dn, an)
	}
	lines = append(lines, outcome)

	if attacker.Role == game.RoleVampire && defender.Role == game.RoleHunter && dmg > 0 {
		lines = append(lines, e.stealResource(g, attacker, defender))
	}

	r.Breakdown = append(r.Breakdown, lines...)
	for _, l := range lines {
		g.AppendHistory(nowMs, l)
	}
	g.AddMessage(outcome)

	resolved := nowMs
	r.ResolvedAtMillis = &resolved
	g.CurrentCombatNextAdvanceAtMillis = nowMs + e.t.FightAdvanceDelay.Milliseconds()
	g.SyncCurrentCombat()
}

// stealResource moves one unit of a uniformly-chosen non-premium resource
// from the hunter to the vampire, or records a no-op line when the hunter
// holds nothing stealable.
func (e *Engine) stealResource(g *game.Game, vamp, hunter *game.Player) string {
	var pool []game.Resource
	for _, res := range game.StealableResources {
		if hunter.Wallet.Amount(res) > 0 {
			pool = append(pool, res)
		}
	}
	if len(pool) == 0 {
		return fmt.Sprintf("%s finds nothing worth stealing from %s", g.NameOf(vamp.ID), g.NameOf(hunter.ID))
	}
	res := pool[e.rnd.Intn(len(pool))]
	hunter.Wallet.Add(res, -1)
	vamp.Wallet.Add(res, 1)
	return fmt.Sprintf("%s steals 1 %s from %s", g.NameOf(vamp.ID), res, g.NameOf(hunter.ID))
}

// advanceCombatCursor moves to the next queued duel, or ends combat and
// schedules maintenance when the queue is exhausted.
func (e *Engine) advanceCombatCursor(g *game.Game, nowMs int64) {
	next := *g.CurrentCombatIndex + 1
	if next < len(g.CombatsQueue) {
		g.CurrentCombatIndex = &next
		g.CurrentCombatNextAdvanceAtMillis = 0
		g.SyncCurrentCombat()
		return
	}
	g.CurrentCombatIndex = nil
	g.CurrentCombat = nil
	g.CurrentCombatNextAdvanceAtMillis = 0
	e.planNextPhase(g, game.PhaseMaintenance, nowMs)
}
