package game

// Status is the lifecycle state of a match.
type Status string

const (
	StatusCreated Status = "CREATED"
	StatusActive  Status = "ACTIVE"
	StatusEnded   Status = "ENDED"
)

// Phase is a named stage within a raid. The cycle is
// PHASE0 -> PHASE1 -> PHASE2 -> PREPHASE3 -> PHASE3 -> PHASE4 -> PHASE0.
type Phase string

const (
	PhaseWeather     Phase = "PHASE0"    // vampire rolls the weather
	PhaseHunterPick  Phase = "PHASE1"    // hunters select locations
	PhaseVampirePick Phase = "PHASE2"    // vampire selects a location
	PhaseReveal      Phase = "PREPHASE3" // cards revealed, skip window
	PhaseCombat      Phase = "PHASE3"    // duel queue resolution
	PhaseMaintenance Phase = "PHASE4"    // cards returned, raid increment
)

// CenterCard is one location card placed on the center board. Cards are
// placed face-down during selection and flipped at reveal.
type CenterCard struct {
	PlayerID string `json:"player_id"`
	Card     string `json:"card"`
	FaceUp   bool   `json:"face_up"`
}

// HistoryEntry is one line of the append-only match log.
type HistoryEntry struct {
	Raid     int    `json:"raid"`
	Phase    Phase  `json:"phase"`
	AtMillis int64  `json:"at_millis"`
	Text     string `json:"text"`
}

// Game is the root aggregate for a match. It is persisted as a whole JSON
// snapshot; no nested entity is shared across games.
type Game struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
	Raid   int    `json:"raid"`
	Phase  Phase  `json:"phase"`

	// Single scheduling slot: at most one phase transition may be pending.
	PhaseStartMillis        int64  `json:"phase_start_millis"`
	PendingNextPhase        *Phase `json:"pending_next_phase,omitempty"`
	NextAutoAdvanceAtMillis int64  `json:"next_auto_advance_at_millis"`

	Players []*Player     `json:"players"`
	Center  []*CenterCard `json:"center"`

	// Duel queue and cursor. CurrentCombat mirrors
	// CombatsQueue[CurrentCombatIndex]; the queue is the source of truth.
	CombatsQueue                     []*RoundFight `json:"combats_queue"`
	CurrentCombatIndex               *int          `json:"current_combat_index,omitempty"`
	CurrentCombat                    *RoundFight   `json:"current_combat,omitempty"`
	CurrentCombatNextAdvanceAtMillis int64         `json:"current_combat_next_advance_at_millis"`

	// Weather for the current raid (set once per raid by the vampire).
	WeatherRoll             int    `json:"weather_roll"`
	WeatherStatus           string `json:"weather_status"`
	WeatherName             string `json:"weather_name"`
	WeatherDescription      string `json:"weather_description"`
	WeatherNotBeforeMillis  int64  `json:"weather_not_before_millis"`
	WeatherModalUntilMillis int64  `json:"weather_modal_until_millis"`
	WeatherRevealed         bool   `json:"weather_revealed"`

	// Per-player stat modifier ledger (weather entries carry the reserved
	// "weather:" source prefix and are replaced as a block).
	RaidMods map[string][]StatMod `json:"raid_mods"`

	// Per-raid consumable state. Declared extension points: the duel
	// arithmetic does not consult them yet.
	PotionsByPlayer map[string][]string     `json:"potions_by_player"`
	RaidEffects     map[string]*RaidEffects `json:"raid_effects"`

	// Shared deck counters.
	VampActionsLeft      int `json:"vamp_actions_left"`
	VampActionsDiscard   int `json:"vamp_actions_discard"`
	HunterActionsLeft    int `json:"hunter_actions_left"`
	HunterActionsDiscard int `json:"hunter_actions_discard"`
	PotionsLeft          int `json:"potions_left"`
	PotionsDiscard       int `json:"potions_discard"`

	ReadyForPhase3 []string `json:"ready_for_phase3"`

	Messages []string       `json:"messages"`
	History  []HistoryEntry `json:"history"`

	// Raid number for which harvest has already been applied. Guarantees
	// at-most-once harvesting per raid.
	HarvestedRaid int `json:"harvested_raid"`
}

// New returns a freshly created (not yet started) game.
func New(id string) *Game {
	return &Game{
		ID:              id,
		Status:          StatusCreated,
		Players:         []*Player{},
		Center:          []*CenterCard{},
		CombatsQueue:    []*RoundFight{},
		RaidMods:        map[string][]StatMod{},
		PotionsByPlayer: map[string][]string{},
		RaidEffects:     map[string]*RaidEffects{},
		ReadyForPhase3:  []string{},
		Messages:        []string{},
		History:         []HistoryEntry{},
	}
}

// FindPlayer returns the player with the given id, or nil.
func (g *Game) FindPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Vampire returns the vampire player, or nil before roles are assigned.
func (g *Game) Vampire() *Player {
	for _, p := range g.Players {
		if p.Role == RoleVampire {
			return p
		}
	}
	return nil
}

// Hunters returns the hunter players in seating order.
func (g *Game) Hunters() []*Player {
	var out []*Player
	for _, p := range g.Players {
		if p.Role == RoleHunter {
			out = append(out, p)
		}
	}
	return out
}

// NameOf returns the display name for a player id, falling back to the id.
func (g *Game) NameOf(id string) string {
	if p := g.FindPlayer(id); p != nil && p.Username != "" {
		return p.Username
	}
	return id
}

// HasPlayed reports whether the player already placed a card this round.
func (g *Game) HasPlayed(playerID string) bool {
	for _, cb := range g.Center {
		if cb.PlayerID == playerID {
			return true
		}
	}
	return false
}

// CurrentFight returns the duel the cursor points at, from the queue (the
// source of truth), or nil when no combat is in progress.
func (g *Game) CurrentFight() *RoundFight {
	if g.CurrentCombatIndex == nil {
		return nil
	}
	idx := *g.CurrentCombatIndex
	if idx < 0 || idx >= len(g.CombatsQueue) {
		return nil
	}
	return g.CombatsQueue[idx]
}

// SyncCurrentCombat refreshes the denormalized CurrentCombat mirror.
func (g *Game) SyncCurrentCombat() {
	g.CurrentCombat = g.CurrentFight()
}

// AppendHistory adds one immutable line to the match log.
func (g *Game) AppendHistory(atMillis int64, text string) {
	g.History = append(g.History, HistoryEntry{
		Raid:     g.Raid,
		Phase:    g.Phase,
		AtMillis: atMillis,
		Text:     text,
	})
}

// AddMessage appends a line to the player-facing feed.
func (g *Game) AddMessage(text string) {
	g.Messages = append(g.Messages, text)
}

// MarkReady records a skip vote for PREPHASE3. Duplicate votes are ignored.
func (g *Game) MarkReady(playerID string) {
	for _, id := range g.ReadyForPhase3 {
		if id == playerID {
			return
		}
	}
	g.ReadyForPhase3 = append(g.ReadyForPhase3, playerID)
}

// AllReady reports whether every player in the game has voted to skip.
func (g *Game) AllReady() bool {
	if len(g.Players) == 0 {
		return false
	}
	ready := make(map[string]bool, len(g.ReadyForPhase3))
	for _, id := range g.ReadyForPhase3 {
		ready[id] = true
	}
	for _, p := range g.Players {
		if !ready[p.ID] {
			return false
		}
	}
	return true
}
