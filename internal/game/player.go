package game

// Role is a player's hidden role for the match. Exactly one player holds
// RoleVampire once the raid starts.
type Role string

const (
	RoleVampire Role = "VAMPIRE"
	RoleHunter  Role = "HUNTER"
)

// Resource is one of the seven wallet counters.
type Resource string

const (
	ResourceWood   Resource = "wood"
	ResourceStone  Resource = "stone"
	ResourceFish   Resource = "fish"
	ResourceHerbs  Resource = "herbs"
	ResourceGarlic Resource = "garlic"
	// Premium currencies: granted by the village, never stolen.
	ResourceGold  Resource = "gold"
	ResourceBlood Resource = "blood"
)

// StealableResources is the theft pool: every wallet counter except the two
// premium currencies.
var StealableResources = []Resource{
	ResourceWood, ResourceStone, ResourceFish, ResourceHerbs, ResourceGarlic,
}

// Wallet tracks a player's seven resource counters.
type Wallet struct {
	Wood   int `json:"wood"`
	Stone  int `json:"stone"`
	Fish   int `json:"fish"`
	Herbs  int `json:"herbs"`
	Garlic int `json:"garlic"`
	Gold   int `json:"gold"`
	Blood  int `json:"blood"`
}

// Amount returns the counter for the given resource.
func (w *Wallet) Amount(r Resource) int {
	switch r {
	case ResourceWood:
		return w.Wood
	case ResourceStone:
		return w.Stone
	case ResourceFish:
		return w.Fish
	case ResourceHerbs:
		return w.Herbs
	case ResourceGarlic:
		return w.Garlic
	case ResourceGold:
		return w.Gold
	case ResourceBlood:
		return w.Blood
	}
	return 0
}

// Add adjusts the counter for the given resource by n (n may be negative).
func (w *Wallet) Add(r Resource, n int) {
	switch r {
	case ResourceWood:
		w.Wood += n
	case ResourceStone:
		w.Stone += n
	case ResourceFish:
		w.Fish += n
	case ResourceHerbs:
		w.Herbs += n
	case ResourceGarlic:
		w.Garlic += n
	case ResourceGold:
		w.Gold += n
	case ResourceBlood:
		w.Blood += n
	}
}

// Player is an in-game identity (distinct from the account identity that
// joined the lobby). Owned by exactly one Game for the match lifetime.
type Player struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Role     Role     `json:"role,omitempty"`
	Hand     []string `json:"hand"`
	HP       int      `json:"hp"`

	// Dice types like "D6"; unknown values fall back to six sides.
	AttackDice  string `json:"attack_dice"`
	DefenseDice string `json:"defense_dice"`

	Wallet Wallet `json:"wallet"`
}

// NewPlayer creates a lobby participant with no role or hand yet.
func NewPlayer(id, username string) *Player {
	return &Player{ID: id, Username: username, Hand: []string{}}
}

// RemoveFromHand removes one copy of card from the hand. It reports whether
// the card was held.
func (p *Player) RemoveFromHand(card string) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// DiceSides maps a dice type to its number of sides. Defaults to 6.
func DiceSides(d string) int {
	switch d {
	case "D4":
		return 4
	case "D6":
		return 6
	case "D8":
		return 8
	case "D10":
		return 10
	case "D12":
		return 12
	case "D20":
		return 20
	default:
		return 6
	}
}
