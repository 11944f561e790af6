package game

// Location card identifiers. Every player's hand holds one of each at the
// start of a raid; played cards return at maintenance.
const (
	LocationForest  = "forest"
	LocationQuarry  = "quarry"
	LocationLake    = "lake"
	LocationManor   = "manor"
	LocationVillage = "village"
)

// AllLocations lists the location cards in display order. Iteration over
// center groupings follows this order so narrative output is stable.
var AllLocations = []string{
	LocationForest, LocationQuarry, LocationLake, LocationManor, LocationVillage,
}

// LocationLabel returns the display label for a location card.
func LocationLabel(card string) string {
	switch card {
	case LocationForest:
		return "the Forest"
	case LocationQuarry:
		return "the Quarry"
	case LocationLake:
		return "the Lake"
	case LocationManor:
		return "the Manor"
	case LocationVillage:
		return "the Village"
	default:
		return card
	}
}

// Yield is one fixed resource grant from a harvested location.
type Yield struct {
	Resource Resource
	Amount   int
}

// HarvestYields maps each base location to the pair of resources granted to
// every occupant when the location is harvested. The village is absent: it
// grants a role-dependent variable amount instead (see the harvest engine).
var HarvestYields = map[string][]Yield{
	LocationForest: {{ResourceWood, 1}, {ResourceHerbs, 2}},
	LocationQuarry: {{ResourceStone, 2}, {ResourceWood, 1}},
	LocationLake:   {{ResourceFish, 2}, {ResourceHerbs, 1}},
	LocationManor:  {{ResourceGarlic, 1}, {ResourceStone, 1}},
}

// StartingHand returns a fresh hand holding one of each location card.
func StartingHand() []string {
	hand := make([]string, len(AllLocations))
	copy(hand, AllLocations)
	return hand
}
