package game

import "fmt"

// WeatherMod is one stat adjustment a weather status applies. An empty Role
// means the modifier applies to every player.
type WeatherMod struct {
	Stat   string
	Amount int
	Role   Role
}

// Weather is one of the twelve statuses the vampire's d12 roll maps to.
type Weather struct {
	Status      string
	Name        string
	Description string
	Mods        []WeatherMod
}

// weatherByRoll is the fixed d12 lookup table. Each status carries a
// deterministic set of stat modifiers.
var weatherByRoll = map[int]Weather{
	1: {
		Status:      "CLEAR",
		Name:        "Clear Skies",
		Description: "A calm night. No effect.",
	},
	2: {
		Status:      "DRIZZLE",
		Name:        "Drizzle",
		Description: "A thin rain dampens powder and bowstrings.",
		Mods:        []WeatherMod{{StatAttack, -1, RoleHunter}},
	},
	3: {
		Status:      "FOG",
		Name:        "Fog",
		Description: "Shapes blur in the mist; every strike is a guess.",
		Mods:        []WeatherMod{{StatAttack, -1, ""}},
	},
	4: {
		Status:      "RAIN",
		Name:        "Rain",
		Description: "Footing gives way on soaked ground.",
		Mods:        []WeatherMod{{StatDefense, -1, ""}},
	},
	5: {
		Status:      "WIND",
		Name:        "High Winds",
		Description: "Cloaks whip and shields drag in the gusts.",
		Mods:        []WeatherMod{{StatDefense, -1, RoleHunter}},
	},
	6: {
		Status:      "STORM",
		Name:        "Storm",
		Description: "Thunder drowns out every warning cry.",
		Mods:        []WeatherMod{{StatDefense, -2, ""}},
	},
	7: {
		Status:      "HEAT",
		Name:        "Scorching Heat",
		Description: "The lingering warmth of day saps the vampire.",
		Mods:        []WeatherMod{{StatAttack, -1, RoleVampire}},
	},
	8: {
		Status:      "HAIL",
		Name:        "Hail",
		Description: "Ice pelts attacker and defender alike.",
		Mods:        []WeatherMod{{StatAttack, -1, ""}, {StatDefense, -1, ""}},
	},
	9: {
		Status:      "CLEAR_NIGHT",
		Name:        "Clear Night",
		Description: "Bright starlight steadies every hand.",
		Mods:        []WeatherMod{{StatAttack, 1, ""}},
	},
	10: {
		Status:      "BLIZZARD",
		Name:        "Blizzard",
		Description: "Driving snow smothers every assault.",
		Mods:        []WeatherMod{{StatAttack, -2, ""}},
	},
	11: {
		Status:      "ECLIPSE",
		Name:        "Eclipse",
		Description: "An unnatural darkness favors the hunt.",
		Mods:        []WeatherMod{{StatAttack, 1, RoleVampire}, {StatDefense, -1, RoleHunter}},
	},
	12: {
		Status:      "FULL_MOON",
		Name:        "Full Moon",
		Description: "The vampire's power swells under the full moon.",
		Mods:        []WeatherMod{{StatAttack, 2, RoleVampire}},
	},
}

// WeatherForRoll maps a 1..12 roll to its weather status.
func WeatherForRoll(roll int) (Weather, bool) {
	w, ok := weatherByRoll[roll]
	return w, ok
}

// ModDescription renders the human-readable ledger description for one
// weather modifier, e.g. "Storm: -2 DEFENSE".
func (w Weather) ModDescription(m WeatherMod) string {
	scope := ""
	switch m.Role {
	case RoleVampire:
		scope = " (vampire)"
	case RoleHunter:
		scope = " (hunters)"
	}
	return fmt.Sprintf("%s: %+d %s%s", w.Name, m.Amount, m.Stat, scope)
}
