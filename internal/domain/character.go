package domain

import "time"

// Class identifies a character class
type Class string

const (
	ClassWarrior Class = "WARRIOR"
	ClassArcher  Class = "ARCHER"
	ClassMage    Class = "MAGE"
)

// BaseStats holds the per-class stat floor used at character creation and
// as the base for equipment recomputation
type BaseStats struct {
	HP      int `json:"hp"`
	MP      int `json:"mp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// ClassInfo describes a playable class
type ClassInfo struct {
	Class       Class     `json:"class"`
	DisplayName string    `json:"display_name"`
	Passive     string    `json:"passive"`
	Base        BaseStats `json:"base"`
}

// classTable is the fixed set of playable classes
var classTable = []ClassInfo{
	{
		Class:       ClassWarrior,
		DisplayName: "Warrior",
		Passive:     "Fortitude: built to absorb punishment from failed quests",
		Base:        BaseStats{HP: 150, MP: 30, Attack: 15, Defense: 15},
	},
	{
		Class:       ClassArcher,
		DisplayName: "Archer",
		Passive:     "Precision: thrives on routine, steady daily work",
		Base:        BaseStats{HP: 100, MP: 50, Attack: 12, Defense: 10},
	},
	{
		Class:       ClassMage,
		DisplayName: "Mage",
		Passive:     "Wisdom: fragile, but learns from every quest",
		Base:        BaseStats{HP: 80, MP: 100, Attack: 10, Defense: 8},
	},
}

// Classes returns the fixed class catalog
func Classes() []ClassInfo {
	out := make([]ClassInfo, len(classTable))
	copy(out, classTable)
	return out
}

// ClassByName looks up a class by its tag
func ClassByName(name string) (ClassInfo, bool) {
	for _, c := range classTable {
		if c.Class == Class(name) {
			return c, true
		}
	}
	return ClassInfo{}, false
}

// Character is the single active player character of a save slot
type Character struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Level     int    `json:"level"`
	Exp       int    `json:"exp"`
	MaxHP     int    `json:"max_hp"`
	CurrentHP int    `json:"current_hp"`
	MaxMP     int    `json:"max_mp"`
	CurrentMP int    `json:"current_mp"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Gold      int    `json:"gold"`
	Class     Class  `json:"class"`

	// LastMaintenance is the start-of-day of the last daily maintenance run.
	// Zero means the sweep has never run for this character.
	LastMaintenance time.Time `json:"last_maintenance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDead reports whether the character has run out of HP
func (c Character) IsDead() bool {
	return c.CurrentHP <= 0
}
