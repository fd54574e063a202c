// Package progression implements the character stat and leveling math.
// Everything here is pure: functions take a character snapshot and return a
// new one, with no I/O.
package progression

import (
	"time"

	"github.com/google/uuid"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// Per-level stat growth
const (
	HPPerLevel      = 10
	MPPerLevel      = 5
	AttackPerLevel  = 1
	DefensePerLevel = 1
)

// StartingGold is the gold a fresh or resurrected character begins with
const StartingGold = 100

// ExpForNextLevel returns the exp threshold to advance past the given level
func ExpForNextLevel(level int) int {
	return level*25 + 100
}

// ApplyLevelUps consumes banked exp, advancing the character one level at a
// time until the remaining exp is below the next threshold. Each level fully
// heals HP and MP to the new maximums. The threshold grows with the level, so
// the loop always terminates.
func ApplyLevelUps(c domain.Character) domain.Character {
	for c.Exp >= ExpForNextLevel(c.Level) {
		c.Exp -= ExpForNextLevel(c.Level)
		c.Level++
		c.MaxHP += HPPerLevel
		c.MaxMP += MPPerLevel
		c.Attack += AttackPerLevel
		c.Defense += DefensePerLevel
		c.CurrentHP = c.MaxHP
		c.CurrentMP = c.MaxMP
	}
	return c
}

// ApplyDamage subtracts damage from current HP, flooring at zero
func ApplyDamage(c domain.Character, damage int) domain.Character {
	c.CurrentHP -= damage
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return c
}

// NewCharacter builds a level-1 character from a class's base stats
func NewCharacter(nickname string, class domain.ClassInfo, now time.Time) domain.Character {
	return domain.Character{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		Level:     1,
		Exp:       0,
		MaxHP:     class.Base.HP,
		CurrentHP: class.Base.HP,
		MaxMP:     class.Base.MP,
		CurrentMP: class.Base.MP,
		Attack:    class.Base.Attack,
		Defense:   class.Base.Defense,
		Gold:      StartingGold,
		Class:     class.Class,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
