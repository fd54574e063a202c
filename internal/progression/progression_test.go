package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlab-games/habitquest/internal/domain"
)

func newWarrior(t *testing.T) domain.Character {
	t.Helper()
	class, ok := domain.ClassByName("WARRIOR")
	require.True(t, ok)
	return NewCharacter("Tester", class, time.Now())
}

func TestExpForNextLevel(t *testing.T) {
	assert.Equal(t, 125, ExpForNextLevel(1))
	assert.Equal(t, 150, ExpForNextLevel(2))
	assert.Equal(t, 350, ExpForNextLevel(10))
}

func TestNewCharacterUsesClassBase(t *testing.T) {
	c := newWarrior(t)

	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.Exp)
	assert.Equal(t, 150, c.MaxHP)
	assert.Equal(t, 150, c.CurrentHP)
	assert.Equal(t, 30, c.MaxMP)
	assert.Equal(t, 30, c.CurrentMP)
	assert.Equal(t, 15, c.Attack)
	assert.Equal(t, 15, c.Defense)
	assert.Equal(t, StartingGold, c.Gold)
	assert.Equal(t, domain.ClassWarrior, c.Class)
	assert.NotEmpty(t, c.ID)
}

func TestApplyLevelUpsBelowThresholdIsNoop(t *testing.T) {
	c := newWarrior(t)
	c.Exp = 124

	got := ApplyLevelUps(c)
	assert.Equal(t, c, got, "below the threshold nothing changes")
}

func TestApplyLevelUpsSingleLevel(t *testing.T) {
	c := newWarrior(t)
	c.Exp = 125
	c.CurrentHP = 40 // level-up fully heals

	got := ApplyLevelUps(c)

	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 0, got.Exp)
	assert.Equal(t, 160, got.MaxHP)
	assert.Equal(t, 160, got.CurrentHP)
	assert.Equal(t, 35, got.MaxMP)
	assert.Equal(t, 35, got.CurrentMP)
	assert.Equal(t, 16, got.Attack)
	assert.Equal(t, 16, got.Defense)
}

func TestApplyLevelUpsMultipleLevels(t *testing.T) {
	c := newWarrior(t)
	// Enough for level 1->2 (125) and 2->3 (150), with 10 left over
	c.Exp = 285

	got := ApplyLevelUps(c)

	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 10, got.Exp)
	assert.Equal(t, 170, got.MaxHP)
	assert.Equal(t, 170, got.CurrentHP)

	// Fixed point: running it again changes nothing
	assert.Equal(t, got, ApplyLevelUps(got))
}

func TestApplyDamageFloorsAtZero(t *testing.T) {
	c := newWarrior(t)

	got := ApplyDamage(c, 40)
	assert.Equal(t, 110, got.CurrentHP)

	got = ApplyDamage(got, 500)
	assert.Equal(t, 0, got.CurrentHP)
	assert.True(t, got.IsDead())
}

func BenchmarkApplyLevelUps(b *testing.B) {
	class, _ := domain.ClassByName("WARRIOR")
	c := NewCharacter("Bench", class, time.Now())
	c.Exp = 100000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyLevelUps(c)
	}
}
