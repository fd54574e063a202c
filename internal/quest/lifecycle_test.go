package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/progression"
)

var testNow = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

func testWarrior(t *testing.T) domain.Character {
	t.Helper()
	class, ok := domain.ClassByName("WARRIOR")
	require.True(t, ok)
	return progression.NewCharacter("Hero", class, testNow)
}

func TestNewQuestCopiesRewardProfile(t *testing.T) {
	q, err := NewTask("Ship the release", "", domain.DifficultyHard, nil, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.QuestTypeTask, q.Type)
	assert.Equal(t, 50, q.ExpReward)
	assert.Equal(t, 30, q.GoldReward)
	assert.Equal(t, 20, q.PenaltyDamage)
	assert.NotEmpty(t, q.ID)
	assert.NotNil(t, q.Task)
	assert.Nil(t, q.Habit)
	assert.Nil(t, q.Daily)
}

func TestNewQuestRejectsUnknownDifficulty(t *testing.T) {
	_, err := NewHabit("Stretch", "", domain.Difficulty("NIGHTMARE"), nil, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestNewDailyRequiresWeekdays(t *testing.T) {
	_, err := NewDaily("Gym", "", domain.DifficultyMedium, nil, nil, testNow)
	assert.ErrorIs(t, err, domain.ErrNoWeekdaysSelected)

	q, err := NewDaily("Gym", "", domain.DifficultyMedium, nil, []time.Weekday{time.Monday}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.StartOfDay(testNow), q.Daily.LastReset)
}

func TestCompleteAwardsRewardThenLevelUp(t *testing.T) {
	c := testWarrior(t)
	q, err := NewTask("Report", "", domain.DifficultyMedium, nil, nil, testNow)
	require.NoError(t, err)

	q, c = Complete(q, c)

	assert.True(t, q.Completed)
	assert.False(t, q.Failed)
	assert.Equal(t, 25, c.Exp)
	assert.Equal(t, 115, c.Gold)
	assert.Equal(t, 1, c.Level, "125 threshold not reached")
}

func TestFiveMediumQuestsLevelUpOnce(t *testing.T) {
	c := testWarrior(t)

	for i := 0; i < 5; i++ {
		q, err := NewTask("Report", "", domain.DifficultyMedium, nil, nil, testNow)
		require.NoError(t, err)
		_, c = Complete(q, c)
	}

	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 0, c.Exp)
	assert.Equal(t, 160, c.MaxHP)
	assert.Equal(t, 160, c.CurrentHP)
	assert.Equal(t, 35, c.MaxMP)
	assert.Equal(t, 35, c.CurrentMP)
	assert.Equal(t, 16, c.Attack)
	assert.Equal(t, 16, c.Defense)
	assert.Equal(t, 175, c.Gold)
}

func TestFailAppliesPenaltyFlooredAtZero(t *testing.T) {
	c := testWarrior(t)
	c.CurrentHP = 5
	q, err := NewTask("Taxes", "", domain.DifficultyMedium, nil, nil, testNow)
	require.NoError(t, err)

	q, c = Fail(q, c)

	assert.True(t, q.Completed)
	assert.True(t, q.Failed)
	assert.Equal(t, 0, c.CurrentHP)
}

func TestHabitIncrementAwardsQuarterRewards(t *testing.T) {
	c := testWarrior(t)
	q, err := NewHabit("Stretch", "", domain.DifficultyEasy, nil, testNow)
	require.NoError(t, err)

	q, c, err = IncrementHabit(q, c)
	require.NoError(t, err)

	assert.Equal(t, 1, q.Habit.Counter)
	assert.Equal(t, 2, c.Exp, "floor(10/4)")
	assert.Equal(t, 101, c.Gold, "floor(5/4)")
	assert.False(t, q.Completed, "habits never terminate")
	assert.False(t, q.Failed)
}

func TestHabitDecrementAppliesQuarterPenalty(t *testing.T) {
	c := testWarrior(t)
	q, err := NewHabit("Stretch", "", domain.DifficultyEasy, nil, testNow)
	require.NoError(t, err)

	q, c, err = DecrementHabit(q, c)
	require.NoError(t, err)

	assert.Equal(t, -1, q.Habit.Counter, "counter can go negative")
	assert.Equal(t, 149, c.CurrentHP, "max(1, floor(5/4)) = 1")
}

func TestHabitOpsRejectOtherTypes(t *testing.T) {
	c := testWarrior(t)
	q, err := NewTask("Report", "", domain.DifficultyMedium, nil, nil, testNow)
	require.NoError(t, err)

	_, _, err = IncrementHabit(q, c)
	assert.ErrorIs(t, err, domain.ErrWrongQuestType)

	_, _, err = DecrementHabit(q, c)
	assert.ErrorIs(t, err, domain.ErrWrongQuestType)
}

func TestTransitionsDoNotAliasState(t *testing.T) {
	c := testWarrior(t)
	orig, err := NewHabit("Stretch", "", domain.DifficultyEasy, nil, testNow)
	require.NoError(t, err)

	updated, _, err := IncrementHabit(orig, c)
	require.NoError(t, err)

	assert.Equal(t, 0, orig.Habit.Counter, "input snapshot must stay untouched")
	assert.Equal(t, 1, updated.Habit.Counter)
}
