package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday
var wednesday = time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

func TestDailyIsActiveOn(t *testing.T) {
	q := Quest{
		Type:  QuestTypeDaily,
		Daily: &DailyState{Weekdays: []time.Weekday{time.Monday, time.Wednesday}},
	}

	assert.True(t, q.IsActiveOn(wednesday))
	assert.False(t, q.IsActiveOn(wednesday.AddDate(0, 0, 1))) // Thursday

	task := Quest{Type: QuestTypeTask, Task: &TaskState{}}
	assert.True(t, task.IsActiveOn(wednesday), "non-dailies are always active")
}

func TestTaskCanBeCompleted(t *testing.T) {
	deadline := StartOfDay(wednesday)
	q := Quest{Type: QuestTypeTask, Task: &TaskState{Deadline: &deadline}}

	// Active until the end of the deadline's calendar day
	assert.True(t, q.CanBeCompleted(wednesday))
	assert.True(t, q.CanBeCompleted(EndOfDay(wednesday)))
	assert.False(t, q.CanBeCompleted(wednesday.AddDate(0, 0, 1)))

	done := q
	done.Completed = true
	assert.False(t, done.CanBeCompleted(wednesday))

	failed := q
	failed.Failed = true
	assert.False(t, failed.CanBeCompleted(wednesday))
	assert.False(t, failed.CanBeFailed(wednesday) && failed.Completed)
}

func TestTaskCanBeFailed(t *testing.T) {
	deadline := StartOfDay(wednesday)
	q := Quest{Type: QuestTypeTask, Task: &TaskState{Deadline: &deadline}}

	assert.True(t, q.CanBeFailed(wednesday))
	assert.False(t, q.CanBeFailed(wednesday.AddDate(0, 0, 1)))

	done := q
	done.Completed = true
	assert.False(t, done.CanBeFailed(wednesday))
}

func TestDailyNeedsReset(t *testing.T) {
	q := Quest{
		Type: QuestTypeDaily,
		Daily: &DailyState{
			Weekdays:  []time.Weekday{time.Monday},
			LastReset: StartOfDay(wednesday.AddDate(0, 0, -2)),
		},
	}

	assert.True(t, q.NeedsReset(wednesday))

	q.Daily.LastReset = StartOfDay(wednesday)
	assert.False(t, q.NeedsReset(wednesday))

	habit := Quest{Type: QuestTypeHabit, Habit: &HabitState{}}
	assert.False(t, habit.NeedsReset(wednesday))
}

func TestDailyStatusOn(t *testing.T) {
	q := Quest{
		Type:  QuestTypeDaily,
		Daily: &DailyState{Weekdays: []time.Weekday{time.Wednesday}},
	}

	assert.Equal(t, DailyStatusPending, q.StatusOn(wednesday))

	q.Failed = true
	assert.Equal(t, DailyStatusFailed, q.StatusOn(wednesday))

	q.Completed = true
	assert.Equal(t, DailyStatusCompleted, q.StatusOn(wednesday), "completion takes precedence over a failure flag")

	assert.Equal(t, DailyStatusInactive, q.StatusOn(wednesday.AddDate(0, 0, 1)))
}

func TestDifficultyRewards(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       RewardProfile
	}{
		{DifficultyEasy, RewardProfile{ExpReward: 10, GoldReward: 5, PenaltyDamage: 5}},
		{DifficultyMedium, RewardProfile{ExpReward: 25, GoldReward: 15, PenaltyDamage: 10}},
		{DifficultyHard, RewardProfile{ExpReward: 50, GoldReward: 30, PenaltyDamage: 20}},
		{DifficultyEpic, RewardProfile{ExpReward: 100, GoldReward: 60, PenaltyDamage: 35}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.difficulty.Rewards(), string(tt.difficulty))
		assert.True(t, tt.difficulty.Valid())
	}

	assert.False(t, Difficulty("NIGHTMARE").Valid())
}

func TestItemCanBeUsedBy(t *testing.T) {
	warrior := Character{Level: 3, Class: ClassWarrior}

	sword := InventoryItem{Type: ItemTypeWeapon, RequiredLevel: 1, AllowedClass: AllowedClassWarrior}
	assert.True(t, sword.CanBeUsedBy(warrior))

	staff := InventoryItem{Type: ItemTypeWeapon, RequiredLevel: 1, AllowedClass: AllowedClassMage}
	assert.False(t, staff.CanBeUsedBy(warrior))

	ring := InventoryItem{Type: ItemTypeAccessory, RequiredLevel: 1, AllowedClass: AllowedClassAny}
	assert.True(t, ring.CanBeUsedBy(warrior))

	epic := InventoryItem{Type: ItemTypeWeapon, RequiredLevel: 10, AllowedClass: AllowedClassAny}
	assert.False(t, epic.CanBeUsedBy(warrior))
}
