// Package quest implements the quest state machines and their reward and
// penalty transitions. Like progression, everything is pure: transitions take
// snapshots and return new snapshots, persistence belongs to the caller.
package quest

import (
	"time"

	"github.com/google/uuid"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/progression"
)

// Habit rewards and penalties are a quarter of the quest's profile
const habitRewardDivisor = 4

// NewHabit builds a habit quest, copying the difficulty's reward profile
// onto the quest
func NewHabit(title, description string, difficulty domain.Difficulty, tags []string, now time.Time) (domain.Quest, error) {
	if !difficulty.Valid() {
		return domain.Quest{}, domain.ErrInvalidDifficulty
	}
	q := newQuest(title, description, domain.QuestTypeHabit, difficulty, tags, now)
	q.Habit = &domain.HabitState{}
	return q, nil
}

// NewDaily builds a daily quest recurring on the given weekdays
func NewDaily(title, description string, difficulty domain.Difficulty, tags []string, weekdays []time.Weekday, now time.Time) (domain.Quest, error) {
	if !difficulty.Valid() {
		return domain.Quest{}, domain.ErrInvalidDifficulty
	}
	if len(weekdays) == 0 {
		return domain.Quest{}, domain.ErrNoWeekdaysSelected
	}
	q := newQuest(title, description, domain.QuestTypeDaily, difficulty, tags, now)
	q.Daily = &domain.DailyState{
		Weekdays:  weekdays,
		LastReset: domain.StartOfDay(now),
	}
	return q, nil
}

// NewTask builds a one-shot task quest with an optional deadline
func NewTask(title, description string, difficulty domain.Difficulty, tags []string, deadline *time.Time, now time.Time) (domain.Quest, error) {
	if !difficulty.Valid() {
		return domain.Quest{}, domain.ErrInvalidDifficulty
	}
	q := newQuest(title, description, domain.QuestTypeTask, difficulty, tags, now)
	q.Task = &domain.TaskState{Deadline: deadline}
	return q, nil
}

func newQuest(title, description string, questType domain.QuestType, difficulty domain.Difficulty, tags []string, now time.Time) domain.Quest {
	rewards := difficulty.Rewards()
	return domain.Quest{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		Type:          questType,
		Difficulty:    difficulty,
		Tags:          tags,
		ExpReward:     rewards.ExpReward,
		GoldReward:    rewards.GoldReward,
		PenaltyDamage: rewards.PenaltyDamage,
		CreatedAt:     now,
	}
}

// Complete marks the quest done and applies its full reward to the character,
// running the level-up check afterwards. Callers gate on CanBeCompleted.
func Complete(q domain.Quest, c domain.Character) (domain.Quest, domain.Character) {
	c.Exp += q.ExpReward
	c.Gold += q.GoldReward
	c = progression.ApplyLevelUps(c)

	q.Completed = true
	q.Failed = false
	return q, c
}

// Fail marks the quest failed and applies its penalty damage, floored at
// zero HP. Callers gate on CanBeFailed.
func Fail(q domain.Quest, c domain.Character) (domain.Quest, domain.Character) {
	c = progression.ApplyDamage(c, q.PenaltyDamage)

	q.Completed = true
	q.Failed = true
	return q, c
}

// IncrementHabit counts one positive habit tick, awarding a quarter of the
// quest's exp and gold (integer division). Habits never become terminal.
func IncrementHabit(q domain.Quest, c domain.Character) (domain.Quest, domain.Character, error) {
	if q.Type != domain.QuestTypeHabit || q.Habit == nil {
		return q, c, domain.ErrWrongQuestType
	}

	state := *q.Habit
	state.Counter++
	q.Habit = &state

	c.Exp += q.ExpReward / habitRewardDivisor
	c.Gold += q.GoldReward / habitRewardDivisor
	c = progression.ApplyLevelUps(c)
	return q, c, nil
}

// DecrementHabit counts one negative habit tick, applying a quarter of the
// penalty damage with a minimum of one point. The counter has no lower bound.
func DecrementHabit(q domain.Quest, c domain.Character) (domain.Quest, domain.Character, error) {
	if q.Type != domain.QuestTypeHabit || q.Habit == nil {
		return q, c, domain.ErrWrongQuestType
	}

	state := *q.Habit
	state.Counter--
	q.Habit = &state

	damage := q.PenaltyDamage / habitRewardDivisor
	if damage < 1 {
		damage = 1
	}
	c = progression.ApplyDamage(c, damage)
	return q, c, nil
}
