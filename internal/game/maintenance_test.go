package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
)

func TestMaintenancePenalizesMissedDaily(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	createWarrior(t, svc)

	q, err := svc.AddDaily(ctx, QuestInput{
		Title:      "Workout",
		Difficulty: domain.DifficultyMedium,
		Weekdays:   []time.Weekday{time.Tuesday},
	})
	require.NoError(t, err)

	// AddDaily stamps LastReset with today; rewind it so testNow's sweep
	// sees an unswept quest that was active yesterday (Tuesday).
	q.Daily.LastReset = domain.StartOfDay(testNow.AddDate(0, 0, -1))
	require.NoError(t, store.UpdateQuest(ctx, q))

	res, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, res.Ran)
	assert.Equal(t, 1, res.QuestsTouched)
	assert.Equal(t, 1, res.PenaltiesApplied)
	assert.Equal(t, 135, res.Character.CurrentHP)

	swept, err := store.GetQuest(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, swept.Completed)
	assert.True(t, swept.Failed)
	assert.Equal(t, domain.StartOfDay(testNow), swept.Daily.LastReset)
}

func TestMaintenanceRunsOncePerDay(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()
	createWarrior(t, svc)

	sweeps := 0
	bus.Subscribe(event.MaintenanceCompleted, func(ctx context.Context, e event.Event) error {
		sweeps++
		return nil
	})

	first, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	assert.True(t, first.Ran)

	second, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	assert.False(t, second.Ran)
	assert.Equal(t, 0, second.QuestsTouched)
	assert.Equal(t, 1, sweeps)
}

func TestMaintenanceRunsAgainNextDay(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	createWarrior(t, svc)

	first, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, first.Ran)

	svc.now = func() time.Time { return testNow.AddDate(0, 0, 1) }

	second, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	assert.True(t, second.Ran)
}

func TestMaintenanceAutoFailsOverdueTask(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	createWarrior(t, svc)

	deadline := testNow.AddDate(0, 0, -3)
	q, err := svc.AddTask(ctx, QuestInput{
		Title:      "Taxes",
		Difficulty: domain.DifficultyHard,
		Deadline:   &deadline,
	})
	require.NoError(t, err)

	res, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	require.True(t, res.Ran)
	assert.Equal(t, 1, res.PenaltiesApplied)
	assert.Equal(t, 130, res.Character.CurrentHP)

	failed, err := store.GetQuest(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, failed.Completed)
	assert.True(t, failed.Failed)
	assert.True(t, failed.Task.AutoFailed)
	assert.True(t, failed.Task.Overdue)
}

func TestMaintenanceCanKill(t *testing.T) {
	svc, store, bus := newTestService(t)
	ctx := context.Background()
	c := createWarrior(t, svc)

	died := false
	bus.Subscribe(event.CharacterDied, func(ctx context.Context, e event.Event) error {
		died = true
		return nil
	})

	c.CurrentHP = 10
	require.NoError(t, store.UpdateCharacter(ctx, c))

	deadline := testNow.AddDate(0, 0, -1)
	_, err := svc.AddTask(ctx, QuestInput{
		Title:      "Dragon",
		Difficulty: domain.DifficultyEpic,
		Deadline:   &deadline,
	})
	require.NoError(t, err)

	res, err := svc.PerformDailyMaintenanceIfNeeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Character.CurrentHP)
	assert.True(t, died)
}
