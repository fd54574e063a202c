package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexlab-games/habitquest/internal/domain"
)

const questColumns = `quest_id, title, description, quest_type, difficulty, tags,
	exp_reward, gold_reward, penalty_damage, completed, failed,
	habit_counter, daily_weekdays, daily_last_reset,
	task_deadline, task_overdue, task_auto_failed, created_at`

// GetQuest loads a single quest by id
func (s *Store) GetQuest(ctx context.Context, questID string) (*domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests WHERE quest_id = $1`
	q, err := scanQuest(s.db.QueryRow(ctx, query, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return q, nil
}

// ListQuests returns every quest in the save slot, oldest first
func (s *Store) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests ORDER BY created_at, quest_id`
	return listQuests(ctx, s.db, query)
}

// ListQuestsByType returns every quest of one type, oldest first
func (s *Store) ListQuestsByType(ctx context.Context, questType domain.QuestType) ([]domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests WHERE quest_type = $1 ORDER BY created_at, quest_id`
	return listQuests(ctx, s.db, query, questType)
}

// InsertQuest writes a newly created quest
func (s *Store) InsertQuest(ctx context.Context, q domain.Quest) error {
	return insertQuest(ctx, s.db, q)
}

// UpdateQuest persists a new quest snapshot
func (s *Store) UpdateQuest(ctx context.Context, q domain.Quest) error {
	return updateQuest(ctx, s.db, q)
}

// DeleteQuest removes a quest
func (s *Store) DeleteQuest(ctx context.Context, questID string) error {
	return deleteQuest(ctx, s.db, questID)
}

func listQuests(ctx context.Context, q querier, query string, args ...any) ([]domain.Quest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		quests = append(quests, *quest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quests: %w", err)
	}
	return quests, nil
}

func insertQuest(ctx context.Context, q querier, quest domain.Quest) error {
	query := `
		INSERT INTO quests (` + questColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	habitCounter, weekdays, lastReset, deadline, overdue, autoFailed := variantColumns(quest)
	_, err := q.Exec(ctx, query,
		quest.ID, quest.Title, quest.Description, quest.Type, quest.Difficulty,
		quest.Tags, quest.ExpReward, quest.GoldReward, quest.PenaltyDamage,
		quest.Completed, quest.Failed,
		habitCounter, weekdays, lastReset, deadline, overdue, autoFailed,
		quest.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quest: %w", err)
	}
	return nil
}

func updateQuest(ctx context.Context, q querier, quest domain.Quest) error {
	query := `
		UPDATE quests
		SET title = $2, description = $3, tags = $4, completed = $5, failed = $6,
			habit_counter = $7, daily_weekdays = $8, daily_last_reset = $9,
			task_deadline = $10, task_overdue = $11, task_auto_failed = $12
		WHERE quest_id = $1
	`
	habitCounter, weekdays, lastReset, deadline, overdue, autoFailed := variantColumns(quest)
	tag, err := q.Exec(ctx, query,
		quest.ID, quest.Title, quest.Description, quest.Tags,
		quest.Completed, quest.Failed,
		habitCounter, weekdays, lastReset, deadline, overdue, autoFailed,
	)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func deleteQuest(ctx context.Context, q querier, questID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM quests WHERE quest_id = $1`, questID)
	if err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

// variantColumns flattens the type-specific payload onto the nullable columns
func variantColumns(q domain.Quest) (habitCounter *int, weekdays []int32, lastReset, deadline *time.Time, overdue, autoFailed *bool) {
	switch {
	case q.Habit != nil:
		habitCounter = &q.Habit.Counter
	case q.Daily != nil:
		weekdays = make([]int32, 0, len(q.Daily.Weekdays))
		for _, wd := range q.Daily.Weekdays {
			weekdays = append(weekdays, int32(wd))
		}
		reset := q.Daily.LastReset
		lastReset = &reset
	case q.Task != nil:
		deadline = q.Task.Deadline
		overdue = &q.Task.Overdue
		autoFailed = &q.Task.AutoFailed
	}
	return
}

// scanQuest reads one quest row and rebuilds the tagged variant
func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var q domain.Quest
	var habitCounter *int
	var weekdays []int32
	var lastReset, deadline *time.Time
	var overdue, autoFailed *bool

	err := row.Scan(
		&q.ID, &q.Title, &q.Description, &q.Type, &q.Difficulty, &q.Tags,
		&q.ExpReward, &q.GoldReward, &q.PenaltyDamage, &q.Completed, &q.Failed,
		&habitCounter, &weekdays, &lastReset,
		&deadline, &overdue, &autoFailed, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch q.Type {
	case domain.QuestTypeHabit:
		state := domain.HabitState{}
		if habitCounter != nil {
			state.Counter = *habitCounter
		}
		q.Habit = &state
	case domain.QuestTypeDaily:
		state := domain.DailyState{}
		for _, wd := range weekdays {
			state.Weekdays = append(state.Weekdays, time.Weekday(wd))
		}
		if lastReset != nil {
			state.LastReset = *lastReset
		}
		q.Daily = &state
	case domain.QuestTypeTask:
		state := domain.TaskState{Deadline: deadline}
		if overdue != nil {
			state.Overdue = *overdue
		}
		if autoFailed != nil {
			state.AutoFailed = *autoFailed
		}
		q.Task = &state
	}
	return &q, nil
}
