package game

import (
	"context"
	"fmt"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/logger"
	"github.com/hexlab-games/habitquest/internal/quest"
)

// AddHabit creates a counter-based habit quest
func (s *service) AddHabit(ctx context.Context, in QuestInput) (domain.Quest, error) {
	return s.addQuest(ctx, func() (domain.Quest, error) {
		return quest.NewHabit(in.Title, in.Description, in.Difficulty, in.Tags, s.now())
	})
}

// AddDaily creates a quest recurring on the given weekdays
func (s *service) AddDaily(ctx context.Context, in QuestInput) (domain.Quest, error) {
	return s.addQuest(ctx, func() (domain.Quest, error) {
		return quest.NewDaily(in.Title, in.Description, in.Difficulty, in.Tags, in.Weekdays, s.now())
	})
}

// AddTask creates a one-shot, optionally deadline-bound quest
func (s *service) AddTask(ctx context.Context, in QuestInput) (domain.Quest, error) {
	return s.addQuest(ctx, func() (domain.Quest, error) {
		return quest.NewTask(in.Title, in.Description, in.Difficulty, in.Tags, in.Deadline, s.now())
	})
}

func (s *service) addQuest(ctx context.Context, build func() (domain.Quest, error)) (domain.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := build()
	if err != nil {
		return domain.Quest{}, err
	}

	if err := s.store.InsertQuest(ctx, q); err != nil {
		return domain.Quest{}, fmt.Errorf("failed to insert quest: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgQuestCreated, "quest_id", q.ID, "type", q.Type)
	s.publish(ctx, event.NewQuestUpdatedEvent(q))
	return q, nil
}

// ListQuests returns every quest in the save slot
func (s *service) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	return s.store.ListQuests(ctx)
}

// CompleteQuest awards the quest's exp and gold and marks it done. Refused
// transitions (already terminal, deadline elapsed) return Applied=false.
func (s *service) CompleteQuest(ctx context.Context, questID string) (*QuestResult, error) {
	return s.transitionQuest(ctx, questID,
		func(q domain.Quest) bool { return q.CanBeCompleted(s.now()) },
		func(q domain.Quest, c domain.Character) (domain.Quest, domain.Character, error) {
			newQ, newC := quest.Complete(q, c)
			return newQ, newC, nil
		})
}

// FailQuest applies the quest's penalty damage and marks it failed
func (s *service) FailQuest(ctx context.Context, questID string) (*QuestResult, error) {
	return s.transitionQuest(ctx, questID,
		func(q domain.Quest) bool { return q.CanBeFailed(s.now()) },
		func(q domain.Quest, c domain.Character) (domain.Quest, domain.Character, error) {
			newQ, newC := quest.Fail(q, c)
			return newQ, newC, nil
		})
}

// IncrementHabit bumps the habit counter and awards the quarter reward
func (s *service) IncrementHabit(ctx context.Context, questID string) (*QuestResult, error) {
	return s.transitionQuest(ctx, questID,
		func(domain.Quest) bool { return true },
		quest.IncrementHabit)
}

// DecrementHabit drops the habit counter and applies the quarter penalty
func (s *service) DecrementHabit(ctx context.Context, questID string) (*QuestResult, error) {
	return s.transitionQuest(ctx, questID,
		func(domain.Quest) bool { return true },
		quest.DecrementHabit)
}

// transitionQuest runs one quest state transition as an atomic unit: load,
// gate, compute via the engine, persist character and quest together.
func (s *service) transitionQuest(
	ctx context.Context,
	questID string,
	allowed func(domain.Quest) bool,
	apply func(domain.Quest, domain.Character) (domain.Quest, domain.Character, error),
) (*QuestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}
	q, err := s.store.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}

	if !allowed(*q) {
		log.Debug(LogMsgQuestNotTransitioned, "quest_id", questID)
		return &QuestResult{Quest: *q, Character: *c}, nil
	}

	newQ, newC, err := apply(*q, *c)
	if err != nil {
		return nil, err
	}
	newC.UpdatedAt = s.now()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.UpdateCharacter(ctx, newC); err != nil {
		return nil, err
	}
	if err := tx.UpdateQuest(ctx, newQ); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit quest transition: %w", err)
	}

	s.publish(ctx, event.NewQuestUpdatedEvent(newQ))
	s.publish(ctx, event.NewCharacterEvent(event.CharacterUpdated, newC))
	s.publishLevelUpIfCrossed(ctx, *c, newC)
	s.publishDeathIfCrossed(ctx, *c, newC)

	return &QuestResult{Quest: newQ, Character: newC, Applied: true}, nil
}

// DeleteQuest removes a quest without reward or penalty
func (s *service) DeleteQuest(ctx context.Context, questID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteQuest(ctx, questID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgQuestDeleted, "quest_id", questID)
	s.publish(ctx, event.NewQuestDeletedEvent(questID))
	return nil
}
