package game

import (
	"context"
	"fmt"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/logger"
	"github.com/hexlab-games/habitquest/internal/maintenance"
)

// PerformDailyMaintenanceIfNeeded runs the once-per-day sweep: daily quest
// resets with retroactive penalties and task deadline auto-failures. The
// character's LastMaintenance stamp guards against running twice in one day;
// the per-quest guards make a second run harmless regardless.
func (s *service) PerformDailyMaintenanceIfNeeded(ctx context.Context) (*MaintenanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	c, err := s.store.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.StartOfDay(now)
	if !c.LastMaintenance.Before(today) {
		log.Debug(LogMsgMaintenanceSkipped, "last_maintenance", c.LastMaintenance)
		return &MaintenanceResult{Character: *c}, nil
	}

	quests, err := s.store.ListQuests(ctx)
	if err != nil {
		return nil, err
	}

	res := maintenance.Run(*c, quests, now)
	res.Character.LastMaintenance = today
	res.Character.UpdatedAt = now

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.UpdateCharacter(ctx, res.Character); err != nil {
		return nil, err
	}
	for _, q := range res.Touched {
		if err := tx.UpdateQuest(ctx, q); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit maintenance: %w", err)
	}

	log.Info(LogMsgMaintenanceCompleted,
		"quests_touched", len(res.Touched),
		"penalties", res.PenaltiesApplied)

	s.publish(ctx, event.NewCharacterEvent(event.CharacterUpdated, res.Character))
	for _, q := range res.Touched {
		s.publish(ctx, event.NewQuestUpdatedEvent(q))
	}
	s.publish(ctx, event.NewMaintenanceCompletedEvent(c.ID, now, len(res.Touched), res.PenaltiesApplied))
	s.publishDeathIfCrossed(ctx, *c, res.Character)

	return &MaintenanceResult{
		Ran:              true,
		QuestsTouched:    len(res.Touched),
		PenaltiesApplied: res.PenaltiesApplied,
		Character:        res.Character,
	}, nil
}
