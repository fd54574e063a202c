package repository

import (
	"context"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// Quest defines the interface for quest persistence
type Quest interface {
	GetQuest(ctx context.Context, questID string) (*domain.Quest, error)
	ListQuests(ctx context.Context) ([]domain.Quest, error)
	ListQuestsByType(ctx context.Context, questType domain.QuestType) ([]domain.Quest, error)
	InsertQuest(ctx context.Context, q domain.Quest) error
	UpdateQuest(ctx context.Context, q domain.Quest) error
	DeleteQuest(ctx context.Context, questID string) error
}
