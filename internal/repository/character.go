package repository

import (
	"context"

	"github.com/hexlab-games/habitquest/internal/domain"
)

// Character defines the interface for character persistence. The store holds
// at most one character row at a time; GetCharacter returns
// domain.ErrCharacterNotFound when the slot is empty.
type Character interface {
	GetCharacter(ctx context.Context) (*domain.Character, error)
	InsertCharacter(ctx context.Context, c domain.Character) error
	UpdateCharacter(ctx context.Context, c domain.Character) error
	DeleteCharacter(ctx context.Context, characterID string) error
}
