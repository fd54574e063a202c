package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexlab-games/habitquest/internal/domain"
)

const characterColumns = `character_id, nickname, level, exp, max_hp, current_hp,
	max_mp, current_mp, attack, defense, gold, class, last_maintenance,
	created_at, updated_at`

// GetCharacter loads the save slot's character
func (s *Store) GetCharacter(ctx context.Context) (*domain.Character, error) {
	return getCharacter(ctx, s.db)
}

// InsertCharacter writes a freshly created character. The single-slot index
// rejects a second row.
func (s *Store) InsertCharacter(ctx context.Context, c domain.Character) error {
	return insertCharacter(ctx, s.db, c)
}

// UpdateCharacter persists a new character snapshot
func (s *Store) UpdateCharacter(ctx context.Context, c domain.Character) error {
	return updateCharacter(ctx, s.db, c)
}

// DeleteCharacter removes the character; inventory rows cascade away with it
func (s *Store) DeleteCharacter(ctx context.Context, characterID string) error {
	return deleteCharacter(ctx, s.db, characterID)
}

func getCharacter(ctx context.Context, q querier) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters LIMIT 1`

	var c domain.Character
	var lastMaintenance *time.Time
	err := q.QueryRow(ctx, query).Scan(
		&c.ID, &c.Nickname, &c.Level, &c.Exp, &c.MaxHP, &c.CurrentHP,
		&c.MaxMP, &c.CurrentMP, &c.Attack, &c.Defense, &c.Gold, &c.Class,
		&lastMaintenance, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	if lastMaintenance != nil {
		c.LastMaintenance = *lastMaintenance
	}
	return &c, nil
}

func insertCharacter(ctx context.Context, q querier, c domain.Character) error {
	query := `
		INSERT INTO characters (` + characterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := q.Exec(ctx, query,
		c.ID, c.Nickname, c.Level, c.Exp, c.MaxHP, c.CurrentHP,
		c.MaxMP, c.CurrentMP, c.Attack, c.Defense, c.Gold, c.Class,
		nullableTime(c.LastMaintenance),
	)
	if err != nil {
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

func updateCharacter(ctx context.Context, q querier, c domain.Character) error {
	query := `
		UPDATE characters
		SET nickname = $2, level = $3, exp = $4, max_hp = $5, current_hp = $6,
			max_mp = $7, current_mp = $8, attack = $9, defense = $10,
			gold = $11, class = $12, last_maintenance = $13, updated_at = NOW()
		WHERE character_id = $1
	`
	tag, err := q.Exec(ctx, query,
		c.ID, c.Nickname, c.Level, c.Exp, c.MaxHP, c.CurrentHP,
		c.MaxMP, c.CurrentMP, c.Attack, c.Defense, c.Gold, c.Class,
		nullableTime(c.LastMaintenance),
	)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

func deleteCharacter(ctx context.Context, q querier, characterID string) error {
	_, err := q.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, characterID)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// nullableTime maps the zero time onto SQL NULL
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
