// Package postgres implements the repository interfaces against PostgreSQL
// using pgx. The Store works directly on the pool; Tx wraps a pgx
// transaction so a game command can write the character and its quests or
// items as one unit.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexlab-games/habitquest/internal/database"
	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, letting the entity
// queries run inside or outside a transaction
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// BeginTx starts a read-modify-write transaction
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &storeTx{tx: tx}, nil
}

// storeTx implements repository.Tx over a pgx transaction
type storeTx struct {
	tx pgx.Tx
}

func (t *storeTx) InsertCharacter(ctx context.Context, c domain.Character) error {
	return insertCharacter(ctx, t.tx, c)
}

func (t *storeTx) UpdateCharacter(ctx context.Context, c domain.Character) error {
	return updateCharacter(ctx, t.tx, c)
}

func (t *storeTx) DeleteCharacter(ctx context.Context, characterID string) error {
	return deleteCharacter(ctx, t.tx, characterID)
}

func (t *storeTx) InsertQuest(ctx context.Context, q domain.Quest) error {
	return insertQuest(ctx, t.tx, q)
}

func (t *storeTx) UpdateQuest(ctx context.Context, q domain.Quest) error {
	return updateQuest(ctx, t.tx, q)
}

func (t *storeTx) DeleteQuest(ctx context.Context, questID string) error {
	return deleteQuest(ctx, t.tx, questID)
}

func (t *storeTx) InsertItem(ctx context.Context, characterID string, item domain.InventoryItem) error {
	return insertItem(ctx, t.tx, characterID, item)
}

func (t *storeTx) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	return updateItem(ctx, t.tx, item)
}

func (t *storeTx) DeleteItem(ctx context.Context, itemID string) error {
	return deleteItem(ctx, t.tx, itemID)
}

func (t *storeTx) DeleteAllItems(ctx context.Context, characterID string) error {
	return deleteAllItems(ctx, t.tx, characterID)
}

func (t *storeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *storeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
