package game

import (
	"context"
	"sync"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/repository"
)

// FakeStore is a stateful in-memory implementation of repository.Store for
// testing. It enables integration-style unit tests of the service without a
// database. It stays in this package to avoid import cycles.
//
// Transactions are simplified: writes apply immediately, Rollback after a
// completed write set is not undone. The service commits before reading its
// own writes, so this is sufficient for the tests here.
type FakeStore struct {
	mu        sync.Mutex
	character *domain.Character
	quests    map[string]domain.Quest
	items     map[string]fakeItem // itemID -> record

	// FailBeginTx forces BeginTx to return this error when set
	FailBeginTx error
}

type fakeItem struct {
	characterID string
	item        domain.InventoryItem
}

// NewFakeStore creates an empty FakeStore
func NewFakeStore() *FakeStore {
	return &FakeStore{
		quests: make(map[string]domain.Quest),
		items:  make(map[string]fakeItem),
	}
}

func (f *FakeStore) GetCharacter(ctx context.Context) (*domain.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.character == nil {
		return nil, domain.ErrCharacterNotFound
	}
	c := *f.character
	return &c, nil
}

func (f *FakeStore) InsertCharacter(ctx context.Context, c domain.Character) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.character != nil {
		return domain.ErrCharacterExists
	}
	f.character = &c
	return nil
}

func (f *FakeStore) UpdateCharacter(ctx context.Context, c domain.Character) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.character == nil || f.character.ID != c.ID {
		return domain.ErrCharacterNotFound
	}
	f.character = &c
	return nil
}

func (f *FakeStore) DeleteCharacter(ctx context.Context, characterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.character != nil && f.character.ID == characterID {
		f.character = nil
		for id, rec := range f.items {
			if rec.characterID == characterID {
				delete(f.items, id)
			}
		}
	}
	return nil
}

func (f *FakeStore) GetQuest(ctx context.Context, questID string) (*domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.quests[questID]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	return &q, nil
}

func (f *FakeStore) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Quest, 0, len(f.quests))
	for _, q := range f.quests {
		out = append(out, q)
	}
	return out, nil
}

func (f *FakeStore) ListQuestsByType(ctx context.Context, questType domain.QuestType) ([]domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Quest
	for _, q := range f.quests {
		if q.Type == questType {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *FakeStore) InsertQuest(ctx context.Context, q domain.Quest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quests[q.ID] = q
	return nil
}

func (f *FakeStore) UpdateQuest(ctx context.Context, q domain.Quest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.quests[q.ID]; !ok {
		return domain.ErrQuestNotFound
	}
	f.quests[q.ID] = q
	return nil
}

func (f *FakeStore) DeleteQuest(ctx context.Context, questID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.quests[questID]; !ok {
		return domain.ErrQuestNotFound
	}
	delete(f.quests, questID)
	return nil
}

func (f *FakeStore) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	item := rec.item
	return &item, nil
}

func (f *FakeStore) ListItems(ctx context.Context, characterID string) ([]domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.InventoryItem
	for _, rec := range f.items {
		if rec.characterID == characterID {
			out = append(out, rec.item)
		}
	}
	return out, nil
}

func (f *FakeStore) ListEquippedItems(ctx context.Context, characterID string) ([]domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.InventoryItem
	for _, rec := range f.items {
		if rec.characterID == characterID && rec.item.Equipped {
			out = append(out, rec.item)
		}
	}
	return out, nil
}

func (f *FakeStore) InsertItem(ctx context.Context, characterID string, item domain.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = fakeItem{characterID: characterID, item: item}
	return nil
}

func (f *FakeStore) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	rec.item = item
	f.items[item.ID] = rec
	return nil
}

func (f *FakeStore) DeleteItem(ctx context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *FakeStore) DeleteAllItems(ctx context.Context, characterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, rec := range f.items {
		if rec.characterID == characterID {
			delete(f.items, id)
		}
	}
	return nil
}

// BeginTx returns a pass-through transaction over the same state
func (f *FakeStore) BeginTx(ctx context.Context) (repository.Tx, error) {
	if f.FailBeginTx != nil {
		return nil, f.FailBeginTx
	}
	return &fakeTx{store: f}, nil
}

type fakeTx struct {
	store *FakeStore
}

func (t *fakeTx) InsertCharacter(ctx context.Context, c domain.Character) error {
	return t.store.InsertCharacter(ctx, c)
}

func (t *fakeTx) UpdateCharacter(ctx context.Context, c domain.Character) error {
	return t.store.UpdateCharacter(ctx, c)
}

func (t *fakeTx) DeleteCharacter(ctx context.Context, characterID string) error {
	return t.store.DeleteCharacter(ctx, characterID)
}

func (t *fakeTx) InsertQuest(ctx context.Context, q domain.Quest) error {
	return t.store.InsertQuest(ctx, q)
}

func (t *fakeTx) UpdateQuest(ctx context.Context, q domain.Quest) error {
	return t.store.UpdateQuest(ctx, q)
}

func (t *fakeTx) DeleteQuest(ctx context.Context, questID string) error {
	return t.store.DeleteQuest(ctx, questID)
}

func (t *fakeTx) InsertItem(ctx context.Context, characterID string, item domain.InventoryItem) error {
	return t.store.InsertItem(ctx, characterID, item)
}

func (t *fakeTx) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	return t.store.UpdateItem(ctx, item)
}

func (t *fakeTx) DeleteItem(ctx context.Context, itemID string) error {
	return t.store.DeleteItem(ctx, itemID)
}

func (t *fakeTx) DeleteAllItems(ctx context.Context, characterID string) error {
	return t.store.DeleteAllItems(ctx, characterID)
}

func (t *fakeTx) Commit(ctx context.Context) error   { return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { return nil }
