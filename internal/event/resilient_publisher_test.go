package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails the first failCount publishes, then succeeds
type flakyBus struct {
	mu        sync.Mutex
	failCount int
	calls     int
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.calls <= b.failCount {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(eventType Type, handler Handler) {}

func (b *flakyBus) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestResilientPublisher_FirstAttemptSucceeds(t *testing.T) {
	inner := &flakyBus{}
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})

	err := p.Publish(context.Background(), NewQuestDeletedEvent("q-1"))

	assert.NoError(t, err)
	assert.Equal(t, 1, inner.callCount())
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	inner := &flakyBus{failCount: 2}
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})

	err := p.Publish(context.Background(), NewQuestDeletedEvent("q-1"))
	assert.NoError(t, err, "caller is decoupled from retries")

	assert.Eventually(t, func() bool {
		return inner.callCount() == 3
	}, time.Second, 5*time.Millisecond)
}

func TestResilientPublisher_ExhaustedRetriesDeadLetter(t *testing.T) {
	deadLetterPath := filepath.Join(t.TempDir(), "dead_letters.jsonl")

	inner := &flakyBus{failCount: 100}
	p := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		DeadLetterPath: deadLetterPath,
	})

	require.NoError(t, p.Publish(context.Background(), NewCharacterDiedEvent("char-1", "Brand")))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(deadLetterPath)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	data, err := os.ReadFile(deadLetterPath)
	require.NoError(t, err)

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, CharacterDied, entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
}
