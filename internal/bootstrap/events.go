package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hexlab-games/habitquest/internal/config"
	"github.com/hexlab-games/habitquest/internal/event"
	"github.com/hexlab-games/habitquest/internal/metrics"
	"github.com/hexlab-games/habitquest/internal/sse"
)

// InitializeEventSystem creates and configures the event bus and resilient publisher.
// It applies default values for retry configuration if not specified in config and
// creates the dead-letter directory.
// Returns the in-memory bus, the resilient publisher wrapping it, and any error.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	// Apply config defaults for resilient publisher
	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	// Ensure dead-letter directory exists
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		DeadLetterPath: deadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, nil
}

// RegisterEventHandlers wires the cross-cutting event consumers:
// the Prometheus collector and the SSE fan-out to connected clients.
// Returns the hub so the server can expose the event stream endpoint.
func RegisterEventHandlers(bus event.Bus) *sse.Hub {
	collector := metrics.NewEventMetricsCollector()
	collector.Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	hub := sse.NewHub()
	hub.Start()

	subscriber := sse.NewSubscriber(hub, bus)
	subscriber.Subscribe()
	slog.Info(LogMsgEventStreamSubscribed)

	return hub
}
