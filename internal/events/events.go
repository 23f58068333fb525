package events

import (
	"context"
	"sync"

	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
)

// Type identifies a domain event the engine publishes when a tracked counter
// moves.
type Type string

const (
	ItemReviewed    Type = "item-reviewed"
	WordLearned     Type = "word-learned"
	WordMastered    Type = "word-mastered"
	JournalWritten  Type = "journal-written"
	ChatActivity    Type = "chat-activity"
	LetterActivity  Type = "letter-activity"
	StreakIncreased Type = "streak-increased"
	XPAwarded       Type = "xp-awarded"
	ChallengeDone   Type = "challenge-done"
)

// Event carries the counter values a subscriber needs to evaluate thresholds.
type Event struct {
	Type  Type
	Count int
	Stats *models.UserStats
}

// Handler reacts to a published event. Handlers run synchronously on the
// publisher's goroutine; they must be short.
type Handler func(ctx context.Context, ev Event)

// Dispatcher is a small in-process observer list. It decouples the badge
// engine from the increment paths that trigger its threshold checks.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[Type][]Handler{}}
}

// Subscribe registers a handler for the given event type.
func (d *Dispatcher) Subscribe(t Type, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = append(d.handlers[t], h)
}

// Publish delivers the event to every subscribed handler in order.
func (d *Dispatcher) Publish(ctx context.Context, ev Event) {
	d.mu.RLock()
	handlers := d.handlers[ev.Type]
	d.mu.RUnlock()

	if len(handlers) > 0 {
		logger.FromContext(ctx).WithPrefix("events").Debug("publishing %s to %d handlers", ev.Type, len(handlers))
	}
	for _, h := range handlers {
		h(ctx, ev)
	}
}
