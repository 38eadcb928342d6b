// Package events provides a fire-and-forget publish/subscribe channel
// for transient UI effects. It is deliberately decoupled from the game
// state: anything published here is never persisted and never flows
// through the reducer, which keeps the reducer pure and replayable.
package events

import (
	"sync"

	"github.com/vovakirdan/pet-house/internal/game"
)

// Event is the sealed union of bus events.
type Event interface {
	busEvent()
}

// FedEvent fires when the pet is fed. It is the trigger for the one-shot
// feeding animation; it carries no payload and leaves no trace in state.
type FedEvent struct{}

func (FedEvent) busEvent() {}

// PetMovedEvent fires when the pet wanders to another room on its own,
// so the renderer can react even when the player is looking elsewhere.
type PetMovedEvent struct {
	From game.RoomName
	To   game.RoomName
}

func (PetMovedEvent) busEvent() {}

// Bus delivers events synchronously to the subscribers registered at
// publish time. There is no replay buffer: a subscriber that joins
// after an event fires never receives it.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers a handler and returns its unsubscribe function.
// The unsubscribe function is idempotent.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers the event to every current subscriber, synchronously,
// in unspecified order. Handlers must not block; they run on the
// publisher's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}
}
