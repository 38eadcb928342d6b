// Package session owns the game state for one play session. It is the
// only component allowed to mutate state: every input — player action,
// scheduler hop, generation result — goes through Dispatch, which routes
// it through the pure reducer, then persists and broadcasts the result.
package session

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pet-house/internal/events"
	"github.com/vovakirdan/pet-house/internal/game"
	"github.com/vovakirdan/pet-house/internal/wander"
)

// Store is the persistence contract the session needs. Satisfied by
// *storage.Store; kept as an interface so tests can fake it and so the
// session runs fine with no store at all.
type Store interface {
	SaveState(game.GameState)
	LoadState() (game.GameState, bool)
	ClearLegacy()
}

// Config holds session parameters.
type Config struct {
	// Wander configures the autonomous pet movement scheduler.
	Wander wander.Config
}

// DefaultConfig returns the standard session parameters.
func DefaultConfig() Config {
	return Config{Wander: wander.DefaultConfig()}
}

// Session is the orchestrator for one game. Construct with New (state is
// the deterministic default immediately), call Start to hydrate and
// begin autonomous movement, and Stop at teardown.
type Session struct {
	store  Store // may be nil
	bus    *events.Bus
	sched  *wander.Scheduler
	logger *log.Logger

	mu      sync.Mutex
	state   game.GameState
	started bool
	stopped bool

	stopWander wander.StopFunc

	updates   chan game.GameState
	persistCh chan game.GameState
	done      chan struct{}
}

// New creates a session with the hard-coded default state. The store may
// be nil, in which case the game runs without saves.
func New(store Store, bus *events.Bus, cfg Config, logger *log.Logger) *Session {
	if bus == nil {
		bus = events.NewBus()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		store:     store,
		bus:       bus,
		sched:     wander.NewScheduler(cfg.Wander),
		logger:    logger,
		state:     game.DefaultState(),
		updates:   make(chan game.GameState, 1),
		persistCh: make(chan game.GameState, 1),
		done:      make(chan struct{}),
	}
}

// Events returns the bus for cosmetic triggers.
func (s *Session) Events() *events.Bus {
	return s.bus
}

// Updates returns a channel carrying state snapshots after every change.
// Intermediate snapshots are coalesced if the consumer lags; the latest
// state is always delivered.
func (s *Session) Updates() <-chan game.GameState {
	return s.updates
}

// State returns a snapshot of the current state.
func (s *Session) State() game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Start hydrates from persistence, purges superseded save keys, and
// starts the wander scheduler. Call at most once per session; repeated
// calls are no-ops.
func (s *Session) Start() {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	if s.store != nil {
		if loaded, ok := s.store.LoadState(); ok {
			// Wholesale replacement; per-room defaulting already
			// happened inside LoadState.
			s.mu.Lock()
			s.state = loaded
			snapshot := s.state.Clone()
			s.mu.Unlock()
			s.notify(snapshot)
			s.logger.Debug("hydrated saved state")
		}
		// Independent of hydration outcome.
		s.store.ClearLegacy()
	}

	go s.persistLoop()

	s.stopWander = s.sched.Start(func(room game.RoomName) {
		s.Dispatch(game.PetMovedAction{Room: room})
	})
}

// Stop cancels autonomous movement and the persistence worker. After
// Stop returns no further scheduler-driven dispatches occur. Idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	stop := s.stopWander
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	close(s.done)
}

// Dispatch applies an action through the reducer. Dispatches are
// serialized: each one sees the result of all prior ones. Guard
// failures are silent no-ops. On a real change the new state is
// broadcast and persisted fire-and-forget.
func (s *Session) Dispatch(action game.Action) {
	s.mu.Lock()
	prev := s.state
	next := game.Reduce(prev, action)
	changed := !next.Equal(prev)
	if changed {
		s.state = next
	}

	// Feeding is cosmetic: no state change, but the animation trigger
	// fires when the Kitchen guard holds.
	fed := false
	if _, ok := action.(game.FeedAction); ok && prev.CanFeed() {
		fed = true
	}
	var moved *events.PetMovedEvent
	if _, ok := action.(game.PetMovedAction); ok && changed {
		moved = &events.PetMovedEvent{From: prev.Pet.CurrentRoom, To: next.Pet.CurrentRoom}
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if fed {
		s.bus.Publish(events.FedEvent{})
	}
	if moved != nil {
		s.bus.Publish(*moved)
	}
	if changed {
		s.notify(snapshot)
		s.queuePersist(snapshot)
	}
}

// notify pushes a snapshot to the updates channel, replacing any
// undelivered older snapshot so a slow renderer never blocks dispatch.
func (s *Session) notify(snapshot game.GameState) {
	for {
		select {
		case s.updates <- snapshot:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}

// queuePersist hands a snapshot to the persistence worker, coalescing
// to the latest pending state. A crash loses at most the most recent
// transition, which is the accepted trade-off.
func (s *Session) queuePersist(snapshot game.GameState) {
	if s.store == nil {
		return
	}
	select {
	case <-s.done:
		return
	default:
	}
	for {
		select {
		case s.persistCh <- snapshot:
			return
		default:
			select {
			case <-s.persistCh:
			default:
			}
		}
	}
}

// persistLoop is the single writer to the store, keeping saves ordered.
func (s *Session) persistLoop() {
	for {
		select {
		case <-s.done:
			// Flush a final pending save before exiting.
			select {
			case snapshot := <-s.persistCh:
				s.store.SaveState(snapshot)
			default:
			}
			return
		case snapshot := <-s.persistCh:
			s.store.SaveState(snapshot)
		}
	}
}
