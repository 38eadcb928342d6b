// Package wander schedules autonomous pet movement. The pet hops between
// rooms on a randomized interval, independent of player input, which is
// what makes it feel alive even when the terminal sits idle.
package wander

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/pet-house/internal/game"
)

// Default hop interval bounds.
const (
	DefaultMinDelay = 15 * time.Second
	DefaultMaxDelay = 30 * time.Second
)

// Config holds scheduler parameters.
type Config struct {
	// Start is the room assumed current before the first hop.
	Start game.RoomName

	// MinDelay and MaxDelay bound the randomized hop interval
	// (inclusive). Inverted or negative bounds are clamped.
	MinDelay time.Duration
	MaxDelay time.Duration

	// Seed for the RNG. 0 means use current time.
	Seed int64
}

// DefaultConfig returns the standard wander parameters.
func DefaultConfig() Config {
	return Config{
		Start:    game.RoomLivingRoom,
		MinDelay: DefaultMinDelay,
		MaxDelay: DefaultMaxDelay,
	}
}

// StopFunc cancels a running scheduler. Safe to call multiple times.
// Must not be called from within the onMove callback.
type StopFunc func()

// Scheduler drives the pet's autonomous movement. All randomness lives
// here, behind a seedable source, so the reducer stays deterministic
// and tests can fix the sequence.
type Scheduler struct {
	cfg   Config
	rooms []game.RoomName

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewScheduler creates a scheduler over the fixed room set.
func NewScheduler(cfg Config) *Scheduler {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if !cfg.Start.Valid() {
		cfg.Start = game.RoomLivingRoom
	}
	return &Scheduler{
		cfg:   cfg,
		rooms: game.Rooms(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// ClampDelays normalizes interval bounds: min is raised to zero if
// negative, then max is raised to min, so the effective interval is
// always non-empty and non-negative.
func ClampDelays(min, max time.Duration) (time.Duration, time.Duration) {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return min, max
}

// nextDelay draws a delay uniformly from the clamped closed interval.
func (s *Scheduler) nextDelay() time.Duration {
	min, max := ClampDelays(s.cfg.MinDelay, s.cfg.MaxDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	return min + time.Duration(s.rng.Int63n(int64(max-min)+1))
}

// nextRoom picks a room uniformly at random, excluding the current one.
func (s *Scheduler) nextRoom(current game.RoomName) game.RoomName {
	candidates := make([]game.RoomName, 0, len(s.rooms))
	for _, room := range s.rooms {
		if room != current {
			candidates = append(candidates, room)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}

// Start begins the hop loop: wait a random delay, move to a random room
// other than the current one, report it via onMove, repeat. The loop
// runs until the returned StopFunc is called. Once stop returns, no
// further onMove calls happen, even for a hop that was already due.
func (s *Scheduler) Start(onMove func(game.RoomName)) StopFunc {
	r := &run{sched: s, onMove: onMove, current: s.cfg.Start}

	r.mu.Lock()
	r.timer = time.AfterFunc(s.nextDelay(), r.hop)
	r.mu.Unlock()

	return r.stop
}

// run is the state of one Start call. Each Start owns its own pending
// timer, so restarting the scheduler never leaks hops from an earlier
// run: its stop cancels only its own timer.
type run struct {
	sched  *Scheduler
	onMove func(game.RoomName)

	mu      sync.Mutex
	stopped bool
	timer   *time.Timer
	current game.RoomName
}

// hop fires on timer expiry: relocate the pet and schedule the next hop.
// onMove is invoked while holding mu, so stop blocks until an in-flight
// hop has been delivered.
func (r *run) hop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}

	next := r.sched.nextRoom(r.current)
	r.current = next
	r.onMove(next)

	r.timer = time.AfterFunc(r.sched.nextDelay(), r.hop)
}

// stop cancels the pending hop. Idempotent.
func (r *run) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}
