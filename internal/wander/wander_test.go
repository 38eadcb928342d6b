package wander

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/pet-house/internal/game"
)

func TestClampDelays(t *testing.T) {
	cases := []struct {
		name             string
		min, max         time.Duration
		wantMin, wantMax time.Duration
	}{
		{"already valid", 15 * time.Second, 30 * time.Second, 15 * time.Second, 30 * time.Second},
		{"inverted", 30 * time.Second, 15 * time.Second, 30 * time.Second, 30 * time.Second},
		{"negative min", -5 * time.Second, 10 * time.Second, 0, 10 * time.Second},
		{"both negative", -5 * time.Second, -1 * time.Second, 0, 0},
		{"equal", time.Second, time.Second, time.Second, time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			min, max := ClampDelays(tc.min, tc.max)
			if min != tc.wantMin || max != tc.wantMax {
				t.Errorf("ClampDelays(%v, %v) = (%v, %v), want (%v, %v)",
					tc.min, tc.max, min, max, tc.wantMin, tc.wantMax)
			}
			if min > max {
				t.Errorf("Clamped interval is empty: min %v > max %v", min, max)
			}
		})
	}
}

func TestNextDelayWithinBounds(t *testing.T) {
	s := NewScheduler(Config{
		Start:    game.RoomLivingRoom,
		MinDelay: 10 * time.Millisecond,
		MaxDelay: 20 * time.Millisecond,
		Seed:     42,
	})

	for i := 0; i < 1000; i++ {
		d := s.nextDelay()
		if d < 10*time.Millisecond || d > 20*time.Millisecond {
			t.Fatalf("Delay %v outside [10ms, 20ms]", d)
		}
	}
}

func TestNextDelayInvertedBoundsClamped(t *testing.T) {
	s := NewScheduler(Config{
		Start:    game.RoomLivingRoom,
		MinDelay: 30 * time.Millisecond,
		MaxDelay: 15 * time.Millisecond,
		Seed:     42,
	})

	for i := 0; i < 100; i++ {
		if d := s.nextDelay(); d != 30*time.Millisecond {
			t.Fatalf("Expected clamped delay of exactly 30ms, got %v", d)
		}
	}
}

func TestNextRoomNeverRepeatsCurrent(t *testing.T) {
	s := NewScheduler(Config{Start: game.RoomLivingRoom, Seed: 7})

	current := game.RoomLivingRoom
	for i := 0; i < 200; i++ {
		next := s.nextRoom(current)
		if next == current {
			t.Fatalf("Hop %d: pet stayed in %q", i, current)
		}
		if !next.Valid() {
			t.Fatalf("Hop %d: unknown room %q", i, next)
		}
		current = next
	}
}

func TestRoomSequenceIsSeedDeterministic(t *testing.T) {
	sequence := func(seed int64) []game.RoomName {
		s := NewScheduler(Config{Start: game.RoomLivingRoom, Seed: seed})
		rooms := make([]game.RoomName, 0, 10)
		current := game.RoomLivingRoom
		for i := 0; i < 10; i++ {
			current = s.nextRoom(current)
			rooms = append(rooms, current)
		}
		return rooms
	}

	first, second := sequence(99), sequence(99)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Hop %d diverged: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestStartDeliversHops(t *testing.T) {
	s := NewScheduler(Config{
		Start:    game.RoomLivingRoom,
		MinDelay: time.Millisecond,
		MaxDelay: 2 * time.Millisecond,
		Seed:     1,
	})

	var mu sync.Mutex
	var moves []game.RoomName
	done := make(chan struct{})

	stop := s.Start(func(room game.RoomName) {
		mu.Lock()
		defer mu.Unlock()
		moves = append(moves, room)
		if len(moves) == 5 {
			close(done)
		}
	})
	defer stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for 5 hops")
	}
	stop()

	mu.Lock()
	defer mu.Unlock()
	// First hop must leave the starting room; later hops never repeat.
	previous := game.RoomLivingRoom
	for i, room := range moves[:5] {
		if room == previous {
			t.Errorf("Hop %d repeated room %q", i, room)
		}
		previous = room
	}
}

func TestStopPreventsFurtherHops(t *testing.T) {
	s := NewScheduler(Config{
		Start:    game.RoomLivingRoom,
		MinDelay: 5 * time.Millisecond,
		MaxDelay: 5 * time.Millisecond,
		Seed:     1,
	})

	var mu sync.Mutex
	count := 0
	stop := s.Start(func(game.RoomName) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	stop()

	mu.Lock()
	after := count
	mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != after {
		t.Errorf("Hops delivered after stop returned: %d -> %d", after, count)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler(Config{
		Start:    game.RoomLivingRoom,
		MinDelay: time.Millisecond,
		MaxDelay: time.Millisecond,
		Seed:     1,
	})

	stop := s.Start(func(game.RoomName) {})
	stop()
	stop()
	stop()
}

func TestRestartDoesNotLeakOldRun(t *testing.T) {
	s := NewScheduler(Config{
		Start:    game.RoomLivingRoom,
		MinDelay: time.Millisecond,
		MaxDelay: 2 * time.Millisecond,
		Seed:     1,
	})

	// First run is stopped immediately; the second must keep hopping.
	var mu sync.Mutex
	firstHops := 0
	stopFirst := s.Start(func(game.RoomName) {
		mu.Lock()
		firstHops++
		mu.Unlock()
	})
	stopFirst()

	mu.Lock()
	firstHopsAtStop := firstHops
	mu.Unlock()

	got := make(chan struct{})
	var once sync.Once
	stopSecond := s.Start(func(game.RoomName) {
		once.Do(func() { close(got) })
	})
	defer stopSecond()

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("Second run never hopped")
	}

	mu.Lock()
	defer mu.Unlock()
	if firstHops != firstHopsAtStop {
		t.Errorf("Stopped run kept hopping: %d -> %d", firstHopsAtStop, firstHops)
	}
}
