package game

import "testing"

func TestNavigateChangesOnlyPlayerView(t *testing.T) {
	state := DefaultState()

	next := Reduce(state, NavigateAction{Room: RoomKitchen})

	if next.Player.CurrentView != RoomKitchen {
		t.Errorf("Expected player view Kitchen, got %q", next.Player.CurrentView)
	}
	if next.Pet.CurrentRoom != RoomLivingRoom {
		t.Errorf("Navigate must not move the pet, got %q", next.Pet.CurrentRoom)
	}
	if state.Player.CurrentView != RoomLivingRoom {
		t.Error("Reduce mutated its input state")
	}
}

func TestPetMovedChangesOnlyPetRoom(t *testing.T) {
	state := DefaultState()

	next := Reduce(state, PetMovedAction{Room: RoomBedroom})

	if next.Pet.CurrentRoom != RoomBedroom {
		t.Errorf("Expected pet in Bedroom, got %q", next.Pet.CurrentRoom)
	}
	if next.Player.CurrentView != RoomLivingRoom {
		t.Errorf("PetMoved must not change the player view, got %q", next.Player.CurrentView)
	}
}

func TestFeedIsAlwaysANoOp(t *testing.T) {
	// Guard satisfied: both in the Kitchen. Still no state change.
	state := DefaultState()
	state = Reduce(state, NavigateAction{Room: RoomKitchen})
	state = Reduce(state, PetMovedAction{Room: RoomKitchen})

	if !state.CanFeed() {
		t.Fatal("Setup failed: feeding should be possible")
	}

	next := Reduce(state, FeedAction{})
	if !next.Equal(state) {
		t.Error("Feed changed state even though feeding is cosmetic")
	}
}

func TestFeedGuardUnmetIsNoOp(t *testing.T) {
	state := DefaultState()
	state = Reduce(state, NavigateAction{Room: RoomBedroom})
	state = Reduce(state, PetMovedAction{Room: RoomKitchen})

	next := Reduce(state, FeedAction{})
	if !next.Equal(state) {
		t.Error("Feed with unmet guard must leave state unchanged")
	}
}

func TestPlayWithPetCreatesSession(t *testing.T) {
	state := DefaultState() // both start in the Living Room

	next := Reduce(state, PlayWithPetAction{})

	if next.Minigame == nil {
		t.Fatal("Expected an active minigame session")
	}
	if next.Minigame.HidingSpot != ObjectCouch {
		t.Errorf("Expected hiding spot Couch, got %q", next.Minigame.HidingSpot)
	}
	if next.Minigame.Status != StatusIdle {
		t.Errorf("Expected status idle, got %q", next.Minigame.Status)
	}
	if next.Minigame.Message != "" {
		t.Errorf("Expected empty message, got %q", next.Minigame.Message)
	}
	if state.Minigame != nil {
		t.Error("Reduce mutated its input state")
	}
}

func TestPlayWithPetGuardUnmetIsNoOp(t *testing.T) {
	state := DefaultState()
	state = Reduce(state, PetMovedAction{Room: RoomKitchen})

	next := Reduce(state, PlayWithPetAction{})
	if next.Minigame != nil {
		t.Error("PlayWithPet must fail silently when the pet is elsewhere")
	}
	if !next.Equal(state) {
		t.Error("PlayWithPet with unmet guard must be a no-op")
	}
}

func TestStartMinigame(t *testing.T) {
	state := Reduce(DefaultState(), PlayWithPetAction{})

	next := Reduce(state, StartMinigameAction{})

	if next.Minigame == nil || next.Minigame.Status != StatusPlaying {
		t.Fatalf("Expected status playing, got %+v", next.Minigame)
	}
	if next.Minigame.Message != MessagePrompt {
		t.Errorf("Expected message %q, got %q", MessagePrompt, next.Minigame.Message)
	}
}

func TestStartMinigameWithoutSessionIsNoOp(t *testing.T) {
	state := DefaultState()
	next := Reduce(state, StartMinigameAction{})
	if !next.Equal(state) {
		t.Error("StartMinigame without an active session must be a no-op")
	}
}

func TestGuessWrongKeepsPlaying(t *testing.T) {
	state := Reduce(DefaultState(), PlayWithPetAction{})
	state = Reduce(state, StartMinigameAction{})

	// Repeated wrong guesses never mutate the hiding spot.
	for i := 0; i < 5; i++ {
		state = Reduce(state, GuessHidingSpotAction{Guess: ObjectLamp})
		if state.Minigame.Status != StatusPlaying {
			t.Fatalf("Guess %d: expected status playing, got %q", i, state.Minigame.Status)
		}
		if state.Minigame.Message != MessageTryAgain {
			t.Errorf("Guess %d: expected message %q, got %q", i, MessageTryAgain, state.Minigame.Message)
		}
		if state.Minigame.HidingSpot != ObjectCouch {
			t.Fatalf("Guess %d: hiding spot changed to %q", i, state.Minigame.HidingSpot)
		}
	}
}

func TestGuessCorrectAfterWrongGuesses(t *testing.T) {
	state := Reduce(DefaultState(), PlayWithPetAction{})
	state = Reduce(state, StartMinigameAction{})
	state = Reduce(state, GuessHidingSpotAction{Guess: ObjectRug})
	state = Reduce(state, GuessHidingSpotAction{Guess: ObjectLamp})

	state = Reduce(state, GuessHidingSpotAction{Guess: ObjectCouch})

	if state.Minigame.Status != StatusFound {
		t.Errorf("Expected status found, got %q", state.Minigame.Status)
	}
	if state.Minigame.Message != MessageFound {
		t.Errorf("Expected message %q, got %q", MessageFound, state.Minigame.Message)
	}
}

func TestGuessWithoutSessionIsNoOp(t *testing.T) {
	state := DefaultState()
	next := Reduce(state, GuessHidingSpotAction{Guess: ObjectCouch})
	if !next.Equal(state) {
		t.Error("Guess without an active session must be a no-op")
	}
}

func TestEndMinigameClearsSession(t *testing.T) {
	state := Reduce(DefaultState(), PlayWithPetAction{})
	next := Reduce(state, EndMinigameAction{})
	if next.Minigame != nil {
		t.Error("EndMinigame must clear the session")
	}

	// Ending with no session is also fine.
	again := Reduce(next, EndMinigameAction{})
	if again.Minigame != nil {
		t.Error("EndMinigame without a session must stay nil")
	}
}

func TestUpdateRoomLookTouchesOnlyTargetRoom(t *testing.T) {
	state := DefaultState()

	next := Reduce(state, UpdateRoomLookAction{
		Room:            RoomKitchen,
		BackgroundImage: "data:image/png;base64,abc",
	})

	if got := next.House.Rooms[RoomKitchen].BackgroundImage; got != "data:image/png;base64,abc" {
		t.Errorf("Kitchen background not updated, got %q", got)
	}
	if got := next.House.Rooms[RoomLivingRoom].BackgroundImage; got != DefaultLivingRoomBackground {
		t.Errorf("Living Room background changed to %q", got)
	}
	if got := next.House.Rooms[RoomBedroom].BackgroundImage; got != DefaultEmptyBackground {
		t.Errorf("Bedroom background changed to %q", got)
	}
	// Input state keeps its own room map.
	if got := state.House.Rooms[RoomKitchen].BackgroundImage; got != DefaultEmptyBackground {
		t.Errorf("Reduce mutated the input room map, got %q", got)
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	actions := []Action{
		NavigateAction{Room: RoomKitchen},
		PetMovedAction{Room: RoomKitchen},
		FeedAction{},
		NavigateAction{Room: RoomLivingRoom},
		PetMovedAction{Room: RoomLivingRoom},
		PlayWithPetAction{},
		StartMinigameAction{},
		GuessHidingSpotAction{Guess: ObjectLamp},
		GuessHidingSpotAction{Guess: ObjectCouch},
		EndMinigameAction{},
		UpdateRoomLookAction{Room: RoomBedroom, BackgroundImage: "x"},
	}

	run := func() GameState {
		state := DefaultState()
		for _, a := range actions {
			state = Reduce(state, a)
		}
		return state
	}

	first, second := run(), run()
	if !first.Equal(second) {
		t.Errorf("Two identical runs diverged:\n%+v\nvs\n%+v", first, second)
	}
}

func TestFeedThenNavigateScenario(t *testing.T) {
	// Start with both in the Kitchen, feed, then walk away.
	state := DefaultState()
	state = Reduce(state, NavigateAction{Room: RoomKitchen})
	state = Reduce(state, PetMovedAction{Room: RoomKitchen})
	before := state.Clone()

	state = Reduce(state, FeedAction{})
	if !state.Equal(before) {
		t.Error("Feed must leave the state identical")
	}

	state = Reduce(state, NavigateAction{Room: RoomLivingRoom})
	if state.Player.CurrentView != RoomLivingRoom {
		t.Errorf("Expected view Living Room, got %q", state.Player.CurrentView)
	}
	if state.Pet.CurrentRoom != RoomKitchen {
		t.Errorf("Pet must stay in the Kitchen, got %q", state.Pet.CurrentRoom)
	}
}
