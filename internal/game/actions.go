package game

// Action is the sealed union of game actions consumed by Reduce.
// The marker method keeps the set closed to this package.
type Action interface {
	gameAction()
}

// NavigateAction moves the player's view to a room.
type NavigateAction struct {
	Room RoomName
}

func (NavigateAction) gameAction() {}

// PetMovedAction relocates the pet. Produced only by the wander
// scheduler, never by direct user input.
type PetMovedAction struct {
	Room RoomName
}

func (PetMovedAction) gameAction() {}

// FeedAction feeds the pet. Feeding is cosmetic: the reducer enforces
// the Kitchen guard but never changes state; the visual effect travels
// over the event bus.
type FeedAction struct{}

func (FeedAction) gameAction() {}

// PlayWithPetAction opens a hide-and-seek session when the player and
// the pet are both in the Living Room.
type PlayWithPetAction struct{}

func (PlayWithPetAction) gameAction() {}

// StartMinigameAction begins the guessing phase of an open session.
type StartMinigameAction struct{}

func (StartMinigameAction) gameAction() {}

// GuessHidingSpotAction guesses where the pet is hiding.
type GuessHidingSpotAction struct {
	Guess HideAndSeekObject
}

func (GuessHidingSpotAction) gameAction() {}

// EndMinigameAction closes the current session, if any.
type EndMinigameAction struct{}

func (EndMinigameAction) gameAction() {}

// UpdateRoomLookAction replaces one room's background image.
type UpdateRoomLookAction struct {
	Room            RoomName
	BackgroundImage string
}

func (UpdateRoomLookAction) gameAction() {}
