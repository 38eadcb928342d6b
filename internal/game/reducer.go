package game

// Minigame messages shown to the player.
const (
	MessagePrompt   = "Where did I hide?"
	MessageFound    = "You found me!"
	MessageTryAgain = "Try again!"
)

// Reduce is the pure transition function of the game. Given a state and
// an action it returns the next state; it performs no I/O, consults no
// randomness, and never mutates its input. Actions whose guard is not
// satisfied, and unrecognized actions, return the input unchanged.
func Reduce(state GameState, action Action) GameState {
	switch a := action.(type) {
	case NavigateAction:
		state.Player = PlayerState{CurrentView: a.Room}
		return state

	case PetMovedAction:
		state.Pet = PetState{CurrentRoom: a.Room}
		return state

	case FeedAction:
		// Guard only: feeding never changes state. The feed animation
		// is a UI concern delivered over the event bus.
		return state

	case PlayWithPetAction:
		if !state.CanPlay() {
			return state
		}
		state.Minigame = &HideAndSeekState{
			HidingSpot: ObjectCouch,
			Status:     StatusIdle,
			Message:    "",
		}
		return state

	case StartMinigameAction:
		if state.Minigame == nil {
			return state
		}
		state.Minigame = &HideAndSeekState{
			HidingSpot: state.Minigame.HidingSpot,
			Status:     StatusPlaying,
			Message:    MessagePrompt,
		}
		return state

	case GuessHidingSpotAction:
		if state.Minigame == nil {
			return state
		}
		next := HideAndSeekState{HidingSpot: state.Minigame.HidingSpot}
		if a.Guess == state.Minigame.HidingSpot {
			next.Status = StatusFound
			next.Message = MessageFound
		} else {
			next.Status = StatusPlaying
			next.Message = MessageTryAgain
		}
		state.Minigame = &next
		return state

	case EndMinigameAction:
		state.Minigame = nil
		return state

	case UpdateRoomLookAction:
		rooms := make(map[RoomName]RoomState, len(state.House.Rooms))
		for room, rs := range state.House.Rooms {
			rooms[room] = rs
		}
		rooms[a.Room] = RoomState{BackgroundImage: a.BackgroundImage}
		state.House = HouseState{Rooms: rooms}
		return state

	default:
		return state
	}
}
