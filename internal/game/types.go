// Package game contains the pure state machine for the pet house:
// the state types, the action union, and the reducer. It has no external
// dependencies (especially no Bubble Tea) so the rules stay testable
// and deterministic.
package game

// RoomName identifies one of the three rooms of the house.
// The set is closed; there are no dynamic rooms.
type RoomName string

const (
	RoomLivingRoom RoomName = "Living Room"
	RoomKitchen    RoomName = "Kitchen"
	RoomBedroom    RoomName = "Bedroom"
)

// Rooms returns all rooms in display order.
func Rooms() []RoomName {
	return []RoomName{RoomLivingRoom, RoomKitchen, RoomBedroom}
}

// Valid reports whether the room is one of the three known rooms.
func (r RoomName) Valid() bool {
	switch r {
	case RoomLivingRoom, RoomKitchen, RoomBedroom:
		return true
	}
	return false
}

// HideAndSeekObject is a clickable object for the hide-and-seek minigame.
type HideAndSeekObject string

const (
	ObjectCouch HideAndSeekObject = "Couch"
	ObjectLamp  HideAndSeekObject = "Lamp"
	ObjectRug   HideAndSeekObject = "Rug"
)

// HidingObjects returns the guessable objects in display order.
func HidingObjects() []HideAndSeekObject {
	return []HideAndSeekObject{ObjectCouch, ObjectLamp, ObjectRug}
}

// MinigameStatus tracks the phase of a hide-and-seek session.
// Serialized lowercase for save-file compatibility.
type MinigameStatus string

const (
	StatusIdle    MinigameStatus = "idle"
	StatusPlaying MinigameStatus = "playing"
	StatusFound   MinigameStatus = "found"
)

// RoomState holds the per-room decor. BackgroundImage is a URL or data URI.
type RoomState struct {
	BackgroundImage string `json:"backgroundImage"`
}

// HouseState maps every room to its state. After construction or
// hydration the map always contains exactly the three known rooms.
type HouseState struct {
	Rooms map[RoomName]RoomState `json:"rooms"`
}

// PetState tracks where the pet currently is.
type PetState struct {
	CurrentRoom RoomName `json:"currentRoom"`
}

// PlayerState tracks which room the player is looking at.
type PlayerState struct {
	CurrentView RoomName `json:"currentView"`
}

// HideAndSeekState is the state of one minigame session.
// HidingSpot never changes for the lifetime of the session.
type HideAndSeekState struct {
	HidingSpot HideAndSeekObject `json:"hidingSpot"`
	Status     MinigameStatus    `json:"status"`
	Message    string            `json:"message"`
}

// GameState is the root state owned by the session orchestrator.
// Minigame is nil except while a hide-and-seek session is active.
type GameState struct {
	Pet      PetState          `json:"pet"`
	Player   PlayerState       `json:"player"`
	House    HouseState        `json:"house"`
	Minigame *HideAndSeekState `json:"minigame"`
}

// Clone returns a deep copy of the state. The reducer never mutates its
// input, so callers that hold onto a state value use Clone to detach
// from the shared room map.
func (s GameState) Clone() GameState {
	out := s
	out.House.Rooms = make(map[RoomName]RoomState, len(s.House.Rooms))
	for room, rs := range s.House.Rooms {
		out.House.Rooms[room] = rs
	}
	if s.Minigame != nil {
		mg := *s.Minigame
		out.Minigame = &mg
	}
	return out
}

// Equal reports whether two states are semantically identical.
// Used by the session to detect no-op dispatches.
func (s GameState) Equal(other GameState) bool {
	if s.Pet != other.Pet || s.Player != other.Player {
		return false
	}
	if len(s.House.Rooms) != len(other.House.Rooms) {
		return false
	}
	for room, rs := range s.House.Rooms {
		if other.House.Rooms[room] != rs {
			return false
		}
	}
	if (s.Minigame == nil) != (other.Minigame == nil) {
		return false
	}
	if s.Minigame != nil && *s.Minigame != *other.Minigame {
		return false
	}
	return true
}

// CanFeed reports whether feeding is currently possible: both the player
// and the pet must be in the Kitchen.
func (s GameState) CanFeed() bool {
	return s.Player.CurrentView == RoomKitchen && s.Pet.CurrentRoom == RoomKitchen
}

// CanPlay reports whether a hide-and-seek session can start: both the
// player and the pet must be in the Living Room.
func (s GameState) CanPlay() bool {
	return s.Player.CurrentView == RoomLivingRoom && s.Pet.CurrentRoom == RoomLivingRoom
}
