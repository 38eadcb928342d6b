package game

import "encoding/json"

// Default background references. Only the Living Room ships with decor;
// the other rooms start empty until the player redecorates them.
const (
	DefaultLivingRoomBackground = "/assets/living-room.jpg"
	DefaultEmptyBackground      = "/assets/empty.png"
)

// DefaultBackground returns the documented default background for a room.
func DefaultBackground(room RoomName) string {
	if room == RoomLivingRoom {
		return DefaultLivingRoomBackground
	}
	return DefaultEmptyBackground
}

// DefaultState returns the hard-coded boot state: pet and player both in
// the Living Room, all three rooms present, no minigame. Deterministic
// so every session starts identically before hydration.
func DefaultState() GameState {
	rooms := make(map[RoomName]RoomState, 3)
	for _, room := range Rooms() {
		rooms[room] = RoomState{BackgroundImage: DefaultBackground(room)}
	}
	return GameState{
		Pet:    PetState{CurrentRoom: RoomLivingRoom},
		Player: PlayerState{CurrentView: RoomLivingRoom},
		House:  HouseState{Rooms: rooms},
	}
}

// EncodeState serializes a state to its save-document JSON form.
func EncodeState(state GameState) ([]byte, error) {
	return json.Marshal(state)
}

// savedState mirrors GameState with pointer sections so a payload
// missing one of the required top-level sections can be detected.
type savedState struct {
	Pet      *PetState         `json:"pet"`
	Player   *PlayerState      `json:"player"`
	House    *HouseState       `json:"house"`
	Minigame *HideAndSeekState `json:"minigame"`
}

// DecodeState parses a save document defensively. A payload that is not
// valid JSON or is missing any of the pet/player/house sections is
// rejected (ok=false). Individual missing rooms are backfilled with the
// default backgrounds so hydration never yields a partial house; rooms
// present in the payload are preserved verbatim.
func DecodeState(data []byte) (GameState, bool) {
	var saved savedState
	if err := json.Unmarshal(data, &saved); err != nil {
		return GameState{}, false
	}
	if saved.Pet == nil || saved.Player == nil || saved.House == nil {
		return GameState{}, false
	}

	rooms := make(map[RoomName]RoomState, 3)
	for _, room := range Rooms() {
		if rs, ok := saved.House.Rooms[room]; ok {
			rooms[room] = rs
		} else {
			rooms[room] = RoomState{BackgroundImage: DefaultBackground(room)}
		}
	}

	return GameState{
		Pet:      *saved.Pet,
		Player:   *saved.Player,
		House:    HouseState{Rooms: rooms},
		Minigame: saved.Minigame,
	}, true
}
