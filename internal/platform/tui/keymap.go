package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pet-house/internal/game"
)

// UIAction is a semantic input for the pet-house view, abstracted from
// physical key presses. This centralizes key bindings and makes them
// testable without a terminal.
type UIAction int

const (
	UIActionNone UIAction = iota
	UIActionQuit
	UIActionNextRoom // Tab/right arrow - cycle view forward
	UIActionPrevRoom // Shift+tab/left arrow - cycle view backward
	UIActionFeed     // F - feed the pet (Kitchen only)
	UIActionPlay     // P - start hide and seek (Living Room only)
	UIActionConfirm  // Enter - start the minigame round
	UIActionBack     // Esc - close the minigame / cancel
	UIActionDecorate // D - open the redecoration prompt
)

// KeyMapper translates Bubble Tea key messages to UI actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapViewingKey translates a key in the normal room view.
// The room pointer is set when the key selects a room directly.
func (km *KeyMapper) MapViewingKey(msg tea.KeyMsg) (UIAction, *game.RoomName) {
	switch msg.String() {
	case "ctrl+c", "q":
		return UIActionQuit, nil
	case "right", "l", "tab":
		return UIActionNextRoom, nil
	case "left", "h", "shift+tab":
		return UIActionPrevRoom, nil
	case "f":
		return UIActionFeed, nil
	case "p":
		return UIActionPlay, nil
	case "d":
		return UIActionDecorate, nil
	case "1", "2", "3":
		rooms := game.Rooms()
		room := rooms[int(msg.String()[0]-'1')]
		return UIActionNone, &room
	}
	return UIActionNone, nil
}

// MapMinigameKey translates a key while the hide-and-seek overlay is
// open. The object pointer is set when the key is a guess.
func (km *KeyMapper) MapMinigameKey(msg tea.KeyMsg) (UIAction, *game.HideAndSeekObject) {
	switch msg.String() {
	case "ctrl+c", "q":
		return UIActionQuit, nil
	case "enter", " ":
		return UIActionConfirm, nil
	case "e", "esc":
		return UIActionBack, nil
	case "1", "2", "3":
		objects := game.HidingObjects()
		object := objects[int(msg.String()[0]-'1')]
		return UIActionNone, &object
	}
	return UIActionNone, nil
}
