package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pet-house/internal/core"
	"github.com/vovakirdan/pet-house/internal/game"
)

// petSprite is the resident drawn into whichever room the player and
// the pet share.
var petSprite = []string{
	` /\_/\ `,
	`( o.o )`,
	` > ^ < `,
}

// furniture per room, drawn along the floor.
var roomFurniture = map[game.RoomName][]string{
	game.RoomLivingRoom: {
		`  ____________        _   `,
		` /|          |\      (+)  `,
		`(_|  couch   |_)      |   `,
		`   ~~~rug~~~         _|_  `,
	},
	game.RoomKitchen: {
		`  ___________   ______ `,
		` |  o  o  o  | |      |`,
		` |___________| | frdg |`,
		`  |         |  |______|`,
	},
	game.RoomBedroom: {
		`  ______________ `,
		` |  ( zzz )     |`,
		` |______________|`,
		`  ||          || `,
	},
}

// DrawScene renders the current room view into the screen buffer.
// feedTicks > 0 plays the transient feeding effect near the pet.
func DrawScene(dst *core.Screen, state game.GameState, feedTicks int) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 10 {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorYellow)
		return
	}

	drawRoomTabs(dst, state)

	view := state.Player.CurrentView

	// Room frame below the tab bar, above the two help lines.
	top, bottom := 2, h-3
	dst.DrawBox(0, top, w, bottom-top, core.ColorGray)
	dst.DrawText(2, top, " "+string(view)+" ", core.ColorCyan)

	decor := describeBackground(state.House.Rooms[view].BackgroundImage)
	dst.DrawText(w-len(decor)-3, top, " "+decor+" ", core.ColorGray)

	drawFurniture(dst, view, bottom)

	if state.Pet.CurrentRoom == view {
		drawPet(dst, w/4, bottom-2-len(petSprite), feedTicks)
	} else {
		hint := fmt.Sprintf("paw prints lead toward the %s...", state.Pet.CurrentRoom)
		dst.DrawText(3, top+2, hint, core.ColorGray)
	}

	if state.Minigame != nil {
		drawMinigameOverlay(dst, *state.Minigame)
	}
}

// drawRoomTabs renders the navigation bar with the current view
// highlighted and the pet's room marked with a paw.
func drawRoomTabs(dst *core.Screen, state game.GameState) {
	x := 1
	for i, room := range game.Rooms() {
		label := fmt.Sprintf("[%d] %s", i+1, room)
		if room == state.Pet.CurrentRoom {
			label += " •"
		}
		color := core.ColorGray
		if room == state.Player.CurrentView {
			color = core.ColorYellow
		}
		dst.DrawText(x, 0, label, color)
		x += len([]rune(label)) + 3
	}
}

func drawFurniture(dst *core.Screen, room game.RoomName, floor int) {
	art := roomFurniture[room]
	startY := floor - 1 - len(art)
	x := dst.Width() - dst.Width()/3 - 10
	for i, line := range art {
		dst.DrawText(x, startY+i, line, core.ColorBlue)
	}
}

func drawPet(dst *core.Screen, x, y int, feedTicks int) {
	for i, line := range petSprite {
		dst.DrawText(x, y+i, line, core.ColorMagenta)
	}
	if feedTicks > 0 {
		// Alternate frames so the munching reads as motion.
		effect := "♥ nom nom nom ♥"
		if (feedTicks/4)%2 == 0 {
			effect = "♥ nom  nom  nom ♥"
		}
		dst.DrawText(x-4, y-1, effect, core.ColorRed)
	}
}

// drawMinigameOverlay renders the hide-and-seek dialog over the scene.
func drawMinigameOverlay(dst *core.Screen, mg game.HideAndSeekState) {
	w, h := dst.Width(), dst.Height()
	boxW, boxH := 44, 7
	if boxW > w-2 {
		boxW = w - 2
	}
	x, y := (w-boxW)/2, (h-boxH)/2

	dst.FillRect(x, y, boxW, boxH, core.Cell{Rune: ' '})
	dst.DrawBox(x, y, boxW, boxH, core.ColorYellow)
	dst.DrawText(x+2, y, " Hide & Seek ", core.ColorYellow)

	message := mg.Message
	if mg.Status == game.StatusIdle {
		message = "Get ready!"
	}
	dst.DrawText(x+2, y+2, message, core.ColorWhite)

	switch mg.Status {
	case game.StatusIdle:
		dst.DrawText(x+2, y+4, "[enter] Start   [esc] Close", core.ColorGray)
	case game.StatusFound:
		dst.DrawText(x+2, y+4, "[esc] Close", core.ColorGray)
	default:
		var labels []string
		for i, object := range game.HidingObjects() {
			labels = append(labels, fmt.Sprintf("[%d] %s", i+1, object))
		}
		dst.DrawText(x+2, y+4, strings.Join(labels, "  "), core.ColorGray)
	}
}

// describeBackground turns a background reference into a short label;
// terminals cannot show the image itself.
func describeBackground(ref string) string {
	switch {
	case ref == "":
		return "no decor"
	case ref == game.DefaultEmptyBackground:
		return "bare walls"
	case strings.HasPrefix(ref, "data:"):
		return "custom decor"
	default:
		// Keep just the file name of a URL/path reference.
		if i := strings.LastIndex(ref, "/"); i >= 0 && i < len(ref)-1 {
			return ref[i+1:]
		}
		return ref
	}
}
