package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pet-house/internal/core"
	"github.com/vovakirdan/pet-house/internal/events"
	"github.com/vovakirdan/pet-house/internal/game"
	"github.com/vovakirdan/pet-house/internal/imagegen"
	"github.com/vovakirdan/pet-house/internal/session"
)

// feedEffectTicks is how many render ticks the feeding effect lingers.
const feedEffectTicks = 36

// statusTicksDefault is how many ticks a footer status message lingers.
const statusTicksDefault = 120

// stateMsg carries a fresh state snapshot from the session.
type stateMsg game.GameState

// busMsg carries a cosmetic event from the session's event bus.
type busMsg struct {
	event events.Event
}

// genResultMsg carries the outcome of an async room image generation.
type genResultMsg struct {
	room  game.RoomName
	image string
	err   error
}

// Model is the Bubble Tea model for the interactive pet house.
type Model struct {
	sess   *session.Session
	gen    *imagegen.Client
	keys   *KeyMapper
	screen *core.Screen

	state     game.GameState
	feedTicks int
	tickRate  int

	decorInput  textinput.Model
	decorating  bool
	generating  bool
	statusLine  string
	statusTicks int

	eventCh chan events.Event
	unsub   func()

	quitting bool
}

// NewModel creates a Bubble Tea model bound to a running session.
// gen may be nil when no image backend is configured.
func NewModel(sess *session.Session, gen *imagegen.Client, width, height, tickRate int) Model {
	ti := textinput.New()
	ti.Placeholder = "a cozy scandinavian living room"
	ti.CharLimit = 300

	eventCh := make(chan events.Event, 8)
	unsub := sess.Events().Subscribe(func(e events.Event) {
		select {
		case eventCh <- e:
		default:
		}
	})

	return Model{
		sess:       sess,
		gen:        gen,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(width, height),
		state:      sess.State(),
		tickRate:   tickRate,
		decorInput: ti,
		eventCh:    eventCh,
		unsub:      unsub,
	}
}

// Init starts the render loop and the session listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tickRate),
		m.waitForState(),
		m.waitForEvent(),
	)
}

// waitForState returns a command that waits for session state updates.
func (m Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		st, ok := <-m.sess.Updates()
		if !ok {
			return nil
		}
		return stateMsg(st)
	}
}

// waitForEvent returns a command that waits for bus events.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-m.eventCh
		if !ok {
			return nil
		}
		return busMsg{event: evt}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case stateMsg:
		m.state = game.GameState(msg)
		return m, m.waitForState()

	case busMsg:
		switch evt := msg.event.(type) {
		case events.FedEvent:
			m.feedTicks = feedEffectTicks
		case events.PetMovedEvent:
			if evt.To != m.state.Player.CurrentView {
				m.setStatus(fmt.Sprintf("you hear pattering toward the %s", evt.To))
			}
		}
		return m, m.waitForEvent()

	case genResultMsg:
		m.generating = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("decoration failed: %v", msg.err))
			return m, nil
		}
		m.sess.Dispatch(game.UpdateRoomLookAction{
			Room:            msg.room,
			BackgroundImage: msg.image,
		})
		m.setStatus(fmt.Sprintf("the %s has a new look", msg.room))
		return m, nil

	case TickMsg:
		if m.feedTicks > 0 {
			m.feedTicks--
		}
		if m.statusTicks > 0 {
			m.statusTicks--
			if m.statusTicks == 0 {
				m.statusLine = ""
			}
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey routes keyboard input by interaction mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.decorating {
		return m.handleDecorateKey(msg)
	}
	if m.state.Minigame != nil {
		return m.handleMinigameKey(msg)
	}
	return m.handleViewingKey(msg)
}

func (m Model) handleViewingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, room := m.keys.MapViewingKey(msg)
	if room != nil {
		m.sess.Dispatch(game.NavigateAction{Room: *room})
		return m, nil
	}

	switch action {
	case UIActionQuit:
		return m.quit()
	case UIActionNextRoom:
		m.sess.Dispatch(game.NavigateAction{Room: cycleRoom(m.state.Player.CurrentView, 1)})
	case UIActionPrevRoom:
		m.sess.Dispatch(game.NavigateAction{Room: cycleRoom(m.state.Player.CurrentView, -1)})
	case UIActionFeed:
		if m.state.CanFeed() {
			m.sess.Dispatch(game.FeedAction{})
		} else {
			m.setStatus("feeding only works when you are both in the Kitchen")
		}
	case UIActionPlay:
		if m.state.CanPlay() {
			m.sess.Dispatch(game.PlayWithPetAction{})
		} else {
			m.setStatus("hide and seek only starts when you are both in the Living Room")
		}
	case UIActionDecorate:
		if m.gen == nil {
			m.setStatus("no image backend configured")
			return m, nil
		}
		if m.generating {
			m.setStatus("still painting the previous request")
			return m, nil
		}
		m.decorating = true
		m.decorInput.Reset()
		m.decorInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleMinigameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, guess := m.keys.MapMinigameKey(msg)
	if guess != nil {
		if m.state.Minigame.Status == game.StatusPlaying {
			m.sess.Dispatch(game.GuessHidingSpotAction{Guess: *guess})
		}
		return m, nil
	}

	switch action {
	case UIActionQuit:
		return m.quit()
	case UIActionConfirm:
		if m.state.Minigame.Status == game.StatusIdle {
			m.sess.Dispatch(game.StartMinigameAction{})
		}
	case UIActionBack:
		m.sess.Dispatch(game.EndMinigameAction{})
	}
	return m, nil
}

func (m Model) handleDecorateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.decorating = false
		m.decorInput.Blur()
		return m, nil
	case "enter":
		prompt := m.decorInput.Value()
		room := m.state.Player.CurrentView
		m.decorating = false
		m.decorInput.Blur()
		if prompt == "" {
			m.setStatus("describe the new look first")
			return m, nil
		}
		m.generating = true
		m.setStatus(fmt.Sprintf("painting the %s...", room))
		return m, m.generateCmd(prompt, room)
	}

	var cmd tea.Cmd
	m.decorInput, cmd = m.decorInput.Update(msg)
	return m, cmd
}

// generateCmd runs the room image request off the update loop.
func (m Model) generateCmd(prompt string, room game.RoomName) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), imagegen.DefaultTimeout)
		defer cancel()
		image, err := gen.GenerateRoomImage(ctx, prompt, room, nil)
		return genResultMsg{room: room, image: image, err: err}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.unsub != nil {
		m.unsub()
	}
	return m, tea.Quit
}

func (m *Model) setStatus(text string) {
	m.statusLine = text
	m.statusTicks = statusTicksDefault
}

// cycleRoom steps through the canonical room order, wrapping around.
func cycleRoom(current game.RoomName, step int) game.RoomName {
	rooms := game.Rooms()
	for i, room := range rooms {
		if room == current {
			return rooms[(i+step+len(rooms))%len(rooms)]
		}
	}
	return rooms[0]
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.state, m.feedTicks)
	m.drawFooter()
	return RenderScreen(m.screen)
}

// drawFooter renders the help and status lines under the room frame.
func (m *Model) drawFooter() {
	h := m.screen.Height()

	help := "←/→ rooms   [f]eed   [p]lay   [d]ecorate   [q]uit"
	switch {
	case m.decorating:
		help = "describe the new look, [enter] to paint, [esc] to cancel"
	case m.state.Minigame != nil:
		help = "pick a hiding spot with [1]-[3], [esc] to stop playing"
	case m.generating:
		help = "painting the room, hang tight..."
	}
	m.screen.DrawText(1, h-2, help, core.ColorGray)

	if m.decorating {
		m.screen.DrawText(1, h-1, "> "+m.decorInput.Value()+"█", core.ColorWhite)
	} else if m.statusLine != "" {
		m.screen.DrawText(1, h-1, m.statusLine, core.ColorOrange)
	}
}

// Run starts the Bubble Tea program for an interactive session.
func Run(sess *session.Session, gen *imagegen.Client, width, height, tickRate int) error {
	model := NewModel(sess, gen, width, height, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
