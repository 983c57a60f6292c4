package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dustward/internal/core"
	"dustward/internal/game"
)

// holdTicks is how many simulation ticks a direction stays held after a
// key event. Terminals report key repeats but never key release, so each
// press arms a short hold window that repeats keep refreshing.
const holdTicks = 9

// direction indices into the hold array.
const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
)

// KeyMapper translates Bubble Tea key and mouse messages into input
// frames. It owns the held-direction emulation state, so one mapper per
// session.
type KeyMapper struct {
	hold [4]int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey applies a key message to the pending input frame.
// Returns true for a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return true

	case "w", "up":
		km.hold[dirUp] = holdTicks
	case "s", "down":
		km.hold[dirDown] = holdTicks
	case "a", "left":
		km.hold[dirLeft] = holdTicks
	case "d", "right":
		km.hold[dirRight] = holdTicks

	case "e", " ", "enter":
		frame.Interact = true
	case "i", "tab":
		frame.Inventory = true
	case "esc":
		frame.Escape = true

	// Screen shortcuts click fixed points in the shared overlay layout;
	// the open screen decides what, if anything, sits there.
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		clickRect(frame, game.SlotRect(int(key[0]-'1')))
	case "0":
		clickRect(frame, game.SlotRect(9))
	case "r":
		clickRect(frame, game.WorkbenchRepairButton())
	case "t":
		clickRect(frame, game.TradeSellButton())
	case "l":
		clickRect(frame, game.TradeLogButton())
	case "u":
		clickRect(frame, game.TradeToolButton())
	case "p":
		clickRect(frame, game.TradeCapacityButton())
	case "x":
		clickRect(frame, game.CloseButton())
	}

	return false
}

// clickRect synthesizes a pointer click at the center of a UI rect.
func clickRect(frame *core.InputFrame, r core.RectF) {
	frame.Click = true
	frame.PointerX, frame.PointerY = r.Center()
}

// MapMouse applies a mouse message to the pending input frame, converting
// terminal cell coordinates to virtual screen coordinates.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, screenW, screenH int, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if screenW <= 0 || screenH <= 0 {
		return
	}
	frame.Click = true
	frame.PointerX = (float64(msg.X) + 0.5) * game.VirtualW / float64(screenW)
	frame.PointerY = (float64(msg.Y) + 0.5) * game.VirtualH / float64(screenH)
}

// Tick decays the hold windows and writes the held directions into the
// frame. Call once per simulation tick before stepping.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for i := range km.hold {
		if km.hold[i] > 0 {
			km.hold[i]--
		}
	}
	frame.Up = km.hold[dirUp] > 0
	frame.Down = km.hold[dirDown] > 0
	frame.Left = km.hold[dirLeft] > 0
	frame.Right = km.hold[dirRight] > 0
}
