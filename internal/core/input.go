package core

// InputFrame is the abstracted input state the simulation consumes for one
// tick. The platform layer builds it from keyboard and mouse events; the
// simulation never sees raw key codes.
//
// Direction fields are level-triggered (held), everything else is
// edge-triggered and valid for a single tick only.
type InputFrame struct {
	// Held movement directions.
	Up, Down, Left, Right bool

	// Interact is the contextual action press: pick up, open the nearest
	// station, or confirm inside a modal screen.
	Interact bool

	// Inventory toggles the inventory screen.
	Inventory bool

	// Escape closes the open modal screen (refused mid-repair).
	Escape bool

	// Click is the primary pointer press. PointerX/PointerY are in virtual
	// screen coordinates (1280x720), the same space the simulation lays its
	// UI rects out in.
	Click              bool
	PointerX, PointerY float64

	// DT is the elapsed time for this tick in seconds.
	DT float64
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Dir returns the normalized movement vector for the held directions.
// Diagonals are unit length, not sqrt(2).
func (f InputFrame) Dir() Vec2 {
	var v Vec2
	if f.Up {
		v.Y -= 1
	}
	if f.Down {
		v.Y += 1
	}
	if f.Left {
		v.X -= 1
	}
	if f.Right {
		v.X += 1
	}
	return v.Normalized()
}

// AnyDir reports whether any movement direction is held.
func (f InputFrame) AnyDir() bool {
	return f.Up || f.Down || f.Left || f.Right
}

// ClearEdges resets the edge-triggered fields after a tick, keeping the
// held directions for the next frame.
func (f *InputFrame) ClearEdges() {
	f.Interact = false
	f.Inventory = false
	f.Escape = false
	f.Click = false
}
