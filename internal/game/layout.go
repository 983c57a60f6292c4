package game

import "dustward/internal/core"

// Modal screen layout in virtual coordinates. All overlays share one
// centered panel and one close button; hit testing and rendering both go
// through these rects, and the platform keymap reads them to synthesize
// clicks from keyboard shortcuts.

const (
	panelX = 190.0
	panelY = 80.0
	panelW = 900.0
	panelH = 560.0

	slotSize = 96.0
	slotGap  = 16.0
	slotCols = 5
	slotY    = 160.0
)

// PanelRect is the shared modal panel frame.
func PanelRect() core.RectF {
	return core.RectF{X: panelX, Y: panelY, W: panelW, H: panelH}
}

// CloseButton is the shared close control in the panel's top-right corner.
func CloseButton() core.RectF {
	return core.RectF{X: panelX + panelW - 60, Y: panelY + 16, W: 44, H: 32}
}

// SlotRect returns the hit rect of inventory slot i in the shared slot
// grid, five slots per row.
func SlotRect(i int) core.RectF {
	col := i % slotCols
	row := i / slotCols
	gridW := slotCols*slotSize + (slotCols-1)*slotGap
	x := panelX + (panelW-gridW)/2 + float64(col)*(slotSize+slotGap)
	y := slotY + float64(row)*(slotSize+slotGap)
	return core.RectF{X: x, Y: y, W: slotSize, H: slotSize}
}

// slotAt returns the index of the usable slot under the pointer, if any.
func slotAt(x, y float64, cap int) (int, bool) {
	for i := 0; i < cap; i++ {
		if SlotRect(i).Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// WorkbenchRepairButton is the repair trigger on the workbench screen.
func WorkbenchRepairButton() core.RectF {
	return core.RectF{X: panelX + panelW/2 - 100, Y: 480, W: 200, H: 56}
}

// Trade screen buttons, one row along the panel's lower third.

func TradeSellButton() core.RectF {
	return core.RectF{X: 250, Y: 480, W: 180, H: 56}
}

func TradeLogButton() core.RectF {
	return core.RectF{X: 450, Y: 480, W: 180, H: 56}
}

func TradeToolButton() core.RectF {
	return core.RectF{X: 650, Y: 480, W: 180, H: 56}
}

func TradeCapacityButton() core.RectF {
	return core.RectF{X: 850, Y: 480, W: 180, H: 56}
}

// LogShelfRect returns the hit rect of purchased log i on the trade
// screen's reread shelf.
func LogShelfRect(i int) core.RectF {
	return core.RectF{X: 250 + float64(i)*130, Y: 556, W: 120, H: 40}
}

// logShelfAt returns the index of the purchased log under the pointer,
// or -1.
func logShelfAt(x, y float64, unlocked int) int {
	for i := 0; i < unlocked; i++ {
		if LogShelfRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}
