package game

import "dustward/internal/core"

// Trade governs the city-gate economy screen. Purchases are strictly
// one-way: flags never revert and the log counter never decreases. The
// token balance never goes negative; every buy is gated by an
// affordability check before any mutation.
type Trade struct {
	Pos core.Vec2

	Tokens          int
	LogsUnlocked    int // Monotonic counter 0..LogCount
	ToolUpgrade     bool
	CapacityUpgrade bool

	Selected int // Inventory slot pending sale, -1 when none

	// Token-counter animation: a short timer plus the sign of the last
	// balance change for the "+1"/"-n" readout.
	TokenAnim  float64
	TokenDelta int
}

func newTrade(pos core.Vec2) Trade {
	return Trade{Pos: pos, Selected: -1}
}

// LogCost returns the price of the next data log: base cost plus one per
// log already purchased.
func (w *World) LogCost() int {
	return w.cfg.Trade.LogBaseCost + w.Gate.LogsUnlocked
}

// Tradeable reports whether an inventory slot holds an item of sellable
// condition.
func (w *World) Tradeable(i int) bool {
	return w.slotOccupied(i) && w.Inv.Slots[i].Condition >= w.cfg.Trade.TradeableMin
}

// openTrade enters the trade screen. Only callable while no modal screen
// is open.
func (w *World) openTrade() {
	if w.Screen != ScreenNone {
		return
	}
	w.Screen = ScreenTrade
	w.Gate.Selected = -1
}

// closeTrade leaves the trade screen, dropping any pending selection.
func (w *World) closeTrade() {
	w.Gate.Selected = -1
	w.Screen = ScreenNone
}

// tradeToggleSlot selects or deselects a slot for sale. Only tradeable
// slots can be selected; clicking anything else has no effect.
func (w *World) tradeToggleSlot(i int) {
	if i == w.Gate.Selected {
		w.Gate.Selected = -1
		return
	}
	if w.Tradeable(i) {
		w.Gate.Selected = i
	}
}

// sellSelected removes the selected item and credits exactly one token.
// The selection is re-validated before the sale: the slot must still be
// occupied and tradeable.
func (w *World) sellSelected() {
	i := w.Gate.Selected
	if !w.Tradeable(i) {
		w.Gate.Selected = -1
		return
	}
	w.clearSlot(i)
	w.Gate.Selected = -1
	w.Gate.Tokens++
	w.Stats.TokensEarned++
	w.Stats.ItemsSold++
	w.animateTokens(+1)
}

// buyLog purchases the next data log and opens the viewer on it.
// Inert while all logs are owned or the balance is short.
func (w *World) buyLog() {
	cost := w.LogCost()
	if w.Gate.LogsUnlocked >= w.cfg.Trade.LogCount || w.Gate.Tokens < cost {
		return
	}
	w.Gate.Tokens -= cost
	w.Gate.LogsUnlocked++
	w.animateTokens(-cost)
	w.openLog(w.Gate.LogsUnlocked - 1)
}

// buyTool purchases the one-time repair tool upgrade.
func (w *World) buyTool() {
	if w.Gate.ToolUpgrade || w.Gate.Tokens < w.cfg.Trade.ToolCost {
		return
	}
	w.Gate.Tokens -= w.cfg.Trade.ToolCost
	w.Gate.ToolUpgrade = true
	w.animateTokens(-w.cfg.Trade.ToolCost)
}

// buyCapacity purchases the one-time pack upgrade. Occupied slots are
// retained; the new slots start empty.
func (w *World) buyCapacity() {
	if w.Gate.CapacityUpgrade || w.Gate.Tokens < w.cfg.Trade.CapacityCost {
		return
	}
	w.Gate.Tokens -= w.cfg.Trade.CapacityCost
	w.Gate.CapacityUpgrade = true
	w.Inv.Cap = w.cfg.Trade.UpgradedCapacity
	w.animateTokens(-w.cfg.Trade.CapacityCost)
}

func (w *World) animateTokens(delta int) {
	w.Gate.TokenAnim = w.cfg.Trade.TokenAnimTime
	w.Gate.TokenDelta = delta
}

// openLog switches from the trade screen to the log viewer.
func (w *World) openLog(index int) {
	if index < 0 || index >= w.Gate.LogsUnlocked {
		return
	}
	w.Screen = ScreenLog
	w.ViewingLog = index
}

// closeLog returns to the trade screen, the only place the viewer opens
// from.
func (w *World) closeLog() {
	w.ViewingLog = -1
	w.Screen = ScreenTrade
}

// handleTradeInput processes one tick of input while the trade screen is
// open.
func (w *World) handleTradeInput(in core.InputFrame) {
	if in.Escape {
		w.closeTrade()
		return
	}

	if in.Click {
		if i, ok := slotAt(in.PointerX, in.PointerY, w.Inv.Cap); ok {
			w.tradeToggleSlot(i)
			return
		}
		switch {
		case TradeSellButton().Contains(in.PointerX, in.PointerY):
			w.sellSelected()
		case TradeLogButton().Contains(in.PointerX, in.PointerY):
			w.buyLog()
		case TradeToolButton().Contains(in.PointerX, in.PointerY):
			w.buyTool()
		case TradeCapacityButton().Contains(in.PointerX, in.PointerY):
			w.buyCapacity()
		case logShelfAt(in.PointerX, in.PointerY, w.Gate.LogsUnlocked) >= 0:
			w.openLog(logShelfAt(in.PointerX, in.PointerY, w.Gate.LogsUnlocked))
		case CloseButton().Contains(in.PointerX, in.PointerY):
			w.closeTrade()
		}
		return
	}

	if in.Interact {
		w.sellSelected()
	}
}

// handleLogInput processes input while the log viewer is open.
func (w *World) handleLogInput(in core.InputFrame) {
	if in.Escape || in.Interact {
		w.closeLog()
		return
	}
	if in.Click && CloseButton().Contains(in.PointerX, in.PointerY) {
		w.closeLog()
	}
}

// handleInventoryInput processes input while the read-only inventory
// screen is open.
func (w *World) handleInventoryInput(in core.InputFrame) {
	if in.Escape || in.Inventory {
		w.Screen = ScreenNone
		return
	}
	if in.Click && CloseButton().Contains(in.PointerX, in.PointerY) {
		w.Screen = ScreenNone
	}
}
