package game

import (
	"fmt"
	"math"
	"strings"

	"dustward/internal/core"
)

// viewport maps between world space, the virtual UI space, and screen
// cells. The camera sits at the screen center; one screen always shows one
// virtual-sized window onto the world.
type viewport struct {
	sw, sh int
	cellW  float64 // Virtual px per cell, horizontal
	cellH  float64
	cam    core.Vec2
}

func newViewport(dst *core.Screen, cam core.Vec2) viewport {
	return viewport{
		sw:    dst.Width(),
		sh:    dst.Height(),
		cellW: VirtualW / float64(dst.Width()),
		cellH: VirtualH / float64(dst.Height()),
		cam:   cam,
	}
}

// toCell projects a world position to a screen cell.
func (v viewport) toCell(p core.Vec2) (int, int) {
	x := (p.X - v.cam.X + VirtualW/2) / v.cellW
	y := (p.Y - v.cam.Y + VirtualH/2) / v.cellH
	return int(math.Floor(x)), int(math.Floor(y))
}

// uiRect converts a virtual-space UI rect to a cell rect.
func (v viewport) uiRect(r core.RectF) core.Rect {
	x0 := int(math.Round(r.X / v.cellW))
	y0 := int(math.Round(r.Y / v.cellH))
	x1 := int(math.Round((r.X + r.W) / v.cellW))
	y1 := int(math.Round((r.Y + r.H) / v.cellH))
	return core.Rect{X: x0, Y: y0, W: core.Max(1, x1-x0), H: core.Max(1, y1-y0)}
}

// Render draws one settled frame: background bands, ground dressing,
// stations, items, effects, player, the storm overlay, the HUD, and
// finally whichever modal screen is open on top.
func (w *World) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst, w.Camera)

	w.drawDunes(dst, v)
	w.drawSkyline(dst, v)
	w.drawDecor(dst, v)
	w.drawGroundFX(dst, v)
	w.drawStations(dst, v)
	w.drawItems(dst, v)
	w.drawAirFX(dst, v)
	w.drawPlayer(dst, v)
	w.drawStorm(dst, v)
	w.drawHUD(dst)

	switch w.Screen {
	case ScreenInventory:
		w.drawInventoryScreen(dst, v)
	case ScreenWorkbench:
		w.drawWorkbenchScreen(dst, v)
	case ScreenTrade:
		w.drawTradeScreen(dst, v)
	case ScreenLog:
		w.drawLogScreen(dst, v)
	}
}

// sandColor is the base terrain color, dimmed at night.
func (w *World) sandColor() core.Color {
	if w.Day.IsNight() {
		return core.ColorDimGray
	}
	return core.ColorSand
}

func (w *World) drawDunes(dst *core.Screen, v viewport) {
	c := w.sandColor()
	for li, layer := range w.Dunes {
		// Deeper layers sit higher on screen and scroll slower.
		base := float64(v.sh) * (0.14 + 0.07*float64(li))
		for x := 0; x < v.sw; x++ {
			wx := w.Camera.X*layer.Depth + float64(x)*v.cellW + layer.Offset
			y := base + layer.Amplitude/v.cellH*math.Sin(2*math.Pi*wx/layer.Wavelength)
			dst.SetCell(x, int(y), '~', c)
		}
	}
}

func (w *World) drawSkyline(dst *core.Screen, v viewport) {
	// The city wall sits along the north edge; silhouettes only appear
	// once the camera gets close.
	if w.Camera.Y > w.cfg.World.EdgeMargin+VirtualH {
		return
	}
	baseY := w.cfg.World.EdgeMargin + 40
	for _, b := range w.Skyline {
		x0, y0 := v.toCell(core.V(b.X, baseY-b.Height))
		x1, y1 := v.toCell(core.V(b.X+b.Width, baseY))
		for y := core.Max(0, y0); y <= y1 && y < v.sh; y++ {
			for x := core.Max(0, x0); x <= x1 && x < v.sw; x++ {
				dst.SetCell(x, y, '▓', core.ColorDimGray)
			}
		}
	}
}

var decorGlyphs = map[DecorKind]struct {
	r rune
	c core.Color
}{
	DecorRock:  {'o', core.ColorGray},
	DecorScrub: {'"', core.ColorGreen},
	DecorBones: {'x', core.ColorWhite},
	DecorWreck: {'▣', core.ColorDimGray},
}

func (w *World) drawDecor(dst *core.Screen, v viewport) {
	for i := range w.Decor {
		d := &w.Decor[i]
		x, y := v.toCell(d.Pos)
		g := decorGlyphs[d.Kind]
		dst.SetCell(x, y, g.r, g.c)
	}
}

func (w *World) drawGroundFX(dst *core.Screen, v viewport) {
	for i := range w.FX.Footprints {
		f := &w.FX.Footprints[i]
		if f.Life <= 0 {
			continue
		}
		x, y := v.toCell(f.Pos)
		dst.SetCell(x, y, '.', core.ColorDimGray)
	}
	for i := range w.FX.Shimmers {
		s := &w.FX.Shimmers[i]
		if s.Life <= 0 {
			continue
		}
		x, y := v.toCell(s.Pos)
		r := '*'
		if int(s.Life*8)%2 == 0 {
			r = '+'
		}
		dst.SetCell(x, y, r, core.ColorBrightYellow)
	}
}

func (w *World) drawStations(dst *core.Screen, v viewport) {
	bx, by := v.toCell(w.Bench.Pos)
	dst.DrawTextColor(bx-1, by, "[╦]", core.ColorOrange)
	if w.Player.Pos.Dist(w.Bench.Pos) <= w.cfg.Workbench.Radius && w.Screen == ScreenNone {
		dst.DrawTextColor(bx-4, by-1, "WORKBENCH", core.ColorBrightWhite)
	}
	if w.Bench.Flash > 0 {
		dst.SetCell(bx, by-1, '✦', core.ColorBrightYellow)
	}

	gx, gy := v.toCell(w.Gate.Pos)
	dst.DrawTextColor(gx-2, gy, "║GATE║", core.ColorCyan)
	if w.Player.Pos.Dist(w.Gate.Pos) <= w.cfg.Trade.Radius && w.Screen == ScreenNone {
		dst.DrawTextColor(gx-4, gy-1, "CITY GATE", core.ColorBrightWhite)
	}
}

func (w *World) drawItems(dst *core.Screen, v viewport) {
	for i := range w.Items {
		it := &w.Items[i]
		if !it.Active {
			continue
		}
		x, y := v.toCell(it.Pos)
		t := Catalog[it.Type]
		dst.SetCell(x, y, '◆', t.Color)
		if w.Screen == ScreenNone && w.Player.Pos.Dist(it.Pos) <= w.cfg.Items.PickupRadius {
			dst.DrawTextColor(x-len(t.Name)/2, y-1, t.Name, core.ColorBrightWhite)
		}
	}
}

func (w *World) drawAirFX(dst *core.Screen, v viewport) {
	for i := range w.FX.Dust {
		d := &w.FX.Dust[i]
		if d.Life <= 0 {
			continue
		}
		x, y := v.toCell(d.Pos)
		dst.SetCell(x, y, '∘', w.sandColor())
	}
	for i := range w.FX.Wind {
		wl := &w.FX.Wind[i]
		if wl.Life <= 0 {
			continue
		}
		x, y := v.toCell(wl.Pos)
		n := core.Max(1, int(wl.Length/v.cellW))
		dst.DrawHLine(x, y, n, '-')
	}
}

func (w *World) drawPlayer(dst *core.Screen, v viewport) {
	px, py := v.toCell(w.Player.Pos)

	if !w.Day.IsNight() {
		off := w.Day.ShadowOffset()
		dst.SetCell(px+int(off.X/v.cellW), py+1, '░', core.ColorDimGray)
	}

	r := '@'
	if w.Player.Moving && int(w.Player.WalkPhase)%2 == 1 {
		r = '&'
	}
	dst.SetCell(px, py, r, core.ColorBrightWhite)
}

func (w *World) drawStorm(dst *core.Screen, v viewport) {
	if !w.Storm.InProgress() {
		return
	}
	// Particle count tracks the phase so the wall builds and fades.
	intensity := w.Storm.Phase()
	if w.Storm.State == StormActive {
		intensity = 1
	}
	n := int(float64(len(w.FX.StormDust)) * intensity)
	for i := 0; i < n; i++ {
		p := &w.FX.StormDust[i]
		if !p.Active {
			continue
		}
		x, y := v.toCell(p.Pos)
		dst.SetCell(x, y, '∙', w.sandColor())
	}
}

// dayClock formats the day phase as a 24h clock, with phase 0 at 06:00.
func (w *World) dayClock() string {
	mins := int(w.Day.Phase()*24*60+6*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

func (w *World) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" ◎ %d  pack %d/%d ", w.Gate.Tokens, w.Inv.Count(), w.Inv.Cap)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	if w.Gate.TokenAnim > 0 {
		sign := "+"
		if w.Gate.TokenDelta < 0 {
			sign = ""
		}
		dst.DrawTextColor(len(left)+2, 0, fmt.Sprintf("%s%d", sign, w.Gate.TokenDelta), core.ColorBrightYellow)
	}

	clock := w.dayClock()
	if w.Day.IsNight() {
		clock += " ☾"
	}
	dst.DrawTextColor(dst.Width()-len(clock)-2, 0, clock, core.ColorCyan)

	switch w.Storm.State {
	case StormBuilding:
		dst.DrawTextCentered(0, "! SANDSTORM APPROACHING !")
	case StormActive:
		dst.DrawTextCentered(0, "!! SANDSTORM !!")
	}

	if w.FullMsg > 0 {
		dst.DrawTextCentered(2, "[ PACK FULL ]")
	}
}

// drawPanel draws the shared modal frame and close button, returning the
// panel's cell rect for content layout.
func (w *World) drawPanel(dst *core.Screen, v viewport, title string) core.Rect {
	r := v.uiRect(PanelRect())
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextColor(r.X+2, r.Y, " "+title+" ", core.ColorBrightWhite)

	cb := v.uiRect(CloseButton())
	dst.DrawTextColor(cb.X, cb.Y, "[x]", core.ColorBrightRed)
	return r
}

// drawSlots renders the inventory grid shared by the overlay screens.
// mark returns an annotation rune for a slot, or 0 for none.
func (w *World) drawSlots(dst *core.Screen, v viewport, mark func(i int) rune) {
	for i := 0; i < w.Inv.Cap; i++ {
		r := v.uiRect(SlotRect(i))
		dst.DrawBox(r)

		s := &w.Inv.Slots[i]
		label := fmt.Sprintf("%d", (i+1)%10)
		dst.DrawTextColor(r.X+1, r.Y, label, core.ColorDimGray)

		if s.Occupied {
			t := Catalog[s.Type]
			dst.DrawTextColor(r.X+1, r.Y+1, clip(t.Name, r.W-2), t.Color)
			dst.DrawTextColor(r.X+1, r.Y+2, fmt.Sprintf("%3.0f%%", s.Condition*100), condColor(s.Condition))
		}

		if m := mark(i); m != 0 {
			dst.SetCell(r.Right()-2, r.Y, m, core.ColorBrightYellow)
		}
	}
}

func condColor(c float64) core.Color {
	switch {
	case c >= 0.8:
		return core.ColorBrightGreen
	case c >= 0.5:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (w *World) drawInventoryScreen(dst *core.Screen, v viewport) {
	r := w.drawPanel(dst, v, "PACK")
	w.drawSlots(dst, v, func(int) rune { return 0 })
	dst.DrawText(r.X+2, r.Bottom()-2, "i/esc close")
}

func (w *World) drawWorkbenchScreen(dst *core.Screen, v viewport) {
	r := w.drawPanel(dst, v, "WORKBENCH")
	w.drawSlots(dst, v, func(i int) rune {
		switch i {
		case w.Bench.RepairSlot:
			return 'R'
		case w.Bench.SacrificeSlot:
			return 'S'
		}
		return 0
	})

	btn := v.uiRect(WorkbenchRepairButton())
	dst.DrawBox(btn)
	if w.Bench.State == BenchRepairing {
		frac := w.Bench.Timer / w.cfg.Workbench.RepairTime
		fill := int(frac * float64(btn.W-2))
		dst.DrawHLine(btn.X+1, btn.Y+1, fill, '█')
		dst.DrawTextColor(btn.X+1, btn.Y, "REPAIRING", core.ColorBrightYellow)
	} else {
		dst.DrawTextColor(btn.X+1, btn.Y+1, fmt.Sprintf("REPAIR +%.0f%%", w.RepairBonus()*100), core.ColorBrightGreen)
	}

	dst.DrawText(r.X+2, r.Bottom()-2, "pick repair + sacrifice, matching category +10%")
}

func (w *World) drawTradeScreen(dst *core.Screen, v viewport) {
	r := w.drawPanel(dst, v, "CITY GATE")
	w.drawSlots(dst, v, func(i int) rune {
		if i == w.Gate.Selected {
			return '✓'
		}
		if w.Tradeable(i) {
			return '$'
		}
		return 0
	})

	drawButton := func(rf core.RectF, line1, line2 string, enabled bool) {
		b := v.uiRect(rf)
		dst.DrawBox(b)
		c := core.ColorBrightWhite
		if !enabled {
			c = core.ColorDimGray
		}
		dst.DrawTextColor(b.X+1, b.Y+1, clip(line1, b.W-2), c)
		dst.DrawTextColor(b.X+1, b.Y+2, clip(line2, b.W-2), c)
	}

	drawButton(TradeSellButton(), "SELL", "◎ 1", w.Tradeable(w.Gate.Selected))
	if w.Gate.LogsUnlocked < w.cfg.Trade.LogCount {
		drawButton(TradeLogButton(), "DATA LOG", fmt.Sprintf("◎ %d", w.LogCost()),
			w.Gate.Tokens >= w.LogCost())
	} else {
		drawButton(TradeLogButton(), "DATA LOG", "sold out", false)
	}
	if w.Gate.ToolUpgrade {
		drawButton(TradeToolButton(), "TOOL", "owned", false)
	} else {
		drawButton(TradeToolButton(), "TOOL", fmt.Sprintf("◎ %d", w.cfg.Trade.ToolCost),
			w.Gate.Tokens >= w.cfg.Trade.ToolCost)
	}
	if w.Gate.CapacityUpgrade {
		drawButton(TradeCapacityButton(), "PACK+", "owned", false)
	} else {
		drawButton(TradeCapacityButton(), "PACK+", fmt.Sprintf("◎ %d", w.cfg.Trade.CapacityCost),
			w.Gate.Tokens >= w.cfg.Trade.CapacityCost)
	}

	for i := 0; i < w.Gate.LogsUnlocked; i++ {
		b := v.uiRect(LogShelfRect(i))
		dst.DrawTextColor(b.X, b.Y, fmt.Sprintf("[log %d]", i+1), core.ColorCyan)
	}

	dst.DrawText(r.X+2, r.Bottom()-2, fmt.Sprintf("◎ %d   sellable at 80%% condition", w.Gate.Tokens))
}

func (w *World) drawLogScreen(dst *core.Screen, v viewport) {
	r := w.drawPanel(dst, v, "DATA LOG")
	if w.ViewingLog < 0 || w.ViewingLog >= len(DataLogs) {
		return
	}
	log := DataLogs[w.ViewingLog]
	dst.DrawTextColor(r.X+3, r.Y+2, log.Title, core.ColorBrightCyan)

	width := r.W - 6
	y := r.Y + 4
	for _, line := range wrapText(log.Body, width) {
		if y >= r.Bottom()-2 {
			break
		}
		dst.DrawText(r.X+3, y, line)
		y++
	}
	dst.DrawText(r.X+2, r.Bottom()-2, "esc back to trade")
}

// wrapText greedily wraps words to the given width.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
