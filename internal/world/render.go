package world

import "github.com/vovakirdan/tui-sandbox/internal/core"

// Render draws every tile and then every entity into dst with the top-left
// grid cell at screen position (ox, oy). Each tile spans two screen columns
// and the top grid row is drawn first. Off-screen cells are clipped.
func (w *World) Render(dst *core.Screen, ox, oy int) {
	for y := 0; y < w.height; y++ {
		sy := oy + (w.height - 1 - y)
		for x := 0; x < w.width; x++ {
			g := w.tiles[w.index(P(x, y))].Glyph()
			dst.SetCell(ox+2*x, sy, g[0])
			dst.SetCell(ox+2*x+1, sy, g[1])
		}
	}

	for _, h := range w.order {
		e, ok := w.Entity(h)
		if !ok {
			continue
		}
		p := w.ToTile(e.Pos)
		if !w.InBounds(p) {
			continue
		}
		g := e.Glyph()
		sy := oy + (w.height - 1 - p.Y)
		dst.SetCell(ox+2*p.X, sy, g[0])
		dst.SetCell(ox+2*p.X+1, sy, g[1])
	}
}

// Glyph returns the two screen cells an entity is drawn with.
func (e *Entity) Glyph() [2]core.Cell {
	if !e.Alive() {
		return [2]core.Cell{{Rune: 'x', Color: core.ColorRed}, {Rune: 'x', Color: core.ColorRed}}
	}
	return [2]core.Cell{{Rune: '(', Color: core.ColorBrightYellow}, {Rune: ')', Color: core.ColorBrightYellow}}
}
