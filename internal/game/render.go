package game

import (
	"fmt"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// hudHeight is the number of screen rows above the world.
const hudHeight = 1

// Render draws the HUD and the world into dst. The world is centered
// horizontally below the HUD line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	ox := max((dst.Width()-2*g.world.Width())/2, 0)
	g.world.Render(dst, ox, hudHeight)

	s := g.State()
	hpColor := core.ColorBrightGreen
	switch {
	case !s.Alive:
		hpColor = core.ColorRed
	case s.Health*2 <= s.MaxHealth:
		hpColor = core.ColorBrightYellow
	}
	hp := fmt.Sprintf("HP %d/%d", s.Health, s.MaxHealth)
	dst.DrawTextColored(0, 0, hp, hpColor)

	info := fmt.Sprintf("  mode %s  pos %s  tick %d  deaths %d", s.Mode, s.Player, s.Tick, s.Deaths)
	dst.DrawTextColored(len(hp), 0, info, core.ColorWhite)

	status := ""
	switch {
	case !s.Alive:
		status = "DEAD - press R to respawn"
	case s.Paused:
		status = "PAUSED"
	}
	if status != "" {
		y := hudHeight + g.world.Height()
		if y >= dst.Height() {
			y = dst.Height() - 1
		}
		dst.DrawTextCentered(y, status)
	}
}
