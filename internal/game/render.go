package game

import (
	"fmt"

	"github.com/vovakirdan/tui-down/internal/core"
)

// Screen layout in terminal cells.
const (
	fieldX   = 1
	sidebarX = fieldX + Width + 3
	barWidth = 16

	// ViewWidth and ViewHeight are the smallest screen Render fits on.
	ViewWidth  = sidebarX + barWidth + 2
	ViewHeight = Height
)

var (
	breakFrames  = []rune{'#', '%', '*', '+', '.', '·'}
	impactFrames = []rune{'X', 'x', '+', '·', '.'}
	shimmer      = [ShimmerStates]core.Color{core.ColorBrightYellow, core.ColorBrightCyan, core.ColorMagenta, core.ColorBrightWhite}
)

func (c Cell) glyph() (rune, core.Color) {
	switch c {
	case CellEmpty:
		return ' ', core.ColorDefault
	case CellGround:
		return '█', core.ColorGray
	case CellHazard:
		return '▲', core.ColorRed
	case CellInvuln:
		return '★', core.ColorYellow
	case CellParachute:
		return '☂', core.ColorCyan
	case CellWeight:
		return '●', core.ColorMagenta
	}
	panic(fmt.Sprintf("game: unknown cell kind %d", c))
}

func (e *Effect) glyph() (rune, core.Color) {
	switch e.Kind {
	case EffectBreak:
		return breakFrames[e.Frame%len(breakFrames)], core.ColorOrange
	case EffectImpact:
		return impactFrames[e.Frame%len(impactFrames)], core.ColorBrightRed
	}
	panic(fmt.Sprintf("game: unknown effect kind %d", e.Kind))
}

func (p *Player) glyph() (rune, core.Color) {
	r := '☻'
	if p.Weight {
		r = '▼'
	}
	switch {
	case p.Invulnerable:
		return r, shimmer[p.Visible%ShimmerStates]
	case p.Visible == 1:
		return r, core.ColorRed
	default:
		return r, core.ColorBrightWhite
	}
}

// Render draws the shaft and the sidebar into s.
func (g *Game) Render(s *core.Screen) {
	s.Clear()

	s.DrawVLine(fieldX-1, 0, Height, '│', core.ColorGray)
	s.DrawVLine(fieldX+Width, 0, Height, '│', core.ColorGray)

	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			r, c := g.grid[row][col].glyph()
			s.SetColored(fieldX+col, row, r, c)
		}
	}

	for _, e := range g.effects {
		r, c := e.glyph()
		s.SetColored(fieldX+e.Col, e.Row, r, c)
	}

	if p := &g.player; !p.Hidden {
		r, c := p.glyph()
		s.SetColored(fieldX+p.Col, p.Row, r, c)
		if p.Parachute {
			s.SetColored(fieldX+p.Col, p.Row-1, '☂', core.ColorCyan)
		}
	}

	if g.over {
		panel := core.NewRect(fieldX+1, Height/2-6, Width-2, 5)
		s.DrawRect(panel, ' ', core.ColorDefault)
		s.DrawBox(panel, core.ColorBrightRed)
		s.DrawTextCentered(panel, panel.Y+1, "GAME OVER", core.ColorBrightRed)
		if g.finished {
			s.DrawTextCentered(panel, panel.Y+3, "SPACE: RETRY", core.ColorWhite)
		}
	}

	g.renderSidebar(s)
}

func (g *Game) renderSidebar(s *core.Screen) {
	y := 0
	s.DrawTextColored(sidebarX, y, "SCORE RANKING", core.ColorYellow)
	y++
	for i := 0; i < g.cfg.Rules.HighScores; i++ {
		line := fmt.Sprintf("%2d  %8s", i+1, "--")
		if i < len(g.highScores) {
			line = fmt.Sprintf("%2d  %8d", i+1, g.highScores[i])
		}
		s.DrawTextColored(sidebarX, y, line, core.ColorWhite)
		y++
	}

	y++
	s.DrawTextColored(sidebarX, y, "SCORE", core.ColorYellow)
	s.DrawTextColored(sidebarX, y+1, fmt.Sprintf("%12d", g.score), core.ColorBrightWhite)
	y += 3

	s.DrawTextColored(sidebarX, y, "LIFE", core.ColorYellow)
	filled := barWidth * g.life / g.cfg.Rules.StartLife
	barColor := core.ColorGreen
	if g.gauge.Red {
		barColor = core.ColorBrightRed
	}
	s.DrawHLine(sidebarX, y+1, filled, '█', barColor)
	s.DrawHLine(sidebarX+filled, y+1, barWidth-filled, '░', core.ColorGray)
	y += 3

	s.DrawTextColored(sidebarX, y, fmt.Sprintf("FPS  %d", g.fps), core.ColorGray)
	s.DrawTextColored(sidebarX, y+1, fmt.Sprintf("SEED %d", g.seed), core.ColorGray)

	s.DrawTextColored(sidebarX, Height-1, "Ver."+Version, core.ColorGray)
}
