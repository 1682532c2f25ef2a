package game

import (
	"time"

	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/core"
)

// Command is the discrete input for one update.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	default:
		return "unknown"
	}
}

// CommandFromInput collapses held actions into one command.
// Left is polled first, so it wins when both directions are held.
func CommandFromInput(in core.InputFrame) Command {
	switch {
	case in.Has(core.ActionLeft):
		return CommandLeft
	case in.Has(core.ActionRight):
		return CommandRight
	default:
		return CommandNone
	}
}

// ShimmerStates is the number of visible states cycled while invulnerable.
const ShimmerStates = 4

// Player is the falling figure.
type Player struct {
	Col, Row int

	Invulnerable bool
	Parachute    bool
	Weight       bool

	// Flashing alternates Visible between 0 and 1; invulnerability cycles it
	// through [0, ShimmerStates).
	Flashing bool
	Visible  int
	Hidden   bool

	InvulnStart time.Duration

	walk    core.Timer
	flash   core.Timer
	shimmer core.Timer
	breaker core.Timer
}

func newPlayer(t config.Timing) Player {
	return Player{
		Col:     startCol,
		Row:     startRow,
		walk:    core.NewTimer(config.Ms(t.WalkMs)),
		flash:   core.NewTimer(config.Ms(t.PlayerFlashMs)),
		shimmer: core.NewTimer(config.Ms(t.InvulnFlashMs)),
		breaker: core.NewTimer(config.Ms(t.HazardBreakMs)),
	}
}

func (p *Player) startFlashing() {
	p.Flashing = true
}

func (p *Player) stopFlashing() {
	p.Flashing = false
	p.Visible = 0
}

// animate runs the blink and shimmer cadences. Each timer only accumulates
// while its mode is on.
func (p *Player) animate(dt time.Duration) {
	if p.Flashing {
		p.flash.Advance(dt)
		for p.flash.Fired() {
			p.Visible = 1 - p.Visible%2
		}
	}
	if p.Invulnerable {
		p.shimmer.Advance(dt)
		for p.shimmer.Fired() {
			p.Visible = (p.Visible + 1) % ShimmerStates
		}
	}
}

func (g *Game) below() Cell {
	return g.grid.At(g.player.Col, g.player.Row+1)
}

func (g *Game) updatePlayer(cmd Command, dt time.Duration) {
	p := &g.player

	p.walk.Advance(dt)
	for p.walk.Fired() {
		g.step(cmd)
	}

	g.pickup()

	invulnFor := g.now - p.InvulnStart
	duration := config.Ms(g.cfg.Timing.InvulnDurationMs)

	if p.Weight && p.Invulnerable && invulnFor >= duration*time.Duration(g.cfg.Rules.WeightCancelPercent)/100 {
		p.Weight = false
		g.fall.SetPeriod(config.Ms(g.cfg.Timing.FallMs))
	}

	if p.Invulnerable && invulnFor >= duration {
		p.Invulnerable = false
		p.Visible = 0
		g.music = append(g.music, MusicResume)
	}

	if p.Parachute && !p.Invulnerable && g.below() == CellHazard {
		p.Parachute = false
		g.fall.SetPeriod(config.Ms(g.cfg.Timing.FallMs))
		g.sounds = append(g.sounds, SoundImpact)
		g.spawnEffect(EffectImpact, p.Col, p.Row)
	}

	g.breakBelow(dt)

	p.animate(dt)
}

func (g *Game) step(cmd Command) {
	p := &g.player
	col := p.Col
	switch cmd {
	case CommandLeft:
		col--
	case CommandRight:
		col++
	case CommandNone:
		return
	}
	if InBounds(col, p.Row) && g.grid.At(col, p.Row).Passable() {
		p.Col = col
	}
}

func (g *Game) pickup() {
	p := &g.player
	cell := g.grid.At(p.Col, p.Row)
	if !cell.PowerUp() {
		return
	}
	g.grid.Set(p.Col, p.Row, CellEmpty)

	switch cell {
	case CellInvuln:
		p.Invulnerable = true
		p.InvulnStart = g.now
		g.sounds = append(g.sounds, SoundInvuln)
		g.music = append(g.music, MusicPause)
	case CellParachute:
		p.Parachute = true
		p.Weight = false
		g.fall.SetPeriod(config.Ms(g.cfg.Timing.FallParachuteMs))
		g.sounds = append(g.sounds, SoundParachute)
	case CellWeight:
		p.Weight = true
		p.Parachute = false
		g.fall.SetPeriod(config.Ms(g.cfg.Timing.FallWeightMs))
		g.sounds = append(g.sounds, SoundWeight)
	}
}

// breakBelow destroys terrain under an invulnerable, weighted player.
// Ground goes at once; a hazard needs sustained contact.
func (g *Game) breakBelow(dt time.Duration) {
	p := &g.player
	if !p.Invulnerable || !p.Weight {
		p.breaker.Reset()
		return
	}

	switch g.below() {
	case CellGround:
		p.breaker.Reset()
		g.destroyBelow()
	case CellHazard:
		p.breaker.Advance(dt)
		if p.breaker.Fired() {
			p.breaker.Reset()
			g.destroyBelow()
		}
	default:
		p.breaker.Reset()
	}
}

func (g *Game) destroyBelow() {
	p := &g.player
	g.grid.Set(p.Col, p.Row+1, CellEmpty)
	g.sounds = append(g.sounds, SoundBreak)
	g.spawnEffect(EffectBreak, p.Col, p.Row+1)
}
