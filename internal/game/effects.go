package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/core"
)

// EffectKind selects the animation of a transient marker.
type EffectKind uint8

const (
	EffectBreak  EffectKind = iota // terrain destroyed
	EffectImpact                   // parachute torn on a hazard
)

func (k EffectKind) String() string {
	switch k {
	case EffectBreak:
		return "break"
	case EffectImpact:
		return "impact"
	}
	return fmt.Sprintf("EffectKind(%d)", k)
}

func (k EffectKind) spec(e config.Effects) config.EffectSpec {
	switch k {
	case EffectBreak:
		return e.Break
	case EffectImpact:
		return e.Impact
	}
	panic(fmt.Sprintf("game: unknown effect kind %d", k))
}

// Effect is a visual marker that scrolls with the terrain. It never
// affects gameplay.
type Effect struct {
	Kind  EffectKind
	Col   int
	Row   int
	Frame int
	Dead  bool

	frames int
	timer  core.Timer
}

func (g *Game) spawnEffect(kind EffectKind, col, row int) {
	spec := kind.spec(g.cfg.Effects)
	g.effects = append(g.effects, &Effect{
		Kind:   kind,
		Col:    col,
		Row:    row,
		frames: spec.Frames,
		timer:  core.NewTimer(config.Ms(spec.PeriodMs)),
	})
}

func (g *Game) updateEffects(dt time.Duration) {
	for _, e := range g.effects {
		if e.Dead {
			continue
		}
		e.timer.Advance(dt)
		for e.timer.Fired() {
			e.Frame++
			if e.Frame >= e.frames {
				e.Dead = true
				break
			}
		}
	}
}

func (g *Game) scrollEffects() {
	for _, e := range g.effects {
		e.Row--
		if e.Row <= 0 {
			e.Dead = true
		}
	}
}

func (g *Game) purgeEffects() {
	live := g.effects[:0]
	for _, e := range g.effects {
		if !e.Dead {
			live = append(live, e)
		}
	}
	clear(g.effects[len(live):])
	g.effects = live
}
