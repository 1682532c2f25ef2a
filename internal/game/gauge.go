package game

import (
	"time"

	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/core"
)

// Gauge tracks an ongoing damage episode and drives the life bar pulse.
type Gauge struct {
	Damaging bool
	Flashing bool
	Red      bool

	damage core.Timer
	flash  core.Timer
}

func newGauge(t config.Timing) Gauge {
	return Gauge{
		damage: core.NewTimer(config.Ms(t.DamageMs)),
		flash:  core.NewTimer(config.Ms(t.GaugeFlashMs)),
	}
}

func (g *Game) updateDamage(dt time.Duration) {
	gauge := &g.gauge

	if g.below() == CellHazard && !g.player.Invulnerable {
		if !gauge.Damaging {
			gauge.Damaging = true
			gauge.Flashing = true
			g.player.startFlashing()
		}

		gauge.damage.Advance(dt)
		for gauge.damage.Fired() {
			if g.life > 0 {
				g.life--
				g.sounds = append(g.sounds, SoundDamage)
			}
		}

		gauge.flash.Advance(dt)
		for gauge.flash.Fired() {
			gauge.Red = !gauge.Red
		}
		return
	}

	if gauge.Damaging {
		gauge.Damaging = false
		gauge.Flashing = false
		gauge.Red = false
		gauge.damage.Reset()
		g.player.stopFlashing()
	}
}
