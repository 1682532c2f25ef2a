package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/core"
)

// roll succeeds when a [0,100) draw is <= percent, so a setting of N
// succeeds with probability (N+1)/100.
func roll(rng *rand.Rand, percent int) bool {
	return rng.Intn(100) <= percent
}

// generateFloor writes one run of ground or hazard onto the bottom row and
// returns its start column and kind.
func generateFloor(grid *Grid, rng *rand.Rand, rules config.Rules) (int, Cell) {
	start := rng.Intn(Width+RunWidth) - RunWidth
	start = core.Clamp(start, 0, Width-RunWidth)

	kind := CellGround
	if roll(rng, rules.HazardPercent) {
		kind = CellHazard
	}

	grid.FillRun(Height-1, start, RunWidth, kind)
	return start, kind
}

// placeItem may put a power-up one row above a fresh run. The item roll is
// drawn before the hazard check so the random stream does not depend on
// the run kind.
func placeItem(grid *Grid, rng *rand.Rand, rules config.Rules, start int, kind Cell) (Cell, bool) {
	if !roll(rng, rules.ItemPercent) || kind == CellHazard {
		return CellEmpty, false
	}

	item := pickItem(rng.Intn(100), rules.ItemSplit)
	grid.Set(start+RunWidth/2, Height-2, item)
	return item, true
}

func pickItem(r int, split config.ItemSplit) Cell {
	switch {
	case r <= split.Invuln:
		return CellInvuln
	case r <= split.Parachute:
		return CellParachute
	default:
		return CellWeight
	}
}
