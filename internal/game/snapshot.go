package game

// Snapshot is the complete game state in primitive types, used to compare
// runs for determinism. Timer accumulators are included so two runs that
// only differ in a partially elapsed period do not compare equal.
type Snapshot struct {
	Seed       int64
	NowMs      int64
	Score      int
	Life       int
	Over       bool
	Finished   bool
	IsFloorRow bool
	FPS        int

	FallPeriodMs  int64
	FallElapsedMs int64

	PlayerCol    int
	PlayerRow    int
	Invulnerable bool
	Parachute    bool
	Weight       bool
	Flashing     bool
	Visible      int
	Hidden       bool

	Damaging bool
	Red      bool

	// TimerElapsedNs holds the accumulated time of the player walk, flash,
	// shimmer and breaker timers, the gauge damage and flash timers and
	// the game-over epilogue, in that order.
	TimerElapsedNs []int64

	// Cells is the grid flattened row by row.
	Cells []int

	// Each effect is 5 ints: Kind, Col, Row, Frame, elapsed frame time in ns.
	EffectData []int

	HighScores []int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	cells := make([]int, 0, Width*Height)
	for row := range Height {
		for col := range Width {
			cells = append(cells, int(g.grid[row][col]))
		}
	}

	effects := make([]int, 0, len(g.effects)*5)
	for _, e := range g.effects {
		effects = append(effects, int(e.Kind), e.Col, e.Row, e.Frame, int(e.timer.Elapsed()))
	}

	p := g.player
	timers := []int64{
		int64(p.walk.Elapsed()),
		int64(p.flash.Elapsed()),
		int64(p.shimmer.Elapsed()),
		int64(p.breaker.Elapsed()),
		int64(g.gauge.damage.Elapsed()),
		int64(g.gauge.flash.Elapsed()),
		int64(g.epilogue.Elapsed()),
	}
	return Snapshot{
		Seed:       g.seed,
		NowMs:      g.now.Milliseconds(),
		Score:      g.score,
		Life:       g.life,
		Over:       g.over,
		Finished:   g.finished,
		IsFloorRow: g.isFloorRow,
		FPS:        g.fps,

		FallPeriodMs:  g.fall.Period().Milliseconds(),
		FallElapsedMs: g.fall.Elapsed().Milliseconds(),

		PlayerCol:    p.Col,
		PlayerRow:    p.Row,
		Invulnerable: p.Invulnerable,
		Parachute:    p.Parachute,
		Weight:       p.Weight,
		Flashing:     p.Flashing,
		Visible:      p.Visible,
		Hidden:       p.Hidden,

		Damaging: g.gauge.Damaging,
		Red:      g.gauge.Red,

		TimerElapsedNs: timers,

		Cells:      cells,
		EffectData: effects,
		HighScores: g.HighScores(),
	}
}

// Hash folds the snapshot into one number for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Seed)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NowMs) //#nosec G115 -- hash computation
	for _, v := range []int{snap.Score, snap.Life, snap.FPS, snap.PlayerCol, snap.PlayerRow, snap.Visible} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.FallPeriodMs)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FallElapsedMs) //#nosec G115 -- hash computation

	for _, b := range []bool{snap.Over, snap.Finished, snap.IsFloorRow, snap.Invulnerable,
		snap.Parachute, snap.Weight, snap.Flashing, snap.Hidden, snap.Damaging, snap.Red} {
		h *= 31
		if b {
			h++
		}
	}

	for _, v := range snap.TimerElapsedNs {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.HighScores {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
