// Package game is the simulation core: a frame-rate independent state
// machine driven by a command and an elapsed delta per call. It owns the
// shaft, the player, the damage gauge and the effect list, and reports
// sound cues and music commands through queues the shell drains.
package game

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/core"
)

// Version is shown in the sidebar and reported by the CLI.
const Version = "1.0.0"

// Sound cue identifiers.
const (
	SoundDamage    = "damage.wav"
	SoundInvuln    = "muteki.wav"
	SoundParachute = "getpara.wav"
	SoundWeight    = "getomori.wav"
	SoundImpact    = "spank.wav"
	SoundBreak     = "break.wav"
	SoundFoot      = "foot.wav"
	SoundGameOver  = "gameover.wav"
)

// Music commands.
const (
	MusicHalt   = "halt"
	MusicPause  = "pause"
	MusicResume = "resume"
)

// Game is one play session. A restart discards it and builds a new one.
type Game struct {
	cfg    config.DownConfig
	logger *log.Logger
	seed   int64
	rng    *rand.Rand

	grid    Grid
	player  Player
	gauge   Gauge
	effects []*Effect

	fall     core.Timer
	epilogue core.Timer

	over       bool
	finished   bool
	isFloorRow bool

	life       int
	score      int
	highScores []int

	now      time.Duration
	fpsTime  time.Duration
	fpsCount int
	fps      int

	sounds []string
	music  []string
}

// Option configures a new Game.
type Option func(*Game)

// WithSeed fixes the random seed. Zero keeps the wall-clock default.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithLogger sets the logger used for the seed and game-over lines.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithConfig replaces the default tuning.
func WithConfig(cfg config.DownConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithHighScores seeds the ranking, e.g. from the previous session.
func WithHighScores(scores []int) Option {
	return func(g *Game) {
		g.highScores = slices.Clone(scores)
	}
}

// New builds a game ready for its first Update. It panics on an invalid
// configuration; callers validate user-supplied settings beforehand.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultDownConfig(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}

	if g.seed == 0 {
		g.seed = time.Now().Unix()
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.logger.Info("random seed", "seed", g.seed)

	t := g.cfg.Timing
	g.player = newPlayer(t)
	g.gauge = newGauge(t)
	g.fall = core.NewTimer(config.Ms(t.FallMs))
	g.epilogue = core.NewTimer(config.Ms(t.GameOverMs))
	g.life = g.cfg.Rules.StartLife
	g.sortHighScores()

	generateFloor(&g.grid, g.rng, g.cfg.Rules)
	return g
}

// Update advances the simulation by dt with the given command.
func (g *Game) Update(cmd Command, dt time.Duration) {
	if dt < 0 {
		panic(fmt.Sprintf("game: negative frame delta %v", dt))
	}
	g.now += dt
	g.countFPS(dt)

	if g.over {
		g.updateEpilogue(dt)
		return
	}

	g.updatePlayer(cmd, dt)
	g.updateDamage(dt)
	g.updateEffects(dt)

	g.fall.Advance(dt)
	for g.fall.Fired() {
		g.scroll()
	}
	g.purgeEffects()

	if g.life <= 0 {
		g.gameOver()
	}
}

// scroll moves the shaft up one row unless the player is standing on
// something solid.
func (g *Game) scroll() bool {
	if !g.below().Passable() {
		return false
	}

	g.grid.ShiftUp()
	g.scrollEffects()

	if g.isFloorRow {
		start, kind := generateFloor(&g.grid, g.rng, g.cfg.Rules)
		placeItem(&g.grid, g.rng, g.cfg.Rules, start, kind)
	}
	g.isFloorRow = !g.isFloorRow

	if g.below() == CellGround {
		g.sounds = append(g.sounds, SoundFoot)
	}
	g.score++
	return true
}

func (g *Game) gameOver() {
	g.over = true
	g.music = append(g.music, MusicHalt)
	g.sounds = append(g.sounds, SoundGameOver)
	g.player.startFlashing()
	g.logger.Info("game over", "score", g.score, "seed", g.seed, "elapsed", g.now)
}

// updateEpilogue runs the game-over countdown. Terrain and score stay
// frozen; only the player keeps blinking until the countdown fires once.
func (g *Game) updateEpilogue(dt time.Duration) {
	if g.finished {
		return
	}
	g.player.animate(dt)

	g.epilogue.Advance(dt)
	if g.epilogue.Fired() {
		g.finished = true
		g.player.Hidden = true
		g.insertHighScore(g.score)
	}
}

func (g *Game) insertHighScore(score int) {
	g.highScores = append(g.highScores, score)
	g.sortHighScores()
}

func (g *Game) sortHighScores() {
	slices.SortFunc(g.highScores, func(a, b int) int { return b - a })
	if n := g.cfg.Rules.HighScores; len(g.highScores) > n {
		g.highScores = g.highScores[:n]
	}
}

func (g *Game) countFPS(dt time.Duration) {
	window := config.Ms(g.cfg.Timing.FPSWindowMs)
	g.fpsTime += dt
	g.fpsCount++
	if g.fpsTime >= window {
		g.fps = g.fpsCount
		g.fpsTime -= window
		g.fpsCount = 0
	}
}

// DrainSounds returns the queued sound cues in order and clears the queue.
func (g *Game) DrainSounds() []string {
	out := g.sounds
	g.sounds = nil
	return out
}

// DrainMusic returns the queued music commands in order and clears the queue.
func (g *Game) DrainMusic() []string {
	out := g.music
	g.music = nil
	return out
}

// Seed returns the random seed, for reproducing a run.
func (g *Game) Seed() int64 { return g.seed }

// Grid returns a copy of the shaft.
func (g *Game) Grid() Grid { return g.grid }

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// Gauge returns a copy of the damage gauge.
func (g *Game) Gauge() Gauge { return g.gauge }

// Effects returns copies of the live effects.
func (g *Game) Effects() []Effect {
	out := make([]Effect, 0, len(g.effects))
	for _, e := range g.effects {
		out = append(out, *e)
	}
	return out
}

// Life returns the remaining life, 0..100.
func (g *Game) Life() int { return g.life }

// Score returns the number of successful scrolls.
func (g *Game) Score() int { return g.score }

// IsOver reports whether life ran out.
func (g *Game) IsOver() bool { return g.over }

// Finished reports whether the game-over epilogue has played out.
func (g *Game) Finished() bool { return g.finished }

// FPS returns the invocation count of the last full counter window.
func (g *Game) FPS() int { return g.fps }

// Now returns the simulation clock.
func (g *Game) Now() time.Duration { return g.now }

// FallPeriod returns the current scroll cadence.
func (g *Game) FallPeriod() time.Duration { return g.fall.Period() }

// HighScores returns the ranking, highest first.
func (g *Game) HighScores() []int { return slices.Clone(g.highScores) }

// State summarizes the game for the shell.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Life:     g.life,
		GameOver: g.over,
		Finished: g.finished,
	}
}
