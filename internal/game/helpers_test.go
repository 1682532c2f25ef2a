package game

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

const ms = time.Millisecond

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	base := []Option{WithSeed(42), WithLogger(log.New(io.Discard))}
	return New(append(base, opts...)...)
}

// fillBelow replaces the row under the player with c.
func fillBelow(g *Game, c Cell) {
	g.grid[g.player.Row+1] = [Width]Cell{}
	g.grid.FillRun(g.player.Row+1, 0, Width, c)
}

func count(list []string, want string) int {
	n := 0
	for _, s := range list {
		if s == want {
			n++
		}
	}
	return n
}

// seqSource feeds rand.Intn a scripted sequence of small draws.
type seqSource struct {
	vals []int64
	i    int
}

func (s *seqSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v << 32
}

func (s *seqSource) Seed(int64) {}

func scripted(vals ...int64) (*rand.Rand, *seqSource) {
	src := &seqSource{vals: vals}
	return rand.New(src), src
}
