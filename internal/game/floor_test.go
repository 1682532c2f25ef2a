package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-down/internal/config"
)

func TestGenerateFloorScripted(t *testing.T) {
	rules := config.DefaultDownConfig().Rules

	tests := []struct {
		name      string
		draws     []int64
		wantStart int
		wantKind  Cell
	}{
		{"clamped left", []int64{0, 30}, 0, CellHazard},
		{"clamped right", []int64{22, 31}, Width - RunWidth, CellGround},
		{"middle", []int64{10, 99}, 5, CellGround},
		{"hazard boundary is inclusive", []int64{12, 30}, 7, CellHazard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var grid Grid
			rng, _ := scripted(tc.draws...)

			start, kind := generateFloor(&grid, rng, rules)
			if start != tc.wantStart || kind != tc.wantKind {
				t.Fatalf("generateFloor() = (%d, %v), expected (%d, %v)", start, kind, tc.wantStart, tc.wantKind)
			}
			for col := 0; col < Width; col++ {
				want := CellEmpty
				if col >= start && col < start+RunWidth {
					want = kind
				}
				if got := grid.At(col, Height-1); got != want {
					t.Errorf("bottom row col %d = %v, expected %v", col, got, want)
				}
			}
		})
	}
}

func TestGenerateFloorBounds(t *testing.T) {
	rules := config.DefaultDownConfig().Rules
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		var grid Grid
		start, kind := generateFloor(&grid, rng, rules)
		if start < 0 || start > Width-RunWidth {
			t.Fatalf("start %d outside [0, %d]", start, Width-RunWidth)
		}
		n := 0
		for col := 0; col < Width; col++ {
			c := grid.At(col, Height-1)
			if c == CellEmpty {
				continue
			}
			if c != kind {
				t.Fatalf("run mixes %v and %v", c, kind)
			}
			n++
		}
		if n != RunWidth {
			t.Fatalf("run has %d cells, expected %d", n, RunWidth)
		}
	}
}

func TestPlaceItemScripted(t *testing.T) {
	rules := config.DefaultDownConfig().Rules

	tests := []struct {
		name   string
		kind   Cell
		draws  []int64
		want   Cell
		placed bool
		used   int
	}{
		{"invuln at split edge", CellGround, []int64{15, 33}, CellInvuln, true, 2},
		{"parachute", CellGround, []int64{0, 34}, CellParachute, true, 2},
		{"parachute at split edge", CellGround, []int64{7, 66}, CellParachute, true, 2},
		{"weight", CellGround, []int64{3, 67}, CellWeight, true, 2},
		{"roll failed", CellGround, []int64{16}, CellEmpty, false, 1},
		{"never on a hazard", CellHazard, []int64{0}, CellEmpty, false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var grid Grid
			rng, src := scripted(tc.draws...)
			start := 4

			got, placed := placeItem(&grid, rng, rules, start, tc.kind)
			if got != tc.want || placed != tc.placed {
				t.Errorf("placeItem() = (%v, %v), expected (%v, %v)", got, placed, tc.want, tc.placed)
			}
			if src.i != tc.used {
				t.Errorf("consumed %d draws, expected %d", src.i, tc.used)
			}
			if placed && grid.At(start+RunWidth/2, Height-2) != tc.want {
				t.Errorf("item not at column %d of row %d", start+RunWidth/2, Height-2)
			}
		})
	}
}

func TestRollIsInclusive(t *testing.T) {
	rng, _ := scripted(0)
	if !roll(rng, 0) {
		t.Error("a draw of 0 should pass a 0% roll")
	}
	rng, _ = scripted(99)
	if !roll(rng, 99) {
		t.Error("a draw of 99 should pass a 99% roll")
	}
	rng, _ = scripted(31)
	if roll(rng, 30) {
		t.Error("a draw of 31 should fail a 30% roll")
	}
}

func TestScrollOnlyPlacesItemsAboveGround(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t, WithSeed(seed))
		for i := 0; i < 400; i++ {
			g.grid[g.player.Row+1] = [Width]Cell{}
			before := g.grid
			if !g.scroll() {
				t.Fatal("scroll refused over an empty cell")
			}
			for col := 0; col < Width; col++ {
				if item := g.grid.At(col, Height-2); item.PowerUp() && before[Height-1][col] != item {
					if g.grid.At(col, Height-1) != CellGround {
						t.Fatalf("seed %d: %v placed above %v", seed, item, g.grid.At(col, Height-1))
					}
				}
			}
		}
	}
}
