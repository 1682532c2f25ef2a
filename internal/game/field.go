package game

import "fmt"

// Playfield geometry in cells. Row 0 is the top of the shaft; new terrain
// enters on the bottom row.
const (
	Width    = 18
	Height   = 30
	RunWidth = 5 // cells in one generated floor run

	startCol = Width/2 - 1
	startRow = Height / 2
)

// Cell is the content of one grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellGround
	CellHazard
	CellInvuln
	CellParachute
	CellWeight
)

// Passable reports whether the player may stand in or fall through the cell.
func (c Cell) Passable() bool {
	switch c {
	case CellEmpty, CellInvuln, CellParachute, CellWeight:
		return true
	case CellGround, CellHazard:
		return false
	}
	panic(fmt.Sprintf("game: unknown cell kind %d", c))
}

// PowerUp reports whether the cell holds a collectible.
func (c Cell) PowerUp() bool {
	switch c {
	case CellInvuln, CellParachute, CellWeight:
		return true
	case CellEmpty, CellGround, CellHazard:
		return false
	}
	panic(fmt.Sprintf("game: unknown cell kind %d", c))
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellGround:
		return "ground"
	case CellHazard:
		return "hazard"
	case CellInvuln:
		return "invuln"
	case CellParachute:
		return "parachute"
	case CellWeight:
		return "weight"
	}
	return fmt.Sprintf("Cell(%d)", c)
}

// Grid is the shaft, indexed [row][col].
type Grid [Height][Width]Cell

// InBounds reports whether (col, row) lies on the grid.
func InBounds(col, row int) bool {
	return col >= 0 && col < Width && row >= 0 && row < Height
}

func mustInBounds(col, row int) {
	if !InBounds(col, row) {
		panic(fmt.Sprintf("game: grid index (%d, %d) out of bounds", col, row))
	}
}

// At returns the cell at (col, row). Panics when out of bounds.
func (g *Grid) At(col, row int) Cell {
	mustInBounds(col, row)
	return g[row][col]
}

// Set stores c at (col, row). Panics when out of bounds.
func (g *Grid) Set(col, row int, c Cell) {
	mustInBounds(col, row)
	g[row][col] = c
}

// FillRun writes n copies of c on row starting at col.
func (g *Grid) FillRun(row, col, n int, c Cell) {
	for i := 0; i < n; i++ {
		g.Set(col+i, row, c)
	}
}

// ShiftUp moves every row up by one and clears the bottom row.
// The top row is discarded.
func (g *Grid) ShiftUp() {
	copy(g[:Height-1], g[1:])
	g[Height-1] = [Width]Cell{}
}
