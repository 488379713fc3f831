// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"
	"math"
)

// Cell is a grid coordinate (column, row).
type Cell struct {
	X, Y int
}

// Grid is a fixed binary wall map: 0 is open floor, 1 is a wall.
type Grid struct {
	Cells    [][]uint8
	CellSize float64
}

var ErrEmptyGrid = errors.New("grid has no rows")

// Parse builds a grid from rows of '#' (wall) and '.' (floor). All rows must have the
// same length.
func Parse(rows []string, cellSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %v", cellSize)
	}
	width := len(rows[0])
	cells := make([][]uint8, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), width)
		}
		cells[y] = make([]uint8, width)
		for x, ch := range row {
			switch ch {
			case '#':
				cells[y][x] = 1
			case '.':
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected rune %q", y, x, ch)
			}
		}
	}
	return &Grid{Cells: cells, CellSize: cellSize}, nil
}

// MustParse is Parse for static layouts.
func MustParse(rows []string, cellSize float64) *Grid {
	g, err := Parse(rows, cellSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.Cells)
}

// CellAt converts pixel coordinates to the cell containing them.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{X: int(math.Floor(x / g.CellSize)), Y: int(math.Floor(y / g.CellSize))}
}

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.Y < g.Rows() && c.X < g.Cols()
}

// IsWall reports whether the cell is a wall. Cells outside the grid are open.
func (g *Grid) IsWall(c Cell) bool {
	if !g.Contains(c) {
		return false
	}
	return g.Cells[c.Y][c.X] == 1
}

// Walls lists every wall cell, row by row.
func (g *Grid) Walls() []Cell {
	var walls []Cell
	for y, row := range g.Cells {
		for x, v := range row {
			if v == 1 {
				walls = append(walls, Cell{X: x, Y: y})
			}
		}
	}
	return walls
}

// CellRect returns the pixel rectangle of a cell.
func (g *Grid) CellRect(c Cell) (x, y, w, h float64) {
	return float64(c.X) * g.CellSize, float64(c.Y) * g.CellSize, g.CellSize, g.CellSize
}
