package garden

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// ErrLayout reports a malformed custom layout
var ErrLayout = errors.New("invalid garden layout")

// Layout is the static shape of a graph: cell positions and undirected edges
type Layout struct {
	Positions []vmath.Vec2
	Rows      []int // Optional row per cell, grid coordinates for presentation
	Cols      []int
	Edges     [][2]CellID
}

// HexLayout builds the fixed hex-offset pond grid
// Odd rows hold one cell fewer and sit half a spacing to the right
// Edges link each cell to its left neighbor, the cell above, and one upper diagonal chosen by row parity
func HexLayout() Layout {
	const rows, cols = parameter.GridRows, parameter.GridColumns
	spacing := vmath.V2(parameter.GridSpacingX, parameter.GridSpacingY)

	var l Layout
	grid := make([][]CellID, rows)
	for i := 0; i < rows; i++ {
		rowOffset := vmath.V2(float64(1-(cols-i%2)), float64(1-rows)).Scale(0.5)
		grid[i] = make([]CellID, cols)
		for j := 0; j < cols; j++ {
			if i%2 == 1 && j == cols-1 {
				grid[i][j] = NoCell
				continue
			}
			id := CellID(len(l.Positions))
			grid[i][j] = id
			pos := vmath.V2(float64(j), float64(i)).Add(rowOffset).Mul(spacing)
			l.Positions = append(l.Positions, pos)
			l.Rows = append(l.Rows, i)
			l.Cols = append(l.Cols, j)
		}
	}

	at := func(i, j int) CellID {
		if i < 0 || j < 0 || j >= cols {
			return NoCell
		}
		return grid[i][j]
	}
	connect := func(a, b CellID) {
		if a == NoCell || b == NoCell {
			return
		}
		l.Edges = append(l.Edges, [2]CellID{a, b})
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			id := grid[i][j]
			if id == NoCell {
				continue
			}
			if j > 0 {
				connect(id, at(i, j-1))
			}
			if i > 0 {
				connect(id, at(i-1, j))
				connect(id, at(i-1, j+(i%2)*2-1))
			}
		}
	}
	return l
}

func (l Layout) validate() error {
	n := len(l.Positions)
	if n == 0 {
		return fmt.Errorf("%w: no cells", ErrLayout)
	}
	if (l.Rows != nil && len(l.Rows) != n) || (l.Cols != nil && len(l.Cols) != n) {
		return fmt.Errorf("%w: grid coordinates do not match %d cells", ErrLayout, n)
	}
	for _, e := range l.Edges {
		if e[0] < 0 || int(e[0]) >= n || e[1] < 0 || int(e[1]) >= n {
			return fmt.Errorf("%w: edge %v out of range", ErrLayout, e)
		}
		if e[0] == e[1] {
			return fmt.Errorf("%w: self edge on cell %d", ErrLayout, e[0])
		}
	}
	return nil
}
