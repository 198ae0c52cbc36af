package mesh2D

import (
	"fmt"
	"math"

	"github.com/quadfem/gomg/utils"
)

// NoCell marks an absent parent or child link
const NoCell = -1

/*
Cell is one axis-aligned quadrilateral in the refinement hierarchy. Children
are ordered by the parent vertex whose quadrant they occupy: child 0 lower
left, 1 lower right, 2 upper left, 3 upper right. That ordering is what the
child patch extraction relies on - the two faces of child c adjacent to
vertex c lie on the parent's boundary.
*/
type Cell struct {
	Level, Index   int
	Parent         int
	Children       [4]int
	X0, Y0, X1, Y1 float64
}

func (c *Cell) HasChildren() bool {
	return c.Children[0] != NoCell
}

// Vertex returns the coordinates of vertex v in reference numbering
func (c *Cell) Vertex(v int) (p [2]float64) {
	switch v {
	case 0:
		p = [2]float64{c.X0, c.Y0}
	case 1:
		p = [2]float64{c.X1, c.Y0}
	case 2:
		p = [2]float64{c.X0, c.Y1}
	case 3:
		p = [2]float64{c.X1, c.Y1}
	default:
		panic(fmt.Errorf("quadrilateral vertex out of range: %d", v))
	}
	return
}

/*
Mesh is a hierarchy of quadrilateral levels over a rectangular domain.
Level 0 is a uniform nx x ny grid; each further level holds the children of
the cells refined from the level below. Coordinates are dyadic fractions of
the domain box, so vertex identity can be tested exactly.
*/
type Mesh struct {
	X0, Y0, X1, Y1 float64 // domain box
	levels         [][]Cell
}

// NewUniform builds a single-level nx x ny mesh of the unit square
func NewUniform(nx, ny int) (msh *Mesh) {
	if nx < 1 || ny < 1 {
		err := fmt.Errorf("invalid coarse mesh dimensions: nx, ny = %v, %v", nx, ny)
		panic(err)
	}
	msh = &Mesh{X0: 0, Y0: 0, X1: 1, Y1: 1}
	var (
		hx    = (msh.X1 - msh.X0) / float64(nx)
		hy    = (msh.Y1 - msh.Y0) / float64(ny)
		cells = make([]Cell, 0, nx*ny)
	)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cells = append(cells, Cell{
				Level:    0,
				Index:    j*nx + i,
				Parent:   NoCell,
				Children: [4]int{NoCell, NoCell, NoCell, NoCell},
				X0:       msh.X0 + float64(i)*hx,
				Y0:       msh.Y0 + float64(j)*hy,
				X1:       msh.X0 + float64(i+1)*hx,
				Y1:       msh.Y0 + float64(j+1)*hy,
			})
		}
	}
	msh.levels = append(msh.levels, cells)
	return
}

func (msh *Mesh) NLevels() int { return len(msh.levels) }

func (msh *Mesh) NCells(level int) int {
	msh.checkLevel(level)
	return len(msh.levels[level])
}

func (msh *Mesh) Cell(level, k int) *Cell {
	msh.checkLevel(level)
	if k < 0 || k >= len(msh.levels[level]) {
		err := fmt.Errorf("cell index out of range: k = %v, level %v has %v cells", k, level, len(msh.levels[level]))
		panic(err)
	}
	return &msh.levels[level][k]
}

// RefineAll refines every cell of the finest level
func (msh *Mesh) RefineAll() {
	flags := make([]bool, msh.NCells(msh.NLevels()-1))
	for i := range flags {
		flags[i] = true
	}
	msh.Refine(flags)
}

// Refine creates a new finest level from the flagged cells of the current
// finest level, four children per flagged cell
func (msh *Mesh) Refine(flags []bool) {
	var (
		level = msh.NLevels() - 1
		cells = msh.levels[level]
	)
	if len(flags) != len(cells) {
		err := fmt.Errorf("refinement flags length %v does not match cell count %v on level %v", len(flags), len(cells), level)
		panic(err)
	}
	next := make([]Cell, 0, 4*len(cells))
	for k := range cells {
		if !flags[k] {
			continue
		}
		var (
			c      = &cells[k]
			xm     = 0.5 * (c.X0 + c.X1)
			ym     = 0.5 * (c.Y0 + c.Y1)
			quads  = [4][4]float64{
				{c.X0, c.Y0, xm, ym}, // child 0 at vertex 0
				{xm, c.Y0, c.X1, ym}, // child 1 at vertex 1
				{c.X0, ym, xm, c.Y1}, // child 2 at vertex 2
				{xm, ym, c.X1, c.Y1}, // child 3 at vertex 3
			}
		)
		for child := 0; child < 4; child++ {
			q := quads[child]
			c.Children[child] = len(next)
			next = append(next, Cell{
				Level:    level + 1,
				Index:    len(next),
				Parent:   k,
				Children: [4]int{NoCell, NoCell, NoCell, NoCell},
				X0:       q[0],
				Y0:       q[1],
				X1:       q[2],
				Y1:       q[3],
			})
		}
	}
	msh.levels = append(msh.levels, next)
}

// AtBoundary reports whether a cell face lies on the domain boundary
func (msh *Mesh) AtBoundary(c *Cell, face int) bool {
	switch face {
	case 0:
		return math.Abs(c.X0-msh.X0) < utils.NODETOL
	case 1:
		return math.Abs(c.X1-msh.X1) < utils.NODETOL
	case 2:
		return math.Abs(c.Y0-msh.Y0) < utils.NODETOL
	case 3:
		return math.Abs(c.Y1-msh.Y1) < utils.NODETOL
	}
	panic(fmt.Errorf("quadrilateral face out of range: %d", face))
}

func (msh *Mesh) checkLevel(level int) {
	if level < 0 || level >= len(msh.levels) {
		err := fmt.Errorf("mesh level out of range: level = %v, have %v levels", level, len(msh.levels))
		panic(err)
	}
}
