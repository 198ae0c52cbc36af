package mesh2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformMesh(t *testing.T) {
	msh := NewUniform(2, 2)
	assert.Equal(t, 1, msh.NLevels())
	assert.Equal(t, 4, msh.NCells(0))

	c := msh.Cell(0, 0)
	assert.Equal(t, [2]float64{0, 0}, c.Vertex(0))
	assert.Equal(t, [2]float64{0.5, 0}, c.Vertex(1))
	assert.Equal(t, [2]float64{0, 0.5}, c.Vertex(2))
	assert.Equal(t, [2]float64{0.5, 0.5}, c.Vertex(3))
	assert.False(t, c.HasChildren())

	// Lower left cell touches the left and bottom domain boundary only
	assert.True(t, msh.AtBoundary(c, 0))
	assert.False(t, msh.AtBoundary(c, 1))
	assert.True(t, msh.AtBoundary(c, 2))
	assert.False(t, msh.AtBoundary(c, 3))
}

func TestRefineAll(t *testing.T) {
	msh := NewUniform(1, 1)
	msh.RefineAll()
	assert.Equal(t, 2, msh.NLevels())
	assert.Equal(t, 4, msh.NCells(1))

	parent := msh.Cell(0, 0)
	assert.True(t, parent.HasChildren())
	for child := 0; child < 4; child++ {
		c := msh.Cell(1, parent.Children[child])
		assert.Equal(t, 0, c.Parent)
		// Child c occupies the quadrant at parent vertex c
		assert.Equal(t, parent.Vertex(child), c.Vertex(child))
	}
}

func TestSelectiveRefinement(t *testing.T) {
	msh := NewUniform(2, 1)
	msh.Refine([]bool{true, false})
	assert.Equal(t, 2, msh.NLevels())
	assert.Equal(t, 4, msh.NCells(1))
	assert.True(t, msh.Cell(0, 0).HasChildren())
	assert.False(t, msh.Cell(0, 1).HasChildren())

	// The refined cell's right children do not touch the domain boundary -
	// the unrefined neighbor does
	c1 := msh.Cell(1, msh.Cell(0, 0).Children[1])
	assert.False(t, msh.AtBoundary(c1, 1))
	assert.True(t, msh.AtBoundary(c1, 2))

	assert.Panics(t, func() { msh.Refine([]bool{true}) })
}
