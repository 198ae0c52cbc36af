package mesh2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quadfem/gomg/element2D"
	"github.com/quadfem/gomg/utils"
)

func TestQ1DofDistribution(t *testing.T) {
	msh := NewUniform(1, 1)
	msh.RefineAll()
	dh := NewDofHandler(msh, element2D.Q1Layout)

	assert.Equal(t, 2, dh.NLevels())
	assert.Equal(t, 4, dh.NDofs(0))
	// 3x3 vertex grid on the refined level
	assert.Equal(t, 9, dh.NDofs(1))

	// First-encounter numbering over cells 0..3, vertices 0..3
	assert.Equal(t, utils.Index{0, 1, 2, 3}, dh.CellDofs(1, 0))
	assert.Equal(t, utils.Index{1, 4, 3, 5}, dh.CellDofs(1, 1))
	assert.Equal(t, utils.Index{2, 3, 6, 7}, dh.CellDofs(1, 2))
	assert.Equal(t, utils.Index{3, 5, 7, 8}, dh.CellDofs(1, 3))

	// Dof 3 is the patch center, shared by all four children
	for k := 0; k < 4; k++ {
		assert.True(t, dh.CellDofs(1, k).Contains(3))
	}
}

func TestRTDofDistribution(t *testing.T) {
	msh := NewUniform(1, 1)
	msh.RefineAll()
	dh := NewDofHandler(msh, element2D.RTLayout)

	// 4 faces on the single coarse cell, 12 on the 2x2 level
	assert.Equal(t, 4, dh.NDofs(0))
	assert.Equal(t, 12, dh.NDofs(1))

	// Shared faces carry the same dof seen from both cells
	assert.Equal(t, utils.Index{0, 1, 2, 3}, dh.CellDofs(1, 0))
	assert.Equal(t, utils.Index{1, 4, 5, 6}, dh.CellDofs(1, 1))
	assert.Equal(t, utils.Index{7, 8, 3, 9}, dh.CellDofs(1, 2))
	assert.Equal(t, utils.Index{8, 10, 6, 11}, dh.CellDofs(1, 3))
}

func TestDGQ1DofDistribution(t *testing.T) {
	msh := NewUniform(1, 1)
	msh.RefineAll()
	dh := NewDofHandler(msh, element2D.DGQ1Layout)

	// Nothing is shared; 4 dofs per cell
	assert.Equal(t, 16, dh.NDofs(1))
	assert.Equal(t, utils.Index{0, 1, 2, 3}, dh.CellDofs(1, 0))
	assert.Equal(t, utils.Index{4, 5, 6, 7}, dh.CellDofs(1, 1))
}

func TestNoneDofDistribution(t *testing.T) {
	msh := NewUniform(1, 1)
	msh.RefineAll()
	dh := NewDofHandler(msh, element2D.NoneLayout)
	assert.Equal(t, 0, dh.NDofs(1))
	assert.Equal(t, 0, len(dh.CellDofs(1, 0)))
}

func TestBoundaryDofs(t *testing.T) {
	msh := NewUniform(1, 1)
	msh.RefineAll()
	dh := NewDofHandler(msh, element2D.Q1Layout)

	onB := dh.BoundaryDofs(1)
	// Only the center vertex of the 3x3 grid is interior
	nInterior := 0
	for dof, b := range onB {
		if !b {
			nInterior++
			assert.Equal(t, 3, dof)
		}
	}
	assert.Equal(t, 1, nInterior)
}
