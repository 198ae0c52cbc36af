package Poisson2D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quadfem/gomg/multigrid"
)

func TestAssembly(t *testing.T) {
	p := NewPoisson(3)
	n, nc := p.A.Dims()
	assert.Equal(t, p.Dh.NDofs(p.Level), n)
	assert.Equal(t, n, nc)
	// 5x5 vertex grid on the 4x4 level
	assert.Equal(t, 25, n)

	// Symmetry survives the Dirichlet row/column elimination
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDeltaf(t, p.A.At(i, j), p.A.At(j, i), 0.000001, "")
		}
	}

	// Boundary dofs carry identity rows and zero load
	for dof, onB := range p.Dh.BoundaryDofs(p.Level) {
		if !onB {
			continue
		}
		assert.Equal(t, 1., p.A.At(dof, dof))
		assert.Equal(t, 0., p.F.DataP[dof])
	}

	// Interior diagonal: four cells contribute 2/3 each
	for dof, onB := range p.Dh.BoundaryDofs(p.Level) {
		if onB {
			continue
		}
		assert.InDeltaf(t, 8./3., p.A.At(dof, dof), 0.000001, "")
	}
}

func TestPatchSmoothedSolve(t *testing.T) {
	p := NewPoisson(3)
	u, residuals := p.Solve(multigrid.AllDofs, 0.25, 500, 1.e-8)
	assert.True(t, len(residuals) < 500, "no convergence in 500 sweeps")

	// Residual history decreases (small slack for rounding)
	for i := 1; i < len(residuals); i++ {
		assert.Less(t, residuals[i], 1.01*residuals[i-1])
	}
	assert.Less(t, residuals[len(residuals)-1], residuals[0])

	// Symmetric problem: solution maximum sits at the center vertex
	var center int
	for k := 0; k < p.Msh.NCells(p.Level); k++ {
		c := p.Msh.Cell(p.Level, k)
		if c.X1 == 0.5 && c.Y1 == 0.5 {
			// vertex 3 of the cell whose upper right corner is the center
			center = p.Dh.CellDofs(p.Level, k)[3]
		}
	}
	assert.InDeltaf(t, u.Max(), u.AtVec(center), 0.000001, "")
}
