package Poisson2D

import (
	"fmt"

	"github.com/quadfem/gomg/element2D"
	"github.com/quadfem/gomg/mesh2D"
	"github.com/quadfem/gomg/multigrid"
	"github.com/quadfem/gomg/utils"
)

/*
Poisson assembles -Laplace(u) = 1 with homogeneous Dirichlet boundary on
the finest level of a uniformly refined unit square, using conforming Q1
elements, and solves it with the additive Schwarz patch smoother driven by
the child patch block list. It exists to exercise the patch extraction the
way a multigrid smoother would.

On square cells the Q1 local stiffness is independent of the cell size:
2/3 on the diagonal, -1/6 between vertices sharing a face, -1/3 across the
cell diagonals.
*/
type Poisson struct {
	Msh   *mesh2D.Mesh
	Dh    *mesh2D.DofHandler
	Level int
	A     utils.Matrix
	F     utils.Vector
}

// q1Stiffness[i][j] in reference vertex numbering (0 LL, 1 LR, 2 UL, 3 UR)
var q1Stiffness = [4][4]float64{
	{2. / 3., -1. / 6., -1. / 6., -1. / 3.},
	{-1. / 6., 2. / 3., -1. / 3., -1. / 6.},
	{-1. / 6., -1. / 3., 2. / 3., -1. / 6.},
	{-1. / 3., -1. / 6., -1. / 6., 2. / 3.},
}

func NewPoisson(nLevels int) (p *Poisson) {
	if nLevels < 2 {
		err := fmt.Errorf("poisson model problem needs at least 2 levels for child patches, have %v", nLevels)
		panic(err)
	}
	p = &Poisson{
		Msh:   mesh2D.NewUniform(1, 1),
		Level: nLevels - 1,
	}
	for l := 1; l < nLevels; l++ {
		p.Msh.RefineAll()
	}
	p.Dh = mesh2D.NewDofHandler(p.Msh, element2D.Q1Layout)
	p.assemble()
	return
}

func (p *Poisson) assemble() {
	var (
		dh    = p.Dh
		level = p.Level
		n     = dh.NDofs(level)
	)
	p.A = utils.NewMatrix(n, n)
	p.F = utils.NewVector(n)
	for k := 0; k < p.Msh.NCells(level); k++ {
		var (
			c       = p.Msh.Cell(level, k)
			indices = dh.CellDofs(level, k)
			area    = (c.X1 - c.X0) * (c.Y1 - c.Y0)
		)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				p.A.AddAt(indices[i], indices[j], q1Stiffness[i][j])
			}
			// Lumped unit load
			p.F.DataP[indices[i]] += 0.25 * area
		}
	}
	// Homogeneous Dirichlet boundary: identity rows and columns
	for dof, onB := range dh.BoundaryDofs(level) {
		if !onB {
			continue
		}
		for j := 0; j < n; j++ {
			p.A.Set(dof, j, 0)
			p.A.Set(j, dof, 0)
		}
		p.A.Set(dof, dof, 1)
		p.F.DataP[dof] = 0
	}
	p.A.SetReadOnly("Poisson2D stiffness")
}

/*
Solve iterates the patch smoother until the residual drops below tol
relative to ||F|| or maxIter sweeps have run. Returns the solution and the
residual norm after every sweep.
*/
func (p *Poisson) Solve(policy multigrid.PatchPolicy, omega float64, maxIter int, tol float64) (u utils.Vector, residuals []float64) {
	var (
		dh    = p.Dh
		level = p.Level
		msh   = p.Msh
	)
	bl := multigrid.NewBlockList(msh.NCells(level-1), dh.NDofs(level),
		4*dh.Layout.DofsPerCell())
	multigrid.MakeChildPatches(bl, dh, level, policy)
	bl.Compress()

	ps := multigrid.NewPatchSmoother(p.A, bl, omega)
	u = utils.NewVector(dh.NDofs(level))
	target := tol * p.F.Norm()
	for iter := 0; iter < maxIter; iter++ {
		ps.Smooth(u, p.F, 1)
		rNorm := ps.ResidualNorm(u, p.F)
		residuals = append(residuals, rNorm)
		if rNorm < target {
			break
		}
	}
	return
}
