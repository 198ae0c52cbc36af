package multigrid

import (
	"fmt"

	"github.com/quadfem/gomg/utils"
)

/*
PatchSmoother is an additive Schwarz smoother over the patches of a
compressed block list: each sweep computes the global residual once, solves
the restriction of A to every patch's dof set exactly, and adds the damped
patch corrections back. Patch inverses are factored once at construction.
*/
type PatchSmoother struct {
	A     utils.Matrix
	Omega float64

	patches  []utils.Index
	inverses []utils.Matrix
}

func NewPatchSmoother(A utils.Matrix, bl *BlockList, omega float64) (ps *PatchSmoother) {
	var (
		nr, nc = A.Dims()
	)
	if !bl.IsCompressed() {
		err := fmt.Errorf("patch smoother needs a compressed block list")
		panic(err)
	}
	if nr != nc {
		err := fmt.Errorf("patch smoother needs a square matrix, have (%v,%v)", nr, nc)
		panic(err)
	}
	if _, blc := bl.Dims(); blc != nc {
		err := fmt.Errorf("block list covers %v dofs, matrix has %v", blc, nc)
		panic(err)
	}
	ps = &PatchSmoother{
		A:     A,
		Omega: omega,
	}
	nPatches, _ := bl.Dims()
	for p := 0; p < nPatches; p++ {
		if bl.RowLen(p) == 0 {
			continue
		}
		I := bl.RowEntries(p)
		Ap := A.SubMatrixByIndex(I, I)
		ps.patches = append(ps.patches, I)
		ps.inverses = append(ps.inverses, Ap.InverseWithCheck())
	}
	return
}

func (ps *PatchSmoother) NPatches() int { return len(ps.patches) }

// Smooth runs nSweeps additive Schwarz sweeps on u for the system A u = f
func (ps *PatchSmoother) Smooth(u, f utils.Vector, nSweeps int) {
	for sweep := 0; sweep < nSweeps; sweep++ {
		r := ps.Residual(u, f)
		for p, I := range ps.patches {
			var (
				rp = r.Subset(I)
				ep = ps.inverses[p].MulVec(rp)
			)
			for i, ind := range I {
				u.DataP[ind] += ps.Omega * ep.DataP[i]
			}
		}
	}
}

func (ps *PatchSmoother) Residual(u, f utils.Vector) (r utils.Vector) {
	r = f.Copy()
	r.Sub(ps.A.MulVec(u))
	return
}

func (ps *PatchSmoother) ResidualNorm(u, f utils.Vector) float64 {
	return ps.Residual(u, f).Norm()
}
