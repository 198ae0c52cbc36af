package multigrid

import (
	"fmt"

	"github.com/quadfem/gomg/element2D"
	"github.com/quadfem/gomg/mesh2D"
)

/*
PatchPolicy selects which child dofs survive into a patch row. The
exclusion set is built first, then optionally relaxed on the domain
boundary, so "keep boundary dofs" without "interior only" is not a state
this type can express.
*/
type PatchPolicy uint8

const (
	// AllDofs keeps every dof of every child
	AllDofs PatchPolicy = iota
	// InteriorOnly drops dofs on the outer boundary of the patch
	InteriorOnly
	// InteriorAndBoundary drops patch boundary dofs except where the patch
	// boundary coincides with the domain boundary
	InteriorAndBoundary
)

func (pp PatchPolicy) String() string {
	switch pp {
	case AllDofs:
		return "AllDofs"
	case InteriorOnly:
		return "InteriorOnly"
	case InteriorAndBoundary:
		return "InteriorAndBoundary"
	}
	return fmt.Sprintf("PatchPolicy(%d)", uint8(pp))
}

/*
MakeChildPatches builds one patch per cell of level-1, holding the level
dofs of that cell's four children filtered by policy. Cells without
children keep an empty row, so the patch index always equals the coarse
cell index. The block list must be sized (NCells(level-1), NDofs(level))
and is left uncompressed.

The patch boundary exclusion works per child: child c shares vertex c with
its parent, so the two child faces meeting at vertex c are exactly the
faces lying on the parent's boundary.
*/
func MakeChildPatches(bl *BlockList, dh *mesh2D.DofHandler, level int, policy PatchPolicy) {
	var (
		msh    = dh.Msh
		layout = dh.Layout
	)
	if level < 1 || level >= dh.NLevels() {
		err := fmt.Errorf("child patches need a coarser level: level = %v, have %v levels", level, dh.NLevels())
		panic(err)
	}
	if nr, nc := bl.Dims(); nr != msh.NCells(level-1) || nc != dh.NDofs(level) {
		err := fmt.Errorf("block list dims (%v,%v) do not match %v coarse cells and %v dofs",
			nr, nc, msh.NCells(level-1), dh.NDofs(level))
		panic(err)
	}
	var (
		nDofs   = layout.DofsPerCell()
		exclude = make([]bool, nDofs)
	)
	for k := 0; k < msh.NCells(level-1); k++ {
		pcell := msh.Cell(level-1, k)
		if !pcell.HasChildren() {
			continue
		}
		for child := 0; child < 4; child++ {
			var (
				cell    = msh.Cell(level, pcell.Children[child])
				indices = dh.CellDofs(level, cell.Index)
			)
			for i := range exclude {
				exclude[i] = false
			}
			if policy != AllDofs {
				// Exclude dofs on the faces bounding the patch
				for _, face := range element2D.VertexToFace[child] {
					for _, i := range layout.FaceDofs(face) {
						exclude[i] = true
					}
				}
				// Re-admit them where the patch touches the domain boundary
				if policy == InteriorAndBoundary {
					for face := 0; face < 4; face++ {
						if msh.AtBoundary(cell, face) {
							for _, i := range layout.FaceDofs(face) {
								exclude[i] = false
							}
						}
					}
				}
			}
			for i, dof := range indices {
				if !exclude[i] {
					bl.Add(k, dof)
				}
			}
		}
	}
}

// MakeCellPatches builds one single-cell patch per cell of a level
func MakeCellPatches(bl *BlockList, dh *mesh2D.DofHandler, level int) {
	var (
		msh = dh.Msh
	)
	if nr, nc := bl.Dims(); nr != msh.NCells(level) || nc != dh.NDofs(level) {
		err := fmt.Errorf("block list dims (%v,%v) do not match %v cells and %v dofs",
			nr, nc, msh.NCells(level), dh.NDofs(level))
		panic(err)
	}
	for k := 0; k < msh.NCells(level); k++ {
		for _, dof := range dh.CellDofs(level, k) {
			bl.Add(k, dof)
		}
	}
}

// MakeSinglePatch builds one patch covering every dof of a level,
// optionally dropping dofs on the domain boundary
func MakeSinglePatch(bl *BlockList, dh *mesh2D.DofHandler, level int, interiorOnly bool) {
	if nr, nc := bl.Dims(); nr != 1 || nc != dh.NDofs(level) {
		err := fmt.Errorf("block list dims (%v,%v) do not match a single patch over %v dofs",
			nr, nc, dh.NDofs(level))
		panic(err)
	}
	var onBoundary []bool
	if interiorOnly {
		onBoundary = dh.BoundaryDofs(level)
	}
	for dof := 0; dof < dh.NDofs(level); dof++ {
		if interiorOnly && onBoundary[dof] {
			continue
		}
		bl.Add(0, dof)
	}
}
