package mesh2D

import (
	"fmt"

	"github.com/quadfem/gomg/element2D"
	"github.com/quadfem/gomg/types"
	"github.com/quadfem/gomg/utils"
)

/*
DofHandler distributes degrees of freedom for one ElementLayout on every
level of a mesh, multigrid style: each level is numbered independently, and
entities shared between cells of the same level (vertices, faces) share
their dofs. Numbering is by first encounter during an in-order cell
traversal, so it is deterministic for a given mesh and layout.

Cell dofs are returned in the layout's cell-dof order: vertex dofs (vertex
0..3), face interior dofs (face 0..3), then cell interior dofs.
*/
type DofHandler struct {
	Msh    *Mesh
	Layout element2D.ElementLayout

	cellDofs [][]utils.Index // [level][cell]
	nDofs    []int           // per level
}

func NewDofHandler(msh *Mesh, layout element2D.ElementLayout) (dh *DofHandler) {
	dh = &DofHandler{
		Msh:    msh,
		Layout: layout,
	}
	for level := 0; level < msh.NLevels(); level++ {
		dh.distributeLevel(level)
	}
	return
}

func (dh *DofHandler) NLevels() int { return len(dh.nDofs) }

func (dh *DofHandler) NDofs(level int) int {
	dh.checkLevel(level)
	return dh.nDofs[level]
}

// CellDofs returns the global level dofs of cell k on level, in cell-dof order
func (dh *DofHandler) CellDofs(level, k int) utils.Index {
	dh.checkLevel(level)
	return dh.cellDofs[level][k]
}

func (dh *DofHandler) distributeLevel(level int) {
	var (
		msh    = dh.Msh
		layout = dh.Layout
		nCells = msh.NCells(level)
		// vertex ids for this level, used for both vertex dofs and face keys
		vertexIDs = make(map[[2]float64]int)
		vertexDof = make(map[int]int)
		faceDof   = make(map[types.FaceKey]int)
		dofs      = make([]utils.Index, nCells)
		next      int
	)
	vertexID := func(p [2]float64) (id int) {
		id, ok := vertexIDs[p]
		if !ok {
			id = len(vertexIDs)
			vertexIDs[p] = id
		}
		return
	}
	for k := 0; k < nCells; k++ {
		var (
			c  = msh.Cell(level, k)
			cd = make(utils.Index, 0, layout.DofsPerCell())
			vs [4]int
		)
		for v := 0; v < 4; v++ {
			vs[v] = vertexID(c.Vertex(v))
		}
		for v := 0; v < 4; v++ {
			base, ok := vertexDof[vs[v]]
			if !ok && layout.PerVertex > 0 {
				base = next
				next += layout.PerVertex
				vertexDof[vs[v]] = base
			}
			for d := 0; d < layout.PerVertex; d++ {
				cd = append(cd, base+d)
			}
		}
		for face := 0; face < 4; face++ {
			fv := element2D.FaceVertices[face]
			fk := types.NewFaceKey([2]int{vs[fv[0]], vs[fv[1]]})
			base, ok := faceDof[fk]
			if !ok && layout.PerFace > 0 {
				base = next
				next += layout.PerFace
				faceDof[fk] = base
			}
			for d := 0; d < layout.PerFace; d++ {
				cd = append(cd, base+d)
			}
		}
		for d := 0; d < layout.PerCell; d++ {
			cd = append(cd, next)
			next++
		}
		dofs[k] = cd
	}
	dh.cellDofs = append(dh.cellDofs, dofs)
	dh.nDofs = append(dh.nDofs, next)
}

// BoundaryDofs marks every dof of a level that lies on a face of the domain
// boundary
func (dh *DofHandler) BoundaryDofs(level int) (onBoundary []bool) {
	dh.checkLevel(level)
	onBoundary = make([]bool, dh.nDofs[level])
	for k := 0; k < dh.Msh.NCells(level); k++ {
		var (
			c       = dh.Msh.Cell(level, k)
			indices = dh.cellDofs[level][k]
		)
		for face := 0; face < 4; face++ {
			if !dh.Msh.AtBoundary(c, face) {
				continue
			}
			for _, i := range dh.Layout.FaceDofs(face) {
				onBoundary[indices[i]] = true
			}
		}
	}
	return
}

func (dh *DofHandler) checkLevel(level int) {
	if level < 0 || level >= len(dh.nDofs) {
		err := fmt.Errorf("dof handler level out of range: level = %v, have %v levels", level, len(dh.nDofs))
		panic(err)
	}
}
