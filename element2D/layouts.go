package element2D

import (
	"github.com/quadfem/gomg/utils"
)

/*
Reference quadrilateral numbering, matching the cell traversal used by the
mesh and dof handler:

	vertices            faces
	2 ----- 3           --3--
	|       |           0   1
	0 ----- 1           --2--

v0=(0,0), v1=(1,0), v2=(0,1), v3=(1,1); face 0 left, 1 right, 2 bottom,
3 top. Child cell c of a refined quad occupies the quadrant at parent
vertex c.
*/
var (
	// FaceVertices maps a face to its two endpoint vertices
	FaceVertices = [4][2]int{{0, 2}, {1, 3}, {0, 1}, {2, 3}}
	// VertexToFace maps a vertex to the two faces meeting at it
	VertexToFace = [4][2]int{{0, 2}, {1, 2}, {0, 3}, {1, 3}}
)

/*
ElementLayout describes how the dofs of one quadrilateral element are split
among the cell's entities. Cell dofs are ordered vertices first, then face
interiors, then cell interiors, so that the dofs lying on any one face can
be named by local index independent of the neighboring cell.
*/
type ElementLayout struct {
	Name      string
	PerVertex int // dofs on each vertex
	PerFace   int // dofs interior to each face
	PerCell   int // dofs interior to the cell
}

var (
	// Q1Layout is the conforming bilinear element, one dof per vertex
	Q1Layout = ElementLayout{Name: "Q1", PerVertex: 1}
	// DGQ1Layout is the discontinuous bilinear element, all dofs cell local
	DGQ1Layout = ElementLayout{Name: "DGQ1", PerCell: 4}
	// RTLayout carries the Rannacher-Turek face moment dofs, one per face
	RTLayout = ElementLayout{Name: "RannacherTurek", PerFace: 1}
	// NoneLayout is the do-nothing element with no dofs at all
	NoneLayout = ElementLayout{Name: "None"}
)

func (el ElementLayout) DofsPerCell() int {
	return 4*el.PerVertex + 4*el.PerFace + el.PerCell
}

func (el ElementLayout) DofsPerFace() int {
	return 2*el.PerVertex + el.PerFace
}

// FaceDofs lists the local cell dof indices lying on one face: the two
// endpoint vertex dofs followed by the face interior dofs
func (el ElementLayout) FaceDofs(face int) (I utils.Index) {
	I = make(utils.Index, 0, el.DofsPerFace())
	for _, v := range FaceVertices[face] {
		for d := 0; d < el.PerVertex; d++ {
			I = append(I, v*el.PerVertex+d)
		}
	}
	offset := 4*el.PerVertex + face*el.PerFace
	for d := 0; d < el.PerFace; d++ {
		I = append(I, offset+d)
	}
	return
}
