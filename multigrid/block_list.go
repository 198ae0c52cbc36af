package multigrid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/quadfem/gomg/utils"
)

/*
BlockList is the bipartite incidence pattern between patches (rows) and
degrees of freedom (columns). It is populated with Add, then frozen with
Compress into a CSR sparsity pattern with ascending column indices per row.
Population is single-writer; after Compress the structure is read only and
safe for concurrent readers.
*/
type BlockList struct {
	nr, nc    int
	maxRowLen int
	rows      []map[int]struct{}
	csr       *sparse.CSR
}

func NewBlockList(rows, cols, maxRowLen int) (bl *BlockList) {
	if rows < 0 || cols < 0 {
		err := fmt.Errorf("invalid block list dimensions: rows, cols = %v, %v", rows, cols)
		panic(err)
	}
	bl = &BlockList{
		nr:        rows,
		nc:        cols,
		maxRowLen: maxRowLen,
		rows:      make([]map[int]struct{}, rows),
	}
	return
}

func (bl *BlockList) Dims() (r, c int) { return bl.nr, bl.nc }

func (bl *BlockList) IsCompressed() bool { return bl.csr != nil }

// Add inserts one incidence edge. Duplicates are idempotent. Legal only
// before compression.
func (bl *BlockList) Add(row, col int) {
	if bl.IsCompressed() {
		err := fmt.Errorf("attempt to add entry (%v,%v) to a compressed block list", row, col)
		panic(err)
	}
	if row < 0 || row >= bl.nr || col < 0 || col >= bl.nc {
		err := fmt.Errorf("block list entry out of bounds: (%v,%v), dims (%v,%v)", row, col, bl.nr, bl.nc)
		panic(err)
	}
	if bl.rows[row] == nil {
		bl.rows[row] = make(map[int]struct{}, bl.maxRowLen)
	}
	bl.rows[row][col] = struct{}{}
}

/*
Compress freezes the pattern into CSR storage with sorted column indices.
Irreversible; a second call is a no-op. Every entry carries the value 1, so
the compressed list doubles as a 0/1 incidence matrix.
*/
func (bl *BlockList) Compress() {
	if bl.IsCompressed() {
		return
	}
	var (
		ia  = make([]int, bl.nr+1)
		nnz int
	)
	for row := range bl.rows {
		nnz += len(bl.rows[row])
	}
	var (
		ja   = make([]int, 0, nnz)
		data = make([]float64, 0, nnz)
	)
	for row := range bl.rows {
		cols := make([]int, 0, len(bl.rows[row]))
		for col := range bl.rows[row] {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		ja = append(ja, cols...)
		for range cols {
			data = append(data, 1)
		}
		ia[row+1] = len(ja)
	}
	bl.csr = sparse.NewCSR(bl.nr, bl.nc, ia, ja, data)
	bl.rows = nil
}

// RowEntries returns the column indices of one row in ascending order. The
// returned slice aliases the compressed storage and must not be modified.
func (bl *BlockList) RowEntries(row int) utils.Index {
	raw := bl.raw(row)
	return utils.Index(raw.Ind[raw.Indptr[row]:raw.Indptr[row+1]])
}

// DoRow calls fn for each column of a row in ascending order
func (bl *BlockList) DoRow(row int, fn func(col int)) {
	for _, col := range bl.RowEntries(row) {
		fn(col)
	}
}

func (bl *BlockList) RowLen(row int) int {
	raw := bl.raw(row)
	return raw.Indptr[row+1] - raw.Indptr[row]
}

func (bl *BlockList) NNZ() int {
	bl.checkCompressed()
	return bl.csr.NNZ()
}

// At and T complete the mat.Matrix interface for downstream consumers
func (bl *BlockList) At(i, j int) float64 {
	bl.checkCompressed()
	return bl.csr.At(i, j)
}

func (bl *BlockList) T() mat.Matrix {
	bl.checkCompressed()
	return bl.csr.T()
}

// ToCSR exposes the compressed pattern as a sparse matrix
func (bl *BlockList) ToCSR() *sparse.CSR {
	bl.checkCompressed()
	return bl.csr
}

// String renders one line per patch, in the block list log format
func (bl *BlockList) String() string {
	var sb strings.Builder
	for row := 0; row < bl.nr; row++ {
		fmt.Fprintf(&sb, "patch %d:", row)
		bl.DoRow(row, func(col int) {
			fmt.Fprintf(&sb, " %d", col)
		})
		sb.WriteString("\n")
	}
	return sb.String()
}

func (bl *BlockList) raw(row int) *sparseRaw {
	bl.checkCompressed()
	if row < 0 || row >= bl.nr {
		err := fmt.Errorf("block list row out of bounds: %v, have %v rows", row, bl.nr)
		panic(err)
	}
	rm := bl.csr.RawMatrix()
	return &sparseRaw{Indptr: rm.Indptr, Ind: rm.Ind}
}

func (bl *BlockList) checkCompressed() {
	if !bl.IsCompressed() {
		err := fmt.Errorf("block list read before compression")
		panic(err)
	}
}

type sparseRaw struct {
	Indptr, Ind []int
}
