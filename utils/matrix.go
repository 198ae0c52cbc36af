package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

// AddAt accumulates into one element, the usual assembly operation
func (m Matrix) AddAt(i, j int, val float64) Matrix {
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.CloneFrom(m.M)
	return
}

func (m Matrix) Transpose() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	R.M.CloneFrom(m.M.T())
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nr, _  = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nr, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) MulVec(v Vector) (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	if v.Len() != nc {
		err := fmt.Errorf("dimension mismatch in MulVec: matrix nc = %v, vector len = %v\n", nc, v.Len())
		panic(err)
	}
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Det() float64 {
	return mat.Det(m.M)
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

func (m Matrix) InverseWithCheck() (R Matrix) {
	var err error
	if R, err = m.Inverse(); err != nil {
		panic(err)
	}
	return
}

// SubMatrixByIndex extracts the dense submatrix m[I,J]
func (m Matrix) SubMatrixByIndex(I, J Index) (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(len(I), len(J))
	for ii, i := range I {
		if i < 0 || i >= nr {
			err := fmt.Errorf("row index out of bounds: index = %d, max_bounds = %d\n", i, nr-1)
			panic(err)
		}
		for jj, j := range J {
			if j < 0 || j >= nc {
				err := fmt.Errorf("column index out of bounds: index = %d, max_bounds = %d\n", j, nc-1)
				panic(err)
			}
			R.M.Set(ii, jj, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Print(msgO ...string) {
	var msg string
	if len(msgO) != 0 {
		msg = msgO[0]
	}
	fmt.Printf("%s =\n%8.5f\n", msg, mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
