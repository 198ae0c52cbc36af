package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixBasics(t *testing.T) {
	M := NewMatrix(2, 2, []float64{2, 0, 0, 4})
	Minv := M.InverseWithCheck()
	assert.InDeltaf(t, 0.5, Minv.At(0, 0), 0.000001, "")
	assert.InDeltaf(t, 0.25, Minv.At(1, 1), 0.000001, "")

	v := NewVector(2, []float64{1, 2})
	Mv := M.MulVec(v)
	assert.InDeltaf(t, 2, Mv.AtVec(0), 0.000001, "")
	assert.InDeltaf(t, 8, Mv.AtVec(1), 0.000001, "")

	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
	assert.Panics(t, func() { M.MulVec(NewVector(3)) })
}

func TestSubMatrixByIndex(t *testing.T) {
	M := NewMatrix(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	R := M.SubMatrixByIndex(Index{0, 2}, Index{1, 2})
	assert.Equal(t, 2., R.At(0, 0))
	assert.Equal(t, 3., R.At(0, 1))
	assert.Equal(t, 8., R.At(1, 0))
	assert.Equal(t, 9., R.At(1, 1))

	assert.Panics(t, func() { M.SubMatrixByIndex(Index{3}, Index{0}) })
}

func TestReadOnly(t *testing.T) {
	M := NewMatrix(2, 2)
	M.SetReadOnly("M")
	assert.Panics(t, func() { M.Set(0, 0, 1) })
	assert.Panics(t, func() { M.AddAt(0, 0, 1) })
	M.SetWritable()
	assert.NotPanics(t, func() { M.Set(0, 0, 1) })
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{3, 0, 4})
	assert.InDeltaf(t, 5, v.Norm(), 0.000001, "")
	assert.Equal(t, 4., v.Max())

	s := v.Subset(Index{2, 0})
	assert.Equal(t, []float64{4, 3}, s.DataP)

	w := v.Copy()
	w.Scale(2)
	assert.Equal(t, 3., v.AtVec(0))
	assert.Equal(t, 6., w.AtVec(0))
}

func TestIndex(t *testing.T) {
	I := NewRange(2, 5)
	assert.Equal(t, Index{2, 3, 4, 5}, I)
	assert.Equal(t, Index{12, 13, 14, 15}, I.Add(10))
	assert.Equal(t, Index{4, 2}, I.Subset(Index{2, 0}))
	assert.True(t, I.Contains(3))
	assert.False(t, I.Contains(6))
}
