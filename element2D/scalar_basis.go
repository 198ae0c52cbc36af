package element2D

// Derivative tensors of a scalar function of two variables, rank 1 through 4
type (
	Tensor1 [2]float64
	Tensor2 [2][2]float64
	Tensor3 [2][2][2]float64
	Tensor4 [2][2][2][2]float64
)

/*
ScalarBasis is a fixed set of scalar polynomials on the reference cell,
indexed 0..NumPolynomials()-1. Implementations are stateless per call, so a
single instance can be evaluated from multiple goroutines.

Evaluate fills every non-empty output buffer with all NumPolynomials()
entries; buffers must be either empty (skipped) or exactly
NumPolynomials() long.
*/
type ScalarBasis interface {
	NumPolynomials() int
	Degree() int
	Name() string
	Value(i int, p [2]float64) float64
	Gradient(i int, p [2]float64) Tensor1
	Hessian(i int, p [2]float64) Tensor2
	ThirdDerivative(i int, p [2]float64) Tensor3
	FourthDerivative(i int, p [2]float64) Tensor4
	Evaluate(p [2]float64, values []float64, grads []Tensor1,
		hessians []Tensor2, thirds []Tensor3, fourths []Tensor4)
	Clone() ScalarBasis
}
