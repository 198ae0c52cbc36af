package element2D

import (
	"fmt"
)

/*
RannacherTurek is the nonconforming quadrilateral element basis of Rannacher
and Turek: four quadratics on the unit reference cell, one per face, spanned
by {1, x, y, x^2-y^2}. The functions are not continuous across cell
interfaces - only their face mean values match, which is what makes the
element usable for problems where conforming bilinear elements lock.

Defined for two space dimensions only.
*/
type RannacherTurek struct {
	dim int
}

func NewRannacherTurek(dim int) (rt *RannacherTurek) {
	if dim != 2 {
		err := fmt.Errorf("RannacherTurek basis not implemented for dimension = %d", dim)
		panic(err)
	}
	rt = &RannacherTurek{dim: dim}
	return
}

func (rt *RannacherTurek) NumPolynomials() int { return 4 }
func (rt *RannacherTurek) Degree() int         { return 2 }
func (rt *RannacherTurek) Name() string        { return "RannacherTurek" }

func (rt *RannacherTurek) Value(i int, p [2]float64) (val float64) {
	var (
		x, y = p[0], p[1]
	)
	switch i {
	case 0:
		val = 0.75 - 2.5*x + 1.5*y + 1.5*(x*x-y*y)
	case 1:
		val = -0.25 - 0.5*x + 1.5*y + 1.5*(x*x-y*y)
	case 2:
		val = 0.75 + 1.5*x - 2.5*y - 1.5*(x*x-y*y)
	case 3:
		val = -0.25 + 1.5*x - 0.5*y - 1.5*(x*x-y*y)
	default:
		panic(rt.badIndex(i))
	}
	return
}

func (rt *RannacherTurek) Gradient(i int, p [2]float64) (grad Tensor1) {
	var (
		x, y = p[0], p[1]
	)
	switch i {
	case 0:
		grad[0] = -2.5 + 3.*x
		grad[1] = 1.5 - 3.*y
	case 1:
		grad[0] = -0.5 + 3.*x
		grad[1] = 1.5 - 3.*y
	case 2:
		grad[0] = 1.5 - 3.*x
		grad[1] = -2.5 + 3.*y
	case 3:
		grad[0] = 1.5 - 3.*x
		grad[1] = -0.5 + 3.*y
	default:
		panic(rt.badIndex(i))
	}
	return
}

// Hessian is constant in space: the only second order term is x^2-y^2
func (rt *RannacherTurek) Hessian(i int, p [2]float64) (hess Tensor2) {
	_ = p
	switch i {
	case 0, 1:
		hess[0][0] = 3
		hess[1][1] = -3
	case 2, 3:
		hess[0][0] = -3
		hess[1][1] = 3
	default:
		panic(rt.badIndex(i))
	}
	return
}

func (rt *RannacherTurek) ThirdDerivative(i int, p [2]float64) (der Tensor3) {
	rt.zeroDerivative(3, i, p)
	return
}

func (rt *RannacherTurek) FourthDerivative(i int, p [2]float64) (der Tensor4) {
	rt.zeroDerivative(4, i, p)
	return
}

// zeroDerivative is the generic high order path: every derivative of order
// above the polynomial degree is the zero tensor, only the index contract
// remains to be enforced
func (rt *RannacherTurek) zeroDerivative(order, i int, p [2]float64) {
	_ = p
	if order <= rt.Degree() {
		err := fmt.Errorf("derivative order %d is not a high order derivative for degree %d", order, rt.Degree())
		panic(err)
	}
	if i < 0 || i >= rt.NumPolynomials() {
		panic(rt.badIndex(i))
	}
}

func (rt *RannacherTurek) Evaluate(p [2]float64, values []float64, grads []Tensor1,
	hessians []Tensor2, thirds []Tensor3, fourths []Tensor4) {
	var (
		nPols = rt.NumPolynomials()
	)
	checkBufferLen("values", len(values), nPols)
	checkBufferLen("grads", len(grads), nPols)
	checkBufferLen("hessians", len(hessians), nPols)
	checkBufferLen("thirds", len(thirds), nPols)
	checkBufferLen("fourths", len(fourths), nPols)
	for i := 0; i < nPols; i++ {
		if len(values) != 0 {
			values[i] = rt.Value(i, p)
		}
		if len(grads) != 0 {
			grads[i] = rt.Gradient(i, p)
		}
		if len(hessians) != 0 {
			hessians[i] = rt.Hessian(i, p)
		}
		if len(thirds) != 0 {
			thirds[i] = rt.ThirdDerivative(i, p)
		}
		if len(fourths) != 0 {
			fourths[i] = rt.FourthDerivative(i, p)
		}
	}
}

func (rt *RannacherTurek) Clone() ScalarBasis {
	rtc := *rt
	return &rtc
}

func (rt *RannacherTurek) badIndex(i int) error {
	return fmt.Errorf("RannacherTurek basis function not implemented for index = %d, have %d functions", i, rt.NumPolynomials())
}

func checkBufferLen(name string, have, want int) {
	if have != 0 && have != want {
		err := fmt.Errorf("dimension mismatch for output buffer %s: len = %v, need 0 or %v", name, have, want)
		panic(err)
	}
}
