package utils

const (
	NODETOL = 1.e-12
)

// POW computes small integer powers without the cost of math.Pow
func POW(x float64, pp int) (y float64) {
	y = 1
	for i := 0; i < pp; i++ {
		y *= x
	}
	return
}
