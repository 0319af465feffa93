package kernel

import (
	"math"
	"math/cmplx"
)

// naiveDFT is the O(n^2) reference transform used to check the fast
// paths in this package against a direct definition.
func naiveDFT(in []complex128, inverse bool) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			phase := sign * 2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += in[j] * complex(math.Cos(phase), math.Sin(phase))
		}
		out[k] = sum
	}
	return out
}

func maxAbsDiff(a, b []complex128) float64 {
	var worst float64
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > worst {
			worst = d
		}
	}
	return worst
}
