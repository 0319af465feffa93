package kernel

import (
	"math"
	"testing"
)

func TestRealForwardN8PackedDC(t *testing.T) {
	// Scenario S2: N=8 real-forward of [1,1,1,1,0,0,0,0]; first packed
	// pair is (4.0, 0.0) and the Nyquist real part at index 1 is 0.0.
	p := NewPlan(8)
	buf := []float64{1, 1, 1, 1, 0, 0, 0, 0}
	p.RealForward(buf)

	if math.Abs(buf[0]-4.0) > 1e-9 {
		t.Errorf("DC = %g, want 4.0", buf[0])
	}
	if math.Abs(buf[1]-0.0) > 1e-9 {
		t.Errorf("Nyquist real part = %g, want 0.0", buf[1])
	}
}

func TestRealForwardMatchesFullEmbeddingEven(t *testing.T) {
	for _, n := range []int{4, 8, 16, 32} {
		p := NewPlan(n)
		buf := make([]float64, n)
		for i := range buf {
			buf[i] = math.Sin(float64(i) * 0.3)
		}

		full := make([]float64, 2*n)
		copy(full, buf)
		p.RealForwardFull(full)

		packed := append([]float64(nil), buf...)
		p.RealForward(packed)

		h := n / 2
		if math.Abs(packed[0]-full[0]) > 1e-8 {
			t.Errorf("n=%d: DC = %g, want %g", n, packed[0], full[0])
		}
		if math.Abs(packed[1]-full[2*h]) > 1e-8 {
			t.Errorf("n=%d: Nyquist = %g, want %g", n, packed[1], full[2*h])
		}
		for k := 1; k < h; k++ {
			if d := math.Abs(packed[2*k] - full[2*k]); d > 1e-8 {
				t.Errorf("n=%d k=%d: Re = %g, want %g", n, k, packed[2*k], full[2*k])
			}
			if d := math.Abs(packed[2*k+1] - full[2*k+1]); d > 1e-8 {
				t.Errorf("n=%d k=%d: Im = %g, want %g", n, k, packed[2*k+1], full[2*k+1])
			}
		}
	}
}

func TestRealForwardMatchesFullEmbeddingOdd(t *testing.T) {
	for _, n := range []int{3, 5, 9, 15} {
		p := NewPlan(n)
		buf := make([]float64, n)
		for i := range buf {
			buf[i] = math.Cos(float64(i) * 0.5)
		}

		full := make([]float64, 2*n)
		copy(full, buf)
		p.RealForwardFull(full)

		packed := append([]float64(nil), buf...)
		p.RealForward(packed)

		h := n / 2
		if math.Abs(packed[0]-full[0]) > 1e-8 {
			t.Errorf("n=%d: DC = %g, want %g", n, packed[0], full[0])
		}
		for k := 1; k <= h; k++ {
			if d := math.Abs(packed[2*k-1] - full[2*k]); d > 1e-8 {
				t.Errorf("n=%d k=%d: Re = %g, want %g", n, k, packed[2*k-1], full[2*k])
			}
			if d := math.Abs(packed[2*k] - full[2*k+1]); d > 1e-8 {
				t.Errorf("n=%d k=%d: Im = %g, want %g", n, k, packed[2*k], full[2*k+1])
			}
		}
	}
}

func TestRealRoundTripScaled(t *testing.T) {
	for _, n := range []int{4, 5, 8, 9, 16, 25} {
		p := NewPlan(n)
		orig := make([]float64, n)
		for i := range orig {
			orig[i] = float64(i)*0.7 - 1.3
		}

		buf := append([]float64(nil), orig...)
		p.RealForward(buf)
		p.RealInverse(buf, true)

		for i := range buf {
			if d := math.Abs(buf[i] - orig[i]); d > 1e-8 {
				t.Errorf("n=%d i=%d: round trip = %g, want %g", n, i, buf[i], orig[i])
			}
		}
	}
}

func TestRealParseval(t *testing.T) {
	const n = 16
	p := NewPlan(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.9)
	}

	var energyTime float64
	for _, v := range x {
		energyTime += v * v
	}

	buf := append([]float64(nil), x...)
	p.RealForward(buf)

	h := n / 2
	energyFreq := buf[0]*buf[0] + buf[1]*buf[1]
	for k := 1; k < h; k++ {
		energyFreq += 2 * (buf[2*k]*buf[2*k] + buf[2*k+1]*buf[2*k+1])
	}
	energyFreq /= float64(n)

	if d := math.Abs(energyFreq - energyTime); d > 1e-7 {
		t.Errorf("Parseval mismatch: time energy = %g, freq energy = %g", energyTime, energyFreq)
	}
}
