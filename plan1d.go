package jtransforms

import "github.com/tlecomte/jtransforms-go/internal/kernel"

// Plan1D is an immutable plan bound to a transform length N. It selects
// split-radix, mixed-radix, or Bluestein at construction (see
// kernel.Algorithm) and owns the twiddle/bit-reversal/chirp tables that
// selection requires. A Plan1D may be shared by reference across
// goroutines operating on distinct buffers.
type Plan1D struct {
	n      int
	engine *kernel.Plan
}

// New1D builds a Plan1D for transform length n. n must be positive.
func New1D(n int) (*Plan1D, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	return &Plan1D{n: n, engine: kernel.NewPlan(n)}, nil
}

// Len reports the transform length this plan was built for.
func (p *Plan1D) Len() int { return p.n }

// Algorithm reports which strategy this plan selected: split-radix,
// mixed-radix, or Bluestein.
func (p *Plan1D) Algorithm() kernel.Algorithm { return p.engine.Algorithm() }

// ComplexForward computes the unscaled forward DFT of the interleaved
// complex buffer x (length 2N) in place.
func (p *Plan1D) ComplexForward(x []float64) error {
	if len(x) != 2*p.n {
		return dimensionMismatchf("ComplexForward: len(x)=%d, want %d", len(x), 2*p.n)
	}
	p.engine.ComplexForward(x)
	return nil
}

// ComplexInverse computes the IDFT of the interleaved complex buffer x
// (length 2N) in place, scaled by 1/N iff scale is set.
func (p *Plan1D) ComplexInverse(x []float64, scale bool) error {
	if len(x) != 2*p.n {
		return dimensionMismatchf("ComplexInverse: len(x)=%d, want %d", len(x), 2*p.n)
	}
	p.engine.ComplexInverse(x, scale)
	return nil
}

// RealForward computes the packed-Hermitian forward DFT of the
// length-N real buffer x in place. See §3's packed-Hermitian layout.
func (p *Plan1D) RealForward(x []float64) error {
	if len(x) != p.n {
		return dimensionMismatchf("RealForward: len(x)=%d, want %d", len(x), p.n)
	}
	p.engine.RealForward(x)
	return nil
}

// RealInverse computes the real-valued IDFT of the length-N
// packed-Hermitian buffer x in place, scaled by 1/N iff scale is set.
func (p *Plan1D) RealInverse(x []float64, scale bool) error {
	if len(x) != p.n {
		return dimensionMismatchf("RealInverse: len(x)=%d, want %d", len(x), p.n)
	}
	p.engine.RealInverse(x, scale)
	return nil
}

// RealForwardFull computes the full complex DFT of a real input: x has
// length 2N, its first N entries hold the real input, and on return x
// holds the full interleaved complex spectrum.
func (p *Plan1D) RealForwardFull(x []float64) error {
	if len(x) != 2*p.n {
		return dimensionMismatchf("RealForwardFull: len(x)=%d, want %d", len(x), 2*p.n)
	}
	p.engine.RealForwardFull(x)
	return nil
}

// RealInverseFull computes the complex IDFT of x (length 2N),
// interpreted as the full spectrum of a real signal, scaled by 1/N iff
// scale is set.
func (p *Plan1D) RealInverseFull(x []float64, scale bool) error {
	if len(x) != 2*p.n {
		return dimensionMismatchf("RealInverseFull: len(x)=%d, want %d", len(x), 2*p.n)
	}
	p.engine.RealInverseFull(x, scale)
	return nil
}
