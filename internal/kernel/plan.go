package kernel

// Plan is a reusable, length-specific transform plan: it selects and
// builds the algorithm (split-radix/mixed-radix stage engine, or
// Bluestein chirp-z) once for a given length and exposes the pure
// arithmetic operations component E of the system needs. All buffers
// are the caller's; Plan allocates only bounded scratch proportional to
// its own length per call.
//
// Buffer conventions match the public API exactly: complex operations
// use interleaved buffers (real at 2k, imaginary at 2k+1, length 2N for
// an N-point transform); real operations use a length-N real buffer,
// in place, packed per the Hermitian layout documented on RealForward.
type Plan struct {
	n      int
	algo   Algorithm
	engine *stageEngine
	chirp  *bluestein
	half   *Plan // cached length-n/2 plan, set iff n is even; backs the real-FFT half-trick
}

// NewPlan builds a Plan for transform length n. n must be positive.
func NewPlan(n int) *Plan {
	if n <= 0 {
		panic("kernel: transform length must be positive")
	}

	p := &Plan{n: n}
	if engine, ok := newStageEngine(n); ok {
		p.engine = engine
		p.algo = engine.algorithm()
	} else {
		p.chirp = newBluestein(n)
		p.algo = Bluestein
	}

	if n%2 == 0 {
		p.half = NewPlan(n / 2)
	}
	return p
}

// Len reports the transform length this plan was built for.
func (p *Plan) Len() int { return p.n }

// Algorithm reports which strategy this plan selected.
func (p *Plan) Algorithm() Algorithm { return p.algo }

func (p *Plan) complexForward(in, out []complex128) {
	if p.engine != nil {
		p.engine.forward(in, out)
		return
	}
	p.chirp.forward(in, out)
}

func (p *Plan) complexInverse(in, out []complex128, scale bool) {
	if p.engine != nil {
		p.engine.inverse(in, out, scale)
		return
	}
	p.chirp.inverse(in, out, scale)
}

// ComplexForward computes the unscaled forward DFT of the interleaved
// complex buffer buf (length 2*n) in place.
func (p *Plan) ComplexForward(buf []float64) {
	n := p.n
	in := toComplex(buf, n)
	out := make([]complex128, n)
	p.complexForward(in, out)
	fromComplex(out, buf)
}

// ComplexInverse computes the IDFT of the interleaved complex buffer buf
// (length 2*n) in place, scaled by 1/n iff scale is set.
func (p *Plan) ComplexInverse(buf []float64, scale bool) {
	n := p.n
	in := toComplex(buf, n)
	out := make([]complex128, n)
	p.complexInverse(in, out, scale)
	fromComplex(out, buf)
}

// RealForwardFull computes the full complex DFT of a real input: buf has
// length 2*n, its first n entries hold the real input on entry, and on
// return buf holds the full interleaved complex spectrum. This is a
// convenience embedding of the complex core (zero imaginary part on the
// way in); it performs no Hermitian-symmetry shortcut.
func (p *Plan) RealForwardFull(buf []float64) {
	n := p.n
	in := make([]complex128, n)
	for i := 0; i < n; i++ {
		in[i] = complex(buf[i], 0)
	}
	out := make([]complex128, n)
	p.complexForward(in, out)
	fromComplex(out, buf)
}

// RealInverseFull computes the complex IDFT of buf (length 2*n),
// interpreted as the full spectrum of a real signal (callers normally
// pass a Hermitian-symmetric buffer). It is the complex inverse with no
// further shortcut; the real part of the result is the reconstructed
// signal.
func (p *Plan) RealInverseFull(buf []float64, scale bool) {
	p.ComplexInverse(buf, scale)
}

func toComplex(buf []float64, n int) []complex128 {
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = complex(buf[2*k], buf[2*k+1])
	}
	return out
}

func fromComplex(cs []complex128, buf []float64) {
	for k, v := range cs {
		buf[2*k] = real(v)
		buf[2*k+1] = imag(v)
	}
}
