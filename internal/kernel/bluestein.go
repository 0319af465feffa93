package kernel

import "math"

// bluestein implements the chirp-z transform for lengths that factorize
// does not accept (any prime factor above 5, including primes
// themselves). It rewrites the length-n DFT as a length-M power-of-two
// convolution, M = nextPow2AtLeast(2n-1), by way of the chirp identity
//
//	x[k]*y[k] = (1/2) * (x[k]^2 + y[k]^2 - (x[k]-y[k])^2)
//
// applied to k*j, which turns the DFT's k*j product into a convolution
// of two chirp-modulated sequences. The convolution kernel is
// transformed once at construction time and reused for every forward or
// inverse call against this length.
type bluestein struct {
	n       int
	m       int
	chirp   []complex128 // w[k] = exp(-i*pi*k^2/n), k in [0, n)
	kernelF []complex128 // FFT of the zero-padded, conjugated chirp kernel
	engine  *stageEngine // power-of-two engine of length m
}

func newBluestein(n int) *bluestein {
	m := nextPow2AtLeast(2*n - 1)
	engine, ok := newStageEngine(m)
	if !ok {
		panic("kernel: bluestein convolution length is not a power of two")
	}

	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		// k^2 mod 2n avoids catastrophic cancellation in the phase for
		// large k while leaving exp(-i*pi*k^2/n) unchanged.
		kk := (k * k) % (2 * n)
		phase := -math.Pi * float64(kk) / float64(n)
		chirp[k] = complex(math.Cos(phase), math.Sin(phase))
	}

	kernel := make([]complex128, m)
	kernel[0] = complex(1, 0)
	for k := 1; k < n; k++ {
		c := complex(real(chirp[k]), -imag(chirp[k]))
		kernel[k] = c
		kernel[m-k] = c
	}

	kernelF := make([]complex128, m)
	engine.forward(kernel, kernelF)

	return &bluestein{n: n, m: m, chirp: chirp, kernelF: kernelF, engine: engine}
}

// forward computes the unscaled forward DFT of in (length n) into out
// (length n).
func (b *bluestein) forward(in, out []complex128) {
	b.transform(in, out, false)
}

// inverse computes the inverse DFT of in, scaled by 1/n iff scale is set, via the
// conjugate trick applied around the same forward machinery.
func (b *bluestein) inverse(in, out []complex128, scale bool) {
	conj := make([]complex128, b.n)
	for i, v := range in {
		conj[i] = complex(real(v), -imag(v))
	}
	b.transform(conj, out, false)

	div := 1.0
	if scale {
		div = 1.0 / float64(b.n)
	}
	for i, v := range out {
		out[i] = complex(real(v)*div, -imag(v)*div)
	}
}

// transform runs the embed -> convolve -> extract pipeline shared by
// forward and inverse (inverse pre-conjugates its input and
// post-conjugates+scales the result).
func (b *bluestein) transform(in, out []complex128, _ bool) {
	n, m := b.n, b.m

	padded := make([]complex128, m)
	for k := 0; k < n; k++ {
		padded[k] = in[k] * b.chirp[k]
	}

	freq := make([]complex128, m)
	b.engine.forward(padded, freq)

	for i := range freq {
		freq[i] *= b.kernelF[i]
	}

	conv := make([]complex128, m)
	b.engine.inverse(freq, conv, true)

	for k := 0; k < n; k++ {
		out[k] = conv[k] * b.chirp[k]
	}
}
