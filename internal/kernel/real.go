package kernel

import "math"

// RealForward computes the packed-Hermitian forward DFT of the
// length-n real buffer buf, in place.
//
// For even n the packed layout is: buf[0]=Re(X[0]), buf[1]=Re(X[n/2]),
// and for k in [1, n/2), buf[2k]=Re(X[k]), buf[2k+1]=Im(X[k]); the
// imaginary parts of X[0] and X[n/2] are zero by construction and are
// not stored. This is the standard two-real-for-the-price-of-one
// packing: buf is reinterpreted as n/2 complex samples (z[k]=x[2k] +
// i*x[2k+1]), transformed once at length n/2 via the cached half-length
// plan, and split back into the even/odd half-spectra E and O via the
// conjugate-symmetry identity E[k]=(Z[k]+conj(Z[h-k]))/2,
// O[k]=-i*(Z[k]-conj(Z[h-k]))/2, before recombining X[k]=E[k]+W^k*O[k].
//
// For odd n there is no such split (n/2 is not an integer length), so
// the buffer is embedded into a full length-n complex transform and the
// first (n+1)/2 frequencies are packed as buf[0]=Re(X[0]) followed by
// buf[2k-1]=Re(X[k]), buf[2k]=Im(X[k]) for k in [1, (n-1)/2].
func (p *Plan) RealForward(buf []float64) {
	if p.n%2 == 0 {
		p.realForwardEven(buf)
		return
	}
	p.realForwardOdd(buf)
}

func (p *Plan) realForwardEven(buf []float64) {
	n := p.n
	h := n / 2

	z := make([]complex128, h)
	for k := 0; k < h; k++ {
		z[k] = complex(buf[2*k], buf[2*k+1])
	}
	Z := make([]complex128, h)
	p.half.complexForward(z, Z)

	e0 := real(Z[0])
	o0 := imag(Z[0])
	buf[0] = e0 + o0
	buf[1] = e0 - o0

	for k := 1; k < h; k++ {
		zk := Z[k]
		zhk := Z[h-k]

		ek := complex((real(zk)+real(zhk))/2, (imag(zk)-imag(zhk))/2)

		diffR := real(zk) - real(zhk)
		diffI := imag(zk) + imag(zhk)
		ok := complex(diffI/2, -diffR/2)

		phase := -2.0 * math.Pi * float64(k) / float64(n)
		w := complex(math.Cos(phase), math.Sin(phase))
		xk := ek + w*ok

		buf[2*k] = real(xk)
		buf[2*k+1] = imag(xk)
	}
}

func (p *Plan) realForwardOdd(buf []float64) {
	n := p.n
	h := n / 2

	in := make([]complex128, n)
	for i := 0; i < n; i++ {
		in[i] = complex(buf[i], 0)
	}
	out := make([]complex128, n)
	p.complexForward(in, out)

	buf[0] = real(out[0])
	for k := 1; k <= h; k++ {
		buf[2*k-1] = real(out[k])
		buf[2*k] = imag(out[k])
	}
}

// RealInverse computes the real-valued IDFT of buf (length n),
// interpreted per RealForward's packed layout, in place, scaled by 1/n
// iff scale is set. It reconstructs the full Hermitian spectrum and runs
// the complex inverse core, taking the real part of the result.
func (p *Plan) RealInverse(buf []float64, scale bool) {
	n := p.n
	full := make([]complex128, n)

	if n%2 == 0 {
		h := n / 2
		full[0] = complex(buf[0], 0)
		full[h] = complex(buf[1], 0)
		for k := 1; k < h; k++ {
			x := complex(buf[2*k], buf[2*k+1])
			full[k] = x
			full[n-k] = complex(real(x), -imag(x))
		}
	} else {
		h := n / 2
		full[0] = complex(buf[0], 0)
		for k := 1; k <= h; k++ {
			x := complex(buf[2*k-1], buf[2*k])
			full[k] = x
			full[n-k] = complex(real(x), -imag(x))
		}
	}

	out := make([]complex128, n)
	p.complexInverse(full, out, scale)
	for i, v := range out {
		buf[i] = real(v)
	}
}
