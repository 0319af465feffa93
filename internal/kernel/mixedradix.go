package kernel

// stageEngine runs the radix-2/3/4/5 butterfly passes implied by a
// factorization of n. It operates on a buffer already placed in
// digit-reversed order (see buildDigitReversal) and performs the
// combine-only half of a decimation-in-time FFT. This is a direct port
// of kiss_fft's fftImpl/bfly2..bfly5 (celt/kiss_fft.go in the reference
// corpus) onto this package's own factorization/twiddle tables; variable
// names (fstride, m, n, mm) are kept close to the original to preserve
// its exact index arithmetic.
//
// The same engine backs both the SplitRadix and MixedRadix algorithm
// selections (see algorithm.go): a pure power-of-two n factors entirely
// into radix-4 (plus at most one trailing radix-2) stages under
// factorize, so there is no arithmetic difference between the two
// selections beyond which factors appear.
type stageEngine struct {
	n        int
	factors  []int
	twiddles []complex128
	fstride  []int
	bitrev   []int
}

func newStageEngine(n int) (*stageEngine, bool) {
	factors, ok := factorize(n)
	if !ok {
		return nil, false
	}

	stages := len(factors) / 2
	fstride := make([]int, stages+1)
	fstride[0] = 1
	for i := 0; i < stages; i++ {
		fstride[i+1] = fstride[i] * factors[2*i]
	}

	return &stageEngine{
		n:        n,
		factors:  factors,
		twiddles: buildTwiddles(n),
		fstride:  fstride,
		bitrev:   buildDigitReversal(n, factors),
	}, true
}

// algorithm reports which spec-level algorithm label this factorization
// corresponds to.
func (e *stageEngine) algorithm() Algorithm {
	if isRadix2And4Only(e.factors) {
		return SplitRadix
	}
	return MixedRadix
}

// forward computes the unscaled forward DFT of in into out (out[k] =
// sum_n in[n] * exp(-2pi i k n / N)). in and out must both have length
// n and must not alias.
func (e *stageEngine) forward(in, out []complex128) {
	for i := 0; i < e.n; i++ {
		out[e.bitrev[i]] = in[i]
	}
	e.run(out)
}

// inverse computes the inverse DFT of in, scaled by 1/n iff scale is set, via the
// standard conjugate trick: IDFT(x) = conj(DFT(conj(x))) / N.
func (e *stageEngine) inverse(in, out []complex128, scale bool) {
	for i := 0; i < e.n; i++ {
		v := in[i]
		out[e.bitrev[i]] = complex(real(v), -imag(v))
	}
	e.run(out)

	div := 1.0
	if scale {
		div = 1.0 / float64(e.n)
	}
	for i := range out {
		out[i] = complex(real(out[i])*div, -imag(out[i])*div)
	}
}

// run executes the butterfly passes in place over a buffer already in
// digit-reversed order. Stages are processed from the innermost
// (smallest stride) outward; m tracks the sub-transform length entering
// each stage and mm the stride between the groups that stage combines.
func (e *stageEngine) run(buf []complex128) {
	stages := len(e.factors) / 2
	if stages == 0 {
		return
	}
	fstride := e.fstride
	m := e.factors[2*stages-1]

	for i := stages - 1; i >= 0; i-- {
		m2 := 1
		if i > 0 {
			m2 = e.factors[2*i-1]
		}

		switch e.factors[2*i] {
		case 2:
			e.bfly2(buf, fstride[i], m, fstride[i], m2)
		case 3:
			e.bfly3(buf, fstride[i], m, fstride[i], m2)
		case 4:
			e.bfly4(buf, fstride[i], m, fstride[i], m2)
		case 5:
			e.bfly5(buf, fstride[i], m, fstride[i], m2)
		}
		m = m2
	}
}

// bfly2 combines n groups of m pairs spaced mm apart, using twiddle
// stride fstride.
func (e *stageEngine) bfly2(buf []complex128, fstride, m, n, mm int) {
	tw := e.twiddles
	twIdx := 0
	for j := 0; j < m; j++ {
		t := tw[twIdx]
		for i := 0; i < n; i++ {
			idx := j + mm*i
			v := buf[idx+m] * t
			buf[idx+m] = buf[idx] - v
			buf[idx] = buf[idx] + v
		}
		twIdx += fstride
	}
}

func (e *stageEngine) bfly3(buf []complex128, fstride, m, n, mm int) {
	tw := e.twiddles
	m2 := 2 * m
	epi3Im := imag(tw[fstride*m])
	fstride2 := fstride * 2

	for i := 0; i < n; i++ {
		base := i * mm
		tw1, tw2 := 0, 0
		for k := 0; k < m; k++ {
			s1 := buf[base+m] * tw[tw1]
			s2 := buf[base+m2] * tw[tw2]
			tw1 += fstride
			tw2 += fstride2

			s3 := s1 + s2
			s0 := s1 - s2

			buf[base+m] = buf[base] - complex(0.5*real(s3), 0.5*imag(s3))
			s0 = complex(real(s0)*epi3Im, imag(s0)*epi3Im)
			buf[base] = buf[base] + s3

			buf[base+m2] = complex(real(buf[base+m])+imag(s0), imag(buf[base+m])-real(s0))
			buf[base+m] = complex(real(buf[base+m])-imag(s0), imag(buf[base+m])+real(s0))

			base++
		}
	}
}

func (e *stageEngine) bfly4(buf []complex128, fstride, m, n, mm int) {
	m2 := 2 * m
	m3 := 3 * m

	if m == 1 {
		for i := 0; i < n; i++ {
			base := i * 4
			s0 := buf[base] - buf[base+2]
			buf[base] = buf[base] + buf[base+2]
			s1 := buf[base+1] + buf[base+3]
			buf[base+2] = buf[base] - s1
			buf[base] = buf[base] + s1
			s1 = buf[base+1] - buf[base+3]

			buf[base+1] = complex(real(s0)+imag(s1), imag(s0)-real(s1))
			buf[base+3] = complex(real(s0)-imag(s1), imag(s0)+real(s1))
		}
		return
	}

	tw := e.twiddles
	fstride2 := fstride * 2
	fstride3 := fstride * 3
	for i := 0; i < n; i++ {
		base := i * mm
		tw1, tw2, tw3 := 0, 0, 0
		for j := 0; j < m; j++ {
			s0 := buf[base+m] * tw[tw1]
			s1 := buf[base+m2] * tw[tw2]
			s2 := buf[base+m3] * tw[tw3]

			s5 := buf[base] - s1
			buf[base] = buf[base] + s1
			s3 := s0 + s2
			s4 := s0 - s2
			buf[base+m2] = buf[base] - s3

			tw1 += fstride
			tw2 += fstride2
			tw3 += fstride3

			buf[base] = buf[base] + s3

			buf[base+m] = complex(real(s5)+imag(s4), imag(s5)-real(s4))
			buf[base+m3] = complex(real(s5)-imag(s4), imag(s5)+real(s4))

			base++
		}
	}
}

func (e *stageEngine) bfly5(buf []complex128, fstride, m, n, mm int) {
	const (
		yaR = 0.30901699437494742
		yaI = -0.95105651629515353
		ybR = -0.80901699437494742
		ybI = -0.58778525229247313
	)

	tw := e.twiddles
	fstride2 := fstride * 2
	fstride3 := fstride * 3
	fstride4 := fstride * 4

	for i := 0; i < n; i++ {
		base := i * mm
		i0, i1, i2, i3, i4 := base, base+m, base+2*m, base+3*m, base+4*m
		tw1, tw2, tw3, tw4 := 0, 0, 0, 0

		for u := 0; u < m; u++ {
			s0 := buf[i0]
			s1 := buf[i1] * tw[tw1]
			s2 := buf[i2] * tw[tw2]
			s3 := buf[i3] * tw[tw3]
			s4 := buf[i4] * tw[tw4]

			s7 := s1 + s4
			s10 := s1 - s4
			s8 := s2 + s3
			s9 := s2 - s3

			buf[i0] = s0 + s7 + s8

			s0r, s0i := real(s0), imag(s0)
			s7r, s7i := real(s7), imag(s7)
			s8r, s8i := real(s8), imag(s8)
			s10r, s10i := real(s10), imag(s10)
			s9r, s9i := real(s9), imag(s9)

			s5r := s0r + yaR*s7r + ybR*s8r
			s5i := s0i + yaR*s7i + ybR*s8i
			s6r := yaI*s10i + ybI*s9i
			s6i := -(yaI*s10r + ybI*s9r)

			buf[i1] = complex(s5r-s6r, s5i-s6i)
			buf[i4] = complex(s5r+s6r, s5i+s6i)

			s11r := s0r + ybR*s7r + yaR*s8r
			s11i := s0i + ybR*s7i + yaR*s8i
			s12r := -ybI*s10i + yaI*s9i
			s12i := ybI*s10r - yaI*s9r

			buf[i2] = complex(s11r+s12r, s11i+s12i)
			buf[i3] = complex(s11r-s12r, s11i-s12i)

			i0++
			i1++
			i2++
			i3++
			i4++
			tw1 += fstride
			tw2 += fstride2
			tw3 += fstride3
			tw4 += fstride4
		}
	}
}
