package jtransforms

// RealFFTUtils2D is the packed-layout codec described in component H:
// a purely algebraic bidirectional address map between the compact
// packed-Hermitian representation produced by Plan2D.RealForward2D and
// logical (row, col) coordinates of the rows x (2*cols) complex
// spectrum. It never consults buffer contents to decide addressing.
//
// RealFFTUtils2D only applies to even rows and cols; odd dimensions use
// the unpacked full-complex layout and have no packed codec.
type RealFFTUtils2D struct {
	rows, cols int
}

// NewRealFFTUtils2D builds a codec for an rows x cols packed-Hermitian
// buffer. rows and cols must be positive and even.
func NewRealFFTUtils2D(rows, cols int) (*RealFFTUtils2D, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidLength
	}
	if rows%2 != 0 || cols%2 != 0 {
		return nil, invalidPackedCoordinatef("RealFFTUtils2D requires even rows and cols, got %d x %d", rows, cols)
	}
	return &RealFFTUtils2D{rows: rows, cols: cols}, nil
}

// cell describes where a logical (row, c) component physically lives.
type cell struct {
	index      int  // physical index into buf
	conjugate  bool // negate the imaginary-valued component on read/write
	structZero bool // this component is not stored; it is zero by construction
}

// resolveCell maps logical row r in [0, rows) and logical component c in
// [0, 2*cols) (c even selects Re of frequency column c/2, c odd selects
// Im) to the physical cell in a rows*cols packed buffer, per §6.
func (u *RealFFTUtils2D) resolveCell(r, c int) (cell, bool) {
	if r < 0 || r >= u.rows || c < 0 || c >= 2*u.cols {
		return cell{}, false
	}

	rows, cols := u.rows, u.cols
	half := rows / 2
	k := c / 2
	isIm := c%2 == 1

	if k != 0 && k != cols/2 {
		// Ordinary (non-self-conjugate) frequency columns are stored
		// directly for k in (0, cols/2); k in (cols/2, cols) is the
		// redundant conjugate half and is never stored on its own, so it
		// mirrors to its stored partner at (rows-r mod rows, cols-k) per
		// the 2-D Hermitian symmetry X[r,k] = conj(X[rows-r, cols-k]).
		kk, rr, conj := k, r, false
		if k > cols/2 {
			kk = cols - k
			rr = (rows - r) % rows
			conj = true
		}
		idx := rr*cols + 2*kk
		if isIm {
			idx++
		}
		return cell{index: idx, conjugate: conj, structZero: false}, true
	}

	isNyquist := k == cols/2
	rr, conj := r, false
	if r > half {
		rr, conj = rows-r, true
	}

	var base int
	switch {
	case rr == 0:
		if isNyquist {
			base = 1
		} else {
			base = 0
		}
		if isIm {
			return cell{structZero: true}, true
		}
		return cell{index: base, conjugate: false, structZero: false}, true
	case rr == half:
		base = half * cols
		if isNyquist {
			base++
		}
		if isIm {
			return cell{structZero: true}, true
		}
		return cell{index: base, conjugate: false, structZero: false}, true
	default:
		if isNyquist {
			base = (rows - rr) * cols
		} else {
			base = rr * cols
		}
		idx := base
		if isIm {
			idx++
		}
		return cell{index: idx, conjugate: conj, structZero: false}, true
	}
}

// Unpack returns the real or imaginary part that logically lives at
// (row=r, col=c) of the rows x (2*cols) complex spectrum packed into
// buf (length rows*cols).
func (u *RealFFTUtils2D) Unpack(r, c int, buf []float64) (float64, error) {
	if len(buf) != u.rows*u.cols {
		return 0, dimensionMismatchf("Unpack: len(buf)=%d, want %d", len(buf), u.rows*u.cols)
	}
	cl, ok := u.resolveCell(r, c)
	if !ok {
		return 0, invalidPackedCoordinatef("Unpack: (r=%d, c=%d) out of range for %dx%d", r, c, u.rows, u.cols)
	}
	if cl.structZero {
		return 0, nil
	}
	v := buf[cl.index]
	if cl.conjugate && c%2 == 1 {
		v = -v
	}
	return v, nil
}

// Pack writes value into the physical cell that (row=r, col=c)
// logically maps to. If the coordinate is structurally zero (the
// imaginary part of a real-axis DC/Nyquist corner), value must be zero
// or Pack fails with ErrInvalidPackedCoordinate.
func (u *RealFFTUtils2D) Pack(value float64, r, c int, buf []float64) error {
	if len(buf) != u.rows*u.cols {
		return dimensionMismatchf("Pack: len(buf)=%d, want %d", len(buf), u.rows*u.cols)
	}
	cl, ok := u.resolveCell(r, c)
	if !ok {
		return invalidPackedCoordinatef("Pack: (r=%d, c=%d) out of range for %dx%d", r, c, u.rows, u.cols)
	}
	if cl.structZero {
		if value != 0 {
			return invalidPackedCoordinatef("Pack: (r=%d, c=%d) is structurally zero, got %g", r, c, value)
		}
		return nil
	}
	if cl.conjugate && c%2 == 1 {
		value = -value
	}
	buf[cl.index] = value
	return nil
}
