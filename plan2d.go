package jtransforms

import (
	"github.com/tlecomte/jtransforms-go/config"
	"github.com/tlecomte/jtransforms-go/internal/kernel"
	"github.com/tlecomte/jtransforms-go/internal/pool"
)

// Plan2D holds a row plan and a column plan and drives the 2-D
// decomposition across them, optionally fanning row/column passes out
// across a worker pool. Plan2D is immutable after construction.
type Plan2D struct {
	rows, cols       int
	rowPlan, colPlan *kernel.Plan
	pool             *pool.Pool
	cfg              *config.Config
	// useParallel snapshots, at construction, whether more than one
	// worker is available to this plan. The size threshold itself
	// (rows*cols against cfg.Threshold2D()) is re-read live at every
	// call, per the configuration-race rule in the concurrency model;
	// only the worker-availability half of the decision is cached,
	// since a plan's pool does not change size over its lifetime.
	useParallel bool
}

// New2D builds a Plan2D for an rows x cols buffer. p may be nil to
// force sequential row/column passes; cfg may be nil to use default
// thresholds.
func New2D(rows, cols int, p *pool.Pool, cfg *config.Config) (*Plan2D, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidLength
	}
	return &Plan2D{
		rows:        rows,
		cols:        cols,
		rowPlan:     kernel.NewPlan(cols),
		colPlan:     kernel.NewPlan(rows),
		pool:        p,
		cfg:         cfg,
		useParallel: p != nil && p.Size() > 1,
	}, nil
}

// Rows reports the row count this plan was built for.
func (p *Plan2D) Rows() int { return p.rows }

// Cols reports the column count this plan was built for.
func (p *Plan2D) Cols() int { return p.cols }

func (p *Plan2D) threshold2D() int {
	if p.cfg != nil {
		return p.cfg.Threshold2D()
	}
	return config.DefaultThreshold2D
}

func (p *Plan2D) parallel() bool {
	return p.useParallel && p.rows*p.cols >= p.threshold2D()
}

// forEach runs fn(i) for i in [0, n); when the plan's parallel
// conditions hold it partitions [0, n) into contiguous chunks submitted
// to the pool, otherwise it runs sequentially.
func (p *Plan2D) forEach(n int, fn func(i int)) error {
	if n > 1 && p.parallel() {
		err := p.pool.ParallelRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				fn(i)
			}
		})
		if err != nil {
			return pkgWrapWorkerFailure(err)
		}
		return nil
	}
	for i := 0; i < n; i++ {
		fn(i)
	}
	return nil
}

// ComplexForward2D computes the unscaled forward 2-D DFT of the
// interleaved complex buffer buf (length 2*rows*cols) in place: a row
// pass followed by a column pass.
func (p *Plan2D) ComplexForward2D(buf []float64) error {
	if len(buf) != 2*p.rows*p.cols {
		return dimensionMismatchf("ComplexForward2D: len(buf)=%d, want %d", len(buf), 2*p.rows*p.cols)
	}
	stride := 2 * p.cols
	if err := p.forEach(p.rows, func(r int) {
		p.rowPlan.ComplexForward(buf[r*stride : (r+1)*stride])
	}); err != nil {
		return err
	}
	return p.columnPass(buf, func(col []float64) { p.colPlan.ComplexForward(col) })
}

// ComplexInverse2D computes the 2-D IDFT of buf (length 2*rows*cols) in
// place, scaled by 1/(rows*cols) iff scale is set.
func (p *Plan2D) ComplexInverse2D(buf []float64, scale bool) error {
	if len(buf) != 2*p.rows*p.cols {
		return dimensionMismatchf("ComplexInverse2D: len(buf)=%d, want %d", len(buf), 2*p.rows*p.cols)
	}
	stride := 2 * p.cols
	if err := p.forEach(p.rows, func(r int) {
		p.rowPlan.ComplexInverse(buf[r*stride:(r+1)*stride], false)
	}); err != nil {
		return err
	}
	if err := p.columnPass(buf, func(col []float64) { p.colPlan.ComplexInverse(col, false) }); err != nil {
		return err
	}
	if scale {
		div := 1.0 / float64(p.rows*p.cols)
		for i := range buf {
			buf[i] *= div
		}
	}
	return nil
}

// columnPass gathers each column of the rows x cols interleaved-complex
// buffer into contiguous scratch, applies fn, and scatters the result
// back.
func (p *Plan2D) columnPass(buf []float64, fn func(col []float64)) error {
	rows, cols := p.rows, p.cols
	stride := 2 * cols
	return p.forEach(cols, func(c int) {
		col := make([]float64, 2*rows)
		for r := 0; r < rows; r++ {
			col[2*r] = buf[r*stride+2*c]
			col[2*r+1] = buf[r*stride+2*c+1]
		}
		fn(col)
		for r := 0; r < rows; r++ {
			buf[r*stride+2*c] = col[2*r]
			buf[r*stride+2*c+1] = col[2*r+1]
		}
	})
}

// RealForward2D computes the forward real-input 2-D DFT of buf in
// place. For even rows and cols, buf has length rows*cols and the
// result follows §6's packed-Hermitian 2-D layout. For odd rows or
// cols, buf must have length 2*rows*cols, the real input occupies its
// first rows*cols entries in row-major order, and the result is the
// full, unpacked interleaved complex spectrum.
func (p *Plan2D) RealForward2D(buf []float64) error {
	if p.rows%2 == 0 && p.cols%2 == 0 {
		if len(buf) != p.rows*p.cols {
			return dimensionMismatchf("RealForward2D: len(buf)=%d, want %d", len(buf), p.rows*p.cols)
		}
		return p.realForward2DEven(buf)
	}
	if len(buf) != 2*p.rows*p.cols {
		return dimensionMismatchf("RealForward2D: len(buf)=%d, want %d", len(buf), 2*p.rows*p.cols)
	}
	return p.realForward2DOdd(buf)
}

// RealInverse2D is the inverse of RealForward2D, scaled by
// 1/(rows*cols) iff scale is set.
func (p *Plan2D) RealInverse2D(buf []float64, scale bool) error {
	if p.rows%2 == 0 && p.cols%2 == 0 {
		if len(buf) != p.rows*p.cols {
			return dimensionMismatchf("RealInverse2D: len(buf)=%d, want %d", len(buf), p.rows*p.cols)
		}
		return p.realInverse2DEven(buf, scale)
	}
	if len(buf) != 2*p.rows*p.cols {
		return dimensionMismatchf("RealInverse2D: len(buf)=%d, want %d", len(buf), 2*p.rows*p.cols)
	}
	return p.realInverse2DOdd(buf, scale)
}

func (p *Plan2D) realForward2DOdd(buf []float64) error {
	for i := p.rows*p.cols - 1; i >= 0; i-- {
		buf[2*i] = buf[i]
		buf[2*i+1] = 0
	}
	return p.ComplexForward2D(buf)
}

func (p *Plan2D) realInverse2DOdd(buf []float64, scale bool) error {
	if err := p.ComplexInverse2D(buf, scale); err != nil {
		return err
	}
	for i := 0; i < p.rows*p.cols; i++ {
		buf[i] = buf[2*i]
	}
	return nil
}

// realForward2DEven runs the row pass (real-forward on each row) and
// then the column pass: the two structurally real columns (DC and
// Nyquist, index 0 and cols/2) are combined into one complex column of
// length rows and split back out by the same even/odd split identity
// real.go uses for the 1-D half-length trick; every other independent
// frequency column (index 1..cols/2-1) is already complex after the row
// pass and gets an ordinary column-wise complex forward.
func (p *Plan2D) realForward2DEven(buf []float64) error {
	rows, cols := p.rows, p.cols
	half := rows / 2
	h := cols / 2

	if err := p.forEach(rows, func(r int) {
		p.rowPlan.RealForward(buf[r*cols : (r+1)*cols])
	}); err != nil {
		return err
	}

	zBuf := make([]float64, 2*rows)
	for r := 0; r < rows; r++ {
		zBuf[2*r] = buf[r*cols+0]
		zBuf[2*r+1] = buf[r*cols+1]
	}
	p.colPlan.ComplexForward(zBuf)

	buf[0] = zBuf[0]
	buf[1] = zBuf[1]
	buf[half*cols] = zBuf[2*half]
	buf[half*cols+1] = zBuf[2*half+1]

	for r := 1; r < half; r++ {
		zr := complex(zBuf[2*r], zBuf[2*r+1])
		zhr := complex(zBuf[2*(rows-r)], zBuf[2*(rows-r)+1])

		e := complex((real(zr)+real(zhr))/2, (imag(zr)-imag(zhr))/2)
		diffR := real(zr) - real(zhr)
		diffI := imag(zr) + imag(zhr)
		o := complex(diffI/2, -diffR/2)

		buf[r*cols+0] = real(e)
		buf[r*cols+1] = imag(e)
		buf[(rows-r)*cols+0] = real(o)
		buf[(rows-r)*cols+1] = imag(o)
	}

	if h > 1 {
		if err := p.forEach(h-1, func(j int) {
			k := j + 1
			col := make([]float64, 2*rows)
			for r := 0; r < rows; r++ {
				col[2*r] = buf[r*cols+2*k]
				col[2*r+1] = buf[r*cols+2*k+1]
			}
			p.colPlan.ComplexForward(col)
			for r := 0; r < rows; r++ {
				buf[r*cols+2*k] = col[2*r]
				buf[r*cols+2*k+1] = col[2*r+1]
			}
		}); err != nil {
			return err
		}
	}
	return nil
}

// realInverse2DEven is the exact inverse of realForward2DEven: it first
// undoes the column pass (ordinary complex columns directly, the
// DC/Nyquist pair by reassembling the Hermitian-symmetric spectra of
// the two combined real columns and inverse-transforming once), then
// runs a row-wise real inverse. All axis scaling is deferred to a
// single division by rows*cols at the end, iff scale is set.
func (p *Plan2D) realInverse2DEven(buf []float64, scale bool) error {
	rows, cols := p.rows, p.cols
	half := rows / 2
	h := cols / 2

	if h > 1 {
		if err := p.forEach(h-1, func(j int) {
			k := j + 1
			col := make([]float64, 2*rows)
			for r := 0; r < rows; r++ {
				col[2*r] = buf[r*cols+2*k]
				col[2*r+1] = buf[r*cols+2*k+1]
			}
			p.colPlan.ComplexInverse(col, false)
			for r := 0; r < rows; r++ {
				buf[r*cols+2*k] = col[2*r]
				buf[r*cols+2*k+1] = col[2*r+1]
			}
		}); err != nil {
			return err
		}
	}

	e := make([]complex128, rows)
	o := make([]complex128, rows)
	e[0] = complex(buf[0], 0)
	o[0] = complex(buf[1], 0)
	e[half] = complex(buf[half*cols], 0)
	o[half] = complex(buf[half*cols+1], 0)
	for r := 1; r < half; r++ {
		e[r] = complex(buf[r*cols+0], buf[r*cols+1])
		o[r] = complex(buf[(rows-r)*cols+0], buf[(rows-r)*cols+1])
		e[rows-r] = complex(real(e[r]), -imag(e[r]))
		o[rows-r] = complex(real(o[r]), -imag(o[r]))
	}

	zBuf := make([]float64, 2*rows)
	for r := 0; r < rows; r++ {
		z := e[r] + complex(0, 1)*o[r]
		zBuf[2*r] = real(z)
		zBuf[2*r+1] = imag(z)
	}
	p.colPlan.ComplexInverse(zBuf, false)

	for r := 0; r < rows; r++ {
		buf[r*cols+0] = zBuf[2*r]
		buf[r*cols+1] = zBuf[2*r+1]
	}

	if err := p.forEach(rows, func(r int) {
		p.rowPlan.RealInverse(buf[r*cols:(r+1)*cols], false)
	}); err != nil {
		return err
	}

	if scale {
		div := 1.0 / float64(rows*cols)
		for i := range buf {
			buf[i] *= div
		}
	}
	return nil
}
