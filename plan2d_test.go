package jtransforms

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tlecomte/jtransforms-go/config"
	"github.com/tlecomte/jtransforms-go/internal/pool"
)

func TestScenarioS5AllOnesMatrix(t *testing.T) {
	p, err := New2D(4, 4, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]float64, 16)
	for i := range buf {
		buf[i] = 1
	}
	if err := p.RealForward2D(buf); err != nil {
		t.Fatal(err)
	}
	if math.Abs(buf[0]-16) > 1e-8 {
		t.Errorf("DC cell = %g, want 16", buf[0])
	}

	codec, err := NewRealFFTUtils2D(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 8; c++ {
			if r == 0 && c == 0 {
				continue
			}
			v, err := codec.Unpack(r, c, buf)
			if err != nil {
				t.Fatalf("Unpack(%d,%d): %v", r, c, err)
			}
			if math.Abs(v) > 1e-8 {
				t.Errorf("cell (r=%d,c=%d) = %g, want 0", r, c, v)
			}
		}
	}
}

func TestComplex2DRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {8, 16}, {5, 7}, {3, 8}} {
		rows, cols := dims[0], dims[1]
		p, err := New2D(rows, cols, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		orig := make([]float64, 2*rows*cols)
		for i := range orig {
			orig[i] = rand.Float64()*2 - 1
		}
		buf := append([]float64(nil), orig...)
		if err := p.ComplexForward2D(buf); err != nil {
			t.Fatal(err)
		}
		if err := p.ComplexInverse2D(buf, true); err != nil {
			t.Fatal(err)
		}
		if d := relativeL2(buf, orig); d > 1e-8 {
			t.Errorf("dims=%v: 2-D complex round trip relative L2 error = %g", dims, d)
		}
	}
}

func TestReal2DRoundTripEven(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {8, 16}, {16, 8}, {4, 8}} {
		rows, cols := dims[0], dims[1]
		p, err := New2D(rows, cols, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		orig := make([]float64, rows*cols)
		for i := range orig {
			orig[i] = rand.Float64()*2 - 1
		}
		buf := append([]float64(nil), orig...)
		if err := p.RealForward2D(buf); err != nil {
			t.Fatal(err)
		}
		if err := p.RealInverse2D(buf, true); err != nil {
			t.Fatal(err)
		}
		if d := relativeL2(buf, orig); d > 1e-7 {
			t.Errorf("dims=%v: 2-D real round trip relative L2 error = %g", dims, d)
		}
	}
}

func TestReal2DRoundTripOdd(t *testing.T) {
	rows, cols := 5, 7
	p, err := New2D(rows, cols, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	orig := make([]float64, 2*rows*cols)
	for i := 0; i < rows*cols; i++ {
		orig[i] = rand.Float64()*2 - 1
	}
	buf := append([]float64(nil), orig...)
	if err := p.RealForward2D(buf); err != nil {
		t.Fatal(err)
	}
	if err := p.RealInverse2D(buf, true); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < rows*cols; i++ {
		if d := math.Abs(buf[i] - orig[i]); d > 1e-7 {
			t.Errorf("i=%d: got %g, want %g", i, buf[i], orig[i])
		}
	}
}

func TestReal2DAgreesWithPacking(t *testing.T) {
	rows, cols := 4, 8
	p, err := New2D(rows, cols, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	codec, err := NewRealFFTUtils2D(rows, cols)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float64, rows*cols)
	for i := range buf {
		buf[i] = rand.Float64()*2 - 1
	}
	if err := p.RealForward2D(buf); err != nil {
		t.Fatal(err)
	}

	replica := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < 2*cols; c++ {
			v, err := codec.Unpack(r, c, buf)
			if err != nil {
				t.Fatalf("Unpack(%d,%d): %v", r, c, err)
			}
			if err := codec.Pack(v, r, c, replica); err != nil {
				t.Fatalf("Pack(%d,%d): %v", r, c, err)
			}
		}
	}
	for i := range buf {
		if buf[i] != replica[i] {
			t.Errorf("cell %d: unpack/pack round trip = %g, want %g", i, replica[i], buf[i])
		}
	}
}

func TestWorkerCountIndependence(t *testing.T) {
	const rows, cols = 16, 16
	orig := make([]float64, 2*rows*cols)
	for i := range orig {
		orig[i] = rand.Float64()*2 - 1
	}

	cfg := config.New()
	cfg.SetThreshold2D(0) // force the parallel path regardless of buffer size

	var results [][]float64
	for _, w := range []int{1, 2, 4} {
		p := pool.New(w)
		plan, err := New2D(rows, cols, p, cfg)
		if err != nil {
			t.Fatal(err)
		}
		buf := append([]float64(nil), orig...)
		if err := plan.ComplexForward2D(buf); err != nil {
			t.Fatal(err)
		}
		results = append(results, buf)
		p.Close()
	}
	for i := 1; i < len(results); i++ {
		if d := relativeL2(results[i], results[0]); d > 1e-9 {
			t.Errorf("worker-count result %d diverges from baseline: relative L2 = %g", i, d)
		}
	}
}
