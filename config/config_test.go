package config

import "testing"

func TestSetWorkerCountRoundsDownToPowerOfTwo(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{5, 4},
		{8, 8},
		{9, 8},
		{1023, 512},
		{-4, 1},
	}
	c := New()
	for _, tc := range cases {
		c.SetWorkerCount(tc.in)
		if got := c.WorkerCount(); got != tc.want {
			t.Errorf("SetWorkerCount(%d): WorkerCount() = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestThreshold1DClampsToMinimum(t *testing.T) {
	c := New()

	c.SetThreshold1D2(10)
	if got := c.Threshold1D2(); got != minThreshold1D {
		t.Errorf("Threshold1D2() = %d, want %d", got, minThreshold1D)
	}

	c.SetThreshold1D4(0)
	if got := c.Threshold1D4(); got != minThreshold1D {
		t.Errorf("Threshold1D4() = %d, want %d", got, minThreshold1D)
	}

	c.SetThreshold1D2(100000)
	if got := c.Threshold1D2(); got != 100000 {
		t.Errorf("Threshold1D2() = %d, want 100000", got)
	}
}

func TestThreshold2D3DNotClamped(t *testing.T) {
	c := New()

	c.SetThreshold2D(10)
	if got := c.Threshold2D(); got != 10 {
		t.Errorf("Threshold2D() = %d, want 10 (unclamped)", got)
	}

	c.SetThreshold3D(0)
	if got := c.Threshold3D(); got != 0 {
		t.Errorf("Threshold3D() = %d, want 0 (unclamped)", got)
	}
}

func TestResetThresholds(t *testing.T) {
	c := New()
	c.SetThreshold1D2(999999)
	c.SetThreshold2D(1)
	c.ResetThresholds()

	if got := c.Threshold1D2(); got != DefaultThreshold1D2 {
		t.Errorf("Threshold1D2() = %d, want %d", got, DefaultThreshold1D2)
	}
	if got := c.Threshold1D4(); got != DefaultThreshold1D4 {
		t.Errorf("Threshold1D4() = %d, want %d", got, DefaultThreshold1D4)
	}
	if got := c.Threshold2D(); got != DefaultThreshold2D {
		t.Errorf("Threshold2D() = %d, want %d", got, DefaultThreshold2D)
	}
	if got := c.Threshold3D(); got != DefaultThreshold3D {
		t.Errorf("Threshold3D() = %d, want %d", got, DefaultThreshold3D)
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different instances across calls")
	}
}
