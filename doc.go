// Package jtransforms implements fast Fourier transforms for one- and
// two-dimensional arrays of double-precision data.
//
// Plan1D serves the six 1-D buffer operations (complex/real,
// forward/inverse, full and packed variants) over interleaved or
// real-valued contiguous float64 buffers. Plan2D composes a row and a
// column 1-D kernel plan into a row/column driver, optionally fanning
// work out across a
// shared worker pool. RealFFTUtils2D maps between the compact
// packed-Hermitian 2-D layout and logical (row, col) spectral
// coordinates.
//
// Plans are immutable after construction and safe to share across
// goroutines against distinct buffers; buffers themselves are not
// synchronized and must not be used concurrently from overlapping
// transform calls.
package jtransforms
