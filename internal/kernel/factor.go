package kernel

// factorize decomposes n into a sequence of (radix, remainingLength)
// pairs consumed by the stage engine in mixedradix.go. It mirrors
// kiss_fft's compute_factors: factors out 4 first (maximizing the more
// efficient radix-4 butterfly), then 2, 3, 5 in turn. ok is false if n
// has a prime factor above 5, in which case the caller must fall back
// to Bluestein.
func factorize(n int) (factors []int, ok bool) {
	remaining := n
	p := 4
	for remaining > 1 {
		for remaining%p != 0 {
			switch p {
			case 4:
				p = 2
			case 2:
				p = 3
			case 3:
				p = 5
			default:
				p += 2
			}
			if p > 5 && p*p > remaining {
				p = remaining
			}
		}
		if p > 5 {
			return nil, false
		}
		remaining /= p
		factors = append(factors, p, remaining)
	}

	reorderSmallRadixLast(factors)
	recomputeRemainders(n, factors)
	return factors, true
}

// reorderSmallRadixLast reverses the stage order, so the radix-4 stages
// that factorize extracts first end up at the end of factors. The stage
// engine walks factors from the end, so those radix-4 stages run first,
// with sub-transform length 1, where bfly4 takes its m == 1 shortcut;
// the radix-3 and radix-5 stages run last.
func reorderSmallRadixLast(factors []int) {
	stages := len(factors) / 2
	for i, j := 0, stages-1; i < j; i, j = i+1, j-1 {
		factors[2*i], factors[2*j] = factors[2*j], factors[2*i]
		factors[2*i+1], factors[2*j+1] = factors[2*j+1], factors[2*i+1]
	}
}

// recomputeRemainders fixes up the "remaining length after this stage"
// half of each pair once the stage order has been reversed.
func recomputeRemainders(n int, factors []int) {
	stages := len(factors) / 2
	remaining := n
	for i := 0; i < stages; i++ {
		remaining /= factors[2*i]
		factors[2*i+1] = remaining
	}
}

// isRadix2And4Only reports whether every stage in factors is a radix-2
// or radix-4 butterfly, i.e. n is a power of two.
func isRadix2And4Only(factors []int) bool {
	for i := 0; i < len(factors); i += 2 {
		if factors[i] != 2 && factors[i] != 4 {
			return false
		}
	}
	return true
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nextPow2AtLeast returns the smallest power of two >= n.
func nextPow2AtLeast(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
