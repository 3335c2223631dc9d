package bigint

// effectiveLength returns len(x.d), minus one if the top word is exactly
// the sign-extension constant — a defensive adjustment for comparison
// beyond what trim alone guarantees.
func (x *BigInt) effectiveLength() int {
	n := x.length()
	top := x.d[n-1]
	if top == 0 || top == wordMax {
		return n - 1
	}
	return n
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x BigInt) Cmp(y BigInt) int {
	xs, ys := x.sign(), y.sign()
	if xs != ys {
		if xs {
			return -1
		}
		return 1
	}

	// Effective length tracks magnitude, not signed value: a shorter
	// effective length always means a smaller magnitude. For a shared
	// negative sign that means the *larger* (closer to zero) value, since
	// two's-complement magnitude and signed value move in opposite
	// directions once the sign bit is set, so the shorter-magnitude
	// operand compares greater, not less — the opposite of the
	// non-negative case (e.g. -1 vs -2^32: the single-word buffer is the
	// greater value).
	xl, yl := x.effectiveLength(), y.effectiveLength()
	if xl != yl {
		shorterIsX := xl < yl
		if xs {
			shorterIsX = !shorterIsX
		}
		if shorterIsX {
			return -1
		}
		return 1
	}
	for i := xl; i > 0; i-- {
		xi, yi := x.d[i-1], y.d[i-1]
		if xi != yi {
			if xi < yi {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y represent the same integer.
func (x BigInt) Equal(y BigInt) bool {
	if x.sign() != y.sign() || len(x.d) != len(y.d) {
		return false
	}
	for i := range x.d {
		if x.d[i] != y.d[i] {
			return false
		}
	}
	return true
}
