package bigint

// mulAbs multiplies the absolute values a and b with the schoolbook
// O(n*m) algorithm, writing the result into a freshly allocated buffer of
// 2*max(len(a),len(b)) words.
func mulAbs(a, b []Word) []Word {
	n := maxInt(len(a), len(b))
	res := make([]Word, 2*n)
	for i := range a {
		var carry uint64
		for j := range b {
			m := uint64(a[i]) * uint64(b[j])
			t := uint64(Word(m)) + uint64(res[i+j]) + carry
			res[i+j] = Word(t)
			carry = (m >> wordBits) + (t >> wordBits)
		}
		res[i+len(b)] += Word(carry)
	}
	return res
}

func (x BigInt) mul(y BigInt) BigInt {
	xa := x.Abs()
	ya := y.Abs()
	res := BigInt{d: mulAbs(xa.d, ya.d)}
	res.trim()
	if x.sign() != y.sign() {
		res.negate()
	}
	return res
}

// shortMulAddInPlace computes x := x*m + add for a single-word multiplier
// and addend, used by decimal parsing's chunked base-10^9 accumulation.
// x is treated as non-negative (the parser only ever calls this before
// any sign is applied).
func (x *BigInt) shortMulAddInPlace(m Word, add Word) {
	n := x.length() + 1
	x.resize(n)
	var carry uint64 = uint64(add)
	for i := 0; i < n; i++ {
		t := uint64(x.d[i])*uint64(m) + carry
		x.d[i] = Word(t)
		carry = t >> wordBits
	}
	x.trim()
}
