package bigint

import "math/bits"

// shortDivInPlace divides the non-negative magnitude x by a single-word
// divisor in one high-to-low pass, returning the remainder. Division by
// zero panics rather than producing a degenerate result.
func (x *BigInt) shortDivInPlace(divisor Word) Word {
	if divisor == 0 {
		panic("bigint: division by zero")
	}
	var carry uint64
	for i := x.length() - 1; i >= 0; i-- {
		window := carry<<wordBits | uint64(x.d[i])
		x.d[i] = Word(window / uint64(divisor))
		carry = window % uint64(divisor)
	}
	x.trim()
	return Word(carry)
}

// shiftCompare answers whether a (taken as a raw word buffer, length
// a.length()) is >= b*beta^shift, by length-then-lexicographic
// comparison.
func shiftCompare(a, b *BigInt, shift int) bool {
	if b.length()+shift != a.length() {
		return b.length()+shift < a.length()
	}
	for i := b.length() - 1; i >= 0; i-- {
		if a.d[i+shift] != b.d[i] {
			return a.d[i+shift] > b.d[i]
		}
	}
	return true
}

// shiftSub subtracts the raw word vector sub (starting at word offset
// shift) from a, propagating the borrow through a's tail.
func shiftSub(a *BigInt, sub []Word, shift int) {
	n := maxInt(len(sub), a.length()) + shift
	if n > a.length() {
		grown := make([]Word, n)
		copy(grown, a.d)
		a.d = grown
	}
	var borrow uint64
	for i := 0; i < len(sub); i++ {
		cur := uint64(a.d[i+shift]) - uint64(sub[i]) - borrow
		a.d[i+shift] = Word(cur)
		borrow = (cur >> 63) & 1
	}
	for i := shift + len(sub); i < a.length() && borrow != 0; i++ {
		old := a.d[i]
		if old == 0 {
			borrow = 1
		} else {
			borrow = 0
		}
		a.d[i] = old - 1
	}
}

// mulByWordAppend computes b*m into a freshly allocated buffer of
// len(b)+1 words, used by subDivResult to form B*q̂ before subtracting.
func mulByWordAppend(b []Word, m Word) []Word {
	res := make([]Word, len(b)+1)
	var carry uint64
	for i := range b {
		cur := uint64(b[i])*uint64(m) + carry
		res[i] = Word(cur)
		carry = cur >> wordBits
	}
	res[len(b)] = Word(carry)
	return res
}

// subDivResult forms divider*qhat and subtracts it from result at word
// offset shift.
func subDivResult(result *BigInt, divider *BigInt, qhat Word, shift int) {
	shiftSub(result, mulByWordAppend(divider.d, qhat), shift)
}

// addDividerBack adds divider (zero-padded beyond its own length) back
// into result starting at word offset shift, with carry propagating
// across the rest of result's (already-extended) buffer. This undoes an
// overshot trial subtraction during Knuth Algorithm D's correction step.
func addDividerBack(result *BigInt, divider *BigInt, dividerLen, shift int) {
	n := result.length() - shift
	var carry uint64
	for j := 0; j < n; j++ {
		var dw Word
		if j < dividerLen {
			dw = divider.d[j]
		}
		sum := uint64(result.get(shift+j)) + uint64(dw) + carry
		result.d[shift+j] = Word(sum)
		carry = sum >> wordBits
	}
}

// knuthDivMod implements Algorithm D (Knuth, Vol. 2, §4.3.1): long
// division with normalization, a two-word trial quotient estimate, and
// additive correction when the trial overshoots. origSelf/origRhs carry
// the signs applied to the final quotient/remainder; a/b are their
// already-absolute-valued clones, with len(b.d) >= 2.
func knuthDivMod(origSelf, origRhs BigInt, a, b BigInt) (BigInt, BigInt) {
	norm := bits.LeadingZeros32(b.topWord())

	result := a.clone()
	divider := b.clone()
	result.lshInPlace(uint(norm))
	divider.lshInPlace(uint(norm))
	divider.dropTrailingZeroWord()

	dividerHigh := uint64(divider.topWord())
	n := divider.length()
	m := result.length() - divider.length()

	quotient := BigInt{d: make([]Word, m+1)}
	if shiftCompare(&result, &divider, m) {
		quotient.d[m] = 1
		shiftSub(&result, divider.d, m)
	}

	for i := m - 1; i >= 0; i-- {
		hi := uint64(result.get(n + i))
		lo := uint64(result.get(n + i - 1))
		qhat := (hi<<wordBits | lo) / dividerHigh
		if qhat > uint64(wordMax) {
			qhat = uint64(wordMax)
		}
		quotient.d[i] = Word(qhat)

		subDivResult(&result, &divider, quotient.d[i], i)
		dividerLen := divider.length()
		for result.sign() {
			result.d = append(result.d, wordMax)
			quotient.d[i]--
			addDividerBack(&result, &divider, dividerLen, i)
			result.trim()
		}
	}
	quotient.trim()
	result.rshInPlace(uint(norm))

	if origSelf.sign() != origRhs.sign() {
		quotient.negate()
	}
	if origSelf.sign() {
		result.negate()
	}
	return quotient, result
}

// DivMod computes the quotient and remainder of x/y in a single pass:
// x == q*y + r, |r| < |y|, sign(r) == sign(x) (when r != 0), and
// sign(q) == sign(x) XOR sign(y). Division by zero panics.
func (x BigInt) DivMod(y BigInt) (BigInt, BigInt) {
	a := x.Abs()
	b := y.Abs()

	if a.Cmp(b) < 0 {
		return Zero(), x.clone()
	}
	if b.length() == 1 {
		q := a.clone()
		r := q.shortDivInPlace(b.d[0])
		if x.sign() != y.sign() {
			q.negate()
		}
		rem := FromUint32(r)
		if x.sign() {
			rem.negate()
		}
		return q, rem
	}
	return knuthDivMod(x, y, a, b)
}
