// Package bigint implements an arbitrary-precision signed integer backed by
// a variable-width, little-endian sequence of 32-bit words. The sign is not
// a separate field: it is carried by the sign-extension convention of the
// most significant word, so add/sub/bitwise/shift all read operands through
// a single sign-extending accessor instead of branching on sign.
package bigint

// Word is a single 32-bit limb of a BigInt's little-endian representation.
type Word = uint32

const (
	wordBits = 32
	wordMax  = ^Word(0)
	signBit  = Word(1) << (wordBits - 1)
)

// BigInt is an arbitrary-precision signed integer. The zero value is not
// meaningful; use Zero, one of the FromXxx constructors, or FromString.
type BigInt struct {
	d []Word
}

// length reports the current word count of the buffer (not necessarily
// canonical between a mutation and the following trim).
func (x *BigInt) length() int {
	return len(x.d)
}

// sign returns the MSB of the top word: true means negative.
func (x *BigInt) sign() bool {
	return x.d[len(x.d)-1]&signBit != 0
}

// get returns d[i] for i < length, else the sign-extension word. Every
// core algorithm reads operands through get so they can be treated as
// conceptually infinite-length two's-complement values.
func (x *BigInt) get(i int) Word {
	if i < len(x.d) {
		return x.d[i]
	}
	if x.sign() {
		return wordMax
	}
	return 0
}

// extensionWord returns the word that extends x.d beyond its current
// length: all zero words for non-negative values, all one words for
// negative ones.
func (x *BigInt) extensionWord() Word {
	if x.sign() {
		return wordMax
	}
	return 0
}

// resize grows or shrinks d to exactly n words, padding new high words
// with the sign extension of the current top word. Used before add,
// bitwise, negation and short multiply-add to give algorithms fixed
// headroom.
func (x *BigInt) resize(n int) {
	if n <= len(x.d) {
		x.d = x.d[:n]
		return
	}
	fill := x.extensionWord()
	grown := make([]Word, n)
	copy(grown, x.d)
	for i := len(x.d); i < n; i++ {
		grown[i] = fill
	}
	x.d = grown
}

// trim enforces canonical form: the buffer never ends with a word that is
// pure sign-extension of the new top word once popped. Equivalently, you
// cannot remove the top word without flipping the sign bit.
func (x *BigInt) trim() {
	for len(x.d) > 1 {
		top := x.d[len(x.d)-1]
		sub := x.d[len(x.d)-2]
		curSign := top&signBit != 0
		extWord := Word(0)
		if curSign {
			extWord = wordMax
		}
		if top == extWord && (sub&signBit != 0) == curSign {
			x.d = x.d[:len(x.d)-1]
			continue
		}
		break
	}
}

// clone deep-copies the word buffer so callers never alias another value's
// storage.
func (x BigInt) clone() BigInt {
	d := make([]Word, len(x.d))
	copy(d, x.d)
	return BigInt{d: d}
}

// dropTrailingZeroWord pops one top zero word if present. Used by
// division's normalization step, which needs the true top word: after the
// left shift sets the divisor's top MSB, canonical form keeps a zero sign
// word above it.
func (x *BigInt) dropTrailingZeroWord() {
	if len(x.d) > 1 && x.d[len(x.d)-1] == 0 {
		x.d = x.d[:len(x.d)-1]
	}
}

// topWord returns the current most significant word without modifying x.
func (x *BigInt) topWord() Word {
	return x.d[len(x.d)-1]
}
