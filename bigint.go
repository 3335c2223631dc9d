package bigint

// Each binary operator below has a by-value form (returns a new BigInt,
// operands untouched) and, where it would matter for a caller building a
// tight loop, an in-place mutating form. Division and remainder share one
// underlying pass via DivMod.

// AddInPlace sets x to x+y.
func (x *BigInt) AddInPlace(y BigInt) { x.addInPlace(y) }

// Add returns x+y.
func (x BigInt) Add(y BigInt) BigInt { x.addInPlace(y); return x }

// SubInPlace sets x to x-y.
func (x *BigInt) SubInPlace(y BigInt) { x.subInPlace(y) }

// Sub returns x-y.
func (x BigInt) Sub(y BigInt) BigInt { x.subInPlace(y); return x }

// MulInPlace sets x to x*y.
func (x *BigInt) MulInPlace(y BigInt) { *x = x.mul(y) }

// Mul returns x*y.
func (x BigInt) Mul(y BigInt) BigInt { return x.mul(y) }

// Div returns x/y, truncating toward zero (sign(q) == sign(x) XOR sign(y)).
func (x BigInt) Div(y BigInt) BigInt {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the remainder of x/y, with sign(r) == sign(x).
func (x BigInt) Mod(y BigInt) BigInt {
	_, r := x.DivMod(y)
	return r
}

// Neg returns -x, built as 0-x.
func (x BigInt) Neg() BigInt {
	z := Zero()
	z.subInPlace(x)
	return z
}

// Negate sets x to -x in place.
func (x *BigInt) Negate() { x.negate() }

// Abs returns the absolute value of x.
func (x BigInt) Abs() BigInt {
	if x.sign() {
		return x.Neg()
	}
	return x.clone()
}

// Not returns ~x (bitwise complement).
func (x BigInt) Not() BigInt {
	z := x.clone()
	z.invert()
	return z
}

// Invert sets x to ~x in place.
func (x *BigInt) Invert() { x.invert() }

// And returns x&y.
func (x BigInt) And(y BigInt) BigInt { bitwiseInPlace(&x, &y, bitAnd); return x }

// Or returns x|y.
func (x BigInt) Or(y BigInt) BigInt { bitwiseInPlace(&x, &y, bitOr); return x }

// Xor returns x^y.
func (x BigInt) Xor(y BigInt) BigInt { bitwiseInPlace(&x, &y, bitXor); return x }

// Lsh returns x<<n (n >= 0, arithmetic).
func (x BigInt) Lsh(n uint) BigInt { x.lshInPlace(n); return x }

// LshInPlace sets x to x<<n.
func (x *BigInt) LshInPlace(n uint) { x.lshInPlace(n) }

// Rsh returns x>>n (n >= 0, arithmetic, sign-preserving). Unlike Lsh,
// rshInPlace can write through its receiver's existing backing array
// instead of always reallocating, so the by-value form clones first to
// avoid mutating the caller's word buffer.
func (x BigInt) Rsh(n uint) BigInt { z := x.clone(); z.rshInPlace(n); return z }

// RshInPlace sets x to x>>n.
func (x *BigInt) RshInPlace(n uint) { x.rshInPlace(n) }

// Inc sets x to x+1 in place (prefix ++x / x++ as a mutation).
func (x *BigInt) Inc() { x.addInPlace(FromInt32(1)) }

// Dec sets x to x-1 in place (prefix --x / x-- as a mutation).
func (x *BigInt) Dec() { x.subInPlace(FromInt32(1)) }

// Incremented returns x+1 as a new value, without mutating x.
func (x BigInt) Incremented() BigInt { x.addInPlace(FromInt32(1)); return x }

// Decremented returns x-1 as a new value, without mutating x.
func (x BigInt) Decremented() BigInt { x.subInPlace(FromInt32(1)); return x }

// IsZero reports whether x is the value zero.
func (x BigInt) IsZero() bool {
	for _, w := range x.d {
		if w != 0 {
			return false
		}
	}
	return true
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x BigInt) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.sign() {
		return -1
	}
	return 1
}
