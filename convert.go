package bigint

import "strconv"

// decimalBase is 10^9, the radix used for string conversion: each group
// of the output is produced by one short division by this value.
const decimalBase = 1000000000

// String renders x as a decimal literal: an optional leading '-' followed
// by digits with no leading zeros (except the value zero itself, "0").
// It implements fmt.Stringer.
func (x BigInt) String() string {
	if x.IsZero() {
		return "0"
	}

	p := x.Abs()
	var groups []uint32
	for !p.IsZero() {
		r := p.shortDivInPlace(decimalBase)
		groups = append(groups, r)
	}

	buf := make([]byte, 0, len(groups)*9+1)
	if x.sign() {
		buf = append(buf, '-')
	}
	last := len(groups) - 1
	buf = strconv.AppendUint(buf, uint64(groups[last]), 10)
	for i := last - 1; i >= 0; i-- {
		buf = appendZeroPadded9(buf, groups[i])
	}
	return string(buf)
}

// appendZeroPadded9 appends g as exactly 9 decimal digits, left-padded
// with zeros, matching the non-leading decimal groups produced by
// repeated short division by 10^9.
func appendZeroPadded9(buf []byte, g uint32) []byte {
	var tmp [9]byte
	for i := 8; i >= 0; i-- {
		tmp[i] = byte('0' + g%10)
		g /= 10
	}
	return append(buf, tmp[:]...)
}
