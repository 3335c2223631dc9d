// Package bigintconv bridges this module's BigInt to the display-only
// formatting helpers the standard library and the wider ecosystem already
// provide, rather than reimplementing thousands-grouping for an
// arbitrary-width decimal string by hand.
package bigintconv

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
)

// Comma renders a BigInt decimal literal (as produced by BigInt.String)
// with thousands separators, e.g. "-1234567" -> "-1,234,567". Formatting
// only: it round-trips through math/big.Int and
// github.com/dustin/go-humanize.BigComma, which — unlike humanize.Comma —
// isn't bounded to int64, so it copes with the arbitrary widths this
// module produces. This is purely a CLI display convenience; the core
// engine never depends on math/big.
func Comma(decimal string) (string, error) {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		return "", fmt.Errorf("bigintconv: %q is not a valid decimal literal", decimal)
	}
	return humanize.BigComma(n), nil
}
