// Package localetext adds locale-aware display formatting on top of the
// decimal codec's fixed-grammar ToString. It is purely a presentation
// layer: Format never feeds its output back into decimal.Encode, and the
// codec's own text grammar (spec.md §4.6, §6.2) stays locale-independent.
package localetext

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	decimal "github.com/trippwill/go-decimal"
)

// Format renders b for display under tag's locale conventions (thousands
// and decimal separators), preserving the value's own number of
// fractional digits. Infinities and NaNs fall back to decimal.ToString,
// since golang.org/x/text/number has no notion of either.
func Format(b decimal.BitString, tag language.Tag) (string, error) {
	if !b.IsFinite() {
		return decimal.ToString(b), nil
	}

	v, err := decimal.ToFloat64(b)
	if err != nil {
		return "", err
	}

	scale := 0
	if exp, _ := decimal.DecodeCombinationFinite(b.Bytes()); exp < 0 {
		scale = int(-exp)
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(v, number.Scale(scale))), nil
}
