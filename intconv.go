package decimal

import (
	"strconv"
	"strings"

	"github.com/trippwill/go-decimal/imath"
)

// ToInt64 converts a finite decimal to an int64, per spec.md §4.7:
// E=0 keeps the significand as written, E>0 appends E zeros, and E<0
// requires the trailing |E| digits to all be zero (a non-zero fractional
// part has no integer representation).
func ToInt64(b BitString) (int64, error) {
	digits, err := integralDigits(b)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, newConversionError("value does not fit in int64: %v", err)
	}
	if b.IsNegative() {
		v = -v
	}
	return v, nil
}

// ToUint64 is ToInt64 for the unsigned case; a negative non-zero decimal
// is a conversion error, while a negative zero converts to 0.
func ToUint64(b BitString) (uint64, error) {
	if b.IsFinite() && b.IsNegative() {
		allDigits := decodedDigits(b)
		if _, ok := significantDigits(allDigits); ok {
			return 0, newConversionError("negative decimal has no unsigned integer representation")
		}
	}
	digits, err := integralDigits(b)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, newConversionError("value does not fit in uint64: %v", err)
	}
	return v, nil
}

// FromInt64 encodes v as a finite decimal by formatting it to ASCII with
// a minimal-allocation integer formatter and parsing the result, per
// spec.md §4.7's "int → decimal" rule.
func FromInt64(v int64, opts Options) (BitString, error) {
	return EncodeString(strconv.FormatInt(v, 10), opts)
}

// FromUint64 is FromInt64 for the unsigned case.
func FromUint64(v uint64, opts Options) (BitString, error) {
	return EncodeString(strconv.FormatUint(v, 10), opts)
}

// integralDigits renders a finite decimal's magnitude as an unsigned
// ASCII integer string per spec.md §4.7, or fails if the value isn't an
// exact integer.
func integralDigits(b BitString) (string, error) {
	if !b.IsFinite() {
		return "", newConversionError("infinity and NaN have no integer representation")
	}

	exp, _ := DecodeCombinationFinite(b.Bytes())
	allDigits := decodedDigits(b)
	p := len(allDigits)

	switch {
	case exp == 0:
		return trimToIntegerString(allDigits), nil

	case exp > 0:
		padded := make([]byte, 0, p+int(exp))
		padded = append(padded, allDigits...)
		padded = append(padded, strings.Repeat("0", int(exp))...)
		return trimToIntegerString(padded), nil

	default:
		mag := imath.Abs(exp)
		if mag >= int64(p) {
			return "", newConversionError("exponent %d magnitude is not smaller than precision %d digits", exp, p)
		}
		split := p - int(mag)
		leading, trailing := allDigits[:split], allDigits[split:]
		for _, c := range trailing {
			if c != '0' {
				return "", newConversionError("value has a non-zero fractional part")
			}
		}
		return trimToIntegerString(leading), nil
	}
}

func trimToIntegerString(digits []byte) string {
	sig, ok := significantDigits(digits)
	if !ok {
		return "0"
	}
	return string(sig)
}
