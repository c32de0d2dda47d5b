package decimal

import "math/big"

// maxFastStorageWidthBits is where the int64 width search stops
// (Emax(896) = 3<<59, well inside int64; Emax first overflows int64 at
// 960 bits, see bigexponent.go). Exponents beyond its range route through
// the math/big fallback below.
const maxFastStorageWidthBits = 896

// minStorageWidthBits is the smallest width this codec will select; the
// IEEE754-2019 interchange formats start at decimal32.
const minStorageWidthBits = 32

// maxSearchStorageWidthBits bounds the math/big search in
// minimumStorageWidthBitsForExponentBig (the int64 search in
// MinimumStorageWidthBitsForExponent stops at maxFastStorageWidthBits), so
// a malformed huge exponent fails fast with an OverflowError rather than
// looping forever.
const maxSearchStorageWidthBits = 1 << 20

// MinimumStorageWidthBitsForPrecisionDigits returns the smallest
// (32-bit-aligned) storage width whose precision_digits formula can hold
// at least the requested number of significant digits.
func MinimumStorageWidthBitsForPrecisionDigits(digits int) int {
	// Invert p = 9k/32 - 2 for k, then round up to the next multiple of 32.
	k := ceilDiv((digits+2)*32, 9)
	return roundUpToMultipleOf32(k)
}

// MinimumStorageWidthBitsForExponent returns the smallest (32-bit-aligned)
// storage width whose emax/emin range can hold the given unbiased
// exponent, or 0 if no width up to maxFastStorageWidthBits can. Callers
// needing the huge-width fallback should use
// minimumStorageWidthBitsForExponentBig.
func MinimumStorageWidthBitsForExponent(exp int64) int {
	for k := minStorageWidthBits; k <= maxFastStorageWidthBits; k += 32 {
		if exp >= Emin(k) && exp <= Emax(k) {
			return k
		}
	}
	return 0
}

func minimumStorageWidthBitsForExponentBig(exp *big.Int) (int, bool) {
	for k := minStorageWidthBits; k <= maxSearchStorageWidthBits; k += 32 {
		emax := emaxBig(k)
		emin := eminBig(k)
		if exp.Cmp(emin) >= 0 && exp.Cmp(emax) <= 0 {
			return k, true
		}
	}
	return 0, false
}

// SelectStorageWidthBits picks the smallest storage width able to encode
// both the given number of significant digits and the given unbiased
// exponent, per spec.md §4.1. The exponent is first matched against each
// width's Emin..Emax range; the width then grows while the exponent is
// above Emax - (p - 1), the largest unbiased exponent EncodeCombinationFinite
// accepts. An exponent just below Emin can therefore get a wider container
// than strictly needed. It returns an OverflowError if no supported width
// can.
func SelectStorageWidthBits(digits int, exp int64) (int, error) {
	byDigits := MinimumStorageWidthBitsForPrecisionDigits(digits)

	byExp := MinimumStorageWidthBitsForExponent(exp)
	if byExp == 0 {
		width, ok := minimumStorageWidthBitsForExponentBig(big.NewInt(exp))
		if !ok {
			return 0, newOverflowError("exponent %d exceeds the maximum supported storage width", exp)
		}
		byExp = width
	}

	width := byExp
	if byDigits > width {
		width = byDigits
	}
	for width <= maxFastStorageWidthBits && exp > Emax(width)-int64(precisionDigitsForWidth(width)-1) {
		width += 32
	}
	return width, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func roundUpToMultipleOf32(k int) int {
	return ceilDiv(k, 32) * 32
}
