package decimal

// Emax returns the maximum unbiased exponent a decimal of the given
// storage width can encode, per IEEE754-2019: emax = 3 * 2^(k/16+3).
func Emax(storageWidthBits int) int64 {
	return 3 * pow2(int64(storageWidthBits/16+3))
}

// Emin returns the minimum unbiased exponent a decimal of the given
// storage width can encode: emin = 1 - emax.
func Emin(storageWidthBits int) int64 {
	return 1 - Emax(storageWidthBits)
}

// Bias returns the value added to an unbiased exponent so every encodable
// exponent becomes non-negative: bias = emax + p - 2.
func Bias(storageWidthBits, precisionDigits int) int64 {
	return Emax(storageWidthBits) + int64(precisionDigits) - 2
}

// AddBias biases an unbiased exponent for the given buffer's width.
func AddBias(b BinaryBuf, unbiasedExponent int64) int64 {
	return Bias(StorageWidthBits(b), PrecisionDigits(b)) + unbiasedExponent
}

// SubBias removes a buffer's bias from a biased exponent.
func SubBias(b BinaryBuf, biasedExponent int64) int64 {
	return biasedExponent - Bias(StorageWidthBits(b), PrecisionDigits(b))
}

// Raise accounts for digits on the integral side of the decimal point by
// raising the exponent.
func Raise(exponent int64, by int) int64 {
	return exponent + int64(by)
}

// Lower accounts for digits on the fractional side of the decimal point
// by lowering the exponent.
func Lower(exponent int64, by int) int64 {
	return exponent - int64(by)
}

func pow2(e int64) int64 {
	return int64(1) << uint(e)
}
