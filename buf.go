package decimal

// BinaryBuf is the storage a decimal interchange value is packed into.
// Every derived width (precision, combination field, exponent field) is
// computed straight from the byte length, so an implementation carries no
// redundant state of its own.
type BinaryBuf interface {
	// Bytes returns the raw little-endian-ordered storage. The slice is
	// shared with the implementation's backing array; callers that write
	// through it are mutating the decimal in place.
	Bytes() []byte
}

// StorageWidthBits is `k` in IEEE754-2019's terms: the total number of
// bits the decimal occupies.
func StorageWidthBits(b BinaryBuf) int {
	return len(b.Bytes()) * 8
}

// PrecisionDigits is `p`: the number of decimal digits the significand
// can hold, including the most significant digit packed into the
// combination field.
func PrecisionDigits(b BinaryBuf) int {
	return precisionDigitsForWidth(StorageWidthBits(b))
}

// TrailingSignificandDigits is `p - 1`: the digits packed as DPD declets,
// excluding the most significant digit.
func TrailingSignificandDigits(b BinaryBuf) int {
	return trailingSignificandDigitsForWidth(StorageWidthBits(b))
}

// TrailingSignificandWidthBits is the bit width of the declet-encoded
// trailing significand.
func TrailingSignificandWidthBits(b BinaryBuf) int {
	return trailingSignificandWidthBitsForWidth(StorageWidthBits(b))
}

// CombinationWidthBits is the bit width of the combination field.
func CombinationWidthBits(b BinaryBuf) int {
	return combinationWidthBitsForWidth(StorageWidthBits(b))
}

// ExponentWidthBits is the total bit width of the biased exponent,
// including the 2 bits folded into the combination field.
func ExponentWidthBits(b BinaryBuf) int {
	return exponentWidthBitsForWidth(StorageWidthBits(b))
}

// TrailingExponentWidthBits is the bit width of the exponent bits stored
// outside the combination field.
func TrailingExponentWidthBits(b BinaryBuf) int {
	return trailingExponentWidthBitsForWidth(StorageWidthBits(b))
}

func precisionDigitsForWidth(storageWidthBits int) int {
	// p = 9k/32 - 2
	return 9*storageWidthBits/32 - 2
}

func trailingSignificandDigitsForWidth(storageWidthBits int) int {
	return precisionDigitsForWidth(storageWidthBits) - 1
}

func trailingSignificandWidthBitsForWidth(storageWidthBits int) int {
	// t = 15k/16 - 10
	return 15*storageWidthBits/16 - 10
}

func combinationWidthBitsForWidth(storageWidthBits int) int {
	// w = k/16 + 9
	return storageWidthBits/16 + 9
}

func exponentWidthBitsForWidth(storageWidthBits int) int {
	return combinationWidthBitsForWidth(storageWidthBits) - 3
}

func trailingExponentWidthBitsForWidth(storageWidthBits int) int {
	return combinationWidthBitsForWidth(storageWidthBits) - 5
}
