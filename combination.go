package decimal

// Combination-field bit layout (spec.md §4.3, original_source/src/binary/combination.rs).
const (
	signNegative       byte = 0b1000_0000
	infinityBits       byte = 0b0111_1000
	infinityCombMask   byte = 0b0111_1110
	signalingBit       byte = 0b0000_0010
	nanBits            byte = 0b0111_1100
	nanCombMask        byte = nanBits | signalingBit
	finiteCombMask     byte = 0b0111_1000
)

// EncodeCombinationInfinity sets decimal's combination field to encode a
// (signed) infinity. Every other bit of the buffer is left untouched by
// this call — infinity encoding only ever touches the most significant
// byte, which the caller is expected to have zeroed beforehand.
func EncodeCombinationInfinity(decimal []byte, negative bool) {
	last := len(decimal) - 1
	if negative {
		decimal[last] = infinityBits | signNegative
	} else {
		decimal[last] = infinityBits
	}
}

// EncodeCombinationNaN sets decimal's combination field to encode a
// (signed, quiet-or-signaling) NaN.
func EncodeCombinationNaN(decimal []byte, negative, signaling bool) {
	last := len(decimal) - 1
	b := nanBits
	if negative {
		b |= signNegative
	}
	if signaling {
		b |= signalingBit
	}
	decimal[last] = b
}

// EncodeCombinationFinite packs a finite decimal's sign, biased exponent,
// and most-significant-digit into the combination field and the trailing
// exponent bits that run up to it, following the exact two-byte
// cross-boundary write pattern used for DPD declets. It returns an
// OverflowError if the unbiased exponent is out of range for decimal's
// storage width.
func EncodeCombinationFinite(decimal []byte, negative bool, unbiasedExponent int64, msd MostSignificantDigit) error {
	storageWidthBits := len(decimal) * 8
	precisionDigits := precisionDigitsForWidth(storageWidthBits)

	biasedExponent := Bias(storageWidthBits, precisionDigits) + unbiasedExponent
	if biasedExponent < 0 {
		return newOverflowError("exponent %d is out of range for a %d-bit decimal", unbiasedExponent, storageWidthBits)
	}

	var exponentBytes [8]byte
	for i := 0; i < 8; i++ {
		exponentBytes[i] = byte(biasedExponent >> uint(8*i))
	}

	exponentBits := exponentWidthBitsForWidth(storageWidthBits)
	decimalBitIndex := trailingSignificandWidthBitsForWidth(storageWidthBits)

	decimalByteShift := uint(decimalBitIndex % 8)
	decimalByteIndex := decimalBitIndex / 8
	exponentByteIndex := 0
	maxDecimalByteIndex := len(decimal) - 1

	if decimalByteShift == 0 {
		for decimalByteIndex < maxDecimalByteIndex {
			decimal[decimalByteIndex] = exponentBytes[exponentByteIndex]
			decimalByteIndex++
			exponentByteIndex++
		}
	} else {
		plus1Shift := 8 - decimalByteShift
		for decimalByteIndex < maxDecimalByteIndex {
			decimal[decimalByteIndex] |= exponentBytes[exponentByteIndex] << decimalByteShift
			decimal[decimalByteIndex+1] |= exponentBytes[exponentByteIndex] >> plus1Shift
			decimalByteIndex++
			exponentByteIndex++
		}
	}

	decimal[decimalByteIndex] |= exponentBytes[exponentByteIndex] << decimalByteShift

	msExpOffset, msExpIndex := mostSignificantExponentOffset(exponentBits)
	mostSigExponent := exponentBytes[msExpIndex] >> uint(msExpOffset-2)

	if mostSigExponent == 0b11 {
		return newOverflowError("exponent %d is out of range for a %d-bit decimal", unbiasedExponent, storageWidthBits)
	}

	msdBCD := msd.BCD()

	const c0, c1, c2, c3 byte = 0b0000_0001, 0b0000_0010, 0b0000_0100, 0b0000_1000
	const combinationMask byte = 0b1000_0011

	var combination byte
	if msdBCD&c3 == 0 {
		// exponent: 000000ab, digit: 00000cde -> xabcdexx
		a := (mostSigExponent & c1) << 5
		b := (mostSigExponent & c0) << 5
		c := (msdBCD & c2) << 2
		d := (msdBCD & c1) << 2
		e := (msdBCD & c0) << 2
		combination = a | b | c | d | e
	} else {
		// exponent: 000000ab, digit: 0000100e -> x11abexx
		a := c0 << 6
		b := c0 << 5
		c := (mostSigExponent & c1) << 3
		d := (mostSigExponent & c0) << 3
		e := (msdBCD & c0) << 2
		combination = a | b | c | d | e
	}

	decimal[decimalByteIndex] = (decimal[decimalByteIndex] & combinationMask) | combination
	if negative {
		decimal[decimalByteIndex] |= signNegative
	}

	return nil
}

// DecodeCombinationFinite is the inverse of EncodeCombinationFinite: it
// reads decimal's combination field and trailing exponent bits back into
// an unbiased exponent and a most significant digit.
func DecodeCombinationFinite(decimal []byte) (int64, MostSignificantDigit) {
	storageWidthBits := len(decimal) * 8
	exponentBits := exponentWidthBitsForWidth(storageWidthBits)
	decimalBitIndex := trailingSignificandWidthBitsForWidth(storageWidthBits)

	decimalByteShift := uint(decimalBitIndex % 8)
	decimalByteIndex := decimalBitIndex / 8
	maxDecimalByteIndex := len(decimal) - 1

	msExpOffset, msExpIndex := mostSignificantExponentOffset(exponentBits)

	const ce0, ce1, cd1, cd2, cd3 byte = 0b0100_0000, 0b0010_0000, 0b0001_0000, 0b0000_1000, 0b0000_0100
	const combinationMask byte = 0b0110_0000

	combination := decimal[maxDecimalByteIndex]

	var mostSigExponent, msdBCD byte
	if combination&combinationMask == combinationMask {
		// digit large: x11abexx
		e0 := (combination & cd1) >> 3
		e1 := (combination & cd2) >> 3
		d3 := (combination & cd3) >> 2
		mostSigExponent = e0 | e1
		msdBCD = cd2 | d3
	} else {
		// digit small: xabcdexx
		e0 := (combination & ce0) >> 5
		e1 := (combination & ce1) >> 5
		d1 := (combination & cd1) >> 2
		d2 := (combination & cd2) >> 2
		d3 := (combination & cd3) >> 2
		mostSigExponent = e0 | e1
		msdBCD = d1 | d2 | d3
	}
	mostSigExponent <<= uint(msExpOffset - 2)

	const lowMask byte = 0b0000_0011
	maxExponentByteIndex := msExpIndex

	var biased int64
	shiftPos := uint(0)
	exponentByteIndex := 0

	if decimalByteShift == 0 {
		for decimalByteIndex < maxDecimalByteIndex {
			biased |= int64(decimal[decimalByteIndex]) << shiftPos
			decimalByteIndex++
			shiftPos += 8
		}
		e0 := decimal[decimalByteIndex] & lowMask
		biased |= int64(e0|mostSigExponent) << shiftPos
	} else {
		plus1Shift := 8 - decimalByteShift
		for {
			if decimalByteIndex+1 < maxDecimalByteIndex {
				e0 := decimal[decimalByteIndex] >> decimalByteShift
				e1 := decimal[decimalByteIndex+1] << plus1Shift
				biased |= int64(e0|e1) << shiftPos
				decimalByteIndex++
				exponentByteIndex++
				shiftPos += 8
				continue
			}
			if decimalByteIndex+1 == maxDecimalByteIndex {
				e0 := decimal[decimalByteIndex] >> decimalByteShift
				e1 := (decimal[decimalByteIndex+1] & lowMask) << plus1Shift
				if exponentByteIndex == maxExponentByteIndex {
					e1 |= mostSigExponent
				}
				biased |= int64(e0|e1) << shiftPos
				decimalByteIndex++
				exponentByteIndex++
				shiftPos += 8
				continue
			}
			if exponentByteIndex == maxExponentByteIndex {
				biased |= int64(mostSigExponent) << shiftPos
				exponentByteIndex++
				shiftPos += 8
			}
			break
		}
	}

	precisionDigits := precisionDigitsForWidth(storageWidthBits)
	unbiased := biased - Bias(storageWidthBits, precisionDigits)

	return unbiased, MSDFromBCD(msdBCD)
}

// mostSignificantExponentOffset locates the byte (by index into the
// exponent's little-endian byte representation) and bit offset within it
// holding the 2 most significant bits of the exponent.
func mostSignificantExponentOffset(exponentBits int) (offset int, index int) {
	rem := exponentBits % 8
	if rem == 0 {
		return 8, exponentBits/8 - 1
	}
	return rem, exponentBits / 8
}

// IsFinite reports whether decimal's combination field encodes a finite
// number (not an infinity or NaN).
func IsFinite(decimal []byte) bool {
	return decimal[len(decimal)-1]&finiteCombMask != finiteCombMask
}

// IsInfinite reports whether decimal's combination field encodes an
// infinity.
func IsInfinite(decimal []byte) bool {
	return decimal[len(decimal)-1]&infinityCombMask == infinityBits
}

// IsNaN reports whether decimal's combination field encodes a NaN,
// quiet or signaling.
func IsNaN(decimal []byte) bool {
	return decimal[len(decimal)-1]&nanBits == nanBits
}

// IsQuietNaN reports whether decimal's combination field encodes a quiet
// NaN specifically.
func IsQuietNaN(decimal []byte) bool {
	return decimal[len(decimal)-1]&nanCombMask == nanBits
}

// IsSignalingNaN reports whether decimal's combination field encodes a
// signaling NaN specifically.
func IsSignalingNaN(decimal []byte) bool {
	return decimal[len(decimal)-1]&nanCombMask == nanCombMask
}

// IsSignNegative reports whether decimal's sign bit is set, regardless of
// whether it's finite, infinite, or NaN.
func IsSignNegative(decimal []byte) bool {
	return decimal[len(decimal)-1]&signNegative == signNegative
}
