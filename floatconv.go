package decimal

import (
	"math"
	"strconv"

	"github.com/trippwill/go-decimal/text"
)

const (
	float64SignBit  = uint64(1) << 63
	float64QuietBit = uint64(1) << 51
	quietNaN64Bits  = uint64(0x7FF8000000000000)
	signalingNaN64  = uint64(0x7FF0000000000001)
)

// FromFloat64 encodes v as a decimal, per spec.md §4.8. A finite v is
// rendered with Go's shortest round-tripping float formatter and parsed
// back; infinities and NaNs are constructed directly, since they carry
// no meaningful coefficient text. A float NaN's payload bits are
// intentionally dropped — this codec's NaN payload is decimal-native
// only, set via nan(N) text or EncodeParsed (see spec.md §9).
func FromFloat64(v float64, opts Options) (BitString, error) {
	switch {
	case math.IsInf(v, 0):
		return encodeInfinity(text.Infinity{Negative: math.Signbit(v)}, opts)
	case math.IsNaN(v):
		return encodeNaN(text.NaN{Signaling: isSignalingFloat64(v), Negative: math.Signbit(v)}, nil, opts)
	default:
		return EncodeString(strconv.FormatFloat(v, 'g', -1, 64), opts)
	}
}

// ToFloat64 decodes b to the nearest float64, per spec.md §4.8. A finite
// b is re-serialized as scientific-notation ASCII and parsed with the
// standard float parser; a result that overflows to +/-Inf is reported
// as a conversion error rather than silently returned.
func ToFloat64(b BitString) (float64, error) {
	switch {
	case b.IsInfinite():
		if b.IsNegative() {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case b.IsNaN():
		return math.Float64frombits(nanFloat64Bits(b)), nil
	default:
		v, err := strconv.ParseFloat(Scientific(b), 64)
		if err != nil {
			return 0, newConversionError("value out of range for float64: %v", err)
		}
		if math.IsInf(v, 0) {
			return 0, newConversionError("value overflows float64")
		}
		return v, nil
	}
}

func isSignalingFloat64(v float64) bool {
	return math.Float64bits(v)&float64QuietBit == 0
}

func nanFloat64Bits(b BitString) uint64 {
	bits := quietNaN64Bits
	if b.IsSignalingNaN() {
		bits = signalingNaN64
	}
	if b.IsNegative() {
		bits |= float64SignBit
	}
	return bits
}
