package decimal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trippwill/go-decimal/text"
)

// leadingFractionalZeroBudget bounds how many zeros ToString will print
// after "0." before switching to scientific notation.
const leadingFractionalZeroBudget = 5

// Options configures how Encode chooses a storage width. The zero value
// auto-selects the smallest width that fits the input, per spec.md §4.1.
type Options struct {
	// StorageWidthBits, if non-zero, pins encoding to an exact container
	// width instead of auto-selecting one. Must be a positive multiple of
	// 32 bits large enough for the input; otherwise Encode returns an
	// OverflowError (spec.md §6.4's "fixed-width mode").
	StorageWidthBits int
}

// EncodeString parses s and encodes it into a BitString, auto-selecting a
// storage width unless opts pins one.
func EncodeString(s string, opts Options) (BitString, error) {
	parsed, buf, err := text.ParseString(s)
	if err != nil {
		return BitString{}, wrapParseError(err)
	}
	return EncodeParsed(parsed, buf, opts)
}

// Encode parses input and encodes it into a BitString.
func Encode(input []byte, opts Options) (BitString, error) {
	parsed, buf, err := text.Parse(input)
	if err != nil {
		return BitString{}, wrapParseError(err)
	}
	return EncodeParsed(parsed, buf, opts)
}

// EncodeParsed packs an already-parsed decimal into a BitString. src must
// be the byte slice the offsets in parsed were recorded against (the
// second return value of text.Parse/text.ParseString, or a Parser's
// Bytes()).
func EncodeParsed(parsed text.Parsed, src []byte, opts Options) (BitString, error) {
	switch parsed.Kind {
	case text.KindInfinity:
		return encodeInfinity(parsed.Infinity, opts)
	case text.KindNaN:
		return encodeNaN(parsed.NaN, src, opts)
	case text.KindFinite:
		return encodeFinite(parsed.Finite, src, opts)
	default:
		return BitString{}, newConversionError("unrecognized parsed decimal kind %v", parsed.Kind)
	}
}

func encodeInfinity(inf text.Infinity, opts Options) (BitString, error) {
	width, err := resolveWidth(opts, 0, 0)
	if err != nil {
		return BitString{}, err
	}
	buf, err := NewBufForWidth(width / 8)
	if err != nil {
		return BitString{}, err
	}
	EncodeCombinationInfinity(buf.Bytes(), inf.Negative)
	return FromBuf(buf), nil
}

func encodeNaN(n text.NaN, src []byte, opts Options) (BitString, error) {
	var payload []byte
	if n.HasPayload() {
		payload = n.PayloadRange.Slice(src)
	}

	// The payload occupies only the trailing significand, never the MSD
	// slot (spec.md §4.3: "no MSD, no exponent" for NaN), so the chosen
	// width must hold payload digits plus 1 spare to guarantee the
	// trailing field (p-1 digits) has room for all of them.
	width, err := resolveWidth(opts, len(payload)+1, 0)
	if err != nil {
		return BitString{}, err
	}
	buf, err := NewBufForWidth(width / 8)
	if err != nil {
		return BitString{}, err
	}

	if len(payload) > 0 {
		maxDigits := TrailingSignificandDigits(buf)
		EncodeSignificandTrailingDigits(buf.Bytes(), maxDigits, payload)
	}

	EncodeCombinationNaN(buf.Bytes(), n.Negative, n.Signaling)
	return FromBuf(buf), nil
}

func encodeFinite(f text.Finite, src []byte, opts Options) (BitString, error) {
	intPart, fracPart := splitSignificand(f, src)

	rawExp, err := parseExponent(f, src)
	if err != nil {
		return BitString{}, err
	}
	unbiasedExp := Lower(rawExp, len(fracPart))

	digits := len(intPart) + len(fracPart)
	width, err := resolveWidth(opts, digits, unbiasedExp)
	if err != nil {
		return BitString{}, err
	}
	buf, err := NewBufForWidth(width / 8)
	if err != nil {
		return BitString{}, err
	}

	maxDigits := TrailingSignificandDigits(buf)
	msd := EncodeSignificandTrailingDigits(buf.Bytes(), maxDigits, intPart, fracPart)

	if err := EncodeCombinationFinite(buf.Bytes(), f.SignificandNegative, unbiasedExp, msd); err != nil {
		return BitString{}, err
	}
	return FromBuf(buf), nil
}

// splitSignificand separates a parsed finite significand's integer and
// fractional ASCII digit chunks. f.SignificandRange runs from the first
// digit to the last one, so it contains an interior decimal point but not
// a trailing one; both chunks are therefore cut at DecimalPointIndex — a
// trailing point with no fractional digits (e.g. "123.") leaves nothing
// after it to slice.
func splitSignificand(f text.Finite, src []byte) (intPart, fracPart []byte) {
	if !f.HasDecimalPoint() {
		return f.SignificandRange.Slice(src), nil
	}
	intPart = src[f.SignificandRange.Start:f.DecimalPointIndex]
	fracStart := f.DecimalPointIndex + 1
	if fracStart > f.SignificandRange.End {
		return intPart, nil
	}
	return intPart, src[fracStart:f.SignificandRange.End]
}

func parseExponent(f text.Finite, src []byte) (int64, error) {
	if !f.HasExponent() {
		return 0, nil
	}
	digits := f.ExponentRange.Slice(src)
	mag, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, newOverflowError("exponent %q is out of range", digits)
	}
	if f.ExponentNegative {
		return -mag, nil
	}
	return mag, nil
}

func resolveWidth(opts Options, digits int, exp int64) (int, error) {
	if opts.StorageWidthBits == 0 {
		return SelectStorageWidthBits(digits, exp)
	}
	w := opts.StorageWidthBits
	if w <= 0 || w%32 != 0 {
		return 0, newOverflowError("storage width must be a positive multiple of 32 bits, got %d", w)
	}
	if precisionDigitsForWidth(w) < digits {
		required := MinimumStorageWidthBitsForPrecisionDigits(digits)
		return 0, newOverflowErrorWidths(w, required)
	}
	if exp < Emin(w) || exp > Emax(w) {
		return 0, newOverflowError("storage width %d bits cannot hold exponent %d", w, exp)
	}
	return w, nil
}

func wrapParseError(err error) error {
	if pe, ok := err.(*text.ParseError); ok {
		return &ParseError{
			Offset:   pe.Offset,
			Found:    pe.Found,
			HasFound: pe.HasFound,
			Expected: pe.Expected,
		}
	}
	return err
}

// significantDigits strips leading zeros from a full (MSD+trailing) digit
// string, returning the remaining significant run. An all-zero string
// reports ok=false: the value is exactly zero and has no first
// significant digit to anchor formatting on.
func significantDigits(allDigits []byte) (sig []byte, ok bool) {
	for i, c := range allDigits {
		if c != '0' {
			return allDigits[i:], true
		}
	}
	return nil, false
}

func decodedDigits(b BitString) []byte {
	_, msd := DecodeCombinationFinite(b.Bytes())
	trailing := DecodeSignificandTrailingDigits(b.Bytes(), TrailingSignificandWidthBits(b.buf))
	out := make([]byte, 0, 1+len(trailing))
	out = append(out, msd.ASCII())
	return append(out, trailing...)
}

// ToString renders b following spec.md §4.6: plain integer when the
// exponent is zero, a mid-significand decimal point or a bounded run of
// leading fractional zeros when it's negative, and scientific notation
// otherwise (including every positive exponent).
func ToString(b BitString) string {
	var sb strings.Builder
	if b.IsNegative() {
		sb.WriteByte('-')
	}

	switch {
	case b.IsInfinite():
		sb.WriteString("inf")
	case b.IsNaN():
		writeNaN(&sb, b)
	default:
		writeFinite(&sb, b)
	}
	return sb.String()
}

func writeNaN(sb *strings.Builder, b BitString) {
	if b.IsSignalingNaN() {
		sb.WriteString("snan")
	} else {
		sb.WriteString("nan")
	}

	payload := DecodeSignificandTrailingDigits(b.Bytes(), TrailingSignificandWidthBits(b.buf))
	sig, ok := significantDigits(payload)
	if !ok {
		return
	}
	sb.WriteByte('(')
	sb.Write(sig)
	sb.WriteByte(')')
}

func writeFinite(sb *strings.Builder, b BitString) {
	exp, _ := DecodeCombinationFinite(b.Bytes())
	allDigits := decodedDigits(b)
	sig, ok := significantDigits(allDigits)

	switch {
	case exp == 0:
		if !ok {
			sb.WriteByte('0')
			return
		}
		sb.Write(sig)

	case exp < 0:
		n := 0
		if ok {
			n = len(sig)
		}
		pointPos := n + int(exp)
		if pointPos > 0 {
			sb.Write(sig[:pointPos])
			sb.WriteByte('.')
			sb.Write(sig[pointPos:])
			return
		}

		leadingZeros := -pointPos
		if leadingZeros <= leadingFractionalZeroBudget {
			sb.WriteString("0.")
			sb.WriteString(strings.Repeat("0", leadingZeros))
			if ok {
				sb.Write(sig)
			} else {
				sb.WriteByte('0')
			}
			return
		}
		writeScientific(sb, sig, ok, exp)

	default: // exp > 0
		writeScientific(sb, sig, ok, exp)
	}
}

func writeScientific(sb *strings.Builder, sig []byte, ok bool, exp int64) {
	if !ok {
		sb.WriteString("0e")
		sb.WriteString(strconv.FormatInt(exp, 10))
		return
	}

	n := len(sig)
	eprime := exp + int64(n-1)

	if n == 1 {
		sb.Write(sig)
	} else {
		sb.WriteByte(sig[0])
		sb.WriteByte('.')
		sb.Write(sig[1:])
	}
	sb.WriteByte('e')
	sb.WriteString(strconv.FormatInt(eprime, 10))
}

// Scientific always renders b in normalized scientific form, mirroring
// the fixedpoint package's Scientific() method rather than ToString's
// spec-mandated grammar: positive exponents carry an explicit '+'.
func Scientific(b BitString) string {
	var sb strings.Builder
	if b.IsNegative() {
		sb.WriteByte('-')
	}

	switch {
	case b.IsInfinite():
		sb.WriteString("inf")
		return sb.String()
	case b.IsNaN():
		writeNaN(&sb, b)
		return sb.String()
	}

	exp, _ := DecodeCombinationFinite(b.Bytes())
	allDigits := decodedDigits(b)
	sig, ok := significantDigits(allDigits)
	if !ok {
		sb.WriteString("0e+0")
		return sb.String()
	}

	n := len(sig)
	eprime := exp + int64(n-1)

	sb.WriteByte(sig[0])
	if n > 1 {
		sb.WriteByte('.')
		sb.Write(sig[1:])
	}
	fmt.Fprintf(&sb, "e%+d", eprime)
	return sb.String()
}

// Debug renders b's internal components for troubleshooting, in the
// style of the fixedpoint package's Debug() methods.
func Debug(b BitString) string {
	switch {
	case b.IsInfinite():
		sign := '+'
		if b.IsNegative() {
			sign = '-'
		}
		return fmt.Sprintf("Decimal{Inf, %c, width=%d}", sign, b.StorageWidthBits())
	case b.IsQuietNaN():
		return fmt.Sprintf("Decimal{qNaN, payload=%s, width=%d}", nanPayloadDigits(b), b.StorageWidthBits())
	case b.IsSignalingNaN():
		return fmt.Sprintf("Decimal{sNaN, payload=%s, width=%d}", nanPayloadDigits(b), b.StorageWidthBits())
	default:
		exp, msd := DecodeCombinationFinite(b.Bytes())
		trailing := DecodeSignificandTrailingDigits(b.Bytes(), TrailingSignificandWidthBits(b.buf))
		sign := '+'
		if b.IsNegative() {
			sign = '-'
		}
		return fmt.Sprintf("Decimal{%c, msd=%d, trailing=%s, exponent=%d, width=%d}",
			sign, msd.BCD(), trailing, exp, b.StorageWidthBits())
	}
}

func nanPayloadDigits(b BitString) string {
	payload := DecodeSignificandTrailingDigits(b.Bytes(), TrailingSignificandWidthBits(b.buf))
	sig, ok := significantDigits(payload)
	if !ok {
		return "0"
	}
	return string(sig)
}
