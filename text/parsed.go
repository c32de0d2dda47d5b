package text

// Kind discriminates the shape of a Parsed decimal.
type Kind uint8

const (
	KindFinite Kind = iota
	KindInfinity
	KindNaN
)

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite"
	case KindInfinity:
		return "infinity"
	case KindNaN:
		return "nan"
	default:
		return "unknown"
	}
}

// Range is a half-open [Start, End) byte range into a Buf's accumulated
// bytes. A zero-value Range (Start == End) denotes "absent", e.g. no
// exponent was present, or a NaN had no parenthesized payload.
type Range struct {
	Start, End int
}

// Empty reports whether the range denotes "absent".
func (r Range) Empty() bool { return r.Start == r.End }

// Slice extracts the range's bytes from buf.
func (r Range) Slice(buf []byte) []byte { return buf[r.Start:r.End] }

// Finite is the parsed shape of a finite decimal: an optionally-signed
// significand, an optional decimal point, and an optional signed exponent.
type Finite struct {
	SignificandNegative bool
	SignificandRange    Range
	// DecimalPointIndex is the absolute byte offset of '.' in the input,
	// or -1 if there was none.
	DecimalPointIndex int
	ExponentNegative  bool
	// ExponentRange is empty if no exponent was present.
	ExponentRange Range
}

// HasExponent reports whether an exponent was present.
func (f Finite) HasExponent() bool { return !f.ExponentRange.Empty() }

// HasDecimalPoint reports whether a decimal point was present.
func (f Finite) HasDecimalPoint() bool { return f.DecimalPointIndex >= 0 }

// Infinity is the parsed shape of an infinity.
type Infinity struct {
	Negative bool
}

// NaN is the parsed shape of a NaN.
type NaN struct {
	Signaling    bool
	Negative     bool
	PayloadRange Range
}

// HasPayload reports whether a parenthesized payload was present.
func (n NaN) HasPayload() bool { return !n.PayloadRange.Empty() }

// Parsed is the tagged result of parsing a textual decimal: exactly one
// of Finite, Infinity, or NaN is meaningful, selected by Kind.
type Parsed struct {
	Kind     Kind
	Finite   Finite
	Infinity Infinity
	NaN      NaN
}
