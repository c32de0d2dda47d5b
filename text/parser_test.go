package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFinite(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantNeg    bool
		wantSig    string
		wantPoint  bool
		wantExpNeg bool
		wantExp    string
	}{
		{"plain integer", "123", false, "123", false, false, ""},
		{"negative integer", "-123", true, "123", false, false, ""},
		{"explicit positive", "+123", false, "123", false, false, ""},
		{"decimal point", "123.456", false, "123456", true, false, ""},
		{"trailing point, no fraction", "123.", false, "123", true, false, ""},
		{"exponent", "123e10", false, "123", false, false, "10"},
		{"negative exponent", "123e-10", false, "123", false, true, "10"},
		{"explicit positive exponent", "123E+10", false, "123", false, false, "10"},
		{"point and exponent", "-1.5e-3", true, "15", true, true, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, buf, err := ParseString(tt.input)
			require.NoError(t, err)
			require.Equal(t, KindFinite, parsed.Kind)

			f := parsed.Finite
			assert.Equal(t, tt.wantNeg, f.SignificandNegative)
			assert.Equal(t, tt.wantSig, concatSignificand(f, buf))
			assert.Equal(t, tt.wantPoint, f.HasDecimalPoint())
			if tt.wantExp != "" {
				require.True(t, f.HasExponent())
				assert.Equal(t, tt.wantExpNeg, f.ExponentNegative)
				assert.Equal(t, tt.wantExp, string(f.ExponentRange.Slice(buf)))
			} else {
				assert.False(t, f.HasExponent())
			}
		})
	}
}

// concatSignificand reassembles the integer+fractional digit chunks, the
// way convert.go's splitSignificand does, to assert against a single
// string in tests without duplicating that function's logic.
func concatSignificand(f Finite, buf []byte) string {
	if !f.HasDecimalPoint() {
		return string(f.SignificandRange.Slice(buf))
	}
	intPart := buf[f.SignificandRange.Start:f.DecimalPointIndex]
	fracStart := f.DecimalPointIndex + 1
	if fracStart > f.SignificandRange.End {
		return string(intPart)
	}
	return string(intPart) + string(buf[fracStart:f.SignificandRange.End])
}

func TestParseInfinity(t *testing.T) {
	tests := []struct {
		input   string
		wantNeg bool
	}{
		{"inf", false},
		{"Inf", false},
		{"INFINITY", false},
		{"-inf", true},
		{"-infinity", true},
		{"+inf", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, _, err := ParseString(tt.input)
			require.NoError(t, err)
			require.Equal(t, KindInfinity, parsed.Kind)
			assert.Equal(t, tt.wantNeg, parsed.Infinity.Negative)
		})
	}
}

func TestParseNaN(t *testing.T) {
	tests := []struct {
		input         string
		wantSignaling bool
		wantNeg       bool
		wantPayload   string
	}{
		{"nan", false, false, ""},
		{"NaN", false, false, ""},
		{"-nan", false, true, ""},
		{"snan", true, false, ""},
		{"SNaN", true, false, ""},
		{"nan(42)", false, false, "42"},
		{"-snan(7)", true, true, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, buf, err := ParseString(tt.input)
			require.NoError(t, err)
			require.Equal(t, KindNaN, parsed.Kind)
			n := parsed.NaN
			assert.Equal(t, tt.wantSignaling, n.Signaling)
			assert.Equal(t, tt.wantNeg, n.Negative)
			if tt.wantPayload == "" {
				assert.False(t, n.HasPayload())
			} else {
				require.True(t, n.HasPayload())
				assert.Equal(t, tt.wantPayload, string(n.PayloadRange.Slice(buf)))
			}
		})
	}
}

func TestParseRejectsPartialInfinityWord(t *testing.T) {
	tests := []string{"infi", "infin", "infini", "infinit"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, _, err := ParseString(in)
			require.Error(t, err)
		})
	}
}

func TestParseRejectsLeadingDot(t *testing.T) {
	_, _, err := ParseString(".5")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.HasFound)
	assert.Equal(t, byte('.'), pe.Found)
}

func TestParseRejectsSignAfterDecimalPoint(t *testing.T) {
	_, _, err := ParseString("1.-5")
	require.Error(t, err)
}

func TestParseRejectsSecondDecimalPoint(t *testing.T) {
	_, _, err := ParseString("1.2.3")
	require.Error(t, err)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, _, err := ParseString("")
	require.Error(t, err)
}

func TestParseStreaming(t *testing.T) {
	buf := NewFixedBuf(32)
	p := NewParser(buf)

	chunks := []string{"12", "3.", "45", "e-", "2"}
	for _, c := range chunks {
		_, err := p.Write([]byte(c))
		require.NoError(t, err)
	}
	parsed, err := p.End()
	require.NoError(t, err)
	require.Equal(t, KindFinite, parsed.Kind)
	assert.Equal(t, "12345", concatSignificand(parsed.Finite, p.Bytes()))
	assert.Equal(t, "2", string(parsed.Finite.ExponentRange.Slice(p.Bytes())))
	assert.True(t, parsed.Finite.ExponentNegative)
}

func FuzzParseString(f *testing.F) {
	seeds := []string{
		"123", "-123.456", "1.23e7", "inf", "-infinity",
		"nan", "snan(3)", "0", "-0.0", ".5", "1e", "",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		parsed, buf, err := ParseString(s)
		if err != nil {
			return
		}
		switch parsed.Kind {
		case KindFinite:
			f := parsed.Finite
			if f.HasExponent() {
				assert.LessOrEqual(t, f.ExponentRange.Start, f.ExponentRange.End)
			}
			assert.LessOrEqual(t, f.SignificandRange.Start, f.SignificandRange.End)
			_ = buf
		case KindNaN:
			if parsed.NaN.HasPayload() {
				for _, c := range parsed.NaN.PayloadRange.Slice(buf) {
					assert.True(t, c >= '0' && c <= '9')
				}
			}
		}
	})
}
