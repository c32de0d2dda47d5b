package text

// finiteParser implements the significand-then-exponent state machine for
// a finite number: optional sign, digits, optional decimal point (which
// may appear before or after the digits it has), then optionally `e`/`E`
// followed by an optionally-signed exponent.
//
// anyDigit is sticky for the life of the significand (it gates sigStart
// tracking and end-of-input validation); it must not be cleared when a
// decimal point is seen, or a later digit would be mistaken for the first
// one and the integer part's start offset would be lost.
type finiteParser struct {
	negative   bool
	hasSign    bool
	hasDecimal bool
	anyDigit   bool

	sigStart, sigEnd  int
	decimalPointIndex int

	inExponent bool
	expSign    bool
	expNeg     bool
	expDigits  bool
	expStart   int
	expEnd     int
}

func (p *finiteParser) begin() {
	p.decimalPointIndex = -1
}

func (p *finiteParser) setSign(negative bool) {
	p.negative = negative
	p.hasSign = true
}

func (p *finiteParser) feedByte(c byte, off int) error {
	if !p.inExponent {
		switch {
		case c >= '0' && c <= '9':
			if !p.anyDigit {
				p.sigStart = off
			}
			p.sigEnd = off + 1
			p.anyDigit = true
			return nil
		case c == '-' && !p.hasSign && !p.anyDigit && !p.hasDecimal:
			p.negative = true
			p.hasSign = true
			return nil
		case c == '+' && !p.hasSign && !p.anyDigit && !p.hasDecimal:
			p.negative = false
			p.hasSign = true
			return nil
		case c == '.' && !p.hasDecimal:
			p.hasDecimal = true
			p.decimalPointIndex = off
			return nil
		case (c == 'e' || c == 'E') && p.anyDigit:
			p.inExponent = true
			p.expSign = false
			p.expDigits = false
			return nil
		default:
			return unexpectedChar(off, c, "any digit")
		}
	}

	switch {
	case c >= '0' && c <= '9':
		if !p.expDigits {
			p.expStart = off
		}
		p.expEnd = off + 1
		p.expDigits = true
		return nil
	case c == '-' && !p.expSign && !p.expDigits:
		p.expNeg = true
		p.expSign = true
		return nil
	case c == '+' && !p.expSign && !p.expDigits:
		p.expNeg = false
		p.expSign = true
		return nil
	default:
		if p.expDigits {
			return unexpectedChar(off, c, "any digit")
		}
		return unexpectedChar(off, c, "a sign or digit")
	}
}

func (p *finiteParser) end(off int) (Finite, error) {
	if p.inExponent {
		if !p.expDigits {
			if p.expSign {
				return Finite{}, unexpectedEnd(off, "any digit")
			}
			return Finite{}, unexpectedEnd(off, "a sign or digit")
		}
	} else if !p.anyDigit {
		return Finite{}, unexpectedEnd(off, "any digit")
	}

	f := Finite{
		SignificandNegative: p.negative,
		SignificandRange:    Range{p.sigStart, p.sigEnd},
		DecimalPointIndex:   p.decimalPointIndex,
		ExponentNegative:    p.expNeg,
	}
	if p.inExponent {
		f.ExponentRange = Range{p.expStart, p.expEnd}
	}
	return f, nil
}
