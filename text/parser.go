package text

// state is which sub-parser, if any, owns the bytes currently being fed.
type state uint8

const (
	stateAtStart state = iota
	stateFinite
	stateInfinity
	stateNaN
)

// Parser is a streaming decimal-text parser: bytes can be fed to it
// across any number of Write calls before End produces the result. This
// lets a caller parse input that arrives in chunks (e.g. read off a
// network connection) without assembling it into one buffer first,
// provided buf is one of the streaming Buf implementations.
type Parser struct {
	buf   Buf
	state state

	haveSign bool
	negative bool

	finite   finiteParser
	infinity infinityParser
	nan      nanParser
}

// NewParser creates a Parser that accumulates seen bytes into buf.
func NewParser(buf Buf) *Parser {
	return &Parser{buf: buf, state: stateAtStart}
}

// Write feeds more input bytes to the parser.
func (p *Parser) Write(chunk []byte) (int, error) {
	base, _, err := p.buf.Append(chunk)
	if err != nil {
		return 0, err
	}
	for i, c := range chunk {
		if err := p.feedByte(c, base+i); err != nil {
			return i, err
		}
	}
	return len(chunk), nil
}

func (p *Parser) feedByte(c byte, off int) error {
	switch p.state {
	case stateAtStart:
		switch {
		case c >= '0' && c <= '9':
			// A leading '.' before any digit is rejected (grammar §6.2
			// names the digit+-then-dot form only; `.5` is not accepted).
			p.state = stateFinite
			p.finite.begin()
			if p.haveSign {
				p.finite.setSign(p.negative)
			}
			return p.finite.feedByte(c, off)
		case c == '-' && !p.haveSign:
			p.haveSign = true
			p.negative = true
			return nil
		case c == '+' && !p.haveSign:
			p.haveSign = true
			p.negative = false
			return nil
		case c == 's' || c == 'S':
			p.state = stateNaN
			p.nan.begin(true)
			p.nan.negative = p.negative
			return nil
		case c == 'n' || c == 'N':
			p.state = stateNaN
			p.nan.begin(false)
			p.nan.negative = p.negative
			return p.nan.feedByte(c, off)
		case c == 'i' || c == 'I':
			p.state = stateInfinity
			p.infinity.negative = p.negative
			return p.infinity.feedByte(c, off)
		default:
			return unexpectedChar(off, c, "a sign, digit, i, n, or s")
		}
	case stateFinite:
		return p.finite.feedByte(c, off)
	case stateInfinity:
		return p.infinity.feedByte(c, off)
	case stateNaN:
		return p.nan.feedByte(c, off)
	default:
		panic("unreachable parser state")
	}
}

// End finalizes the parse, reporting a ParseError if the input ended
// mid-token (or was empty).
func (p *Parser) End() (Parsed, error) {
	off := len(p.buf.Bytes())
	switch p.state {
	case stateAtStart:
		return Parsed{}, unexpectedEnd(off, "a sign, digit, i, n, or s")
	case stateFinite:
		f, err := p.finite.end(off)
		if err != nil {
			return Parsed{}, err
		}
		return Parsed{Kind: KindFinite, Finite: f}, nil
	case stateInfinity:
		inf, err := p.infinity.end(off)
		if err != nil {
			return Parsed{}, err
		}
		return Parsed{Kind: KindInfinity, Infinity: inf}, nil
	case stateNaN:
		n, err := p.nan.end(off)
		if err != nil {
			return Parsed{}, err
		}
		return Parsed{Kind: KindNaN, NaN: n}, nil
	default:
		panic("unreachable parser state")
	}
}

// Bytes returns every byte the parser has seen so far, for extracting the
// substrings named by a Parsed result's ranges.
func (p *Parser) Bytes() []byte { return p.buf.Bytes() }

// Parse parses a complete textual decimal in one call, using a
// zero-copy PreFormattedBuf over input.
func Parse(input []byte) (Parsed, []byte, error) {
	buf := NewPreFormattedBuf(input)
	p := NewParser(buf)
	if _, err := p.Write(input); err != nil {
		return Parsed{}, nil, err
	}
	parsed, err := p.End()
	if err != nil {
		return Parsed{}, nil, err
	}
	return parsed, p.Bytes(), nil
}

// ParseString is a convenience wrapper around Parse for string input.
func ParseString(input string) (Parsed, []byte, error) {
	return Parse([]byte(input))
}
