package yamlite

import (
	"bytes"
	"fmt"
)

const (
	defaultMaxDepth = 32

	// noLevel marks lines whose indentation is not significant:
	// blank lines and lines holding only a comment.
	noLevel = -1

	// errPrefixLen is the number of leading bytes of an unterminated
	// quoted scalar included in the error message.
	errPrefixLen = 12
)

// indent is one open nesting context, keyed by the column offset at
// which the context began. Levels strictly increase from the synthetic
// root at level 0 to the top of the stack.
type indent struct {
	level      int
	isSequence bool
}

// Parser scans one document in a single forward pass, with at most one
// byte of lookahead, and reports structure and content to a Handler.
//
// A Parser is single-use: it is constructed over one immutable input
// and one handler, and Parse may be called once. It borrows the input
// and the handler for the duration of the call only.
type Parser struct {
	input    []byte
	pos      int // index of the byte under examination
	line     int // 1-based, for error reporting
	col      int // byte offset within the line
	bol      bool
	handler  Handler
	stack    []indent
	maxDepth int

	// complete is false while the most recently emitted key is still
	// awaiting its value.
	complete bool

	err     *ParseError
	stopped bool
}

// NewParser returns a Parser over input that reports events to h.
// A nil h behaves as NopHandler.
func NewParser(input []byte, h Handler, opts ...Option) (*Parser, error) {
	if h == nil {
		h = NopHandler{}
	}
	p := &Parser{
		input:    input,
		line:     1,
		bol:      true,
		handler:  h,
		maxDepth: defaultMaxDepth,
		complete: true,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.stack = make([]indent, 1, p.maxDepth) // synthetic root at level 0
	return p, nil
}

// Parse scans the input and drives the handler. It returns nil on
// success, ErrStopped if a callback aborted the scan, or a *ParseError
// describing the first syntax error. The error, if any, is also
// delivered through the handler's Error callback.
//
// A line of three dashes is consumed as a document marker; content
// after it continues in the same event stream rather than starting an
// independent document.
func (p *Parser) Parse() error {
	p.handler.StartDocument()
	for ; p.pos < len(p.input); p.pos, p.col = p.pos+1, p.col+1 {
		if p.bol {
			p.bol = false
			level, isSeq := p.measureIndent()
			if level != noLevel {
				if level > p.top().level {
					if !p.push(indent{level: level, isSequence: isSeq}) {
						return p.result()
					}
				} else {
					for level < p.top().level {
						if !p.pop() {
							return p.result()
						}
					}
				}
			}
			if p.pos >= len(p.input) {
				break
			}
		}
		switch ch := p.input[p.pos]; ch {
		case '-': // sequence entry, document marker, or scalar such as -1
			switch p.peek() {
			case ' ':
				if !p.push(indent{level: p.top().level + 1}) {
					return p.result()
				}
				p.skipSpaces()
			case '-':
				p.skipDocumentMarker()
			default:
				if !p.parseNode() {
					return p.result()
				}
			}
		case ':', ',':
			p.skipSpaces()
		case '[':
			if !p.push(indent{level: p.top().level + 1, isSequence: true}) {
				return p.result()
			}
			p.skipSpaces()
		case '{':
			if !p.push(indent{level: p.top().level + 1}) {
				return p.result()
			}
			p.skipSpaces()
		case ']', '}':
			if !p.pop() {
				return p.result()
			}
			p.skipSpaces()
		case '#', '%': // comment, directive line
			p.skipLine()
		case '\n':
			p.line++
			p.col = 0
			p.bol = true
		case '\r', ' ':
		case 0: // NUL ends the input early
			p.pos = len(p.input)
		case '\t':
			p.fail("Avoid tabs in YAML files")
			return p.err
		case '|', '>', '?', '&', '*', '!', '@', '`':
			p.fail(fmt.Sprintf("%c directive not supported", ch))
			return p.err
		default: // quoted or plain scalar
			if !p.parseNode() {
				return p.result()
			}
		}
	}
	for len(p.stack) > 1 {
		if !p.pop() {
			return p.result()
		}
	}
	if !p.resolveMissingNull() {
		return p.result()
	}
	p.handler.EndDocument()
	return nil
}

// result maps an aborted scan to its error. A handler stop carries no
// ParseError of its own.
func (p *Parser) result() error {
	if p.err != nil {
		return p.err
	}
	return ErrStopped
}

// fail records the first error and delivers it through the handler.
// It always returns false so scan helpers can propagate the abort.
func (p *Parser) fail(msg string) bool {
	p.err = &ParseError{Message: msg, Line: p.line, Column: p.col}
	p.handler.Error(msg, p.line, p.col)
	return false
}

func (p *Parser) top() indent {
	return p.stack[len(p.stack)-1]
}

// push opens a nesting context and emits its start event. Any pending
// key is considered complete: the new context is its value.
func (p *Parser) push(in indent) bool {
	if len(p.stack) >= p.maxDepth {
		return p.fail(fmt.Sprintf("nesting exceeds maximum depth of %d", p.maxDepth))
	}
	p.complete = true
	p.stack = append(p.stack, in)
	if in.isSequence {
		p.handler.StartSequence()
	} else {
		p.handler.StartMapping()
	}
	return true
}

// pop resolves any key still awaiting its value, emits the matching
// end event, and removes the top context. Popping the synthetic root
// is a structural error.
func (p *Parser) pop() bool {
	if len(p.stack) == 1 {
		return p.fail("Too many closing braces or brackets")
	}
	if !p.resolveMissingNull() {
		return false
	}
	if p.top().isSequence {
		p.handler.EndSequence()
	} else {
		p.handler.EndMapping()
	}
	p.stack = p.stack[:len(p.stack)-1]
	return true
}

// resolveMissingNull synthesizes a "null" value for a mapping key that
// was followed by a closing or structural token instead of a value.
func (p *Parser) resolveMissingNull() bool {
	if p.complete {
		return true
	}
	p.complete = true
	if !p.handler.Scalar("null") {
		p.stopped = true
		return false
	}
	return true
}

// peek returns the byte after the current one, or 0 at end of input.
func (p *Parser) peek() byte {
	if p.pos+1 >= len(p.input) {
		return 0
	}
	return p.input[p.pos+1]
}

// measureIndent consumes the leading run of spaces and dashes at the
// start of a line and returns the measured level. A dash marks the
// line as a sequence entry. Lines with nothing significant on them
// report noLevel and do not affect nesting.
func (p *Parser) measureIndent() (level int, isSequence bool) {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '-') {
		if p.input[p.pos] == '-' {
			isSequence = true
		}
		p.pos++
		level++
	}
	if p.pos >= len(p.input) {
		return noLevel, false
	}
	switch p.input[p.pos] {
	case '\r', '\n', '#':
		return noLevel, false
	}
	return level, isSequence
}

// skipDocumentMarker consumes up to three dashes of a --- document
// marker. Fewer than three resyncs on the next byte rather than
// failing.
func (p *Parser) skipDocumentMarker() {
	dashes := 1
	p.pos++
	for p.pos < len(p.input) && p.input[p.pos] == '-' && dashes < 3 {
		p.pos++
		dashes++
	}
	p.col += dashes
	p.pos-- // the byte after the marker is re-evaluated by the main loop
}

// skipSpaces consumes the current byte and any run of spaces after it,
// leaving the scan so the main loop lands on the next significant byte.
func (p *Parser) skipSpaces() {
	p.pos++
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
		p.col++
	}
	p.pos--
	p.col--
}

// skipLine consumes bytes up to, but not including, the line terminator.
func (p *Parser) skipLine() {
	for ; p.pos < len(p.input); p.pos++ {
		if p.input[p.pos] == '\r' || p.input[p.pos] == '\n' {
			p.pos--
			break
		}
	}
}

func (p *Parser) parseNode() bool {
	switch p.input[p.pos] {
	case '\'', '"':
		return p.parseQuoted(p.input[p.pos])
	default:
		return p.parsePlain()
	}
}

// isPlainEnd reports whether b can end a plain scalar.
func isPlainEnd(b byte) bool {
	switch b {
	case ',', ':', '\t', '\r', '\n', ']', '}', '#':
		return true
	}
	return false
}

// isScalarContent reports whether the byte under examination is a
// colon or comma that belongs to the scalar. They are structurally
// significant only when followed by whitespace or end of input, which
// permits values such as URLs without quoting.
func (p *Parser) isScalarContent(b byte) bool {
	if b != ':' && b != ',' {
		return false
	}
	switch p.peek() {
	case ' ', '\r', '\n', 0:
		return false
	}
	return true
}

// parsePlain scans an unquoted scalar. Trailing blanks are trimmed.
// Reaching end of input is a valid scalar end, not an error.
func (p *Parser) parsePlain() bool {
	start := p.pos
	for ; p.pos < len(p.input); p.pos++ {
		b := p.input[p.pos]
		if !isPlainEnd(b) || p.isScalarContent(b) {
			continue
		}
		str := trimTrailingBlanks(p.input[start:p.pos])
		p.col += p.pos - start
		return p.emitScalar(str)
	}
	p.complete = true
	if !p.handler.Scalar(trimTrailingBlanks(p.input[start:])) {
		p.stopped = true
		return false
	}
	return true
}

// isQuoteFollow reports whether b determines the role of a preceding
// quoted scalar.
func isQuoteFollow(b byte) bool {
	switch b {
	case ':', '\t', '\r', '\n', ',', ']', '}', '#':
		return true
	}
	return false
}

// parseQuoted scans a quoted scalar. The subset has no escape
// processing, and blanks inside the quotes are preserved verbatim.
func (p *Parser) parseQuoted(quote byte) bool {
	p.pos++ // consume the opening quote
	start := p.pos
	for ; p.pos < len(p.input); p.pos++ {
		if p.input[p.pos] != quote {
			continue
		}
		str := string(p.input[start:p.pos])

		// Fast-forward to the next structurally significant byte to
		// learn whether this scalar is a key or a value.
		for p.pos++; p.pos < len(p.input); p.pos++ {
			if isQuoteFollow(p.input[p.pos]) {
				break
			}
		}
		p.col += p.pos - start + 2
		return p.emitScalar(str)
	}
	prefix := p.input[start-1 : min(len(p.input), start+errPrefixLen)]
	return p.fail(fmt.Sprintf("Unterminated quoted scalar <%s...>", prefix))
}

// emitScalar classifies an extracted scalar as key or value from the
// byte that ended the scan. The terminating byte itself is left for
// the main loop to re-evaluate.
func (p *Parser) emitScalar(str string) bool {
	isKey := p.pos < len(p.input) && p.input[p.pos] == ':'
	p.pos--
	if isKey {
		if !p.resolveMissingNull() {
			return false
		}
		p.complete = false
		if !p.handler.Key(str) {
			p.stopped = true
			return false
		}
		return true
	}
	p.complete = true
	if !p.handler.Scalar(str) {
		p.stopped = true
		return false
	}
	return true
}

func trimTrailingBlanks(b []byte) string {
	return string(bytes.TrimRight(b, " "))
}
