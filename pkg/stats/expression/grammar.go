package expression

import (
	"fmt"
	"strconv"
	"strings"
)

// grammarParser is a recursive descent parser over a synthetic tagged
// buffer. Structural failures surface as *SyntaxError with a 0-based buffer
// column; semantic findings (well-formed but meaningless constructs) go
// through the collect callback without stopping the parse.
type grammarParser struct {
	input   string
	pos     int
	typ     Type
	collect func(string)
}

// dieSizes are the die sizes the game ships; dice arguments outside this
// set are semantically invalid even though they parse.
var dieSizes = map[int]bool{4: true, 6: true, 8: true, 10: true, 12: true, 20: true, 100: true}

// parseBuffer parses a complete synthetic buffer (marker prefix included).
func parseBuffer(buffer string, typ Type, collect func(string)) (*Expression, error) {
	p := &grammarParser{input: buffer, typ: typ, collect: collect}
	if err := p.marker(); err != nil {
		return nil, err
	}
	return p.callList()
}

// marker consumes the __TYPE_<Tag>__ prefix plus the separating space.
func (p *grammarParser) marker() error {
	if !strings.HasPrefix(p.input, "__TYPE_") {
		return p.errorf("expected expression type marker")
	}
	end := strings.Index(p.input[7:], "__ ")
	if end < 0 {
		return p.errorf("unterminated expression type marker")
	}
	p.pos = 7 + end + 3
	return nil
}

// callList parses the semicolon-separated call list that makes up the whole
// expression. Blank items between semicolons are skipped.
func (p *grammarParser) callList() (*Expression, error) {
	expr := &Expression{}

	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		if p.peek() == ';' {
			p.pos++
			continue
		}

		call, err := p.call()
		if err != nil {
			return nil, err
		}
		expr.Calls = append(expr.Calls, call)

		p.skipSpace()
		if p.eof() {
			break
		}
		if p.peek() != ';' {
			return nil, p.errorf("expected ';' between calls")
		}
		p.pos++
	}

	if len(expr.Calls) == 0 {
		p.collect("expression contains no calls")
	}
	return expr, nil
}

// call parses Ident or Ident(args). DescriptionParams additionally accepts
// a bare parameter (identifier path or number) standing alone.
func (p *grammarParser) call() (*Call, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("expected call")
	}

	if p.typ == TypeDescriptionParams && !isIdentStart(p.peek()) {
		text, err := p.literal()
		if err != nil {
			return nil, err
		}
		return &Call{Name: text}, nil
	}

	if !isIdentStart(p.peek()) {
		return nil, p.errorf("expected call name")
	}
	name := p.identPath()

	p.skipSpace()
	if p.eof() || p.peek() != '(' {
		return &Call{Name: name}, nil
	}
	p.pos++ // consume '('

	call := &Call{Name: name}
	p.skipSpace()
	if !p.eof() && p.peek() == ')' {
		p.pos++
		return call, nil
	}

	for {
		arg, err := p.arg()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated argument list")
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return call, nil
		default:
			return nil, p.errorf("expected ',' or ')' in argument list")
		}
	}
}

// arg parses one call argument.
func (p *grammarParser) arg() (Arg, error) {
	p.skipSpace()
	if p.eof() {
		return Arg{}, p.errorf("expected argument")
	}

	ch := p.peek()
	switch {
	case ch == '\'' || ch == '"':
		text, err := p.quoted(ch)
		if err != nil {
			return Arg{}, err
		}
		return Arg{Text: text}, nil

	case ch == '-' || isDigit(ch):
		text, err := p.literal()
		if err != nil {
			return Arg{}, err
		}
		return Arg{Text: text}, nil

	case isIdentStart(ch):
		start := p.pos
		name := p.identPath()
		p.skipSpace()
		if !p.eof() && p.peek() == '(' {
			p.pos = start
			call, err := p.call()
			if err != nil {
				return Arg{}, err
			}
			return Arg{Call: call}, nil
		}
		p.checkDice(name)
		return Arg{Text: name}, nil

	default:
		return Arg{}, p.errorf("unexpected character %q in argument", ch)
	}
}

// literal parses a number, a dice roll, or a bare word.
func (p *grammarParser) literal() (string, error) {
	start := p.pos
	if !p.eof() && p.peek() == '-' {
		p.pos++
	}
	for !p.eof() && (isIdentChar(p.peek()) || p.peek() == '.' || p.peek() == '%') {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected literal")
	}
	text := p.input[start:p.pos]
	p.checkDice(text)
	return text, nil
}

// quoted parses a single- or double-quoted string argument.
func (p *grammarParser) quoted(quote byte) (string, error) {
	p.pos++ // consume opening quote
	start := p.pos
	for !p.eof() && p.peek() != quote {
		p.pos++
	}
	if p.eof() {
		return "", p.errorf("unterminated string argument")
	}
	text := p.input[start:p.pos]
	p.pos++ // consume closing quote
	return text, nil
}

// identPath parses Ident(.Ident)*: functor names and context paths.
func (p *grammarParser) identPath() string {
	start := p.pos
	for !p.eof() && (isIdentChar(p.peek()) || p.peek() == '.') {
		p.pos++
	}
	return p.input[start:p.pos]
}

// checkDice flags dice-shaped arguments with an illegal die size. The shape
// parses fine, so this is a semantic finding, not a syntax error.
func (p *grammarParser) checkDice(text string) {
	count, size, ok := strings.Cut(text, "d")
	if !ok {
		return
	}
	if _, err := strconv.Atoi(count); err != nil {
		return
	}
	die, err := strconv.Atoi(size)
	if err != nil {
		return
	}
	if !dieSizes[die] {
		p.collect(fmt.Sprintf("Invalid die size: %d", die))
	}
}

func (p *grammarParser) skipSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *grammarParser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *grammarParser) peek() byte {
	return p.input[p.pos]
}

func (p *grammarParser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Column: p.pos, Message: fmt.Sprintf(format, args...)}
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
