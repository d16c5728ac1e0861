package expression

import "fmt"

// ValidateCondition checks a Lua-like condition expression for syntactic
// well-formedness: boolean combinations (and/or/not) of calls, identifier
// paths, numbers, strings, and comparisons, with parenthesized grouping.
// It validates the actual input value; empty input is trivially valid.
//
// The only contract callers rely on is pass/fail plus an error column, so a
// richer condition grammar can replace this one without touching callers.
func ValidateCondition(value string) error {
	p := &conditionParser{input: value}
	p.skipSpace()
	if p.eof() {
		return nil
	}

	if err := p.expr(); err != nil {
		return fmt.Errorf("syntax error at or near character %d: %s", err.Column+1, err.Message)
	}
	p.skipSpace()
	if !p.eof() {
		return fmt.Errorf("syntax error at or near character %d: unexpected trailing input", p.pos+1)
	}
	return nil
}

type conditionParser struct {
	input string
	pos   int
}

// expr := term (('and'|'or') term)*
func (p *conditionParser) expr() *SyntaxError {
	if err := p.term(); err != nil {
		return err
	}
	for {
		p.skipSpace()
		word, at := p.peekWord()
		if word != "and" && word != "or" {
			return nil
		}
		p.pos = at + len(word)
		if err := p.term(); err != nil {
			return err
		}
	}
}

// term := 'not' term | comparison
func (p *conditionParser) term() *SyntaxError {
	p.skipSpace()
	if word, at := p.peekWord(); word == "not" {
		p.pos = at + len(word)
		return p.term()
	}
	return p.comparison()
}

// comparison := operand (compareOp operand)?
func (p *conditionParser) comparison() *SyntaxError {
	if err := p.operand(); err != nil {
		return err
	}
	p.skipSpace()
	if p.compareOp() {
		return p.operand()
	}
	return nil
}

// operand := '(' expr ')' | call | path | number | string
func (p *conditionParser) operand() *SyntaxError {
	p.skipSpace()
	if p.eof() {
		return p.errorf("expected operand")
	}

	ch := p.peek()
	switch {
	case ch == '(':
		p.pos++
		if err := p.expr(); err != nil {
			return err
		}
		p.skipSpace()
		if p.eof() || p.peek() != ')' {
			return p.errorf("expected ')'")
		}
		p.pos++
		return nil

	case ch == '\'' || ch == '"':
		quote := ch
		p.pos++
		for !p.eof() && p.peek() != quote {
			p.pos++
		}
		if p.eof() {
			return p.errorf("unterminated string")
		}
		p.pos++
		return nil

	case ch == '-' || isDigit(ch):
		p.pos++
		for !p.eof() && (isDigit(p.peek()) || p.peek() == '.') {
			p.pos++
		}
		return nil

	case isIdentStart(ch):
		for !p.eof() && (isIdentChar(p.peek()) || p.peek() == '.') {
			p.pos++
		}
		p.skipSpace()
		if !p.eof() && p.peek() == '(' {
			return p.argList()
		}
		return nil

	default:
		return p.errorf("unexpected character %q", ch)
	}
}

// argList := '(' (expr (',' expr)*)? ')'
func (p *conditionParser) argList() *SyntaxError {
	p.pos++ // consume '('
	p.skipSpace()
	if !p.eof() && p.peek() == ')' {
		p.pos++
		return nil
	}
	for {
		if err := p.expr(); err != nil {
			return err
		}
		p.skipSpace()
		if p.eof() {
			return p.errorf("unterminated argument list")
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return nil
		default:
			return p.errorf("expected ',' or ')' in argument list")
		}
	}
}

// compareOp consumes ==, ~=, <=, >=, <, or > if present.
func (p *conditionParser) compareOp() bool {
	rest := p.input[p.pos:]
	for _, op := range []string{"==", "~=", "<=", ">=", "<", ">"} {
		if len(rest) >= len(op) && rest[:len(op)] == op {
			p.pos += len(op)
			return true
		}
	}
	return false
}

// peekWord returns the bare word at the cursor without consuming it, plus
// the cursor position it starts at.
func (p *conditionParser) peekWord() (string, int) {
	if p.eof() || !isIdentStart(p.peek()) {
		return "", p.pos
	}
	end := p.pos
	for end < len(p.input) && isIdentChar(p.input[end]) {
		end++
	}
	return p.input[p.pos:end], p.pos
}

func (p *conditionParser) skipSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t' || p.peek() == '\r' || p.peek() == '\n') {
		p.pos++
	}
}

func (p *conditionParser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *conditionParser) peek() byte {
	return p.input[p.pos]
}

func (p *conditionParser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Column: p.pos, Message: fmt.Sprintf(format, args...)}
}
