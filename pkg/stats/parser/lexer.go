package parser

import (
	"fmt"
	"strings"

	"github.com/ShinyHobo/lslib/pkg/stats/ast"
)

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNew        // new
	TokenEntityType // type
	TokenUsing      // using
	TokenAdd        // add
	TokenWith       // with
	TokenLBrace     // {
	TokenRBrace     // }
	TokenIdent      // bare word
	TokenString     // "..." with escapes decoded and quotes stripped
	TokenData       // whole `data "KEY" "VALUE"` line
	TokenInvalid    // unscannable input
)

var keywords = map[string]TokenType{
	"new":   TokenNew,
	"type":  TokenEntityType,
	"using": TokenUsing,
	"add":   TokenAdd,
	"with":  TokenWith,
}

// Token is a single lexed token. Data tokens carry the captured key in Key
// and the captured value in Literal; string tokens carry the decoded text in
// Literal.
type Token struct {
	Type    TokenType
	Literal string
	Key     string
	Loc     ast.Location
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%v, %q, %s}", t.Type, t.Literal, t.Loc)
}

// Lexer tokenizes stat declaration text. It tracks line and column so every
// token carries a Location, and remembers the location of the last
// token it produced for error reporting on truncated input.
type Lexer struct {
	input   string
	file    string
	pos     int
	readPos int
	ch      byte
	line    int
	col     int

	last ast.Location
}

// NewLexer creates a lexer over input; file labels locations.
func NewLexer(input, file string) *Lexer {
	l := &Lexer{input: input, file: file, line: 1, col: 0}
	l.readChar()
	return l
}

// LastLocation returns the location of the most recently scanned token.
func (l *Lexer) LastLocation() ast.Location {
	return l.last
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != 0 && l.ch != '\n' {
				l.readChar()
			}
			continue
		}
		return
	}
}

func (l *Lexer) here() ast.Location {
	return ast.Location{File: l.file, StartLine: l.line, StartCol: l.col, EndLine: l.line, EndCol: l.col}
}

func (l *Lexer) span(start ast.Location) ast.Location {
	start.EndLine = l.line
	start.EndCol = l.col
	return start
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.here()
	var tok Token

	switch {
	case l.ch == 0:
		tok = Token{Type: TokenEOF, Loc: start}

	case l.ch == '{':
		l.readChar()
		tok = Token{Type: TokenLBrace, Literal: "{", Loc: l.span(start)}

	case l.ch == '}':
		l.readChar()
		tok = Token{Type: TokenRBrace, Literal: "}", Loc: l.span(start)}

	case l.ch == '"':
		literal, ok := l.readString()
		if !ok {
			tok = Token{Type: TokenInvalid, Literal: "unterminated string", Loc: l.span(start)}
		} else {
			tok = Token{Type: TokenString, Literal: literal, Loc: l.span(start)}
		}

	case isWordStart(l.ch):
		word := l.readWord()
		if word == "data" {
			tok = l.readDataLine(start)
			break
		}
		if kind, isKeyword := keywords[word]; isKeyword {
			tok = Token{Type: kind, Literal: word, Loc: l.span(start)}
		} else {
			tok = Token{Type: TokenIdent, Literal: word, Loc: l.span(start)}
		}

	default:
		literal := string(l.ch)
		l.readChar()
		tok = Token{Type: TokenInvalid, Literal: fmt.Sprintf("unexpected character %q", literal), Loc: l.span(start)}
	}

	l.last = tok.Loc
	return tok
}

// readDataLine is the dedicated rule for raw data lines. Having consumed the
// word "data", it captures the whole `data "KEY" "VALUE"` line as a single
// token; VALUE may contain escaped quotes.
func (l *Lexer) readDataLine(start ast.Location) Token {
	l.skipInlineSpace()
	if l.ch != '"' {
		return Token{Type: TokenInvalid, Literal: "malformed data line: expected quoted key", Loc: l.span(start)}
	}
	key, ok := l.readString()
	if !ok {
		return Token{Type: TokenInvalid, Literal: "malformed data line: unterminated key", Loc: l.span(start)}
	}

	l.skipInlineSpace()
	if l.ch != '"' {
		return Token{Type: TokenInvalid, Literal: "malformed data line: expected quoted value", Loc: l.span(start)}
	}
	value, ok := l.readString()
	if !ok {
		return Token{Type: TokenInvalid, Literal: "malformed data line: unterminated value", Loc: l.span(start)}
	}

	return Token{Type: TokenData, Literal: value, Key: key, Loc: l.span(start)}
}

func (l *Lexer) skipInlineSpace() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

func (l *Lexer) readWord() string {
	startPos := l.pos
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[startPos:l.pos]
}

// readString scans a quoted string literal, decoding standard backslash
// escapes and stripping the surrounding quotes. Returns false if the string
// is unterminated.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // consume opening quote
	var sb strings.Builder
	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte(l.ch)
			}
		} else {
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}
	if l.ch != '"' {
		return "", false
	}
	l.readChar() // consume closing quote
	return sb.String(), true
}

func isWordStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isWordChar(ch byte) bool {
	return isWordStart(ch) || ch >= '0' && ch <= '9'
}
