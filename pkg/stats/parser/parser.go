package parser

import (
	"fmt"

	"github.com/ShinyHobo/lslib/pkg/stats/ast"
	statErrors "github.com/ShinyHobo/lslib/pkg/stats/errors"
)

// Parser parses stat declaration text into an ast.Declarations sequence.
//
// A structural error aborts the declaration it occurs in; the parser then
// resumes at the next `new` header so one bad declaration does not hide the
// rest of the file. All structural errors are accumulated and returned
// together.
type Parser struct {
	lex  *Lexer
	cur  Token
	errs *statErrors.ErrorList
}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses declaration text. The file argument only labels source
// locations; no I/O happens here. On structural errors the returned
// declarations contain every declaration that parsed cleanly, and the
// returned error is a *errors.ErrorList.
func (p *Parser) Parse(input, file string) (*ast.Declarations, error) {
	p.lex = NewLexer(input, file)
	p.errs = statErrors.NewErrorList()
	p.advance()

	decls := &ast.Declarations{}

	// pending holds the previous completed declaration so an
	// ItemCombinationResult can be folded into the ItemCombination it
	// follows before either is finalized.
	var pending *ast.Declaration

	for p.cur.Type != TokenEOF {
		if p.cur.Type != TokenNew {
			p.syntaxError(fmt.Sprintf("expected 'new' declaration header, found %s", p.describe(p.cur)), p.cur.Loc)
			p.skipToNew()
			continue
		}

		decl, ok := p.parseDeclaration()
		if !ok {
			continue
		}

		if pending != nil && pending.Kind == "ItemCombination" && decl.Kind == "ItemCombinationResult" {
			ast.MergeItemCombo(pending, decl)
			continue
		}
		if pending != nil {
			decls.Append(pending)
		}
		pending = decl
	}

	if pending != nil {
		decls.Append(pending)
	}

	return decls, p.errs.ToError()
}

func (p *Parser) advance() {
	p.cur = p.lex.NextToken()
}

// skipToNew discards tokens up to the next declaration header or EOF.
func (p *Parser) skipToNew() {
	for p.cur.Type != TokenNew && p.cur.Type != TokenEOF {
		p.advance()
	}
}

// parseDeclaration parses one `new <kind> "Name"?` header plus its body.
// On a structural error the declaration is abandoned: the error is recorded,
// input skips to the next header, and ok is false.
func (p *Parser) parseDeclaration() (*ast.Declaration, bool) {
	loc := p.cur.Loc
	p.advance() // consume 'new'

	if p.cur.Type != TokenIdent {
		p.syntaxError(fmt.Sprintf("expected declaration kind after 'new', found %s", p.describe(p.cur)), p.cur.Loc)
		p.skipToNew()
		return nil, false
	}
	decl := ast.NewDeclaration(p.cur.Literal, loc)
	p.advance()

	if p.cur.Type == TokenString {
		decl.Merge(&ast.Property{Key: "Name", Value: p.cur.Literal, Location: p.cur.Loc})
		p.advance()
	}

	for p.cur.Type != TokenNew && p.cur.Type != TokenEOF {
		if !p.parseItem(decl) {
			p.skipToNew()
			return nil, false
		}
	}

	return decl, true
}

// parseItem parses one body item into decl. Returns false on a structural
// error (already recorded).
func (p *Parser) parseItem(decl *ast.Declaration) bool {
	switch p.cur.Type {
	case TokenData:
		decl.Merge(&ast.Property{Key: p.cur.Key, Value: p.cur.Literal, Location: p.cur.Loc})
		p.advance()
		return true

	case TokenEntityType:
		return p.parseKeywordProperty(decl, "EntityType")

	case TokenUsing:
		return p.parseKeywordProperty(decl, "Using")

	case TokenAdd:
		return p.parseElement(decl)

	case TokenWith:
		return p.parseNested(decl)

	case TokenInvalid:
		p.syntaxError(p.cur.Literal, p.cur.Loc)
		return false

	default:
		p.syntaxError(fmt.Sprintf("unexpected %s in declaration body", p.describe(p.cur)), p.cur.Loc)
		return false
	}
}

// parseKeywordProperty handles `type "X"` and `using "X"`, which desugar to
// properties named EntityType and Using.
func (p *Parser) parseKeywordProperty(decl *ast.Declaration, key string) bool {
	keyword := p.cur.Literal
	p.advance()
	if p.cur.Type != TokenString {
		p.syntaxError(fmt.Sprintf("expected quoted value after '%s', found %s", keyword, p.describe(p.cur)), p.cur.Loc)
		return false
	}
	decl.Merge(&ast.Property{Key: key, Value: p.cur.Literal, Location: p.cur.Loc})
	p.advance()
	return true
}

// parseElement handles `add "Collection" "Value"` (scalar append) and
// `add "Collection" { ... }` (nested-map append).
func (p *Parser) parseElement(decl *ast.Declaration) bool {
	p.advance() // consume 'add'
	if p.cur.Type != TokenString {
		p.syntaxError(fmt.Sprintf("expected quoted collection name after 'add', found %s", p.describe(p.cur)), p.cur.Loc)
		return false
	}
	collection := p.cur.Literal
	p.advance()

	switch p.cur.Type {
	case TokenString:
		decl.Merge(&ast.Element{Collection: collection, Value: ast.Scalar(p.cur.Literal)})
		p.advance()
		return true

	case TokenLBrace:
		nested, ok := p.parseBlock()
		if !ok {
			return false
		}
		decl.Merge(&ast.Element{Collection: collection, Value: nested.Properties()})
		return true

	default:
		p.syntaxError(fmt.Sprintf("expected value or '{' after 'add %q', found %s", collection, p.describe(p.cur)), p.cur.Loc)
		return false
	}
}

// parseNested handles `with { ... }`: the block parses as its own
// declaration and is merged into the parent wholesale.
func (p *Parser) parseNested(decl *ast.Declaration) bool {
	p.advance() // consume 'with'
	if p.cur.Type != TokenLBrace {
		p.syntaxError(fmt.Sprintf("expected '{' after 'with', found %s", p.describe(p.cur)), p.cur.Loc)
		return false
	}
	nested, ok := p.parseBlock()
	if !ok {
		return false
	}
	decl.Merge(nested)
	return true
}

// parseBlock parses `{ item* }` into a fresh sub-declaration.
func (p *Parser) parseBlock() (*ast.Declaration, bool) {
	open := p.cur.Loc
	p.advance() // consume '{'

	nested := ast.NewDeclaration("", open)
	for p.cur.Type != TokenRBrace {
		if p.cur.Type == TokenEOF || p.cur.Type == TokenNew {
			p.syntaxError("unterminated block: missing '}'", p.lex.LastLocation())
			return nil, false
		}
		if !p.parseItem(nested) {
			return nil, false
		}
	}
	p.advance() // consume '}'
	return nested, true
}

func (p *Parser) syntaxError(message string, loc ast.Location) {
	p.errs.AddError(statErrors.ErrorTypeSyntax, message, loc)
}

func (p *Parser) describe(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("string %q", tok.Literal)
	case TokenData:
		return "data line"
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}
