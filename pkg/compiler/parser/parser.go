package parser

import (
	"strconv"

	"github.com/atomiclang/atomic/pkg/compiler/ast"
	"github.com/atomiclang/atomic/pkg/compiler/lexer"
)

// Parser turns the token sequence into a Program, one statement per
// logical line. The grammar is strict: exact arity, exact argument
// kinds, nothing after the arguments.
type Parser struct {
	tokens []lexer.Token
	pos    int
	curTok lexer.Token
	src    []byte
}

// New creates a parser over a token sequence produced by lexer.Tokenize.
func New(tokens []lexer.Token, src []byte) *Parser {
	p := &Parser{tokens: tokens, src: src}
	p.curTok = p.at(0)
	return p
}

// Parse consumes all tokens and builds the statement sequence in
// source order. It stops at the first malformed line.
func Parse(tokens []lexer.Token, src []byte) (*ast.Program, error) {
	return New(tokens, src).Parse()
}

func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	for p.curTok.Kind != lexer.KindEOF {
		if p.curTok.Kind == lexer.KindEOL {
			p.nextToken()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.curTok
	var stmt ast.Statement
	var err error

	switch tok.Kind {
	case lexer.KindPrint:
		stmt, err = p.parsePrint()
	case lexer.KindAdd, lexer.KindMultiply, lexer.KindMod:
		stmt, err = p.parseArithmetic()
	default:
		return nil, p.errorf(ErrUnknownCommand, "%q is not an Atomic command", tok.Text(p.src))
	}
	if err != nil {
		return nil, err
	}

	return stmt, p.expectLineEnd(tok)
}

// parsePrint handles: print "<text>"
func (p *Parser) parsePrint() (ast.Statement, error) {
	tok := p.curTok
	p.nextToken()

	if p.curTok.Kind != lexer.KindString {
		return nil, p.errorf(ErrArgumentMismatch, "print expects one string literal, got %s", p.describe(p.curTok))
	}

	// Strip the surrounding quotes; the content is kept verbatim.
	msg := string(p.src[p.curTok.Offset+1 : p.curTok.Offset+p.curTok.Length-1])
	p.nextToken()

	return &ast.Print{Token: tok, Message: msg}, nil
}

// parseArithmetic handles: add|multiply|mod <int> <int>
func (p *Parser) parseArithmetic() (ast.Statement, error) {
	tok := p.curTok
	name := tok.Text(p.src)
	p.nextToken()

	lhs, err := p.parseInt(name)
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseInt(name)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lexer.KindAdd:
		return &ast.Add{Token: tok, LHS: lhs, RHS: rhs}, nil
	case lexer.KindMod:
		return &ast.Mod{Token: tok, LHS: lhs, RHS: rhs}, nil
	default:
		return &ast.Multiply{Token: tok, LHS: lhs, RHS: rhs}, nil
	}
}

func (p *Parser) parseInt(command string) (int64, error) {
	if p.curTok.Kind != lexer.KindNumber {
		return 0, p.errorf(ErrArgumentMismatch, "%s expects two integers, got %s", command, p.describe(p.curTok))
	}

	text := p.curTok.Text(p.src)
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, p.errorf(ErrArgumentMismatch, "integer literal %s does not fit in 64 bits", text)
	}

	p.nextToken()
	return n, nil
}

// expectLineEnd enforces that nothing follows a statement's arguments.
func (p *Parser) expectLineEnd(start lexer.Token) error {
	switch p.curTok.Kind {
	case lexer.KindEOL:
		p.nextToken()
		return nil
	case lexer.KindEOF:
		return nil
	default:
		return &Error{
			Line:   int(start.Line),
			Err:    ErrTrailingTokens,
			Detail: "unexpected " + p.describe(p.curTok) + " after " + start.Text(p.src) + " arguments",
		}
	}
}

func (p *Parser) nextToken() {
	p.pos++
	p.curTok = p.at(p.pos)
}

func (p *Parser) at(i int) lexer.Token {
	if i >= len(p.tokens) {
		return lexer.Token{Kind: lexer.KindEOF}
	}
	return p.tokens[i]
}

func (p *Parser) describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindEOL, lexer.KindEOF:
		return "end of line"
	case lexer.KindString:
		return "a string literal"
	case lexer.KindNumber:
		return "number " + tok.Text(p.src)
	default:
		return "\"" + tok.Text(p.src) + "\""
	}
}
