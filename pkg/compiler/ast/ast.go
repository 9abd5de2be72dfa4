package ast

import (
	"fmt"

	"github.com/atomiclang/atomic/pkg/compiler/lexer"
)

// Statement is one fully-resolved instruction ready for execution.
// The parser never emits a partially-formed node: string contents and
// integer operands are decoded before construction.
type Statement interface {
	Pos() lexer.Token
	stmtNode()
	String() string
}

// Program is the root node: all statements of a script in source order,
// one per non-blank line.
type Program struct {
	Statements []Statement
}

// Print emits its message verbatim as one output line.
type Print struct {
	Token   lexer.Token // the `print` keyword
	Message string
}

func (p *Print) Pos() lexer.Token { return p.Token }
func (p *Print) stmtNode()        {}
func (p *Print) String() string   { return fmt.Sprintf("Print(%q)", p.Message) }

// Add emits "{lhs} + {rhs} = {sum}".
type Add struct {
	Token    lexer.Token
	LHS, RHS int64
}

func (a *Add) Pos() lexer.Token { return a.Token }
func (a *Add) stmtNode()        {}
func (a *Add) String() string   { return fmt.Sprintf("Add(%d, %d)", a.LHS, a.RHS) }

// Multiply emits "{lhs} * {rhs} = {product}".
type Multiply struct {
	Token    lexer.Token
	LHS, RHS int64
}

func (m *Multiply) Pos() lexer.Token { return m.Token }
func (m *Multiply) stmtNode()        {}
func (m *Multiply) String() string   { return fmt.Sprintf("Multiply(%d, %d)", m.LHS, m.RHS) }

// Mod emits "{lhs} % {rhs} = {remainder}".
type Mod struct {
	Token    lexer.Token
	LHS, RHS int64
}

func (m *Mod) Pos() lexer.Token { return m.Token }
func (m *Mod) stmtNode()        {}
func (m *Mod) String() string   { return fmt.Sprintf("Mod(%d, %d)", m.LHS, m.RHS) }
