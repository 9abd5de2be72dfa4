// Package interp wires the full Atomic pipeline: scanner, parser,
// emitter, machine. Every call builds a fresh pipeline over fresh
// immutable inputs, so independent scripts can run in parallel and
// repeated runs of the same script are byte-identical.
package interp

import (
	"io"
	"strings"

	"github.com/atomiclang/atomic/pkg/compiler/emitter"
	"github.com/atomiclang/atomic/pkg/compiler/lexer"
	"github.com/atomiclang/atomic/pkg/compiler/parser"
	"github.com/atomiclang/atomic/pkg/vm"
)

// Compile runs the front half of the pipeline: source to bytecode.
func Compile(src []byte) (*vm.Bytecode, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	prog, err := parser.Parse(tokens, src)
	if err != nil {
		return nil, err
	}

	return emitter.NewEmitter().Emit(prog)
}

// Run interprets an Atomic script, streaming output lines to out as
// statements execute. Output produced before a failing line has
// already been written when Run returns the error.
func Run(src []byte, out io.Writer) error {
	bc, err := Compile(src)
	if err != nil {
		return err
	}

	m := vm.GetMachine()
	defer vm.PutMachine(m)

	m.Out = out
	m.Load(bc)
	return m.Run()
}

// RunString interprets a script and collects its output lines.
// Intended for embedders and tests. On failure the lines already
// produced before the failing statement are still returned.
func RunString(src string) ([]string, error) {
	var buf strings.Builder
	err := Run([]byte(src), &buf)

	out := buf.String()
	if out == "" {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n"), err
}
