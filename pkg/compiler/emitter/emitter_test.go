package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomiclang/atomic/pkg/compiler/emitter"
	"github.com/atomiclang/atomic/pkg/compiler/lexer"
	"github.com/atomiclang/atomic/pkg/compiler/parser"
	"github.com/atomiclang/atomic/pkg/core/value"
	"github.com/atomiclang/atomic/pkg/vm"
)

func compile(t *testing.T, src string) *vm.Bytecode {
	t.Helper()
	tokens, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err)
	prog, err := parser.Parse(tokens, []byte(src))
	require.NoError(t, err)
	bc, err := emitter.NewEmitter().Emit(prog)
	require.NoError(t, err)
	return bc
}

func ops(bc *vm.Bytecode) []uint8 {
	out := make([]uint8, len(bc.Instructions))
	for i, instr := range bc.Instructions {
		out[i] = uint8(instr >> 24)
	}
	return out
}

func TestEmitPrint(t *testing.T) {
	bc := compile(t, `print "Hello, Atomic!"`)

	assert.Equal(t, []uint8{vm.OP_PUSH_C, vm.OP_PRINT, vm.OP_HALT}, ops(bc))
	require.Len(t, bc.Constants, 1)
	assert.Equal(t, value.TypeString, bc.Constants[0].Type)
	assert.Equal(t, "Hello, Atomic!", bc.Constants[0].Format(bc.Arena))
}

func TestEmitArithmetic(t *testing.T) {
	bc := compile(t, "add 42 8")

	assert.Equal(t, []uint8{vm.OP_PUSH_C, vm.OP_PUSH_C, vm.OP_ADD, vm.OP_HALT}, ops(bc))
	require.Len(t, bc.Constants, 2)
	assert.Equal(t, int64(42), bc.Constants[0].Int64())
	assert.Equal(t, int64(8), bc.Constants[1].Int64())
}

func TestEmitStatementOrder(t *testing.T) {
	bc := compile(t, "print \"a\"\nadd 1 2\nmultiply 3 3\nmod 7 2")

	assert.Equal(t, []uint8{
		vm.OP_PUSH_C, vm.OP_PRINT,
		vm.OP_PUSH_C, vm.OP_PUSH_C, vm.OP_ADD,
		vm.OP_PUSH_C, vm.OP_PUSH_C, vm.OP_MUL,
		vm.OP_PUSH_C, vm.OP_PUSH_C, vm.OP_MOD,
		vm.OP_HALT,
	}, ops(bc))
}

func TestEmitLineTable(t *testing.T) {
	bc := compile(t, "print \"a\"\n\nadd 1 2")

	require.Len(t, bc.Lines, len(bc.Instructions))
	// print lowers to two instructions on line 1; add to three on line 3.
	assert.Equal(t, []uint32{1, 1, 3, 3, 3}, bc.Lines[:5])
}

func TestEmitEmptyProgram(t *testing.T) {
	bc := compile(t, "")

	assert.Equal(t, []uint8{vm.OP_HALT}, ops(bc))
	assert.Empty(t, bc.Constants)
	assert.Empty(t, bc.Arena)
}

func TestEmitArenaSharesStorage(t *testing.T) {
	bc := compile(t, "print \"one\"\nprint \"two\"")

	require.Len(t, bc.Constants, 2)
	assert.Equal(t, "one", bc.Constants[0].Format(bc.Arena))
	assert.Equal(t, "two", bc.Constants[1].Format(bc.Arena))
	assert.Equal(t, "onetwo", string(bc.Arena))
}
