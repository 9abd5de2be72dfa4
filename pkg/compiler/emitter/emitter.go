package emitter

import (
	"fmt"

	"github.com/atomiclang/atomic/pkg/compiler/ast"
	"github.com/atomiclang/atomic/pkg/core/value"
	"github.com/atomiclang/atomic/pkg/vm"
)

// Emitter lowers a statement sequence to bytecode. Statements map onto
// instruction groups 1:1 in source order, so execution order and output
// order match the script.
type Emitter struct {
	instructions []uint32
	constants    []value.Value
	arena        []byte
	lines        []uint32

	line uint32 // source line of the statement being lowered
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Emit(prog *ast.Program) (*vm.Bytecode, error) {
	for _, stmt := range prog.Statements {
		if err := e.emitStatement(stmt); err != nil {
			return nil, err
		}
	}

	e.emitOp(vm.OP_HALT, 0)

	return &vm.Bytecode{
		Instructions: e.instructions,
		Constants:    e.constants,
		Arena:        e.arena,
		Lines:        e.lines,
	}, nil
}

func (e *Emitter) emitStatement(stmt ast.Statement) error {
	e.line = stmt.Pos().Line

	switch s := stmt.(type) {
	case *ast.Print:
		idx := e.addStringConstant(s.Message)
		e.emitOp(vm.OP_PUSH_C, idx)
		e.emitOp(vm.OP_PRINT, 0)

	case *ast.Add:
		e.emitBinary(vm.OP_ADD, s.LHS, s.RHS)

	case *ast.Multiply:
		e.emitBinary(vm.OP_MUL, s.LHS, s.RHS)

	case *ast.Mod:
		e.emitBinary(vm.OP_MOD, s.LHS, s.RHS)

	default:
		return fmt.Errorf("emitter: unsupported statement %T", stmt)
	}
	return nil
}

func (e *Emitter) emitBinary(op uint8, lhs, rhs int64) {
	e.emitOp(vm.OP_PUSH_C, e.addConstant(value.Int(lhs)))
	e.emitOp(vm.OP_PUSH_C, e.addConstant(value.Int(rhs)))
	e.emitOp(op, 0)
}

func (e *Emitter) emitOp(op uint8, arg uint32) {
	instr := (uint32(op) << 24) | (arg & 0x00FFFFFF)
	e.instructions = append(e.instructions, instr)
	e.lines = append(e.lines, e.line)
}

func (e *Emitter) addConstant(v value.Value) uint32 {
	e.constants = append(e.constants, v)
	return uint32(len(e.constants) - 1)
}

// addStringConstant copies the string into the arena and registers a
// constant referencing it.
func (e *Emitter) addStringConstant(s string) uint32 {
	offset := uint32(len(e.arena))
	e.arena = append(e.arena, s...)
	return e.addConstant(value.String(offset, uint32(len(s))))
}
