package vm

import "github.com/atomiclang/atomic/pkg/core/value"

// Bytecode represents the compiled output of a program.
// Lines runs parallel to Instructions and attributes each instruction
// to its 1-based source line for runtime error reporting.
type Bytecode struct {
	Instructions []uint32
	Constants    []value.Value
	Arena        []byte
	Lines        []uint32
}
