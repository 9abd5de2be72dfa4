package vm

import (
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/atomiclang/atomic/pkg/core/value"
)

var (
	ErrStackOverflow      = errors.New("vm: stack overflow")
	ErrStackUnderflow     = errors.New("vm: stack underflow")
	ErrIllegalInstruction = errors.New("vm: illegal instruction")
	ErrOverflow           = errors.New("vm: integer overflow")
	ErrModuloByZero       = errors.New("vm: modulo by zero")
)

// Error attributes a runtime failure to its 1-based source line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

const StackDepth = 16

// Machine executes one compiled script. Output lines are streamed to
// Out as each statement completes, so everything executed before a
// failing line stays visible. Arithmetic is 64-bit signed; overflow is
// a hard error, never silent wraparound.
type Machine struct {
	Stack [StackDepth]value.Value
	SP    int // Stack Pointer
	IP    int // Instruction Pointer

	Code      []uint32
	Constants []value.Value
	Arena     []byte
	Lines     []uint32

	Out io.Writer
}

// Reset clears the machine state for reuse.
func (m *Machine) Reset() {
	m.SP = 0
	m.IP = 0
	for i := range m.Stack {
		m.Stack[i] = value.Value{}
	}
}

// Load points the machine at a compiled program.
func (m *Machine) Load(bc *Bytecode) {
	m.Code = bc.Instructions
	m.Constants = bc.Constants
	m.Arena = bc.Arena
	m.Lines = bc.Lines
}

// Push adds a value to the stack. Panics on overflow.
func (m *Machine) Push(v value.Value) {
	if m.SP >= StackDepth {
		panic(ErrStackOverflow)
	}
	m.Stack[m.SP] = v
	m.SP++
}

// Pop removes and returns the top value from the stack. Panics on underflow.
func (m *Machine) Pop() value.Value {
	if m.SP <= 0 {
		panic(ErrStackUnderflow)
	}
	m.SP--
	return m.Stack[m.SP]
}

// Run executes instructions until HALT or the first error.
func (m *Machine) Run() (err error) {
	// Safety net: convert internal stack panics to errors.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && (errors.Is(e, ErrStackOverflow) || errors.Is(e, ErrStackUnderflow)) {
				err = e
				return
			}
			if _, ok := r.(runtime.Error); ok {
				err = ErrStackUnderflow
				return
			}
			panic(r)
		}
	}()

	for m.IP < len(m.Code) {
		instr := m.Code[m.IP]
		op := uint8(instr >> 24)
		arg := instr & 0x00FFFFFF

		switch op {
		case OP_HALT:
			return nil

		case OP_PUSH_C:
			m.Push(m.Constants[arg])

		case OP_PRINT:
			val := m.Pop()
			if val.Type != value.TypeString {
				return m.execError(ErrIllegalInstruction)
			}
			if err := m.emit(value.UnpackString(val.Data, m.Arena)); err != nil {
				return err
			}

		case OP_ADD:
			rhs, lhs := m.Pop().Int64(), m.Pop().Int64()
			sum, ok := checkedAdd(lhs, rhs)
			if !ok {
				return m.execError(ErrOverflow)
			}
			if err := m.emit(fmt.Sprintf("%d + %d = %d", lhs, rhs, sum)); err != nil {
				return err
			}

		case OP_MUL:
			rhs, lhs := m.Pop().Int64(), m.Pop().Int64()
			product, ok := checkedMul(lhs, rhs)
			if !ok {
				return m.execError(ErrOverflow)
			}
			if err := m.emit(fmt.Sprintf("%d * %d = %d", lhs, rhs, product)); err != nil {
				return err
			}

		case OP_MOD:
			rhs, lhs := m.Pop().Int64(), m.Pop().Int64()
			if rhs == 0 {
				return m.execError(ErrModuloByZero)
			}
			if err := m.emit(fmt.Sprintf("%d %% %d = %d", lhs, rhs, lhs%rhs)); err != nil {
				return err
			}

		default:
			return m.execError(ErrIllegalInstruction)
		}

		m.IP++
	}

	return nil
}

func (m *Machine) emit(line string) error {
	_, err := fmt.Fprintln(m.Out, line)
	return err
}

func (m *Machine) execError(kind error) *Error {
	line := 0
	if m.IP < len(m.Lines) {
		line = int(m.Lines[m.IP])
	}
	return &Error{Line: line, Err: kind}
}

func checkedAdd(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
