package vm

const (
	OP_HALT   uint8 = 0x00
	OP_PUSH_C uint8 = 0x02
	OP_ADD    uint8 = 0x10
	OP_MUL    uint8 = 0x12
	OP_MOD    uint8 = 0x13
	OP_PRINT  uint8 = 0x15
)

// OpName maps opcodes to mnemonics for trace output.
func OpName(op uint8) string {
	switch op {
	case OP_HALT:
		return "HALT"
	case OP_PUSH_C:
		return "PUSH_C"
	case OP_ADD:
		return "ADD"
	case OP_MUL:
		return "MUL"
	case OP_MOD:
		return "MOD"
	case OP_PRINT:
		return "PRINT"
	}
	return "UNKNOWN"
}
