package value

import (
	"strconv"
	"unsafe"
)

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeVoid Type = iota
	TypeInt
	TypeString
)

// Value is a tagged union. TypeInt stores the int64 bits in Data;
// TypeString packs an (offset, length) view into a string arena.
type Value struct {
	Type Type
	Data uint64
}

// Int constructs an integer value.
func Int(i int64) Value {
	return Value{Type: TypeInt, Data: uint64(i)}
}

// String constructs a string value referencing arena storage.
func String(offset, length uint32) Value {
	return Value{Type: TypeString, Data: PackString(offset, length)}
}

// PackString encodes offset and length into the Data register.
func PackString(offset, length uint32) uint64 {
	return (uint64(offset) << 32) | uint64(length)
}

// UnpackString retrieves a string view from the arena. The bytes are
// returned verbatim; Atomic string literals carry no escape sequences.
func UnpackString(data uint64, arena []byte) string {
	offset := uint32(data >> 32)
	length := uint32(data)

	if uint64(offset)+uint64(length) > uint64(len(arena)) {
		panic("value: memory access violation")
	}

	if length == 0 {
		return ""
	}

	return unsafe.String(&arena[offset], length)
}

// Int64 returns the value reinterpreted as a signed integer.
func (v Value) Int64() int64 {
	return int64(v.Data)
}

// Format returns the printable representation of the value.
func (v Value) Format(arena []byte) string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(int64(v.Data), 10)
	case TypeString:
		return UnpackString(v.Data, arena)
	default:
		return "void"
	}
}
