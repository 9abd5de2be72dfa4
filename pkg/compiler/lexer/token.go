package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindEOL // end of a non-blank source line
	KindPrint
	KindAdd
	KindMultiply
	KindMod
	KindNumber
	KindString // span includes the surrounding quotes
	KindWord   // bare word that is neither a keyword nor a number
)

// Token represents a lexical unit pointing back to the source.
// Compact fixed-size struct to keep scanning allocation-free.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Line   uint32
}

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindError:
		return "ERROR"
	case KindEOL:
		return "EOL"
	case KindPrint:
		return "PRINT"
	case KindAdd:
		return "ADD"
	case KindMultiply:
		return "MULTIPLY"
	case KindMod:
		return "MOD"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindWord:
		return "WORD"
	}
	return "UNKNOWN"
}
