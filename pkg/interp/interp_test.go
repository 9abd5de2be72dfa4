package interp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomiclang/atomic/pkg/compiler/lexer"
	"github.com/atomiclang/atomic/pkg/compiler/parser"
	"github.com/atomiclang/atomic/pkg/interp"
	"github.com/atomiclang/atomic/pkg/vm"
)

func TestRunSingleStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"print", `print "Hello, Atomic!"`, []string{"Hello, Atomic!"}},
		{"add", "add 42 8", []string{"42 + 8 = 50"}},
		{"multiply", "multiply 6 7", []string{"6 * 7 = 42"}},
		{"mod", "mod 9 4", []string{"9 % 4 = 1"}},
		{"negative operands", "add -5 3", []string{"-5 + 3 = -2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.RunString(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunMultiLineScript(t *testing.T) {
	got, err := interp.RunString("print \"a\"\nadd 1 2\nmultiply 3 3")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "1 + 2 = 3", "3 * 3 = 9"}, got)
}

func TestRunOrderPreserved(t *testing.T) {
	src := "multiply 2 2\nprint \"mid\"\nadd 0 0\nprint \"end\""
	got, err := interp.RunString(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"2 * 2 = 4", "mid", "0 + 0 = 0", "end"}, got)
}

func TestRunPrintVerbatim(t *testing.T) {
	got, err := interp.RunString(`print "  spaced \n not-an-escape  "`)
	require.NoError(t, err)
	assert.Equal(t, []string{`  spaced \n not-an-escape  `}, got)
}

func TestRunBlankScript(t *testing.T) {
	for _, src := range []string{"", "\n\n", "  \t \n   \n"} {
		got, err := interp.RunString(src)
		require.NoError(t, err, "source %q", src)
		assert.Empty(t, got, "source %q", src)
	}
}

func TestRunIdempotent(t *testing.T) {
	src := "print \"x\"\nadd 10 20\nmod 10 3\nmultiply -4 4"

	first, err := interp.RunString(src)
	require.NoError(t, err)
	second, err := interp.RunString(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunArgumentMismatch(t *testing.T) {
	got, err := interp.RunString("add 5 x")
	require.ErrorIs(t, err, parser.ErrArgumentMismatch)
	assert.Empty(t, got)

	var pErr *parser.Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 1, pErr.Line)
}

func TestRunUnknownCommand(t *testing.T) {
	got, err := interp.RunString("foo 1 2")
	require.ErrorIs(t, err, parser.ErrUnknownCommand)
	assert.Empty(t, got)
}

func TestRunParseFailureProducesNoOutput(t *testing.T) {
	// Parse errors abort before execution starts, even for valid
	// leading lines.
	got, err := interp.RunString("print \"never\"\nadd 1 2 3")
	require.ErrorIs(t, err, parser.ErrTrailingTokens)
	assert.Empty(t, got)
}

func TestRunOverflowKeepsPriorOutput(t *testing.T) {
	got, err := interp.RunString("print \"first\"\nadd 9223372036854775807 1\nprint \"never\"")
	require.ErrorIs(t, err, vm.ErrOverflow)
	assert.Equal(t, []string{"first"}, got)

	var vmErr *vm.Error
	require.ErrorAs(t, err, &vmErr)
	assert.Equal(t, 2, vmErr.Line)
}

func TestRunModuloByZero(t *testing.T) {
	_, err := interp.RunString("mod 5 0")
	require.ErrorIs(t, err, vm.ErrModuloByZero)
}

func TestRunUnterminatedString(t *testing.T) {
	_, err := interp.RunString(`print "unclosed`)
	require.ErrorIs(t, err, lexer.ErrUnterminatedString)
}

func TestRunStreamsToWriter(t *testing.T) {
	var out strings.Builder
	err := interp.Run([]byte("add 2 3\nprint \"done\""), &out)
	require.NoError(t, err)
	assert.Equal(t, "2 + 3 = 5\ndone\n", out.String())
}

func TestCompileProducesFreshBytecode(t *testing.T) {
	src := []byte(`print "x"`)
	a, err := interp.Compile(src)
	require.NoError(t, err)
	b, err := interp.Compile(src)
	require.NoError(t, err)

	assert.Equal(t, a.Instructions, b.Instructions)
	assert.NotSame(t, &a.Instructions[0], &b.Instructions[0])
}
