package tinyargs

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/napalu/tinyargs/errs"
	"github.com/napalu/tinyargs/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func matchTokens(t *testing.T, tokens ...string) (*ArgList, error) {
	t.Helper()
	return match(testCommand().MustBuild(), parse.NewTokens(tokens), discard)
}

func TestMatch_AllKinds(t *testing.T) {
	args, err := matchTokens(t,
		"--num", "6",
		"--float", "3.1415",
		"-V",
		"--path", "/some/path",
		"-h",
		"--idk", "hiii hello",
	)
	require.NoError(t, err)

	num, ok := args.Get(Long("num"))
	require.True(t, ok)
	n, ok := num.Value().AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(6), n)

	flt, _ := args.Get(Long("float"))
	f, ok := flt.Value().AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 3.1415, f)

	path, _ := args.Get(Long("path"))
	p, ok := path.Value().AsPath()
	assert.True(t, ok)
	assert.Equal(t, "/some/path", p)

	idk, _ := args.Get(Long("idk"))
	s, ok := idk.Value().AsString()
	assert.True(t, ok)
	assert.Equal(t, "hiii hello", s)

	assert.Equal(t, uint(1), args.Count(Short('V')))
	assert.Equal(t, uint(1), args.Count(Short('h')))
	assert.Equal(t, uint(1), args.Count(Long("help")), "any alias of the name finds the argument")

	idk2, ok := args.Get(Long("idk2"))
	require.True(t, ok, "undeclared occurrences still have a state")
	assert.False(t, idk2.Present())
	assert.False(t, idk2.Value().IsSet())

	assert.Len(t, args.Present(), 6)
	assert.Equal(t, 7, args.Len())
}

func TestMatch_LastWriteWins(t *testing.T) {
	args, err := matchTokens(t, "--num", "1", "--num", "2")
	require.NoError(t, err)

	num, _ := args.Get(Long("num"))
	n, _ := num.Value().AsInt()
	assert.Equal(t, int64(2), n)
	assert.Equal(t, uint(2), num.Count())
}

func TestMatch_FlagsAccumulate(t *testing.T) {
	args, err := matchTokens(t, "-h", "-h", "-h")
	require.NoError(t, err)
	assert.Equal(t, uint(3), args.Count(Both('h', "help")))

	args, err = matchTokens(t, "-h", "--help", "-V")
	require.NoError(t, err)
	assert.Equal(t, uint(2), args.Count(Short('h')), "short and long occurrences share one counter")
	assert.Equal(t, uint(1), args.Count(Short('V')))
}

func TestMatch_ValueMayLookLikeAnArgument(t *testing.T) {
	args, err := matchTokens(t, "--num", "-5", "--idk", "--help")
	require.NoError(t, err)

	num, _ := args.Get(Long("num"))
	n, _ := num.Value().AsInt()
	assert.Equal(t, int64(-5), n)

	idk, _ := args.Get(Long("idk"))
	s, _ := idk.Value().AsString()
	assert.Equal(t, "--help", s, "the token after a value-bearing argument is always its value")
	assert.Equal(t, uint(0), args.Count(Long("help")))
}

func TestMatch_ShortFormReadsOneCharacter(t *testing.T) {
	cmd := NewCommand("short", "").
		Arg(Short('n'), Integer(), "number").
		MustBuild()

	args, err := match(cmd, parse.NewTokens([]string{"-num", "6"}), discard)
	require.NoError(t, err, "only the character after the dash names the argument")
	n, _ := args.args[0].Value().AsInt()
	assert.Equal(t, int64(6), n)
}

func TestMatch_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		kind     errs.Kind
		sentinel error
		token    string
		argument string
	}{
		{
			name:     "value without argument",
			tokens:   []string{"--num", "6", "6"},
			kind:     errs.NotAnArgument,
			sentinel: errs.ErrNotAnArgument,
			token:    "6",
		},
		{
			name:     "bare word",
			tokens:   []string{"num", "6"},
			kind:     errs.NotAnArgument,
			sentinel: errs.ErrNotAnArgument,
			token:    "num",
		},
		{
			name:     "short form takes one character",
			tokens:   []string{"-num", "6"},
			kind:     errs.UnknownArgument,
			sentinel: errs.ErrUnknownArgument,
			token:    "-num",
			argument: "-n",
		},
		{
			name:     "unknown long",
			tokens:   []string{"--nope"},
			kind:     errs.UnknownArgument,
			sentinel: errs.ErrUnknownArgument,
			token:    "--nope",
			argument: "--nope",
		},
		{
			name:     "long names are not prefixes",
			tokens:   []string{"--nu", "6"},
			kind:     errs.UnknownArgument,
			sentinel: errs.ErrUnknownArgument,
			token:    "--nu",
			argument: "--nu",
		},
		{
			name:     "long name with short spelling",
			tokens:   []string{"--V"},
			kind:     errs.UnknownArgument,
			sentinel: errs.ErrUnknownArgument,
			token:    "--V",
			argument: "--V",
		},
		{
			name:     "double dash alone",
			tokens:   []string{"--"},
			kind:     errs.MalformedLongArgument,
			sentinel: errs.ErrMalformedLongArgument,
			token:    "--",
		},
		{
			name:     "single dash alone",
			tokens:   []string{"-"},
			kind:     errs.MalformedShortArgument,
			sentinel: errs.ErrMalformedShortArgument,
			token:    "-",
		},
		{
			name:     "float not a number",
			tokens:   []string{"--float", "notanumber"},
			kind:     errs.InvalidNumericValue,
			sentinel: errs.ErrInvalidNumericValue,
			token:    "notanumber",
			argument: "--float",
		},
		{
			name:     "integer not a number",
			tokens:   []string{"--num", "3.5"},
			kind:     errs.InvalidNumericValue,
			sentinel: errs.ErrInvalidNumericValue,
			token:    "3.5",
			argument: "--num",
		},
		{
			name:     "missing path",
			tokens:   []string{"--path"},
			kind:     errs.MissingValue,
			sentinel: errs.ErrMissingValue,
			argument: "--path",
		},
		{
			name:     "missing value after others",
			tokens:   []string{"-h", "--num", "6", "--idk"},
			kind:     errs.MissingValue,
			sentinel: errs.ErrMissingValue,
			argument: "--idk",
		},
		{
			name:     "first error aborts",
			tokens:   []string{"--nope", "--float", "x"},
			kind:     errs.UnknownArgument,
			sentinel: errs.ErrUnknownArgument,
			token:    "--nope",
			argument: "--nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := matchTokens(t, tt.tokens...)
			assert.Nil(t, args, "no partial result on error")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "expected %v, got %v", tt.sentinel, err)

			var pe *errs.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.token, pe.Token)
			assert.Equal(t, tt.argument, pe.Argument)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestMatch_EmptyTokensKeepDefaults(t *testing.T) {
	cmd := NewCommand("defaults", "").
		Arg(Long("s"), StringOr("str"), "").
		Arg(Long("i"), IntegerOr(42), "").
		Arg(Long("f"), FloatOr(0.5), "").
		Arg(Long("p"), FilePathOr("/etc/app.conf"), "").
		Arg(Long("flag"), Flag(), "").
		Arg(Long("none"), Integer(), "").
		MustBuild()

	args, err := match(cmd, parse.NewTokens(nil), discard)
	require.NoError(t, err)

	for _, a := range args.All() {
		def, _ := a.Kind().Default()
		assert.Equal(t, def, a.Value(), "%s should hold its default", a.Name())
		assert.Equal(t, uint(0), a.Count())
	}
	assert.Empty(t, args.Present())
}

func TestMatch_OccurrenceOverridesDefault(t *testing.T) {
	cmd := NewCommand("defaults", "").
		Arg(Long("i"), IntegerOr(42), "").
		MustBuild()

	args, err := match(cmd, parse.NewTokens([]string{"--i", "7"}), discard)
	require.NoError(t, err)
	i, _ := args.Get(Long("i"))
	n, _ := i.Value().AsInt()
	assert.Equal(t, int64(7), n)
}
