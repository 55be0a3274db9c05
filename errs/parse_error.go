package errs

import (
	"github.com/napalu/tinyargs/i18n"
	"github.com/napalu/tinyargs/types"
)

// Kind enumerates the ways a parse call can fail.
type Kind int

const (
	UnknownSubcommand Kind = iota + 1
	UnknownArgument
	MalformedLongArgument
	MalformedShortArgument
	NotAnArgument
	InvalidNumericValue
	MissingValue
)

func (k Kind) String() string {
	switch k {
	case UnknownSubcommand:
		return "UnknownSubcommand"
	case UnknownArgument:
		return "UnknownArgument"
	case MalformedLongArgument:
		return "MalformedLongArgument"
	case MalformedShortArgument:
		return "MalformedShortArgument"
	case NotAnArgument:
		return "NotAnArgument"
	case InvalidNumericValue:
		return "InvalidNumericValue"
	case MissingValue:
		return "MissingValue"
	}

	return "Unknown"
}

// Sentinel returns the declared error matching k.
func (k Kind) Sentinel() *i18n.TrError {
	switch k {
	case UnknownSubcommand:
		return ErrUnknownSubcommand
	case UnknownArgument:
		return ErrUnknownArgument
	case MalformedLongArgument:
		return ErrMalformedLongArgument
	case MalformedShortArgument:
		return ErrMalformedShortArgument
	case NotAnArgument:
		return ErrNotAnArgument
	case InvalidNumericValue:
		return ErrInvalidNumericValue
	case MissingValue:
		return ErrMissingValue
	}

	return nil
}

// ParseError is the single error type of a failed parse call.
//
// Token is the offending command-line token; for InvalidNumericValue it is the raw value
// text. Argument is the display form of the argument involved ("-n", "--num"), empty when
// the failure is not tied to an argument.
type ParseError struct {
	Kind     Kind
	Token    string
	Argument string
	Expected types.ValueType

	provider i18n.MessageProvider
}

func (e *ParseError) Error() string {
	sentinel := e.Kind.Sentinel()
	if sentinel == nil {
		return e.Token
	}

	tr := sentinel.WithProvider(e.messages())
	switch e.Kind {
	case UnknownArgument, MissingValue:
		tr = tr.WithArgs(e.Argument)
	case InvalidNumericValue:
		tr = tr.WithArgs(e.Token, e.messages().GetMessage(e.Expected.MessageKey()), e.Argument)
	default:
		tr = tr.WithArgs(e.Token)
	}

	return tr.Error()
}

// Unwrap exposes the sentinel so that errors.Is(err, errs.ErrMissingValue) holds.
func (e *ParseError) Unwrap() error {
	if s := e.Kind.Sentinel(); s != nil {
		return s
	}

	return nil
}

// Localize returns a copy whose message is rendered by p.
func (e *ParseError) Localize(p i18n.MessageProvider) *ParseError {
	c := *e
	c.provider = p

	return &c
}

func (e *ParseError) messages() i18n.MessageProvider {
	if e.provider != nil {
		return e.provider
	}

	return i18n.DefaultMessageProvider()
}

func NewUnknownSubcommand(token string) *ParseError {
	return &ParseError{Kind: UnknownSubcommand, Token: token}
}

func NewUnknownArgument(token, argument string) *ParseError {
	return &ParseError{Kind: UnknownArgument, Token: token, Argument: argument}
}

func NewMalformedLongArgument(token string) *ParseError {
	return &ParseError{Kind: MalformedLongArgument, Token: token}
}

func NewMalformedShortArgument(token string) *ParseError {
	return &ParseError{Kind: MalformedShortArgument, Token: token}
}

func NewNotAnArgument(token string) *ParseError {
	return &ParseError{Kind: NotAnArgument, Token: token}
}

func NewInvalidNumericValue(argument, raw string, expected types.ValueType) *ParseError {
	return &ParseError{Kind: InvalidNumericValue, Token: raw, Argument: argument, Expected: expected}
}

func NewMissingValue(argument string) *ParseError {
	return &ParseError{Kind: MissingValue, Argument: argument}
}
