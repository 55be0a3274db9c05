package tinyargs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/tinyargs/errs"
)

// ArgName identifies an argument by a short form (-h), a long form (--help) or both.
// The zero rune means "no short form", the empty string "no long form".
type ArgName struct {
	short rune
	long  string
}

// Short names an argument entered as -c.
func Short(c rune) ArgName {
	return ArgName{short: c}
}

// Long names an argument entered as --name.
func Long(name string) ArgName {
	return ArgName{long: name}
}

// Both names an argument reachable through -c and --name.
func Both(c rune, name string) ArgName {
	return ArgName{short: c, long: name}
}

// ShortName returns the short form, if any.
func (n ArgName) ShortName() (rune, bool) {
	return n.short, n.short != 0
}

// LongName returns the long form, if any.
func (n ArgName) LongName() (string, bool) {
	return n.long, n.long != ""
}

// Equal compares component-wise: two names are equal when they share a short form or a
// long form. Short('h') equals Both('h', "help") whatever the long form, Long("help")
// equals Both(x, "help") whatever the short form, and a Short never equals a Long.
func (n ArgName) Equal(other ArgName) bool {
	if n.short != 0 && n.short == other.short {
		return true
	}

	return n.long != "" && n.long == other.long
}

// String renders the name the way it is typed: "-h", "--help" or "-h, --help".
func (n ArgName) String() string {
	switch {
	case n.short != 0 && n.long != "":
		return "-" + string(n.short) + ", --" + n.long
	case n.short != 0:
		return "-" + string(n.short)
	case n.long != "":
		return "--" + n.long
	}

	return ""
}

// validate reports construction misuse: an empty name, '-' or a non printable rune as
// short form, or a long form starting with '-' or containing spaces.
func (n ArgName) validate() error {
	if n.short == 0 && n.long == "" {
		return errs.ErrInvalidName.WithArgs(n.String())
	}
	if n.short != 0 && (n.short == '-' || !unicode.IsPrint(n.short) || unicode.IsSpace(n.short)) {
		return errs.ErrInvalidShortName.WithArgs(string(n.short))
	}
	if n.long != "" && (strings.HasPrefix(n.long, "-") || strings.IndexFunc(n.long, unicode.IsSpace) >= 0) {
		return errs.ErrInvalidLongName.WithArgs(n.long)
	}

	return nil
}

// ParseName reads a name written the way it is typed on the command line:
// "-h", "--help", "-h, --help" or "-h --help".
func ParseName(literal string) (ArgName, error) {
	fields := strings.FieldsFunc(literal, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 || len(fields) > 2 {
		return ArgName{}, errs.ErrInvalidName.WithArgs(literal)
	}

	var name ArgName
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "--"):
			if name.long != "" || len(f) == 2 {
				return ArgName{}, errs.ErrInvalidName.WithArgs(literal)
			}
			name.long = f[2:]
		case strings.HasPrefix(f, "-"):
			r, size := utf8.DecodeRuneInString(f[1:])
			if name.short != 0 || size == 0 || 1+size != len(f) {
				return ArgName{}, errs.ErrInvalidName.WithArgs(literal)
			}
			name.short = r
		default:
			return ArgName{}, errs.ErrInvalidName.WithArgs(literal)
		}
	}

	if err := name.validate(); err != nil {
		return ArgName{}, err
	}

	return name, nil
}

// MustName is ParseName for literals known at compile time; it panics on malformed input.
func MustName(literal string) ArgName {
	n, err := ParseName(literal)
	if err != nil {
		panic(err)
	}

	return n
}
