package types

// ValueType is the closed set of value kinds an argument may declare.
type ValueType int

const (
	Empty    ValueType = iota // Empty denotes an unset value slot
	String                    // String stores the token verbatim
	Integer                   // Integer parses the token as a base 10 int64
	Float                     // Float parses the token as a float64
	FilePath                  // FilePath stores the token as an opaque path, the filesystem is never consulted
	Flag                      // Flag carries no value, only its occurrence count
)

// String returns the string representation of a ValueType
func (v ValueType) String() string {
	switch v {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case FilePath:
		return "path"
	case Flag:
		return "flag"
	case Empty:
		fallthrough
	default:
		return "empty"
	}
}

// MessageKey returns the translation key naming the type in messages.
func (v ValueType) MessageKey() string {
	switch v {
	case String:
		return ValueStringKey
	case Integer:
		return ValueIntegerKey
	case Float:
		return ValueFloatKey
	case FilePath:
		return ValuePathKey
	case Flag:
		return ValueFlagKey
	}

	return v.String()
}

// TakesValue reports whether an argument of this type consumes the following token.
func (v ValueType) TakesValue() bool {
	return v != Flag && v != Empty
}

// IsNumeric reports whether tokens must be parsed as numbers.
func (v ValueType) IsNumeric() bool {
	return v == Integer || v == Float
}
