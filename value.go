package tinyargs

import (
	"strconv"

	"github.com/napalu/tinyargs/types"
)

// ValueType re-exports the closed set of value kinds.
type ValueType = types.ValueType

const (
	TypeString   = types.String
	TypeInteger  = types.Integer
	TypeFloat    = types.Float
	TypeFilePath = types.FilePath
	TypeFlag     = types.Flag
)

// Value is a typed value slot. A Value is set when it holds a default or a parsed token;
// for flags it is set once the flag occurred.
type Value struct {
	typ ValueType
	set bool
	str string
	num int64
	flt float64
}

// Type returns the declared type of the slot.
func (v Value) Type() ValueType {
	return v.typ
}

// IsSet reports whether the slot holds a value.
func (v Value) IsSet() bool {
	return v.set
}

func (v Value) AsString() (string, bool) {
	return v.str, v.set && v.typ == TypeString
}

func (v Value) AsInt() (int64, bool) {
	return v.num, v.set && v.typ == TypeInteger
}

func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.set && v.typ == TypeFloat
}

// AsPath returns the path exactly as given; it is neither cleaned nor checked on disk.
func (v Value) AsPath() (string, bool) {
	return v.str, v.set && v.typ == TypeFilePath
}

// String formats the held value, or returns "" when unset.
func (v Value) String() string {
	if !v.set {
		return ""
	}

	switch v.typ {
	case TypeString, TypeFilePath:
		return v.str
	case TypeInteger:
		return strconv.FormatInt(v.num, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case TypeFlag:
		return "true"
	}

	return ""
}

// Kind is the declared value kind of an argument together with its optional default.
type Kind struct {
	def Value
}

// String declares a string argument without default.
func String() Kind {
	return Kind{def: Value{typ: TypeString}}
}

// StringOr declares a string argument defaulting to def.
func StringOr(def string) Kind {
	return Kind{def: Value{typ: TypeString, set: true, str: def}}
}

// Integer declares an int64 argument without default.
func Integer() Kind {
	return Kind{def: Value{typ: TypeInteger}}
}

// IntegerOr declares an int64 argument defaulting to def.
func IntegerOr(def int64) Kind {
	return Kind{def: Value{typ: TypeInteger, set: true, num: def}}
}

// Float declares a float64 argument without default.
func Float() Kind {
	return Kind{def: Value{typ: TypeFloat}}
}

// FloatOr declares a float64 argument defaulting to def.
func FloatOr(def float64) Kind {
	return Kind{def: Value{typ: TypeFloat, set: true, flt: def}}
}

// FilePath declares a path argument without default.
func FilePath() Kind {
	return Kind{def: Value{typ: TypeFilePath}}
}

// FilePathOr declares a path argument defaulting to def.
func FilePathOr(def string) Kind {
	return Kind{def: Value{typ: TypeFilePath, set: true, str: def}}
}

// Flag declares an argument that takes no value.
func Flag() Kind {
	return Kind{def: Value{typ: TypeFlag}}
}

// Type returns the declared value type.
func (k Kind) Type() ValueType {
	return k.def.typ
}

// Default returns the declared default, if any.
func (k Kind) Default() (Value, bool) {
	return k.def, k.def.set
}

// TakesValue reports whether the argument consumes the token that follows it.
func (k Kind) TakesValue() bool {
	return k.def.typ.TakesValue()
}

func (k Kind) String() string {
	return k.def.typ.String()
}
