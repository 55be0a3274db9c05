package tinyargs

import "github.com/napalu/tinyargs/internal/util"

// ArgSpec is a declared argument. Specs belong to a built Command and never change.
type ArgSpec struct {
	Name        ArgName
	Kind        Kind
	Description string
}

// ArgState is the outcome of one parse call for one declared argument.
type ArgState struct {
	spec  *ArgSpec
	value Value
	count uint
}

func newArgState(spec *ArgSpec) *ArgState {
	return &ArgState{spec: spec, value: spec.Kind.def}
}

// Name returns the declared name.
func (a *ArgState) Name() ArgName {
	return a.spec.Name
}

// Kind returns the declared value kind.
func (a *ArgState) Kind() Kind {
	return a.spec.Kind
}

// Description returns the declared description.
func (a *ArgState) Description() string {
	return a.spec.Description
}

// Value returns the resolved value: the last parsed token, or the declared default when the
// argument did not occur.
func (a *ArgState) Value() Value {
	return a.value
}

// Count returns how many times the argument occurred.
func (a *ArgState) Count() uint {
	return a.count
}

// Present reports whether the argument occurred at least once.
func (a *ArgState) Present() bool {
	return a.count > 0
}

// occur records one occurrence; for value-bearing kinds the coerced token replaces the
// previous value.
func (a *ArgState) occur(c util.Converted) {
	a.count++
	a.value.set = true
	switch a.value.typ {
	case TypeString, TypeFilePath:
		a.value.str = c.Str
	case TypeInteger:
		a.value.num = c.Int
	case TypeFloat:
		a.value.flt = c.Flt
	}
}

// ArgList holds the states of one parse call, in declaration order.
type ArgList struct {
	args []*ArgState
}

func newArgList(specs []ArgSpec) *ArgList {
	l := &ArgList{args: make([]*ArgState, len(specs))}
	for i := range specs {
		l.args[i] = newArgState(&specs[i])
	}

	return l
}

// Get returns the state of the argument equal to name. Any alias works: Short('h') finds an
// argument declared as Both('h', "help").
func (l *ArgList) Get(name ArgName) (*ArgState, bool) {
	for _, a := range l.args {
		if a.spec.Name.Equal(name) {
			return a, true
		}
	}

	return nil, false
}

// Count is a shortcut returning the occurrence count of name, 0 when undeclared.
func (l *ArgList) Count(name ArgName) uint {
	if a, ok := l.Get(name); ok {
		return a.count
	}

	return 0
}

// Len returns the number of declared arguments.
func (l *ArgList) Len() int {
	return len(l.args)
}

// IsEmpty reports whether the command declares no arguments.
func (l *ArgList) IsEmpty() bool {
	return len(l.args) == 0
}

// All returns every state in declaration order.
func (l *ArgList) All() []*ArgState {
	out := make([]*ArgState, len(l.args))
	copy(out, l.args)

	return out
}

// Present returns the states of the arguments that occurred, in declaration order.
func (l *ArgList) Present() []*ArgState {
	var out []*ArgState
	for _, a := range l.args {
		if a.count > 0 {
			out = append(out, a)
		}
	}

	return out
}
