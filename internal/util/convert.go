package util

import (
	"strconv"

	"github.com/napalu/tinyargs/types"
)

// Converted holds the typed interpretation of a raw token. Only the field matching the
// requested type is meaningful.
type Converted struct {
	Str string
	Int int64
	Flt float64
}

// ConvertString coerces raw to typ. It reports false when a numeric type cannot be parsed;
// String and FilePath tokens are taken verbatim and never fail.
func ConvertString(raw string, typ types.ValueType) (Converted, bool) {
	switch typ {
	case types.String, types.FilePath:
		return Converted{Str: raw}, true
	case types.Integer:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Converted{}, false
		}
		return Converted{Int: n}, true
	case types.Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Converted{}, false
		}
		return Converted{Flt: f}, true
	}

	return Converted{}, false
}
