package random

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/viant/toolbox"
)

// Uniform sources. Override in tests for determinism.
var (
	// Float64Func returns a uniform sample in [0, 1).
	Float64Func = rand.Float64
	// IntNFunc returns a uniform int in [0, n).
	IntNFunc = rand.IntN
)

// alphabet is the fixed 62-character draw set: digits, lowercase, uppercase.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Number returns a random number for up to three optional arguments
// (lower, upper, floating), resolved permissively:
//
//   - a non-boolean third argument discards both the third and the second
//   - otherwise a boolean second (or, failing that, first) argument is taken
//     as the floating flag and removed from the bounds
//   - with no bounds the range is [0, 1]; with one bound it is [0, bound]
//   - inverted bounds are swapped
//
// When the floating flag is set, or either bound is non-integral, the result
// is a float in [lower, upper]; otherwise it is a uniformly distributed
// integer in the inclusive range, returned as a float64.  Number never fails;
// unusable arguments are coerced or dropped per the rules above.
func Number(args ...interface{}) float64 {
	lower, upper, floating := normalize(args)
	if floating || lower != math.Trunc(lower) || upper != math.Trunc(upper) {
		sample := Float64Func()
		value := lower + sample*(upper-lower+truncationEpsilon(sample))
		return math.Min(value, upper)
	}
	lo, hi := int(lower), int(upper)
	return float64(lo + IntNFunc(hi-lo+1))
}

// normalize resolves the optional (lower, upper, floating) argument forms
// into concrete bounds and a floating flag.  nil and missing arguments are
// both treated as unset.
func normalize(args []interface{}) (lower, upper float64, floating bool) {
	var loArg, hiArg, floatArg interface{}
	if len(args) > 0 {
		loArg = args[0]
	}
	if len(args) > 1 {
		hiArg = args[1]
	}
	if len(args) > 2 {
		floatArg = args[2]
	}

	if floatArg != nil {
		if flag, ok := floatArg.(bool); ok {
			floating = flag
		} else {
			floatArg = nil
			hiArg = nil
		}
	}
	if floatArg == nil {
		if flag, ok := hiArg.(bool); ok {
			floating = flag
			hiArg = nil
		} else if flag, ok := loArg.(bool); ok {
			floating = flag
			loArg = nil
		}
	}

	switch {
	case loArg == nil && hiArg == nil:
		lower, upper = 0, 1
	case hiArg == nil:
		lower, upper = 0, toolbox.AsFloat(loArg)
	case loArg == nil:
		lower, upper = 0, toolbox.AsFloat(hiArg)
	default:
		lower, upper = toolbox.AsFloat(loArg), toolbox.AsFloat(hiArg)
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	return lower, upper, floating
}

// truncationEpsilon derives a small epsilon from the decimal-digit count of
// the sample so that scaling into [lower, upper] does not systematically
// truncate away the upper bound.
func truncationEpsilon(sample float64) float64 {
	digits := len(strconv.FormatFloat(sample, 'f', -1, 64)) - 1
	return math.Pow(10, -float64(digits))
}

// String returns a string of length independent uniform draws from the
// 62-character alphanumeric alphabet.  With lower set the result is
// lowercased after assembly, which keeps the historical draw distribution
// (uppercase draws collapse onto lowercase, doubling letter frequency
// relative to digits).  A non-positive length yields the empty string.
func String(length int, lower bool) string {
	if length <= 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[IntNFunc(len(alphabet))]
	}
	if lower {
		return strings.ToLower(string(out))
	}
	return string(out)
}

// Item picks a uniformly random element of a sequence, or a random
// single-character substring of a string.  Empty or non-indexable input
// yields nil.
func Item(v interface{}) interface{} {
	switch indexable := v.(type) {
	case []interface{}:
		if len(indexable) == 0 {
			return nil
		}
		return indexable[IntNFunc(len(indexable))]
	case string:
		if indexable == "" {
			return nil
		}
		return string(indexable[IntNFunc(len(indexable))])
	}
	return nil
}
