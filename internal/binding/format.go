package binding

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`^-?([[:digit:]]*)(\.)?([[:digit:]]+)([EDed][-+]?[[:digit:]]+)?$`)

// numberFormat remembers how the user last typed a number so values read back
// from the model keep the same notation and number of digits.
type numberFormat struct {
	precision  int
	hasPrecise bool
	scientific bool
}

// learn updates the format from user text. Text that is not a plain decimal
// or scientific number clears it.
func (f *numberFormat) learn(text string) {
	m := numberPattern.FindStringSubmatch(text)
	if m == nil {
		*f = numberFormat{}
		return
	}
	prefix, dot, postfix, exp := m[1], m[2], m[3], m[4]
	f.scientific = exp != ""
	f.hasPrecise = true
	switch {
	case f.scientific:
		f.precision = len(prefix) + len(postfix) - 1
	case dot != "":
		f.precision = len(postfix)
	default:
		f.precision = 0
	}
}

func (f numberFormat) format(v float64) string {
	if !f.hasPrecise {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if f.scientific {
		return strconv.FormatFloat(v, 'e', f.precision, 64)
	}
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}
