package units

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScale = errors.New("units: unknown scale")

// Scale is a power-of-ten prefix such as kilo (k, 3).
type Scale struct {
	Abbr     string
	Name     string
	Exponent int
}

var scales = []Scale{
	{"y", "yocto", -24},
	{"z", "zepto", -21},
	{"a", "atto", -18},
	{"f", "femto", -15},
	{"p", "pico", -12},
	{"n", "nano", -9},
	{"u", "micro", -6},
	{"m", "milli", -3},
	{"c", "centi", -2},
	{"d", "deci", -1},
	{"", "one", 0},
	{"da", "deka", 1},
	{"h", "hecto", 2},
	{"k", "kilo", 3},
	{"M", "mega", 6},
	{"G", "giga", 9},
	{"T", "tera", 12},
	{"P", "peta", 15},
	{"E", "exa", 18},
	{"Z", "zetta", 21},
	{"Y", "yotta", 24},
}

var scaleAliases = map[string]string{
	"\\mu": "u",
	"μ":    "u",
}

// ScaleByAbbr looks a scale up by its abbreviation, e.g. "k".
func ScaleByAbbr(abbr string) (Scale, error) {
	if alias, ok := scaleAliases[abbr]; ok {
		abbr = alias
	}
	for _, s := range scales {
		if s.Abbr == abbr {
			return s, nil
		}
	}
	return Scale{}, fmt.Errorf("%w: %q", ErrUnknownScale, abbr)
}

// ScaleByExponent looks a scale up by its power of ten.
func ScaleByExponent(exp int) (Scale, bool) {
	i := sort.Search(len(scales), func(i int) bool { return scales[i].Exponent >= exp })
	if i < len(scales) && scales[i].Exponent == exp {
		return scales[i], true
	}
	return Scale{}, false
}

// Scales returns the known prefixes ordered by exponent.
func Scales() []Scale {
	return append([]Scale(nil), scales...)
}
