package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrParse = errors.New("units: cannot parse unit string")

const defaultFactoryCacheSize = 256

type systemSet uint8

func (s systemSet) has(sys System) bool { return s&(1<<uint(sys)) != 0 }

func setOf(systems ...System) systemSet {
	var out systemSet
	for _, sys := range systems {
		out |= 1 << uint(sys)
	}
	return out
}

// preferred picks the system a parsed string resolves to when its symbols
// are valid in more than one.
func (s systemSet) preferred() System {
	for _, sys := range []System{SI, IP, Therm} {
		if s.has(sys) {
			return sys
		}
	}
	return SI
}

type symbolDef struct {
	systems systemSet
	derived bool
	exp     Exponents
}

// symbols maps every parseable symbol to its exponent vector and the systems
// it is valid in. A base symbol shared by several systems sits at the same
// exponent index in each of them.
var symbols = map[string]symbolDef{}

func init() {
	for _, sys := range []System{SI, IP, Therm} {
		for i, sym := range baseSymbols[sys] {
			def := symbols[sym]
			def.systems |= setOf(sys)
			def.exp = dim(i)
			symbols[sym] = def
		}
	}
	symbols["person"] = symbols["people"]
	symbols["J"] = symbolDef{systems: setOf(SI), derived: true, exp: SIExpnt{Kg: 1, M: 2, S: -2}.Exponents()}
	symbols["W"] = symbolDef{systems: setOf(SI), derived: true, exp: SIExpnt{Kg: 1, M: 2, S: -3}.Exponents()}
	symbols["N"] = symbolDef{systems: setOf(SI), derived: true, exp: SIExpnt{Kg: 1, M: 1, S: -2}.Exponents()}
	symbols["Pa"] = symbolDef{systems: setOf(SI), derived: true, exp: SIExpnt{Kg: 1, M: -1, S: -2}.Exponents()}
	symbols["lm"] = symbolDef{systems: setOf(SI, IP, Therm), derived: true, exp: SIExpnt{Cd: 1, Sr: 1}.Exponents()}
}

// Factory parses unit strings such as "m^3/s" or "therm/yr" and caches the
// results.
type Factory struct {
	cache *lru.Cache[string, Unit]
}

// NewFactory returns a factory caching up to size parsed strings.
func NewFactory(size int) (*Factory, error) {
	if size <= 0 {
		size = defaultFactoryCacheSize
	}
	cache, err := lru.New[string, Unit](size)
	if err != nil {
		return nil, fmt.Errorf("units: create cache: %w", err)
	}
	return &Factory{cache: cache}, nil
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// Parse uses a process-wide factory.
func Parse(s string) (Unit, error) {
	defaultFactoryOnce.Do(func() {
		f, err := NewFactory(defaultFactoryCacheSize)
		if err != nil {
			panic(err)
		}
		defaultFactory = f
	})
	return defaultFactory.Parse(s)
}

// MustParse panics when s cannot be parsed. Intended for static unit strings.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Parse converts s into a Unit. The grammar is a "*"-joined numerator,
// optionally followed by "/" and a "*"-joined denominator; each term is a
// symbol with an optional integer power ("ft^3"). "1" stands for an empty
// numerator. Strings using derived symbols keep s as their pretty string.
func (f *Factory) Parse(s string) (Unit, error) {
	key := strings.TrimSpace(s)
	if u, ok := f.cache.Get(key); ok {
		return u, nil
	}
	u, err := parse(key)
	if err != nil {
		return Unit{}, err
	}
	f.cache.Add(key, u)
	return u, nil
}

// Len reports how many parsed strings are cached.
func (f *Factory) Len() int {
	return f.cache.Len()
}

func parse(s string) (Unit, error) {
	if s == "" {
		return NewUnit(SI, Exponents{}, 0, ""), nil
	}
	num, den, found := strings.Cut(s, "/")
	if found && strings.Contains(den, "/") {
		return Unit{}, fmt.Errorf("%w: %q has more than one '/'", ErrParse, s)
	}
	var exp Exponents
	candidates := setOf(SI, IP, Therm)
	derived := false
	apply := func(part string, sign int) error {
		for _, raw := range strings.Split(part, "*") {
			t := strings.TrimSpace(raw)
			if t == "" || (t == "1" && sign > 0) {
				continue
			}
			sym, power := t, 1
			if base, p, ok := strings.Cut(t, "^"); ok {
				n, err := strconv.Atoi(p)
				if err != nil {
					return fmt.Errorf("%w: bad power in %q", ErrParse, t)
				}
				sym, power = base, n
			}
			def, ok := symbols[sym]
			if !ok {
				return fmt.Errorf("%w: unknown symbol %q", ErrParse, sym)
			}
			if candidates&def.systems == 0 {
				return fmt.Errorf("%w: %q mixes unit systems", ErrSystemMismatch, s)
			}
			candidates &= def.systems
			derived = derived || def.derived
			for i, e := range def.exp {
				exp[i] += sign * power * e
			}
		}
		return nil
	}
	if err := apply(num, 1); err != nil {
		return Unit{}, err
	}
	if found {
		if err := apply(den, -1); err != nil {
			return Unit{}, err
		}
	}
	u := NewUnit(candidates.preferred(), exp, 0, "")
	if derived {
		u.pretty = s
	}
	return u, nil
}
