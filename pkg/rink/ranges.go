package rink

import (
	"math"
	"strconv"
	"strings"
)

// Range is a closed interval [Lower, Upper] on one axis.
type Range struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Span returns Upper - Lower.
func (r Range) Span() float64 { return r.Upper - r.Lower }

// Axis is one coordinate axis of the rink with its domain and the named
// presets it understands.
type Axis struct {
	Name    string
	Min     float64
	Max     float64
	Presets map[string]float64 // preset name -> lower bound; upper is Max
}

// Full returns the whole domain of the axis.
func (a Axis) Full() Range { return Range{a.Min, a.Max} }

var (
	// XAxis runs along the length of the rink.
	XAxis = Axis{
		Name: "x",
		Min:  -HalfLength,
		Max:  HalfLength,
		Presets: map[string]float64{
			"half":  0,
			"ozone": BlueLineX,
		},
	}

	// YAxis runs across the width of the rink.
	YAxis = Axis{
		Name:    "y",
		Min:     -HalfWidth,
		Max:     HalfWidth,
		Presets: map[string]float64{"half": 0},
	}
)

type specKind int

const (
	specAbsent specKind = iota
	specPreset
	specNumber
	specPair
)

// RangeSpec describes the requested display range of one axis. The zero
// value means "not given". Build one with [Preset], [From] or [Between],
// or parse user text with [ParseRangeSpec].
type RangeSpec struct {
	kind   specKind
	preset string
	values []float64
}

// Preset names a preset range such as "half" or "ozone".
func Preset(name string) RangeSpec {
	return RangeSpec{kind: specPreset, preset: name}
}

// From sets only the lower bound; the upper bound is the axis maximum.
func From(lower float64) RangeSpec {
	return RangeSpec{kind: specNumber, values: []float64{lower}}
}

// Between lists explicit bounds. Only the first two values are used; a
// single value behaves like [From] and no values at all like the zero
// RangeSpec. Values may be given in either order.
func Between(values ...float64) RangeSpec {
	return RangeSpec{kind: specPair, values: append([]float64(nil), values...)}
}

// IsZero reports whether no range was given.
func (s RangeSpec) IsZero() bool { return s.kind == specAbsent }

// String formats the range in the form accepted by ParseRangeSpec.
func (s RangeSpec) String() string {
	switch s.kind {
	case specPreset:
		return s.preset
	case specNumber, specPair:
		parts := make([]string, len(s.values))
		for i, v := range s.values {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// ParseRangeSpec reads a range from text: "" (absent), a preset name, a
// single number ("25") or a comma-separated list ("10,60"). Text that is
// neither a number nor a list of numbers is kept as a preset name; the
// axis decides later whether it knows that preset.
func ParseRangeSpec(s string) RangeSpec {
	s = strings.TrimSpace(s)
	if s == "" {
		return RangeSpec{}
	}
	if !strings.Contains(s, ",") {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return From(v)
		}
		return Preset(strings.ToLower(s))
	}
	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Preset(s)
		}
		values = append(values, v)
	}
	return Between(values...)
}

// Normalize resolves spec against the axis. It never fails: anything it
// cannot interpret yields the full axis, and the result always satisfies
// Min <= Lower < Upper <= Max.
func (a Axis) Normalize(spec RangeSpec) Range {
	r, ok := a.resolve(spec)
	if !ok {
		return a.Full()
	}
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	r.Lower = math.Max(a.Min, math.Min(a.Max, r.Lower))
	r.Upper = math.Max(a.Min, math.Min(a.Max, r.Upper))
	if r.Lower >= a.Max || r.Lower >= r.Upper {
		return a.Full()
	}
	return r
}

func (a Axis) resolve(spec RangeSpec) (Range, bool) {
	var r Range
	switch spec.kind {
	case specPreset:
		lower, ok := a.Presets[spec.preset]
		if !ok {
			return r, false
		}
		r = Range{lower, a.Max}
	case specNumber:
		if len(spec.values) == 0 {
			return r, false
		}
		r = Range{spec.values[0], a.Max}
	case specPair:
		if len(spec.values) == 0 {
			return r, false
		}
		bounds := append(append([]float64(nil), spec.values...), a.Max)
		r = Range{bounds[0], bounds[1]}
	default:
		return r, false
	}
	if math.IsNaN(r.Lower) || math.IsNaN(r.Upper) {
		return r, false
	}
	return r, true
}
