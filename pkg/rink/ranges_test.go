package rink

import (
	"math"
	"reflect"
	"testing"
)

func TestNormalizeX(t *testing.T) {
	tests := []struct {
		name string
		spec RangeSpec
		want Range
	}{
		{"absent", RangeSpec{}, Range{-100, 100}},
		{"preset ozone", Preset("ozone"), Range{25, 100}},
		{"preset half", Preset("half"), Range{0, 100}},
		{"unknown preset", Preset("neutral"), Range{-100, 100}},
		{"lower bound", From(50), Range{50, 100}},
		{"pair", Between(10, 60), Range{10, 60}},
		{"reversed pair", Between(60, 10), Range{10, 60}},
		{"single value pair", Between(10), Range{10, 100}},
		{"empty pair", Between(), Range{-100, 100}},
		{"extra values ignored", Between(10, 60, 90), Range{10, 60}},
		{"clamped", Between(-500, 500), Range{-100, 100}},
		{"partly clamped", Between(-150, 30), Range{-100, 30}},
		{"lower past max", From(150), Range{-100, 100}},
		{"lower at max", From(100), Range{-100, 100}},
		{"below domain", Between(-200, -150), Range{-100, 100}},
		{"empty interval", Between(40, 40), Range{-100, 100}},
		{"nan", From(math.NaN()), Range{-100, 100}},
		{"nan pair", Between(0, math.NaN()), Range{-100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XAxis.Normalize(tt.spec); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestNormalizeY(t *testing.T) {
	tests := []struct {
		name string
		spec RangeSpec
		want Range
	}{
		{"absent", RangeSpec{}, Range{-42.5, 42.5}},
		{"preset half", Preset("half"), Range{0, 42.5}},
		{"ozone is x only", Preset("ozone"), Range{-42.5, 42.5}},
		{"upper clamped to width", Between(-10, 60), Range{-10, 42.5}},
		{"lower past max", From(50), Range{-42.5, 42.5}},
		{"lower bound", From(-20), Range{-20, 42.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YAxis.Normalize(tt.spec); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestNormalizeInvariant(t *testing.T) {
	specs := []RangeSpec{
		{}, Preset("half"), Preset(""), From(-1e9), From(1e9),
		Between(1, 2), Between(2, 1), Between(-1e9, 1e9), Between(math.Inf(1)),
		Between(math.Inf(-1), math.Inf(1)),
	}
	for _, axis := range []Axis{XAxis, YAxis} {
		for _, s := range specs {
			r := axis.Normalize(s)
			if r.Lower < axis.Min || r.Upper > axis.Max || r.Lower >= r.Upper {
				t.Errorf("%s.Normalize(%v) = %v escapes [%v, %v]", axis.Name, s, r, axis.Min, axis.Max)
			}
		}
	}
}

func TestParseRangeSpec(t *testing.T) {
	tests := []struct {
		in   string
		want RangeSpec
	}{
		{"", RangeSpec{}},
		{"   ", RangeSpec{}},
		{"ozone", Preset("ozone")},
		{"OZONE", Preset("ozone")},
		{" 25 ", From(25)},
		{"-12.5", From(-12.5)},
		{"10,60", Between(10, 60)},
		{"10, 60", Between(10, 60)},
		{"10,", Between(10)},
		{"60,10,5", Between(60, 10, 5)},
		{"a,b", Preset("a,b")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseRangeSpec(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRangeSpec(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRangeSpecString(t *testing.T) {
	tests := []struct {
		spec RangeSpec
		want string
	}{
		{RangeSpec{}, ""},
		{Preset("half"), "half"},
		{From(25), "25"},
		{Between(10, 60.5), "10,60.5"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.spec.IsZero() != (tt.want == "") {
			t.Errorf("IsZero() for %q inconsistent", tt.want)
		}
	}
}

func TestBetweenCopiesValues(t *testing.T) {
	vals := []float64{10, 60}
	s := Between(vals...)
	vals[0] = 90
	if got := XAxis.Normalize(s); got != (Range{10, 60}) {
		t.Errorf("Between aliases its argument: %v", got)
	}
}
