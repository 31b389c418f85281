package commands

import (
	"fmt"
	"strconv"
)

// Value is one coerced argument. Values for optional params are either
// present or absent; values for required params are always present.
type Value struct {
	Type     ArgumentType
	Optional bool
	Present  bool

	b bool
	i int
	f float64
	s string
}

func boolValue(v bool) Value           { return Value{Type: TypeBoolean, Present: true, b: v} }
func intValue(v int) Value             { return Value{Type: TypeInteger, Present: true, i: v} }
func doubleValue(v float64) Value      { return Value{Type: TypeDouble, Present: true, f: v} }
func stringValue(v string) Value       { return Value{Type: TypeString, Present: true, s: v} }
func absentValue(t ArgumentType) Value { return Value{Type: t, Optional: true} }

func (v Value) Bool() bool      { return v.b }
func (v Value) Int() int        { return v.i }
func (v Value) Double() float64 { return v.f }
func (v Value) Text() string    { return v.s }

// Interface returns the underlying Go value, or nil when absent.
func (v Value) Interface() any {
	if !v.Present {
		return nil
	}
	switch v.Type {
	case TypeBoolean:
		return v.b
	case TypeInteger:
		return v.i
	case TypeDouble:
		return v.f
	}
	return v.s
}

func (v Value) String() string {
	var inner string
	switch {
	case !v.Present:
		return "Optional.empty"
	case v.Type == TypeBoolean:
		inner = strconv.FormatBool(v.b)
	case v.Type == TypeInteger:
		inner = strconv.Itoa(v.i)
	case v.Type == TypeDouble:
		inner = strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		inner = v.s
	}
	if v.Optional {
		return fmt.Sprintf("Optional[%s]", inner)
	}
	return inner
}

// Args is the ordered argument list handed to a handler, one Value per Param.
type Args []Value

func (a Args) at(i int) Value {
	if i < 0 || i >= len(a) {
		return Value{}
	}
	return a[i]
}

// Value returns the argument at i, or an absent Value when i is out of range.
func (a Args) Value(i int) Value { return a.at(i) }

func (a Args) Bool(i int) bool      { return a.at(i).b }
func (a Args) Int(i int) int        { return a.at(i).i }
func (a Args) Double(i int) float64 { return a.at(i).f }
func (a Args) Str(i int) string     { return a.at(i).s }

// Present reports whether the argument at i was supplied.
func (a Args) Present(i int) bool { return a.at(i).Present }

func (a Args) OptBool(i int) (bool, bool) {
	v := a.at(i)
	return v.b, v.Present
}

func (a Args) OptInt(i int) (int, bool) {
	v := a.at(i)
	return v.i, v.Present
}

func (a Args) OptDouble(i int) (float64, bool) {
	v := a.at(i)
	return v.f, v.Present
}

func (a Args) OptString(i int) (string, bool) {
	v := a.at(i)
	return v.s, v.Present
}
