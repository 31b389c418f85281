package commands

import (
	"fmt"
	"strings"
)

// Param is one positional parameter of a handler.
type Param struct {
	Type     ArgumentType
	Optional bool
	Clamp    Clamp
}

// Shape is the ordered parameter list of a handler. Optional params must
// come after every required one; this is not checked.
type Shape []Param

func BoolArg() Param   { return Param{Type: TypeBoolean} }
func IntArg() Param    { return Param{Type: TypeInteger} }
func DoubleArg() Param { return Param{Type: TypeDouble} }
func StringArg() Param { return Param{Type: TypeString} }

// Opt marks p as optional.
func Opt(p Param) Param {
	p.Optional = true
	return p
}

// WithClamp attaches c to p.
func (p Param) WithClamp(c Clamp) Param {
	p.Clamp = c
	return p
}

func (p Param) String() string {
	if p.Optional {
		return "Optional<" + p.Type.String() + ">"
	}
	return p.Type.String()
}

// Required counts the non-optional params.
func (s Shape) Required() int {
	n := 0
	for _, p := range s {
		if !p.Optional {
			n++
		}
	}
	return n
}

func (s Shape) HasOptionals() bool {
	return s.Required() != len(s)
}

// Usage renders the shape as "Int, Optional<Int>.", the form ParseShape reads.
func (s Shape) Usage() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ") + "."
}

// ParseShape reads a usage string back into a shape. Clamps are not part of
// the usage form and come back nil.
func ParseShape(usage string) (Shape, error) {
	usage = strings.TrimSuffix(strings.TrimSpace(usage), ".")
	if usage == "" {
		return Shape{}, nil
	}

	var shape Shape
	for _, part := range strings.Split(usage, ",") {
		part = strings.TrimSpace(part)
		optional := false
		if inner, ok := strings.CutPrefix(part, "Optional<"); ok {
			part, ok = strings.CutSuffix(inner, ">")
			if !ok {
				return nil, fmt.Errorf("unterminated optional %q", inner)
			}
			optional = true
		}
		t, ok := parseArgumentType(part)
		if !ok {
			return nil, fmt.Errorf("unknown argument type %q", part)
		}
		shape = append(shape, Param{Type: t, Optional: optional})
	}
	return shape, nil
}
