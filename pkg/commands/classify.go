package commands

import (
	"strings"
	"unicode"
)

// ArgumentType is the primitive kind of a token or a declared parameter.
type ArgumentType int

const (
	TypeString ArgumentType = iota
	TypeBoolean
	TypeInteger
	TypeDouble
)

var argumentTypeNames = map[ArgumentType]string{
	TypeBoolean: "Boolean",
	TypeInteger: "Int",
	TypeDouble:  "Double",
	TypeString:  "String",
}

func (t ArgumentType) String() string {
	if name, ok := argumentTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func parseArgumentType(name string) (ArgumentType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool":
		return TypeBoolean, true
	case "int", "integer":
		return TypeInteger, true
	case "double", "float":
		return TypeDouble, true
	case "string":
		return TypeString, true
	}
	return TypeString, false
}

// Classify reports the type a bare token reads as. Booleans win over numbers,
// and integer-looking tokens are Int even though they also satisfy IsDouble.
func Classify(token string) ArgumentType {
	switch {
	case IsBoolean(token):
		return TypeBoolean
	case IsInteger(token):
		return TypeInteger
	case IsDouble(token):
		return TypeDouble
	}
	return TypeString
}

func classifyToken(tok Token) ArgumentType {
	if tok.Literal {
		return TypeString
	}
	return Classify(tok.Text)
}

func IsBoolean(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsDouble is deliberately loose: dots are unrestricted and a single leading
// minus is allowed, so "1.2.3", "." and "-" all pass. Conversion catches them.
func IsDouble(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '.':
			continue
		case r == '-':
			if i != 0 {
				return false
			}
		case !unicode.IsDigit(r):
			return false
		}
	}
	return true
}

// accepts reports whether a token classified as got can fill a parameter
// declared as want. Integers widen to Double; String takes anything.
func accepts(want, got ArgumentType) bool {
	switch want {
	case TypeString:
		return true
	case TypeDouble:
		return got == TypeDouble || got == TypeInteger
	default:
		return want == got
	}
}
