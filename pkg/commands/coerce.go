package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// Coerce converts tokens into one Value per param of shape.
//
// A shape without optionals needs exactly len(shape) tokens. A shape with
// optionals takes either every param or only the required ones; supplying
// some of the optionals is an arity mismatch.
func Coerce(tokens []Token, shape Shape) (Args, error) {
	if !arityMatches(len(tokens), shape) {
		return nil, &CoercionError{
			Kind:     ArityMismatch,
			Shape:    shape,
			Received: tokens,
			Position: -1,
		}
	}

	args := make(Args, 0, len(shape))
	for i, param := range shape {
		if i >= len(tokens) {
			// arityMatches guarantees everything past here is optional.
			args = append(args, absentValue(param.Type))
			continue
		}
		v, err := coerceOne(tokens[i], param)
		if err != nil {
			err.Shape = shape
			err.Position = i
			return nil, err
		}
		v.Optional = param.Optional
		args = append(args, v)
	}
	return args, nil
}

func arityMatches(n int, shape Shape) bool {
	if !shape.HasOptionals() {
		return n == len(shape)
	}
	return n == len(shape) || n == shape.Required()
}

func coerceOne(tok Token, param Param) (Value, *CoercionError) {
	got := classifyToken(tok)
	if !accepts(param.Type, got) {
		return Value{}, mismatch(tok, nil)
	}

	switch param.Type {
	case TypeBoolean:
		return boolValue(strings.EqualFold(tok.Text, "true")), nil

	case TypeInteger:
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			return Value{}, mismatch(tok, fmt.Errorf("%s does not fit an Int", tok.Text))
		}
		if c, ok := param.Clamp.(*DigitClamp); ok && c != nil {
			if n, err = c.applyInt(n); err != nil {
				return Value{}, violation(tok, err)
			}
		}
		return intValue(n), nil

	case TypeDouble:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Value{}, mismatch(tok, fmt.Errorf("%s is not a valid Double", tok.Text))
		}
		if c, ok := param.Clamp.(*DigitClamp); ok && c != nil {
			if f, err = c.applyFloat(f); err != nil {
				return Value{}, violation(tok, err)
			}
		}
		return doubleValue(f), nil
	}

	s := tok.Text
	if c, ok := param.Clamp.(*StringClamp); ok && c != nil {
		var err error
		if s, err = c.apply(s); err != nil {
			return Value{}, violation(tok, err)
		}
	}
	return stringValue(s), nil
}

func mismatch(tok Token, err error) *CoercionError {
	return &CoercionError{Kind: TypeMismatch, Received: []Token{tok}, Err: err}
}

func violation(tok Token, err error) *CoercionError {
	return &CoercionError{Kind: ClampViolation, Received: []Token{tok}, Err: err}
}
