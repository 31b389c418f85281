package commands

import (
	"fmt"
	"math"
)

// Clamp bounds a single parameter. Required clamps reject out-of-range
// input; the others truncate or saturate it.
type Clamp interface {
	isRequired() bool
}

// StringClamp bounds the length of a string parameter, in characters.
type StringClamp struct {
	Required bool
	Min      int
	Max      int
}

// DigitClamp bounds the value of an Int or Double parameter. Int parameters
// round Min and Max to the nearest integer.
type DigitClamp struct {
	Required bool
	Min      float64
	Max      float64
}

func NewStringClamp(required bool, min, max int) *StringClamp {
	return &StringClamp{Required: required, Min: min, Max: max}
}

func NewDigitClamp(required bool, min, max float64) *DigitClamp {
	return &DigitClamp{Required: required, Min: min, Max: max}
}

// DefaultStringClamp allows 0..256 characters.
func DefaultStringClamp() *StringClamp { return NewStringClamp(false, 0, 256) }

// DefaultDigitClamp allows 0..10.
func DefaultDigitClamp() *DigitClamp { return NewDigitClamp(false, 0, 10) }

func (c *StringClamp) isRequired() bool { return c.Required }
func (c *DigitClamp) isRequired() bool  { return c.Required }

func (c *StringClamp) apply(s string) (string, error) {
	runes := []rune(s)
	n := len(runes)
	if (n > c.Max || n < c.Min) && c.Required {
		if n > c.Max {
			return "", fmt.Errorf("%s: length %d exceeded the maximum of %d characters", s, n, c.Max)
		}
		return "", fmt.Errorf("%s: length %d did not meet the minimum of %d characters", s, n, c.Min)
	}
	if n > c.Max && c.Max >= 0 {
		return string(runes[:c.Max]), nil
	}
	return s, nil
}

func (c *DigitClamp) applyFloat(v float64) (float64, error) {
	if (v > c.Max || v < c.Min) && c.Required {
		return 0, rangeError(v, c.Min, c.Max)
	}
	switch {
	case v < c.Min:
		return c.Min, nil
	case v > c.Max:
		return c.Max, nil
	}
	return v, nil
}

func (c *DigitClamp) applyInt(v int) (int, error) {
	lo := intBound(c.Min, math.MinInt)
	hi := intBound(c.Max, math.MaxInt)
	if (v > hi || v < lo) && c.Required {
		return 0, rangeError(v, lo, hi)
	}
	switch {
	case v < lo:
		return lo, nil
	case v > hi:
		return hi, nil
	}
	return v, nil
}

// intBound rounds f and saturates it to the int range. NaN leaves the side
// unbounded.
func intBound(f float64, unbounded int) int {
	switch r := math.Round(f); {
	case math.IsNaN(r):
		return unbounded
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	default:
		return int(r)
	}
}

func rangeError(v, lo, hi any) error {
	return fmt.Errorf("%v is outside the allowed range [%v, %v]", v, lo, hi)
}
