package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  ArgumentType
	}{
		{"true", TypeBoolean},
		{"FALSE", TypeBoolean},
		{"5", TypeInteger},
		{"-5", TypeInteger},
		{"007", TypeInteger},
		{"1.5", TypeDouble},
		{"-1.5", TypeDouble},
		{"1.2.3", TypeDouble},
		{".", TypeDouble},
		{"-", TypeDouble},
		{"1-2", TypeString},
		{"--1", TypeString},
		{"1e5", TypeString},
		{"abc", TypeString},
		{"", TypeString},
		{"yes", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.token))
		})
	}
}

func TestIsInteger_RejectsBareMinus(t *testing.T) {
	assert.False(t, IsInteger("-"))
	assert.False(t, IsInteger(""))
	assert.False(t, IsInteger("1.0"))
	assert.True(t, IsInteger("-0"))
}

func TestIsDouble_PermissiveRule(t *testing.T) {
	assert.True(t, IsDouble("5"), "digit-only strings pass the double rule")
	assert.True(t, IsDouble("..1.."))
	assert.False(t, IsDouble("-1-"))
	assert.False(t, IsDouble("1,5"))
	assert.False(t, IsDouble(""))
}

func TestClassifyToken_LiteralIsAlwaysString(t *testing.T) {
	assert.Equal(t, TypeString, classifyToken(Token{Text: "42", Literal: true}))
	assert.Equal(t, TypeInteger, classifyToken(Token{Text: "42"}))
}

func TestAccepts(t *testing.T) {
	assert.True(t, accepts(TypeDouble, TypeInteger))
	assert.False(t, accepts(TypeInteger, TypeDouble))
	assert.True(t, accepts(TypeString, TypeBoolean))
	assert.False(t, accepts(TypeBoolean, TypeString))
}

func TestArgumentTypeString(t *testing.T) {
	assert.Equal(t, "Int", TypeInteger.String())
	assert.Equal(t, "Boolean", TypeBoolean.String())
	assert.Equal(t, "Unknown", ArgumentType(99).String())
}
