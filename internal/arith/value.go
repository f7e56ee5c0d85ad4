package arith

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies the scalar type an operation parameter accepts.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindChar
	KindOperator
)

// String returns the kind's prompt-facing name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindChar:
		return "character"
	case KindOperator:
		return "operator"
	}
	return "unknown"
}

// Value is one parsed operation input. The field matching Kind is the
// meaningful one; the rest stay zero.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Char  rune
	Op    string
}

// ParseValue converts raw text into a typed Value. This is the only
// boundary between untrusted text and the typed operations; everything
// past it deals in validated scalars.
func ParseValue(k Kind, raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	switch k {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not an integer", raw)
		}
		return Value{Kind: k, Int: n}, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not a number", raw)
		}
		return Value{Kind: k, Float: f}, nil
	case KindChar:
		if raw == "" {
			return Value{}, errors.New("want a single character")
		}
		r, size := utf8.DecodeRuneInString(raw)
		if size != len(raw) {
			return Value{}, fmt.Errorf("want a single character, got %q", raw)
		}
		return Value{Kind: k, Char: r}, nil
	case KindOperator:
		switch raw {
		case "+", "-", "*", "/":
			return Value{Kind: k, Op: raw}, nil
		}
		return Value{}, errors.New("operator must be one of + - * /")
	}
	return Value{}, fmt.Errorf("unknown kind %d", k)
}
