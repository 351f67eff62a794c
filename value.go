package vellum

import "strings"

// Value is a sealed interface for script-level call arguments. Only package
// types implement it via isValue(). Library implementations inspect argument
// shape with a type switch; the variants cover what library calls pass today
// (strings, 2-tuples, lists, and the unit result).
type Value interface {
	isValue()

	// Text renders the value as a string. Libraries use it to coerce
	// positional arguments that are required to be strings.
	Text() string
}

// Str holds a string value.
type Str string

func (Str) isValue() {}

// Text implements Value.
func (s Str) Text() string { return string(s) }

// Pair is a 2-tuple. Libraries that accept header lists read pairs as
// (key, value) entries.
type Pair struct {
	First  Value
	Second Value
}

func (Pair) isValue() {}

// Text implements Value.
func (p Pair) Text() string {
	return "(" + text(p.First) + ", " + text(p.Second) + ")"
}

// List holds an ordered sequence of values.
type List []Value

func (List) isValue() {}

// Text implements Value.
func (l List) Text() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = text(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Unit is the void result of a call that returns nothing.
type Unit struct{}

func (Unit) isValue() {}

// Text implements Value.
func (Unit) Text() string { return "" }

// text renders v, treating nil as the empty string.
func text(v Value) string {
	if v == nil {
		return ""
	}
	return v.Text()
}
