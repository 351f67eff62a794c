package vellum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Text(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hello", Str("hello").Text())
	assert.Equal(t, "", Unit{}.Text())
	assert.Equal(t, "(Accept, text/plain)", Pair{First: Str("Accept"), Second: Str("text/plain")}.Text())
	assert.Equal(t, "[a, b]", List{Str("a"), Str("b")}.Text())
}

func TestValue_Text_NilMembers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(, )", Pair{}.Text())
	assert.Equal(t, "[]", List{}.Text())
	assert.Equal(t, "[, x]", List{nil, Str("x")}.Text())
}
