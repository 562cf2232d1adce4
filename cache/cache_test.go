package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/cache"
)

func TestGetMiss(t *testing.T) {
	c := cache.New(4)
	_, ok := c.Get("{name}", false)
	assert.False(t, ok)
}

func TestPutThenGet(t *testing.T) {
	c := cache.New(4)
	msg := ast.Message{ast.Literal{Text: "hi"}}
	c.Put("{name}", false, msg)
	got, ok := c.Get("{name}", false)
	require.True(t, ok)
	assert.Equal(t, msg, got)
}

func TestDistinctKeyPerIgnoreTag(t *testing.T) {
	c := cache.New(4)
	plain := ast.Message{ast.Literal{Text: "plain"}}
	tagged := ast.Message{ast.Literal{Text: "tagged"}}
	c.Put("<b>x</b>", false, plain)
	c.Put("<b>x</b>", true, tagged)

	got, ok := c.Get("<b>x</b>", false)
	require.True(t, ok)
	assert.Equal(t, plain, got)

	got, ok = c.Get("<b>x</b>", true)
	require.True(t, ok)
	assert.Equal(t, tagged, got)
}

func TestCapacityZeroDisables(t *testing.T) {
	c := cache.New(0)
	assert.Nil(t, c)
	c.Put("{name}", false, ast.Message{})
	_, ok := c.Get("{name}", false)
	assert.False(t, ok)
}

func TestOverCapacityDropsSilently(t *testing.T) {
	c := cache.New(1)
	c.Put("a", false, ast.Message{ast.Literal{Text: "a"}})
	c.Put("b", false, ast.Message{ast.Literal{Text: "b"}})

	_, aOK := c.Get("a", false)
	_, bOK := c.Get("b", false)
	assert.True(t, aOK)
	assert.False(t, bOK)
}
