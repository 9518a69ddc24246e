package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

type codedError struct {
	code string
}

func (e *codedError) Error() string {
	return e.code
}

func TestAs(t *testing.T) {
	original := &codedError{code: "bad-pointer"}
	wrapped := Wrap(original, "wrapped")

	var target *codedError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "bad-pointer", target.code)
}

func TestCombineErrors(t *testing.T) {
	assert.Nil(t, CombineErrors(nil, nil))

	err := CombineErrors(New("first"), New("second"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "first")
}
