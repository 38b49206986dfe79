package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockRandomReturnsQueuedCodes(t *testing.T) {
	r := NewMockRandom()
	r.QueueCode("AB12CD", "EF34GH")

	assert.Equal(t, "AB12CD", r.Code(6, "ABCDEFGH1234"))
	assert.Equal(t, "EF34GH", r.Code(6, "ABCDEFGH1234"))
}

func TestMockRandomPanicsWhenQueueExhausted(t *testing.T) {
	r := NewMockRandom()
	r.QueueCode("AB12CD")
	_ = r.Code(6, "ABCDEFGH1234")

	assert.Panics(t, func() { _ = r.Code(6, "ABCDEFGH1234") })
}

func TestMockRandomReset(t *testing.T) {
	r := NewMockRandom()
	r.QueueCode("AB12CD")
	_ = r.Code(6, "ABCDEFGH1234")

	r.Reset()
	assert.Panics(t, func() { _ = r.Code(6, "ABCDEFGH1234") })

	r.QueueCode("EF34GH")
	assert.Equal(t, "EF34GH", r.Code(6, "ABCDEFGH1234"))
}
