package mocks

import (
	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Codes are returned from a queue so tests control generated session codes.
type MockRandom struct {
	CodeResults []string
	codeIndex   int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Code returns the next queued result. Running off the end of the queue
// panics rather than returning a repeatable value: the code-collision retry
// loop would otherwise spin forever on a test that forgot to queue enough.
func (r *MockRandom) Code(length int, alphabet string) string {
	if r.codeIndex >= len(r.CodeResults) {
		panic("MockRandom: Code called with no queued results")
	}
	result := r.CodeResults[r.codeIndex]
	r.codeIndex++
	return result
}

// QueueCode adds values to the Code result queue
func (r *MockRandom) QueueCode(values ...string) {
	r.CodeResults = append(r.CodeResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.CodeResults = nil
	r.codeIndex = 0
}
