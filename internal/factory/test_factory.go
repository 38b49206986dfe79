package factory

import (
	"time"

	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/mocks"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
	"github.com/JunFolioGame/API-BackEnd/internal/storage/memory"
	"github.com/JunFolioGame/API-BackEnd/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, directory.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
