package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/jlattimer/skillrank/internal/dependencies/mocks"
	"github.com/jlattimer/skillrank/internal/storage"
	"github.com/jlattimer/skillrank/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIdent *mocks.MockIdent
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates a test App over an existing storage, so
// tests can simulate a restart against the same snapshot.
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockIdent := mocks.NewMockIdent()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockIdent, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIdent: mockIdent,
	}
}
