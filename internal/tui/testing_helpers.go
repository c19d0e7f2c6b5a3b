package tui

import (
	"path/filepath"
	"testing"

	"github.com/studiowebux/markpad/internal/config"
	"github.com/studiowebux/markpad/internal/converter"
	"github.com/studiowebux/markpad/internal/keybinds"
	"github.com/studiowebux/markpad/internal/session"
	"github.com/studiowebux/markpad/internal/store"
)

// CreateTestModel creates a Model instance for testing, backed by a draft
// store in a temporary directory
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	// Set test database path
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	originalDBPath := config.DatabasePath
	config.DatabasePath = dbPath
	t.Cleanup(func() {
		config.DatabasePath = originalDBPath
	})

	manager, err := store.NewManager(config.DatabasePath)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		manager.Close()
	})

	ctrl := session.NewController(converter.NewGoldmark(), manager)
	ctrl.Load()

	m := New(ctrl, manager, keybinds.NewDefaultRegistry(), "test-version")

	return &m
}

// CreateMemoryTestModel creates a Model with no draft store attached, the
// state the TUI runs in when the database cannot be opened
func CreateMemoryTestModel(t *testing.T) *Model {
	t.Helper()

	ctrl := session.NewController(converter.NewGoldmark(), nil)
	ctrl.Load()

	m := New(ctrl, nil, keybinds.NewDefaultRegistry(), "test-version")

	return &m
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
