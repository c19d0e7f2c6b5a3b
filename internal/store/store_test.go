package store

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(filepath.Join(t.TempDir(), "markpad.db"))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	t.Cleanup(func() { m.Close() })

	return m
}

func TestManager_DocumentRoundtrip(t *testing.T) {
	m := newTestManager(t)

	if err := m.SaveDocument("# Draft\n\nbody"); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}

	got, found, err := m.LoadDocument()
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if !found {
		t.Fatal("LoadDocument() found = false, want true")
	}
	if got != "# Draft\n\nbody" {
		t.Errorf("LoadDocument() = %q, want %q", got, "# Draft\n\nbody")
	}
}

func TestManager_LoadDocumentAbsent(t *testing.T) {
	m := newTestManager(t)

	got, found, err := m.LoadDocument()
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if found {
		t.Errorf("LoadDocument() found = true for empty store, value %q", got)
	}
}

func TestManager_SaveOverwrites(t *testing.T) {
	m := newTestManager(t)

	if err := m.SaveDocument("first"); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	if err := m.SaveDocument("second"); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}

	got, _, err := m.LoadDocument()
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if got != "second" {
		t.Errorf("LoadDocument() = %q, want latest write", got)
	}
}

func TestManager_ThemeIndependentOfDocument(t *testing.T) {
	m := newTestManager(t)

	if err := m.SaveDocument("the draft"); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	if err := m.SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}

	theme, found, err := m.LoadTheme()
	if err != nil || !found {
		t.Fatalf("LoadTheme() = %q, %v, %v", theme, found, err)
	}
	if theme != "light" {
		t.Errorf("LoadTheme() = %q, want %q", theme, "light")
	}

	doc, _, err := m.LoadDocument()
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if doc != "the draft" {
		t.Errorf("LoadDocument() = %q after theme write, want %q", doc, "the draft")
	}
}

func TestManager_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "markpad.db")

	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if err := m.SaveDocument("persisted"); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager() reopen error = %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.LoadDocument()
	if err != nil || !found {
		t.Fatalf("LoadDocument() after reopen = %q, %v, %v", got, found, err)
	}
	if got != "persisted" {
		t.Errorf("LoadDocument() after reopen = %q, want %q", got, "persisted")
	}
}

func TestNewManager_CorruptFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "markpad.db")
	if err := os.WriteFile(dbPath, []byte("this is not a sqlite database"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	m, err := NewManager(dbPath)
	if err == nil {
		m.Close()
		t.Fatal("NewManager() on corrupt file succeeded, want error")
	}
}
