package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/studiowebux/markpad/internal/config"
	"github.com/studiowebux/markpad/internal/session"
)

// pointStoreAt redirects the shared database path into a temp dir for the
// duration of one test.
func pointStoreAt(t *testing.T, dir string) {
	t.Helper()
	old := config.DatabasePath
	config.DatabasePath = filepath.Join(dir, "markpad.db")
	t.Cleanup(func() { config.DatabasePath = old })
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "post.md")
	outPath := filepath.Join(dir, "post-out.html")

	if err := os.WriteFile(inPath, []byte("# Hello\n\nSome **bold** text.\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	err := RunConvert(ConvertOptions{InputPath: inPath, OutputPath: outPath})
	if err != nil {
		t.Fatalf("RunConvert() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	html := string(data)
	if !strings.Contains(html, "<!doctype html>") {
		t.Error("output is not a standalone HTML document")
	}
	if !strings.Contains(html, "<h1") {
		t.Error("output is missing the rendered heading")
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Error("output is missing the rendered bold span")
	}
}

func TestRunConvertDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "notes.md")

	if err := os.WriteFile(inPath, []byte("plain text\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	if err := RunConvert(ConvertOptions{InputPath: inPath}); err != nil {
		t.Fatalf("RunConvert() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "notes.html")); err != nil {
		t.Errorf("expected notes.html next to the input: %v", err)
	}
}

func TestRunConvertMissingInput(t *testing.T) {
	err := RunConvert(ConvertOptions{InputPath: filepath.Join(t.TempDir(), "missing.md")})
	if err == nil {
		t.Fatal("RunConvert() expected error for a missing input file")
	}
	if !strings.Contains(err.Error(), "failed to read input file") {
		t.Errorf("RunConvert() error = %v, want read failure", err)
	}
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	pointStoreAt(t, dir)

	base := filepath.Join(dir, "out")
	if err := RunExport(ExportOptions{OutputBase: base}); err != nil {
		t.Fatalf("RunExport() error = %v", err)
	}

	md, err := os.ReadFile(base + ".md")
	if err != nil {
		t.Fatalf("failed to read exported markdown: %v", err)
	}
	if string(md) != session.DefaultDocument {
		t.Error("first-run export should contain the sample draft")
	}

	html, err := os.ReadFile(base + ".html")
	if err != nil {
		t.Fatalf("failed to read exported HTML: %v", err)
	}
	if !strings.Contains(string(html), "<!doctype html>") {
		t.Error("exported HTML is not a standalone document")
	}
}

func TestRunExportMarkdownOnly(t *testing.T) {
	dir := t.TempDir()
	pointStoreAt(t, dir)

	base := filepath.Join(dir, "out")
	if err := RunExport(ExportOptions{OutputBase: base, MarkdownOnly: true}); err != nil {
		t.Fatalf("RunExport() error = %v", err)
	}

	if _, err := os.Stat(base + ".md"); err != nil {
		t.Errorf("expected markdown file: %v", err)
	}
	if _, err := os.Stat(base + ".html"); !os.IsNotExist(err) {
		t.Error("HTML file should not be written with MarkdownOnly")
	}
}

func TestRunExportHTMLOnly(t *testing.T) {
	dir := t.TempDir()
	pointStoreAt(t, dir)

	base := filepath.Join(dir, "out")
	if err := RunExport(ExportOptions{OutputBase: base, HTMLOnly: true}); err != nil {
		t.Fatalf("RunExport() error = %v", err)
	}

	if _, err := os.Stat(base + ".html"); err != nil {
		t.Errorf("expected HTML file: %v", err)
	}
	if _, err := os.Stat(base + ".md"); !os.IsNotExist(err) {
		t.Error("markdown file should not be written with HTMLOnly")
	}
}

func TestRunStats(t *testing.T) {
	pointStoreAt(t, t.TempDir())

	if err := RunStats(); err != nil {
		t.Fatalf("RunStats() error = %v", err)
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"notes.md", ".html", "notes.html"},
		{"dir/notes.markdown", ".html", "dir/notes.html"},
		{"no-extension", ".html", "no-extension.html"},
		{"archive.tar.gz", ".html", "archive.tar.html"},
	}

	for _, tt := range tests {
		if got := replaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
