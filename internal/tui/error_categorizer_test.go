package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/studiowebux/markpad/internal/markup"
)

func TestCategorizeStoreError(t *testing.T) {
	tests := []struct {
		name     string
		errStr   string
		wantText string
	}{
		{
			name:     "empty error",
			errStr:   "",
			wantText: "",
		},
		{
			name:     "sqlite database locked",
			errStr:   "database is locked",
			wantText: "Draft store is locked - another markpad instance may be running",
		},
		{
			name:     "sqlite corruption",
			errStr:   "database disk image is malformed",
			wantText: "Draft store is corrupted - remove ~/.markpad/markpad.db to start fresh",
		},
		{
			name:     "sqlite wrong file",
			errStr:   "file is not a database",
			wantText: "Draft store is corrupted - remove ~/.markpad/markpad.db to start fresh",
		},
		{
			name:     "sqlite cannot open",
			errStr:   "unable to open database file",
			wantText: "Draft store could not be opened - check permissions on ~/.markpad",
		},
		{
			name:     "disk full",
			errStr:   "write /home/user/.markpad/markpad.db: no space left on device",
			wantText: "Disk full - free up space and try again",
		},
		{
			name:     "sqlite disk full",
			errStr:   "database or disk is full",
			wantText: "Disk full - free up space and try again",
		},
		{
			name:     "read-only filesystem",
			errStr:   "open /mnt/usb/export.md: read-only file system",
			wantText: "Filesystem is read-only - drafts and exports cannot be written here",
		},
		{
			name:     "readonly database",
			errStr:   "attempt to write a readonly database",
			wantText: "Filesystem is read-only - drafts and exports cannot be written here",
		},
		{
			name:     "permission denied",
			errStr:   "open /root/.markpad/markpad.db: permission denied",
			wantText: "Permission denied - check file and directory permissions",
		},
		{
			name:     "clipboard helper missing",
			errStr:   "exec: \"xclip\": executable file not found in $PATH",
			wantText: "Clipboard unavailable - install xclip, xsel, or wl-clipboard",
		},
		{
			name:     "clipboard unsupported",
			errStr:   "No clipboard utilities available",
			wantText: "Clipboard unavailable - install xclip, xsel, or wl-clipboard",
		},
		{
			name:     "uncategorized passes through",
			errStr:   "something went wrong",
			wantText: "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categorizeStoreError(tt.errStr)
			if got != tt.wantText {
				t.Errorf("categorizeStoreError(%q) = %q, want %q", tt.errStr, got, tt.wantText)
			}
		})
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{
			name:     "nil error",
			err:      nil,
			wantText: "",
		},
		{
			name:     "unknown markup action",
			err:      fmt.Errorf("%q: %w", "zap", markup.ErrUnknownAction),
			wantText: "Unknown formatting action - check your keybinds config",
		},
		{
			name:     "wrapped permission error",
			err:      &fs.PathError{Op: "open", Path: "/root/.markpad/markpad.db", Err: fs.ErrPermission},
			wantText: "Permission denied - check file and directory permissions",
		},
		{
			name:     "wrapped not-exist error",
			err:      &fs.PathError{Op: "open", Path: "/tmp/gone.md", Err: fs.ErrNotExist},
			wantText: "File not found - it may have been moved or deleted",
		},
		{
			name:     "syscall EACCES maps to permission",
			err:      &fs.PathError{Op: "open", Path: "/etc/draft.md", Err: syscall.EACCES},
			wantText: "Permission denied - check file and directory permissions",
		},
		{
			name:     "syscall ENOSPC",
			err:      &fs.PathError{Op: "write", Path: "/tmp/export.html", Err: syscall.ENOSPC},
			wantText: "Disk full - free up space and try again",
		},
		{
			name:     "syscall EROFS",
			err:      syscall.EROFS,
			wantText: "Filesystem is read-only - drafts and exports cannot be written here",
		},
		{
			name:     "sqlite locked falls back to string matching",
			err:      fmt.Errorf("saving draft: %w", errors.New("database is locked")),
			wantText: "Draft store is locked - another markpad instance may be running",
		},
		{
			name:     "unrecognized error passes through",
			err:      errors.New("something went wrong"),
			wantText: "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categorizeError(tt.err)
			if got != tt.wantText {
				t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.wantText)
			}
		})
	}
}
