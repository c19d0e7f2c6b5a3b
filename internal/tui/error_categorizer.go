package tui

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/studiowebux/markpad/internal/markup"
)

// categorizeStoreError analyzes error strings from the draft store, the
// exporter, and the clipboard, and provides actionable, user-friendly
// messages based on the error type.
func categorizeStoreError(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	// SQLite lock contention (another process holds the write lock)
	if strings.Contains(errLower, "database is locked") ||
		strings.Contains(errLower, "database table is locked") {
		return "Draft store is locked - another markpad instance may be running"
	}

	// SQLite corruption
	if strings.Contains(errLower, "disk image is malformed") ||
		strings.Contains(errLower, "file is not a database") {
		return "Draft store is corrupted - remove ~/.markpad/markpad.db to start fresh"
	}

	// SQLite could not open the file at all
	if strings.Contains(errLower, "unable to open database") {
		return "Draft store could not be opened - check permissions on ~/.markpad"
	}

	// Disk full
	if strings.Contains(errLower, "no space left") ||
		strings.Contains(errLower, "disk is full") ||
		strings.Contains(errLower, "database or disk is full") {
		return "Disk full - free up space and try again"
	}

	// Read-only filesystem
	if strings.Contains(errLower, "read-only file system") ||
		strings.Contains(errLower, "readonly database") {
		return "Filesystem is read-only - drafts and exports cannot be written here"
	}

	// Permissions
	if strings.Contains(errLower, "permission denied") {
		return "Permission denied - check file and directory permissions"
	}

	// Clipboard helpers missing (X11/Wayland need an external binary)
	if strings.Contains(errLower, "executable file not found") ||
		strings.Contains(errLower, "xclip") ||
		strings.Contains(errLower, "xsel") ||
		strings.Contains(errLower, "clipboard") {
		return "Clipboard unavailable - install xclip, xsel, or wl-clipboard"
	}

	// Return original error if we can't categorize it
	return errStr
}

// categorizeError is a helper that wraps categorizeStoreError for use with Go
// error types. It handles nil errors and unwraps the error chain to get the
// root cause.
func categorizeError(err error) string {
	if err == nil {
		return ""
	}

	// Unwrap to get root cause
	var rootErr error = err
	for {
		unwrapped := errors.Unwrap(rootErr)
		if unwrapped == nil {
			break
		}
		rootErr = unwrapped
	}

	// Check for specific error types
	if errors.Is(err, markup.ErrUnknownAction) {
		return "Unknown formatting action - check your keybinds config"
	}
	if errors.Is(err, fs.ErrPermission) {
		return "Permission denied - check file and directory permissions"
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "File not found - it may have been moved or deleted"
	}

	if errno, ok := rootErr.(syscall.Errno); ok {
		switch errno {
		case syscall.ENOSPC:
			return "Disk full - free up space and try again"
		case syscall.EROFS:
			return "Filesystem is read-only - drafts and exports cannot be written here"
		case syscall.EMFILE, syscall.ENFILE:
			return "Too many open files - close other applications and retry"
		}
	}

	// Fall back to string-based categorization
	return categorizeStoreError(err.Error())
}
