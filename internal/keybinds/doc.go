/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package implements a hierarchical, context-aware keyboard
binding system that allows users to customize all keybindings through
a configuration file.

# Key Concepts

Context Hierarchy:
  - Global: Bindings available everywhere (ctrl+s, ctrl+p, ...)
  - Editor: Formatting shortcuts while typing
  - Preview: Vim-style navigation over the rendered document
  - Modals: help, palette, export, cheatsheet, confirm

Keys resolve specific context first, then fall back to global. If a key
is bound in a specific context, it overrides the global binding.

Action System:
  - Actions are constants (ActionFormatBold, ActionSaveDocument, etc.)
  - Keys map to actions within contexts
  - Same action can have different keys in different contexts

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware key matching with global fallback
  - Multi-key sequence support (e.g., "gg" for go-to-top); sequence
    starters are derived from the registered bindings

Validator (validator.go):
  - Flags unknown action names (config typos)
  - Flags required actions left unbound (bold, italic, save)
  - Warns about shadowed and sequence-deferred bindings
  - Protects reserved keys (ctrl+c)

Defaults (defaults.go):
  - Default keybinding configuration
  - Covers all contexts and actions
  - Used when no custom config exists

# Configuration File Format

Keybindings are stored in JSON format at ~/.markpad/keybinds.json:

	{
	  "version": "1.0",
	  "editor": {
	    "ctrl+b": "format_bold",
	    "ctrl+i": "format_italic"
	  },
	  "preview": {
	    "q": "quit",
	    "gg": "go_to_top"
	  }
	}

Sections map key -> action name. User bindings are applied over the
defaults, so a config only needs the bindings it changes.

# Multi-Key Sequences

Any registered two-character key like "gg" makes its first character a
sequence starter: the first press is held, and the pair is matched when
the second key arrives. Binding the starter character on its own in the
same context leaves that single-key binding unreachable; the validator
warns about it.

# Example Usage

	registry, err := keybinds.LoadOrDefault(config.GetKeybindsFilePath())
	if err != nil {
		registry = keybinds.NewDefaultRegistry()
	}

	if action, ok := registry.Match(keybinds.ContextEditor, "ctrl+b"); ok {
		// Handle action
	}

# Extension

To add new actions:
 1. Define the action constant and add it to AllActions
 2. Give it a default binding in defaults.go
 3. Handle it in the TUI key handlers
*/
package keybinds
