package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config represents the user's keybinding configuration.
// Each section maps key -> action name, mirroring the registry contexts.
type Config struct {
	Version    string                       `json:"version"`
	Global     map[string]string            `json:"global,omitempty"`
	Editor     map[string]string            `json:"editor,omitempty"`
	Preview    map[string]string            `json:"preview,omitempty"`
	Help       map[string]string            `json:"help,omitempty"`
	Palette    map[string]string            `json:"palette,omitempty"`
	Export     map[string]string            `json:"export,omitempty"`
	CheatSheet map[string]string            `json:"cheatsheet,omitempty"`
	Confirm    map[string]string            `json:"confirm,omitempty"`
	Custom     map[string]map[string]string `json:"custom,omitempty"`
}

// Sections returns the config sections keyed by their registry context.
func (c *Config) Sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:     c.Global,
		ContextEditor:     c.Editor,
		ContextPreview:    c.Preview,
		ContextHelp:       c.Help,
		ContextPalette:    c.Palette,
		ContextExport:     c.Export,
		ContextCheatSheet: c.CheatSheet,
		ContextConfirm:    c.Confirm,
	}
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyConfig applies user configuration to a registry
// User bindings override default bindings
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.Sections() {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("context '%s': %w", context, err)
			}
			registry.Register(context, key, Action(actionStr))
		}
	}

	// Custom contexts are registered as-is so user extensions survive
	for contextName, bindings := range config.Custom {
		context := Context(contextName)
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}

// ExampleConfig returns a starter keybinds.json with the default layout,
// ready for users to edit
func ExampleConfig() *Config {
	return &Config{
		Version: "1.0",
		Global: map[string]string{
			"ctrl+c": "quit_force",
			"ctrl+s": "save_document",
			"ctrl+p": "open_palette",
			"ctrl+t": "toggle_theme",
			"ctrl+f": "toggle_fullscreen",
			"ctrl+w": "export_document",
			"tab":    "switch_focus",
		},
		Editor: map[string]string{
			"ctrl+b": "format_bold",
			"ctrl+i": "format_italic",
			"ctrl+h": "format_heading",
			"ctrl+u": "format_unordered_list",
			"ctrl+o": "format_ordered_list",
			"ctrl+k": "format_link",
			"ctrl+g": "format_image",
			"ctrl+e": "format_inline_code",
			"ctrl+x": "format_code_block",
			"ctrl+q": "format_quote",
			"ctrl+d": "format_strikethrough",
			"ctrl+l": "toggle_line_numbers",
			"ctrl+y": "copy_markdown",
		},
		Preview: map[string]string{
			"up":   "navigate_up",
			"k":    "navigate_up",
			"down": "navigate_down",
			"j":    "navigate_down",
			"gg":   "go_to_top",
			"G":    "go_to_bottom",
			"q":    "quit",
			"?":    "open_help",
			"m":    "open_cheat_sheet",
			"c":    "copy_html",
			"y":    "copy_markdown",
		},
		Export: map[string]string{
			"y":     "confirm",
			"enter": "confirm",
			"n":     "cancel",
			"esc":   "cancel",
		},
	}
}
