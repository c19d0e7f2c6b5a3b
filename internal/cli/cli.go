package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/studiowebux/markpad/internal/buffer"
	"github.com/studiowebux/markpad/internal/config"
	"github.com/studiowebux/markpad/internal/converter"
	"github.com/studiowebux/markpad/internal/export"
	"github.com/studiowebux/markpad/internal/keybinds"
	"github.com/studiowebux/markpad/internal/session"
	"github.com/studiowebux/markpad/internal/store"
)

// ExportOptions contains options for exporting the stored draft
type ExportOptions struct {
	OutputBase   string // basename for the generated files
	MarkdownOnly bool
	HTMLOnly     bool
}

// RunExport loads the stored draft and writes it out as a Markdown file
// and a standalone HTML page
func RunExport(opts ExportOptions) error {
	ctrl, cleanup := loadSession()
	defer cleanup()

	base := opts.OutputBase
	if base == "" {
		base = "markpad-export"
	}

	if !opts.HTMLOnly {
		path := base + ".md"
		if err := export.WriteMarkdown(path, ctrl.Document()); err != nil {
			return err
		}
		fmt.Printf("Markdown saved to %s\n", path)
	}

	if !opts.MarkdownOnly {
		path := base + ".html"
		if err := export.WriteHTML(path, ctrl.Document(), ctrl.HTML(), ctrl.Theme()); err != nil {
			return err
		}
		fmt.Printf("HTML saved to %s\n", path)
	}

	return nil
}

// ConvertOptions contains options for the file-to-file converter
type ConvertOptions struct {
	InputPath  string
	OutputPath string // defaults to the input path with .html extension
	Theme      string // stylesheet variant: dark (default) or light
}

// RunConvert reads a Markdown file and writes the same standalone HTML
// page the export path produces
func RunConvert(opts ConvertOptions) error {
	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	fragment, err := converter.NewGoldmark().Convert(string(data))
	if err != nil {
		return err
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = replaceExt(opts.InputPath, ".html")
	}

	doc := buffer.Document(data)
	if err := export.WriteHTML(outPath, doc, fragment, session.ParseTheme(opts.Theme)); err != nil {
		return err
	}

	fmt.Printf("HTML saved to %s\n", outPath)
	return nil
}

// RunStats prints the word and character counts of the stored draft
func RunStats() error {
	ctrl, cleanup := loadSession()
	defer cleanup()

	s := ctrl.Stats()
	fmt.Printf("Words:      %d\n", s.Words)
	fmt.Printf("Characters: %d\n", s.Chars)
	return nil
}

// KeybindsOptions contains options for the keybinds maintenance command
type KeybindsOptions struct {
	Init bool // write a starter config instead of validating
}

// RunKeybinds validates the active keybinding configuration, or with
// Init writes a starter keybinds.json to edit
func RunKeybinds(opts KeybindsOptions) error {
	path := config.GetKeybindsFilePath()

	if opts.Init {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("%s already exists. Overwrite? [y/N]: ", path)
			var response string
			fmt.Scanln(&response)
			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				return fmt.Errorf("keybinds init cancelled")
			}
		}
		if err := keybinds.SaveConfig(keybinds.ExampleConfig(), path); err != nil {
			return fmt.Errorf("failed to write keybinds config: %w", err)
		}
		fmt.Printf("Keybinds config written to %s\n", path)
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Println("No keybinds config found, defaults are active")
		return nil
	}

	cfg, err := keybinds.LoadConfig(path)
	if err != nil {
		return err
	}

	result := keybinds.NewValidator().ValidateConfig(cfg)
	fmt.Println(result.String())
	if result.HasErrors() {
		return fmt.Errorf("keybinds config has errors")
	}
	return nil
}

// loadSession builds a controller over the shared store. A store that
// cannot be opened degrades to the in-memory default document, matching
// the TUI behavior.
func loadSession() (*session.Controller, func()) {
	manager, err := store.NewManager(config.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Msg("Draft store unavailable, using in-memory session")
		manager = nil
	}

	ctrl := session.NewController(converter.NewGoldmark(), manager)
	ctrl.Load()

	return ctrl, func() {
		if manager != nil {
			manager.Close()
		}
	}
}

// replaceExt swaps the extension of path for ext
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
