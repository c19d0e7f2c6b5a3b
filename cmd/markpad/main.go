package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/studiowebux/markpad/internal/cli"
	"github.com/studiowebux/markpad/internal/config"
	"github.com/studiowebux/markpad/internal/tui"
	"github.com/studiowebux/markpad/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "markpad",
	Short: "markpad - terminal Markdown editor with live preview",
	Long: `markpad is a terminal Markdown editor with a live rendered preview.

Run without arguments to open the editor. The draft autosaves to a local
store after every change, so quitting and reopening picks up where you
left off. Subcommands work on the stored draft without opening the editor.

Examples:
  markpad                              # Open the editor
  markpad export -o notes              # Write notes.md and notes.html
  markpad export --html-only           # Only the HTML page
  markpad convert README.md            # README.md -> README.html
  markpad convert doc.md --theme light # Light stylesheet variant
  markpad stats                        # Word and character counts
  markpad keybinds                     # Validate keybinding overrides
  markpad keybinds --init              # Write a starter keybinds.json`,
	Version: version.Version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		return tui.Run(version.Version)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored draft as Markdown and HTML files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		if flagMarkdownOnly && flagHTMLOnly {
			return fmt.Errorf("--md-only and --html-only are mutually exclusive")
		}
		return cli.RunExport(cli.ExportOptions{
			OutputBase:   flagOutputBase,
			MarkdownOnly: flagMarkdownOnly,
			HTMLOnly:     flagHTMLOnly,
		})
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a Markdown file to a standalone HTML page",
	Long: `Convert a Markdown file to the same standalone HTML page the export
command produces, without touching the stored draft.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		return cli.RunConvert(cli.ConvertOptions{
			InputPath:  args[0],
			OutputPath: flagConvertOut,
			Theme:      flagConvertTheme,
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print word and character counts of the stored draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		return cli.RunStats()
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Validate the keybinding configuration",
	Long: `Validate the active keybinding configuration and report conflicts,
unknown actions, and missing required bindings.

With --init, write a starter keybinds.json to edit instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		return cli.RunKeybinds(cli.KeybindsOptions{Init: flagKeybindsInit})
	},
}

var flagDebug bool

// Flags for export
var (
	flagOutputBase   string
	flagMarkdownOnly bool
	flagHTMLOnly     bool
)

// Flags for convert
var (
	flagConvertOut   string
	flagConvertTheme string
)

// Flags for keybinds
var flagKeybindsInit bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	exportCmd.Flags().StringVarP(&flagOutputBase, "output", "o", "", "Output basename (default \"markpad-export\")")
	exportCmd.Flags().BoolVar(&flagMarkdownOnly, "md-only", false, "Only write the Markdown file")
	exportCmd.Flags().BoolVar(&flagHTMLOnly, "html-only", false, "Only write the HTML page")

	convertCmd.Flags().StringVarP(&flagConvertOut, "output", "o", "", "Output file path (default input with .html)")
	convertCmd.Flags().StringVar(&flagConvertTheme, "theme", "dark", "Stylesheet variant (dark/light)")

	keybindsCmd.Flags().BoolVar(&flagKeybindsInit, "init", false, "Write a starter keybinds.json")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// setup prepares the config directory and points the global logger at the
// log file. The TUI owns the terminal, so nothing logs to stderr.
func setup() error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, config.FilePermissions)
	if err != nil {
		// Running without a log file beats writing over the TUI
		log.Logger = zerolog.Nop()
		return nil
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}
