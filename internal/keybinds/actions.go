package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal     Context = "global"     // Available everywhere
	ContextEditor     Context = "editor"     // Editor pane focused
	ContextPreview    Context = "preview"    // Preview pane focused
	ContextHelp       Context = "help"       // Keybinding help viewer
	ContextPalette    Context = "palette"    // Command palette
	ContextExport     Context = "export"     // Export confirmation
	ContextCheatSheet Context = "cheatsheet" // Markdown cheat sheet
	ContextConfirm    Context = "confirm"    // Confirmation dialogs
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit, asking first if the draft is unsaved
	ActionQuitForce Action = "quit_force" // Quit immediately (ctrl+c)

	// Formatting actions wrap or insert Markdown markup at the selection
	ActionFormatBold          Action = "format_bold"
	ActionFormatItalic        Action = "format_italic"
	ActionFormatHeading       Action = "format_heading"
	ActionFormatUnorderedList Action = "format_unordered_list"
	ActionFormatOrderedList   Action = "format_ordered_list"
	ActionFormatLink          Action = "format_link"
	ActionFormatImage         Action = "format_image"
	ActionFormatInlineCode    Action = "format_inline_code"
	ActionFormatCodeBlock     Action = "format_code_block"
	ActionFormatQuote         Action = "format_quote"
	ActionFormatStrikethrough Action = "format_strikethrough"

	// Document actions
	ActionSaveDocument   Action = "save_document"   // Persist the draft now
	ActionExportDocument Action = "export_document" // Open export confirmation
	ActionCopyMarkdown   Action = "copy_markdown"   // Copy Markdown source to clipboard
	ActionCopyHTML       Action = "copy_html"       // Copy rendered HTML to clipboard

	// View actions
	ActionSwitchFocus       Action = "switch_focus"        // Cycle focus editor <-> preview
	ActionToggleFullscreen  Action = "toggle_fullscreen"   // Toggle fullscreen editor
	ActionToggleTheme       Action = "toggle_theme"        // Toggle dark/light theme
	ActionToggleLineNumbers Action = "toggle_line_numbers" // Toggle editor line numbers

	// Modal launchers
	ActionOpenPalette    Action = "open_palette"     // Open command palette
	ActionOpenHelp       Action = "open_help"        // Open keybinding help
	ActionOpenCheatSheet Action = "open_cheat_sheet" // Open Markdown cheat sheet

	// Navigation actions (preview pane and scrollable modals)
	ActionNavigateUp   Action = "navigate_up"    // Move up one line
	ActionNavigateDown Action = "navigate_down"  // Move down one line
	ActionPageUp       Action = "page_up"        // Move up one page
	ActionPageDown     Action = "page_down"      // Move down one page
	ActionHalfPageUp   Action = "half_page_up"   // Move up half a page
	ActionHalfPageDown Action = "half_page_down" // Move down half a page
	ActionGoToTop      Action = "go_to_top"      // Jump to the top
	ActionGoToBottom   Action = "go_to_bottom"   // Jump to the bottom

	// Modal actions
	ActionCloseModal Action = "close_modal" // Close current modal
	ActionConfirm    Action = "confirm"     // Confirm action (y/Y/enter)
	ActionCancel     Action = "cancel"      // Cancel action (n/N/esc)

	// Text input actions (palette query)
	ActionTextBackspace Action = "text_backspace" // Delete char before cursor
	ActionTextSubmit    Action = "text_submit"    // Submit input
	ActionTextCancel    Action = "text_cancel"    // Cancel input

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// AllActions returns every action the application understands.
// The validator uses this to flag typos in user keybinding configs.
func AllActions() []Action {
	return []Action{
		ActionQuit,
		ActionQuitForce,
		ActionFormatBold,
		ActionFormatItalic,
		ActionFormatHeading,
		ActionFormatUnorderedList,
		ActionFormatOrderedList,
		ActionFormatLink,
		ActionFormatImage,
		ActionFormatInlineCode,
		ActionFormatCodeBlock,
		ActionFormatQuote,
		ActionFormatStrikethrough,
		ActionSaveDocument,
		ActionExportDocument,
		ActionCopyMarkdown,
		ActionCopyHTML,
		ActionSwitchFocus,
		ActionToggleFullscreen,
		ActionToggleTheme,
		ActionToggleLineNumbers,
		ActionOpenPalette,
		ActionOpenHelp,
		ActionOpenCheatSheet,
		ActionNavigateUp,
		ActionNavigateDown,
		ActionPageUp,
		ActionPageDown,
		ActionHalfPageUp,
		ActionHalfPageDown,
		ActionGoToTop,
		ActionGoToBottom,
		ActionCloseModal,
		ActionConfirm,
		ActionCancel,
		ActionTextBackspace,
		ActionTextSubmit,
		ActionTextCancel,
		ActionNoOp,
	}
}

// PaletteActions returns the actions offered by the command palette,
// in display order.
func PaletteActions() []Action {
	return []Action{
		ActionFormatBold,
		ActionFormatItalic,
		ActionFormatHeading,
		ActionFormatUnorderedList,
		ActionFormatOrderedList,
		ActionFormatLink,
		ActionFormatImage,
		ActionFormatInlineCode,
		ActionFormatCodeBlock,
		ActionFormatQuote,
		ActionFormatStrikethrough,
		ActionSaveDocument,
		ActionExportDocument,
		ActionCopyMarkdown,
		ActionCopyHTML,
		ActionToggleTheme,
		ActionToggleFullscreen,
		ActionToggleLineNumbers,
		ActionOpenHelp,
		ActionOpenCheatSheet,
		ActionQuit,
	}
}

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	infos := map[Action]ActionInfo{
		ActionQuit:                {ActionQuit, "Quit", "Global"},
		ActionQuitForce:           {ActionQuitForce, "Quit immediately", "Global"},
		ActionFormatBold:          {ActionFormatBold, "Bold", "Formatting"},
		ActionFormatItalic:        {ActionFormatItalic, "Italic", "Formatting"},
		ActionFormatHeading:       {ActionFormatHeading, "Heading", "Formatting"},
		ActionFormatUnorderedList: {ActionFormatUnorderedList, "Bullet list", "Formatting"},
		ActionFormatOrderedList:   {ActionFormatOrderedList, "Numbered list", "Formatting"},
		ActionFormatLink:          {ActionFormatLink, "Link", "Formatting"},
		ActionFormatImage:         {ActionFormatImage, "Image", "Formatting"},
		ActionFormatInlineCode:    {ActionFormatInlineCode, "Inline code", "Formatting"},
		ActionFormatCodeBlock:     {ActionFormatCodeBlock, "Code block", "Formatting"},
		ActionFormatQuote:         {ActionFormatQuote, "Quote", "Formatting"},
		ActionFormatStrikethrough: {ActionFormatStrikethrough, "Strikethrough", "Formatting"},
		ActionSaveDocument:        {ActionSaveDocument, "Save draft", "Document"},
		ActionExportDocument:      {ActionExportDocument, "Export Markdown and HTML", "Document"},
		ActionCopyMarkdown:        {ActionCopyMarkdown, "Copy Markdown to clipboard", "Document"},
		ActionCopyHTML:            {ActionCopyHTML, "Copy HTML to clipboard", "Document"},
		ActionSwitchFocus:         {ActionSwitchFocus, "Switch editor/preview focus", "View"},
		ActionToggleFullscreen:    {ActionToggleFullscreen, "Toggle fullscreen editor", "View"},
		ActionToggleTheme:         {ActionToggleTheme, "Toggle dark/light theme", "View"},
		ActionToggleLineNumbers:   {ActionToggleLineNumbers, "Toggle line numbers", "View"},
		ActionOpenPalette:         {ActionOpenPalette, "Open command palette", "Modals"},
		ActionOpenHelp:            {ActionOpenHelp, "Open keybinding help", "Modals"},
		ActionOpenCheatSheet:      {ActionOpenCheatSheet, "Open Markdown cheat sheet", "Modals"},
		ActionNavigateUp:          {ActionNavigateUp, "Move up", "Navigation"},
		ActionNavigateDown:        {ActionNavigateDown, "Move down", "Navigation"},
		ActionPageUp:              {ActionPageUp, "Page up", "Navigation"},
		ActionPageDown:            {ActionPageDown, "Page down", "Navigation"},
		ActionHalfPageUp:          {ActionHalfPageUp, "Half page up", "Navigation"},
		ActionHalfPageDown:        {ActionHalfPageDown, "Half page down", "Navigation"},
		ActionGoToTop:             {ActionGoToTop, "Go to top", "Navigation"},
		ActionGoToBottom:          {ActionGoToBottom, "Go to bottom", "Navigation"},
		ActionCloseModal:          {ActionCloseModal, "Close", "Modals"},
		ActionConfirm:             {ActionConfirm, "Confirm", "Modals"},
		ActionCancel:              {ActionCancel, "Cancel", "Modals"},
		ActionTextBackspace:       {ActionTextBackspace, "Delete character", "Input"},
		ActionTextSubmit:          {ActionTextSubmit, "Submit", "Input"},
		ActionTextCancel:          {ActionTextCancel, "Cancel input", "Input"},
	}

	if info, ok := infos[action]; ok {
		return info
	}

	return ActionInfo{action, string(action), "Unknown"}
}
