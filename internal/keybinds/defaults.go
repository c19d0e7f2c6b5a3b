package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerEditorBindings(r)
	registerPreviewBindings(r)
	registerHelpBindings(r)
	registerPaletteBindings(r)
	registerExportBindings(r)
	registerCheatSheetBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+s", ActionSaveDocument)
	r.Register(ContextGlobal, "ctrl+p", ActionOpenPalette)
	r.Register(ContextGlobal, "ctrl+t", ActionToggleTheme)
	r.Register(ContextGlobal, "ctrl+f", ActionToggleFullscreen)
	r.Register(ContextGlobal, "ctrl+w", ActionExportDocument)
	r.Register(ContextGlobal, "tab", ActionSwitchFocus)
}

// registerEditorBindings sets up the formatting shortcuts for the editor
// pane. Printable keys are left free for text entry, so everything here
// is a ctrl combo. Note ctrl+i arrives as "tab" in terminals without an
// extended keyboard protocol; italic stays reachable via the palette.
func registerEditorBindings(r *Registry) {
	r.Register(ContextEditor, "ctrl+b", ActionFormatBold)
	r.Register(ContextEditor, "ctrl+i", ActionFormatItalic)
	r.Register(ContextEditor, "ctrl+h", ActionFormatHeading)
	r.Register(ContextEditor, "ctrl+u", ActionFormatUnorderedList)
	r.Register(ContextEditor, "ctrl+o", ActionFormatOrderedList)
	r.Register(ContextEditor, "ctrl+k", ActionFormatLink)
	r.Register(ContextEditor, "ctrl+g", ActionFormatImage)
	r.Register(ContextEditor, "ctrl+e", ActionFormatInlineCode)
	r.Register(ContextEditor, "ctrl+x", ActionFormatCodeBlock)
	r.Register(ContextEditor, "ctrl+q", ActionFormatQuote)
	r.Register(ContextEditor, "ctrl+d", ActionFormatStrikethrough)
	r.Register(ContextEditor, "ctrl+l", ActionToggleLineNumbers)
	r.Register(ContextEditor, "ctrl+y", ActionCopyMarkdown)
}

// registerPreviewBindings sets up vim-style navigation for the preview pane
func registerPreviewBindings(r *Registry) {
	r.RegisterMultiple(ContextPreview, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextPreview, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextPreview, "pgup", ActionPageUp)
	r.Register(ContextPreview, "pgdown", ActionPageDown)
	r.Register(ContextPreview, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextPreview, "ctrl+d", ActionHalfPageDown)
	r.Register(ContextPreview, "gg", ActionGoToTop)
	r.Register(ContextPreview, "G", ActionGoToBottom)
	r.Register(ContextPreview, "home", ActionGoToTop)
	r.Register(ContextPreview, "end", ActionGoToBottom)
	r.Register(ContextPreview, "q", ActionQuit)
	r.Register(ContextPreview, "?", ActionOpenHelp)
	r.Register(ContextPreview, "m", ActionOpenCheatSheet)
	r.Register(ContextPreview, "c", ActionCopyHTML)
	r.Register(ContextPreview, "y", ActionCopyMarkdown)
}

// registerHelpBindings sets up keybindings for the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
	r.Register(ContextHelp, "gg", ActionGoToTop)
	r.Register(ContextHelp, "G", ActionGoToBottom)
	r.Register(ContextHelp, "home", ActionGoToTop)
	r.Register(ContextHelp, "end", ActionGoToBottom)
}

// registerPaletteBindings sets up keybindings for the command palette
func registerPaletteBindings(r *Registry) {
	r.Register(ContextPalette, "esc", ActionTextCancel)
	r.Register(ContextPalette, "enter", ActionTextSubmit)
	r.Register(ContextPalette, "backspace", ActionTextBackspace)
	r.Register(ContextPalette, "up", ActionNavigateUp)
	r.Register(ContextPalette, "down", ActionNavigateDown)
}

// registerExportBindings sets up keybindings for the export confirmation
func registerExportBindings(r *Registry) {
	r.RegisterMultiple(ContextExport, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextExport, []string{"n", "N", "esc", "q"}, ActionCancel)
}

// registerCheatSheetBindings sets up keybindings for the Markdown cheat sheet
func registerCheatSheetBindings(r *Registry) {
	r.RegisterMultiple(ContextCheatSheet, []string{"esc", "m", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextCheatSheet, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextCheatSheet, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextCheatSheet, "pgup", ActionPageUp)
	r.Register(ContextCheatSheet, "pgdown", ActionPageDown)
	r.Register(ContextCheatSheet, "gg", ActionGoToTop)
	r.Register(ContextCheatSheet, "G", ActionGoToBottom)
	r.Register(ContextCheatSheet, "home", ActionGoToTop)
	r.Register(ContextCheatSheet, "end", ActionGoToBottom)
}

// registerConfirmBindings sets up confirmation dialog bindings
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}
