package keybinds

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "unbound", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]bool

	// knownActions is the set of actions the application understands
	knownActions map[Action]bool

	// requiredActions must have at least one binding in some context
	requiredActions []Action

	// contextHierarchy defines which context each context falls back to
	contextHierarchy map[Context]Context
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	known := make(map[Action]bool)
	for _, action := range AllActions() {
		known[action] = true
	}

	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+c": true, // Force quit should always work
		},
		knownActions: known,
		requiredActions: []Action{
			ActionFormatBold,
			ActionFormatItalic,
			ActionSaveDocument,
		},
		contextHierarchy: map[Context]Context{
			ContextEditor:     ContextGlobal,
			ContextPreview:    ContextGlobal,
			ContextHelp:       ContextGlobal,
			ContextPalette:    ContextGlobal,
			ContextExport:     ContextGlobal,
			ContextCheatSheet: ContextGlobal,
			ContextConfirm:    ContextGlobal,
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkUnknownActions(registry, result)
	v.checkRequiredActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkSequencePrefixes(registry, result)
	v.checkShadowing(registry, result)

	return result
}

// ValidateConfig validates a user configuration as it would actually be
// used: applied over the defaults.
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	for context, bindings := range config.Sections() {
		for key, actionStr := range bindings {
			if err := ValidateAction(actionStr); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: err.Error(),
				})
			}
		}
	}
	if result.HasErrors() {
		return result
	}

	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Message: err.Error(),
		})
		return result
	}

	return v.ValidateRegistry(registry)
}

// checkUnknownActions flags bindings to actions the application does not
// understand. Custom contexts are skipped, those are user extensions.
func (v *Validator) checkUnknownActions(registry *Registry, result *ValidationResult) {
	for _, context := range v.knownContexts() {
		for key, action := range registry.bindings[context] {
			if !v.knownActions[action] {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action '%s'", action),
				})
			}
		}
	}
}

// checkRequiredActions flags required actions left without any binding
func (v *Validator) checkRequiredActions(registry *Registry, result *ValidationResult) {
	for _, required := range v.requiredActions {
		bound := false
		for _, bindings := range registry.bindings {
			for _, action := range bindings {
				if action == required {
					bound = true
					break
				}
			}
			if bound {
				break
			}
		}

		if !bound {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "unbound",
				Message: fmt.Sprintf("required action '%s' has no binding", required),
			})
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if v.reservedKeys[key] {
				if context == ContextGlobal && action != ActionQuitForce {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: context,
						Key:     key,
						Message: "reserved key rebound (may cause issues)",
					})
				}
			}
		}
	}
}

// checkSequencePrefixes flags single-key bindings that also start a
// multi-key sequence in the same context. The single press is deferred
// waiting for a second key, so the binding never fires on its own.
func (v *Validator) checkSequencePrefixes(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if utf8.RuneCountInString(key) != 1 {
				continue
			}
			if registry.prefixes[context][key] {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("key starts a multi-key sequence; '%s' only fires after a second key", action),
				})
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow a
// binding in the context they fall back to
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		parent, ok := v.contextHierarchy[context]
		if !ok {
			continue
		}

		parentBindings := registry.bindings[parent]
		if parentBindings == nil {
			continue
		}

		for key, action := range bindings {
			if parentAction, hasParent := parentBindings[key]; hasParent {
				if action != parentAction {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: context,
						Key:     key,
						Message: fmt.Sprintf("shadows %s binding (%s -> %s)", parent, parentAction, action),
					})
				}
			}
		}
	}
}

// knownContexts returns the built-in contexts in stable order
func (v *Validator) knownContexts() []Context {
	contexts := []Context{ContextGlobal}
	for context := range v.contextHierarchy {
		contexts = append(contexts, context)
	}
	sort.Slice(contexts, func(i, j int) bool { return contexts[i] < contexts[j] })
	return contexts
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}

	return nil
}
