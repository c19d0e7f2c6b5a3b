package keybinds

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// prefixes maps context -> first key of registered sequences (like 'g' for 'gg')
	prefixes map[Context]map[string]bool

	// pending tracks an in-flight multi-key sequence per context
	pending map[Context]string
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		prefixes: make(map[Context]map[string]bool),
		pending:  make(map[Context]string),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action

	if isSequenceKey(key) {
		if r.prefixes[context] == nil {
			r.prefixes[context] = make(map[string]bool)
		}
		first, _ := utf8.DecodeRuneInString(key)
		r.prefixes[context][string(first)] = true
	}
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// namedKeys are multi-character key names that are single keypresses,
// not sequences. Only "up" is short enough to be mistaken for one, but
// the full set keeps the check honest.
var namedKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"esc": true, "tab": true, "enter": true, "space": true,
	"home": true, "end": true, "pgup": true, "pgdown": true,
	"backspace": true, "delete": true, "insert": true,
}

// isSequenceKey reports whether key denotes a two-keypress sequence
// like "gg" rather than a single key or a modifier combo.
func isSequenceKey(key string) bool {
	if namedKeys[key] || strings.Contains(key, "+") {
		return false
	}
	return utf8.RuneCountInString(key) == 2
}

// Match attempts to match a key to an action in the given context
// Returns the action and whether a match was found
// Contexts are checked in priority order: specific context -> global
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// MatchMultiKey resolves keys that may begin a multi-key sequence like "gg".
// Returns the action, whether it's a complete match, and whether the key is
// now pending as the start of a sequence.
func (r *Registry) MatchMultiKey(context Context, key string) (Action, bool, bool) {
	if prev, hasPending := r.pending[context]; hasPending {
		delete(r.pending, context)

		if action, ok := r.Match(context, prev+key); ok {
			return action, true, false
		}

		// Incomplete sequence, swallow both keys
		return "", false, false
	}

	if r.isSequenceStart(context, key) {
		r.pending[context] = key
		return "", false, true
	}

	action, ok := r.Match(context, key)
	return action, ok, false
}

// isSequenceStart reports whether key begins a registered sequence in
// the context or in the global fallback.
func (r *Registry) isSequenceStart(context Context, key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	return r.prefixes[context][key] || r.prefixes[ContextGlobal][key]
}

// ClearMultiKeyState clears any pending multi-key state for a context
func (r *Registry) ClearMultiKeyState(context Context) {
	delete(r.pending, context)
}

// GetBinding returns the key(s) bound to an action in a context, sorted
// for stable display. Falls back to global bindings when the context
// has none.
func (r *Registry) GetBinding(context Context, action Action) []string {
	var keys []string

	if contextBindings, ok := r.bindings[context]; ok {
		for key, act := range contextBindings {
			if act == action {
				keys = append(keys, key)
			}
		}
	}

	if len(keys) == 0 {
		if globalBindings, ok := r.bindings[ContextGlobal]; ok {
			for key, act := range globalBindings {
				if act == action {
					keys = append(keys, key)
				}
			}
		}
	}

	sort.Strings(keys)
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns all bindings visible from a context, the
// context's own plus the global ones, sorted by context then key.
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding

	if contextBindings, ok := r.bindings[context]; ok {
		for key, action := range contextBindings {
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  action,
				Context: context,
			})
		}
	}

	if context != ContextGlobal {
		if globalBindings, ok := r.bindings[ContextGlobal]; ok {
			for key, action := range globalBindings {
				bindings = append(bindings, Binding{
					Key:     key,
					Action:  action,
					Context: ContextGlobal,
				})
			}
		}
	}

	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Context != bindings[j].Context {
			return bindings[i].Context < bindings[j].Context
		}
		return bindings[i].Key < bindings[j].Key
	})

	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	if contextBindings, ok := r.bindings[context]; ok {
		if _, ok := contextBindings[key]; ok {
			return true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if _, ok := globalBindings[key]; ok {
			return true
		}
	}

	return false
}
