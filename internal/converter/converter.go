package converter

// Converter turns Markdown source into an HTML fragment. Implementations
// must accept any string, including the empty string, which converts to an
// empty fragment.
type Converter interface {
	Convert(markdown string) (string, error)
}
