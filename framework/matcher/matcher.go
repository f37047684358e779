package matcher

// Matcher decides whether an event type tag satisfies a pre-compiled
// pattern. The pattern language is implementation defined; see
// NewGlobPattern.
type Matcher interface {
	DoesMatch(typeTag string) (bool, error)
}
