package matcher

import (
	"github.com/zyedidia/glob"
	"golang.org/x/xerrors"
)

// NewGlobPattern compiles a shell-style pattern once; the returned
// matcher is reused across every tag it is asked about. A pattern that
// won't compile surfaces as an error on first use.
func NewGlobPattern(pattern string) Matcher {
	// Compile hands back a non-nil Glob even on error, drop it so the
	// nil check in DoesMatch can report the bad pattern
	g, err := glob.Compile(pattern)
	if err != nil {
		g = nil
	}
	return globPatternMatcher{g}
}

type globPatternMatcher struct {
	glob *glob.Glob
}

func (gpm globPatternMatcher) DoesMatch(typeTag string) (bool, error) {
	if gpm.glob == nil {
		return false, xerrors.New("has no glob, possibly the pattern would not compile")
	}
	return gpm.glob.MatchString(typeTag), nil
}
