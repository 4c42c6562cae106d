// Package glob matches slash-separated path strings against glob patterns,
// in two dialects.
//
// The gitignore-style dialect keeps wildcards inside a single path segment:
// `*` and `?` never cross a `/`, and `**` spans directories only in the
// leading `**/`, trailing `/**` and interior `/**/` positions. The
// editorconfig-style dialect lets `*` and `**` cross separators and adds
// `{a,b}` alternation and `{1..3}` numeric ranges. A single boolean selects
// the dialect on every entry point.
//
// Patterns compile to anchored regular expressions, so a pattern always
// matches whole paths, never substrings. Every function is total: malformed
// constructs degrade to literal matching instead of returning an error, and
// a pattern whose translation is not a valid regular expression yields a
// matcher that rejects everything.
package glob

import (
	"regexp"

	"github.com/sirupsen/logrus"
)

// Matcher tests paths against a single compiled pattern. The zero value
// rejects every path. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	re *regexp.Regexp
}

// MakeMatcher compiles the given pattern into a reusable Matcher.
// Compilation happens once, so a Matcher is the right shape for testing
// many paths against the same pattern.
func MakeMatcher(pattern string, editorconfig bool) Matcher {
	expr := Translate(pattern, editorconfig)
	re, err := regexp.Compile(expr)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"pattern":    pattern,
			"expression": expr,
		}).WithError(err).Debug("Translated expression does not compile, the matcher will reject every path")
		return Matcher{}
	}
	return Matcher{re: re}
}

// Match reports whether the path matches the compiled pattern.
func (m Matcher) Match(path string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(path)
}

// Match reports whether the path matches the pattern. It compiles the
// pattern on every call - use MakeMatcher to test many paths.
func Match(pattern, path string, editorconfig bool) bool {
	return MakeMatcher(pattern, editorconfig).Match(path)
}
