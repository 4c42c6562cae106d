package glob

// Filter returns the paths matching at least one of the patterns, in
// their input order. Each pattern is compiled once for the whole batch.
// Paths are kept as often as they appear; nothing is deduplicated. An
// empty pattern set keeps nothing.
func Filter(patterns, paths []string, editorconfig bool) []string {
	matchers := make([]Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		matchers = append(matchers, MakeMatcher(pattern, editorconfig))
	}

	var filtered []string
	for _, path := range paths {
		for _, matcher := range matchers {
			if matcher.Match(path) {
				filtered = append(filtered, path)
				break
			}
		}
	}
	return filtered
}
