package glob

import (
	"regexp"
	"strconv"
	"strings"
)

var braceRangeRegexp = regexp.MustCompile(`^(-?\d+)\.\.(-?\d+)$`)

// Translate compiles a glob pattern into an anchored regular expression
// string. The result always starts with `^` and ends with `$`, for every
// input, so the expression matches whole paths only.
//
// With editorconfig set, `*` and `**` match across `/` and braces expand;
// otherwise `*`, `?` and character classes stay within one path segment
// and `**` is special only next to separators. A backslash makes the next
// character literal. Constructs left unclosed, like `[ab` or `{a,b`, are
// matched literally.
func Translate(pattern string, editorconfig bool) string {
	return "^" + strings.Join(tokenize([]rune(pattern), editorconfig), "") + "$"
}

// tokenize scans the pattern left to right and returns one regular
// expression fragment per construct. Fragments stay separate until the
// final join because the `**` handling needs to know whether the last
// emitted fragment is a separator.
func tokenize(pattern []rune, editorconfig bool) []string {
	var frags []string
	escaped := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		i++

		if escaped {
			frags = append(frags, quoteRune(c))
			escaped = false
			continue
		}

		switch c {
		case '\\':
			// a trailing backslash is dropped
			escaped = true

		case '*':
			if i < len(pattern) && pattern[i] == '*' {
				i++
				frags, i = doubleStar(frags, pattern, i, editorconfig)
			} else if editorconfig {
				frags = append(frags, ".*")
			} else {
				frags = append(frags, "[^/]*")
			}

		case '?':
			frags = append(frags, "[^/]")

		case '[':
			frag, next, ok := classToken(pattern, i)
			if !ok {
				frags = append(frags, `\[`)
			} else {
				frags = append(frags, frag)
				i = next
			}

		case '{':
			if !editorconfig {
				frags = append(frags, `\{`)
				continue
			}
			frag, next, ok := braceToken(pattern, i)
			if !ok {
				frags = append(frags, `\{`)
			} else {
				frags = append(frags, frag)
				i = next
			}

		default:
			frags = append(frags, quoteRune(c))
		}
	}
	return frags
}

// doubleStar emits the fragment for a `**` whose two stars end right
// before position i, and returns the fragments and the position after
// anything it absorbed.
//
// In the editorconfig dialect `**` matches anything, and one following
// separator is absorbed so that `a/**/b` also matches `a/b`. In the
// gitignore dialect it depends on position: leading `**/` matches zero or
// more lead directories, trailing `/**` matches a directory and all of its
// content, interior `/**/` collapses to zero or more directories, and
// anywhere else `**` behaves like two single stars.
func doubleStar(frags []string, pattern []rune, i int, editorconfig bool) ([]string, int) {
	if editorconfig {
		frags = append(frags, "(?:.*)")
		if i < len(pattern) && pattern[i] == '/' {
			i++
		}
		return frags, i
	}

	followingSlash := i < len(pattern) && pattern[i] == '/'
	afterSlash := len(frags) > 0 && frags[len(frags)-1] == "/"
	switch {
	case followingSlash && len(frags) == 0:
		i++
		frags = append(frags, "(?:.*?/)?")
	case followingSlash && afterSlash:
		i++
		frags = append(frags, "(?:.*/)?")
	case i == len(pattern) && afterSlash:
		frags[len(frags)-1] = "(?:/.*)?"
	default:
		frags = append(frags, "[^/]*", "[^/]*")
	}
	return frags, i
}

// classToken scans a character class whose `[` ends right before start.
// It returns the class fragment and the position after the closing `]`.
// The class may start with `!` for negation, and may contain `]` as its
// first member. A class that never closes is not a class: ok is false and
// the caller falls back to a literal `[`.
func classToken(pattern []rune, start int) (frag string, next int, ok bool) {
	j := start
	if j < len(pattern) && pattern[j] == '!' {
		j++
	}
	if j < len(pattern) && pattern[j] == ']' {
		j++
	}
	for j < len(pattern) && pattern[j] != ']' {
		j++
	}
	if j >= len(pattern) {
		return "", start, false
	}

	body := string(pattern[start:j])
	switch {
	case strings.HasPrefix(body, "!"):
		body = "^" + body[1:]
	case strings.HasPrefix(body, "^"):
		// `^` has no negation meaning in a glob class
		body = `\` + body
	}
	return "[" + body + "]", j + 1, true
}

// braceToken scans a brace expression whose `{` ends right before start.
// It returns the alternation fragment and the position after the matching
// `}`. ok is false when the brace never closes or when every alternative
// is empty, and the caller falls back to a literal `{`.
func braceToken(pattern []rune, start int) (frag string, next int, ok bool) {
	depth := 1
	j := start
	for j < len(pattern) && depth > 0 {
		switch pattern[j] {
		case '{':
			depth++
		case '}':
			depth--
		}
		j++
	}
	if depth > 0 {
		return "", start, false
	}
	body := string(pattern[start : j-1])

	if m := braceRangeRegexp.FindStringSubmatch(body); m != nil {
		if frag, ok := numericRange(m[1], m[2]); ok {
			return frag, j, true
		}
	}

	items := splitAlternatives(body)
	allEmpty := true
	for _, item := range items {
		if item != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return "", start, false
	}

	alternatives := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(item, "{") {
			inner := Translate(item, true)
			inner = strings.TrimPrefix(inner, "^")
			inner = strings.TrimSuffix(inner, "$")
			alternatives = append(alternatives, inner)
		} else {
			alternatives = append(alternatives, regexp.QuoteMeta(item))
		}
	}
	return "(?:" + strings.Join(alternatives, "|") + ")", j, true
}

// numericRange expands bounds like `1` and `3` into `(?:1|2|3)`. The
// expansion walks down when the first bound is the larger one. Bounds
// that do not fit in an int are rejected.
func numericRange(from, to string) (string, bool) {
	lo, err := strconv.Atoi(from)
	if err != nil {
		return "", false
	}
	hi, err := strconv.Atoi(to)
	if err != nil {
		return "", false
	}

	step := 1
	if lo > hi {
		step = -1
	}
	var values []string
	for v := lo; ; v += step {
		values = append(values, strconv.Itoa(v))
		if v == hi {
			break
		}
	}
	return "(?:" + strings.Join(values, "|") + ")", true
}

// splitAlternatives splits a brace body on its top level commas, keeping
// commas inside nested braces intact. Empty alternatives are kept: the
// body `a,` produces `a` and the empty string.
func splitAlternatives(body string) []string {
	var items []string
	var current strings.Builder
	depth := 0
	for _, c := range body {
		switch {
		case c == '{':
			depth++
			current.WriteRune(c)
		case c == '}':
			depth--
			current.WriteRune(c)
		case c == ',' && depth == 0:
			items = append(items, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(items, current.String())
}

func quoteRune(c rune) string {
	return regexp.QuoteMeta(string(c))
}
