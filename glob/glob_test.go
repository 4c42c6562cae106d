package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		pattern      string
		path         string
		editorconfig bool
		expected     bool
	}{
		{
			name:     "star matches within a segment",
			pattern:  "*.txt",
			path:     "file.txt",
			expected: true,
		},
		{
			name:     "star does not cross a separator",
			pattern:  "*.txt",
			path:     "dir/file.txt",
			expected: false,
		},
		{
			name:         "star crosses a separator",
			pattern:      "*.txt",
			path:         "dir/file.txt",
			editorconfig: true,
			expected:     true,
		},
		{
			name:     "question mark needs exactly one character",
			pattern:  "file?.txt",
			path:     "file1.txt",
			expected: true,
		},
		{
			name:     "question mark rejects zero characters",
			pattern:  "file?.txt",
			path:     "file.txt",
			expected: false,
		},
		{
			name:     "question mark rejects two characters",
			pattern:  "file?.txt",
			path:     "file12.txt",
			expected: false,
		},
		{
			name:     "question mark rejects a separator",
			pattern:  "file?txt",
			path:     "file/txt",
			expected: false,
		},
		{
			name:     "leading double star matches at the top",
			pattern:  "**/file.txt",
			path:     "file.txt",
			expected: true,
		},
		{
			name:     "leading double star matches nested",
			pattern:  "**/file.txt",
			path:     "a/b/file.txt",
			expected: true,
		},
		{
			name:     "leading double star keeps the base name anchored",
			pattern:  "**/file.txt",
			path:     "file1.txt",
			expected: false,
		},
		{
			name:     "trailing double star matches the directory itself",
			pattern:  "a/**",
			path:     "a",
			expected: true,
		},
		{
			name:     "trailing double star matches deep content",
			pattern:  "a/**",
			path:     "a/b/c/deep.txt",
			expected: true,
		},
		{
			name:     "trailing double star stays under its directory",
			pattern:  "a/**",
			path:     "x/file.txt",
			expected: false,
		},
		{
			name:     "interior double star matches zero directories",
			pattern:  "a/**/file.txt",
			path:     "a/file.txt",
			expected: true,
		},
		{
			name:     "interior double star matches many directories",
			pattern:  "a/**/file.txt",
			path:     "a/b/c/file.txt",
			expected: true,
		},
		{
			name:     "whole path is anchored",
			pattern:  "a/**/file.txt",
			path:     "a/file.py",
			expected: false,
		},
		{
			name:     "empty pattern matches the empty path only",
			pattern:  "",
			path:     "",
			expected: true,
		},
		{
			name:     "empty pattern rejects everything else",
			pattern:  "",
			path:     "a",
			expected: false,
		},
		{
			name:     "escaped star is literal",
			pattern:  `\*.txt`,
			path:     "*.txt",
			expected: true,
		},
		{
			name:     "escaped star does not match a name",
			pattern:  `\*.txt`,
			path:     "a.txt",
			expected: false,
		},
		{
			name:         "braces pick any alternative",
			pattern:      "file.{txt,py}",
			path:         "file.py",
			editorconfig: true,
			expected:     true,
		},
		{
			name:         "braces reject other suffixes",
			pattern:      "file.{txt,py}",
			path:         "file.md",
			editorconfig: true,
			expected:     false,
		},
		{
			name:         "braces are literal in the gitignore dialect",
			pattern:      "file.{txt,py}",
			path:         "file.{txt,py}",
			editorconfig: false,
			expected:     true,
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Match(test.pattern, test.path, test.editorconfig))
		})
	}
}

func TestMakeMatcherReuse(t *testing.T) {
	t.Parallel()
	matcher := MakeMatcher("**/*.go", false)

	assert.True(t, matcher.Match("main.go"))
	assert.True(t, matcher.Match("internal/app/main.go"))
	assert.False(t, matcher.Match("main.rs"))
	assert.True(t, matcher.Match("main.go"), "a matcher must stay usable after a mismatch")
}

func TestMakeMatcherInvalidExpression(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pattern string
	}{
		{
			name:    "inverted class range",
			pattern: "[z-a].txt",
		},
		{
			name:    "class body swallowing its closing bracket",
			pattern: `[a\]`,
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			matcher := MakeMatcher(test.pattern, false)
			assert.False(t, matcher.Match(test.pattern), "an uncompilable pattern must not match even itself")
			assert.False(t, matcher.Match(""))
			assert.False(t, matcher.Match("a.txt"))
		})
	}
}

func TestMatcherZeroValue(t *testing.T) {
	t.Parallel()
	var matcher Matcher
	assert.False(t, matcher.Match(""))
	assert.False(t, matcher.Match("anything"))
}
