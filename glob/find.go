package glob

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Find returns the paths matching at least one of the patterns, joined
// onto root.
//
// When paths is non-nil, only the given paths are considered: they are
// matched exactly as given, and each match is returned joined onto root,
// or unchanged when root is empty.
//
// When paths is nil, the directory tree under root is walked and every
// file is matched by its path relative to root, with `/` separators.
// Unreadable directories are skipped, and a missing root yields an empty
// result. Results come back in walk order; nothing is sorted.
func Find(patterns []string, root string, paths []string, editorconfig bool) []string {
	if paths != nil {
		matched := Filter(patterns, paths, editorconfig)
		if root == "" || len(matched) == 0 {
			return matched
		}
		joined := make([]string, 0, len(matched))
		for _, path := range matched {
			joined = append(joined, filepath.Join(root, path))
		}
		return joined
	}

	return FindFS(os.DirFS(root), patterns, root, editorconfig)
}

// FindFS walks the given filesystem and returns the files matching at
// least one of the patterns. Files are matched by their slash-separated
// path relative to the filesystem root, and returned joined onto root,
// which plays no part in the walk itself. Walk errors are skipped, so an
// unreadable tree yields an empty result instead of an error.
func FindFS(fsys fs.FS, patterns []string, root string, editorconfig bool) []string {
	matchers := make([]Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		matchers = append(matchers, MakeMatcher(pattern, editorconfig))
	}

	logrus.WithFields(logrus.Fields{
		"root":     root,
		"patterns": patterns,
	}).Trace("Walking the directory tree")

	var found []string
	_ = fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		for _, matcher := range matchers {
			if matcher.Match(path) {
				found = append(found, filepath.Join(root, path))
				break
			}
		}
		return nil
	})

	logrus.WithFields(logrus.Fields{
		"root":    root,
		"matched": len(found),
	}).Trace("Finished walking the directory tree")

	return found
}
