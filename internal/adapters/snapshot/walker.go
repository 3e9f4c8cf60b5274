package snapshot

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// DefaultIgnores are entry names left out of every project walk.
var DefaultIgnores = []string{"bin", "obj"}

// walkFiles yields the regular files below root in lexical order, skipping hidden
// entries and entries matching one of ignores. A walk error is yielded once and
// ends the sequence.
func walkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && ignored(d, ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func ignored(d fs.DirEntry, ignores []string) bool {
	if skip(d) {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, d.Name()); matched {
			return true
		}
	}
	return false
}

// skip reports whether a hidden entry is left out of the snapshot.
// .editorconfig is the one hidden file that is kept.
func skip(d fs.DirEntry) bool {
	name := d.Name()
	if !strings.HasPrefix(name, ".") {
		return false
	}
	return d.IsDir() || name != editorConfig
}
