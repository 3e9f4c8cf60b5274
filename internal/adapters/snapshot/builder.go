// Package snapshot publishes a directory tree as a checksum graph.
//
// The top-level directories of the published directory become projects and every
// regular file below them becomes a document node holding an info blob (the
// slash-separated path relative to the published directory) and a text blob (the
// file contents). Files directly under the published directory become the
// solution options. Hidden entries and build outputs (see DefaultIgnores) are
// left out.
package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotBuilder = (*Builder)(nil)

// Builder implements ports.SnapshotBuilder.
type Builder struct {
	codec   ports.Codec
	ignores []string
}

// NewBuilder creates a Builder that encodes objects with codec and leaves
// DefaultIgnores out of every project.
func NewBuilder(codec ports.Codec) *Builder {
	return &Builder{codec: codec, ignores: DefaultIgnores}
}

// WithIgnores replaces the entry name patterns left out of every project.
func (b *Builder) WithIgnores(patterns ...string) *Builder {
	b.ignores = patterns
	return b
}

// Build stores the snapshot of dir into store and returns the solution checksum.
// Traversal is in lexical order, so equal trees produce equal checksums.
func (b *Builder) Build(ctx context.Context, dir string, store ports.BlobStore) (domain.Checksum, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.NullChecksum, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "dir", dir)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return domain.NullChecksum, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "dir", abs)
	}

	w := &writer{codec: b.codec, store: store, root: abs, ignores: b.ignores}

	var options, projects []domain.Checksum
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return domain.NullChecksum, zerr.Wrap(err, domain.ErrSnapshotFailed.Error())
		}
		if ignored(entry, b.ignores) {
			continue
		}

		if entry.IsDir() {
			p, err := w.project(ctx, entry.Name())
			if err != nil {
				return domain.NullChecksum, err
			}
			projects = append(projects, p)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		d, err := w.document(filepath.Join(abs, entry.Name()))
		if err != nil {
			return domain.NullChecksum, err
		}
		options = append(options, d)
	}

	info, err := w.blob([]byte(filepath.Base(abs)))
	if err != nil {
		return domain.NullChecksum, err
	}

	return w.put(&domain.SolutionNode{
		Children: []domain.ChildRef{info, domain.NewChecksumCollection(options...)},
		Projects: projects,
	})
}

type writer struct {
	codec   ports.Codec
	store   ports.BlobStore
	root    string
	ignores []string
}

func (w *writer) project(ctx context.Context, name string) (domain.Checksum, error) {
	node := &domain.ProjectNode{}

	for path, err := range walkFiles(filepath.Join(w.root, name), w.ignores) {
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			return domain.NullChecksum, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "project", name)
		}

		c, err := w.document(path)
		if err != nil {
			return domain.NullChecksum, zerr.With(err, "project", name)
		}
		switch classify(filepath.Base(path)) {
		case analyzerConfigDocument:
			node.AnalyzerConfigDocuments = append(node.AnalyzerConfigDocuments, c)
		case additionalDocument:
			node.AdditionalDocuments = append(node.AdditionalDocuments, c)
		default:
			node.Documents = append(node.Documents, c)
		}
	}

	return w.put(node)
}

func (w *writer) document(path string) (domain.Checksum, error) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return domain.NullChecksum, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "path", path)
	}

	//nolint:gosec // Path comes from walking the published directory
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NullChecksum, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "path", path)
	}

	info, err := w.blob([]byte(filepath.ToSlash(rel)))
	if err != nil {
		return domain.NullChecksum, err
	}
	text, err := w.blob(data)
	if err != nil {
		return domain.NullChecksum, err
	}
	return w.put(&domain.ChildNode{Children: []domain.ChildRef{info, text}})
}

func (w *writer) blob(data []byte) (domain.Checksum, error) {
	return w.put(&domain.Blob{Data: data})
}

func (w *writer) put(obj domain.Object) (domain.Checksum, error) {
	data, err := w.codec.Encode(obj)
	if err != nil {
		return domain.NullChecksum, err
	}
	c := domain.ChecksumOf(data)
	if err := w.store.Put(c, data); err != nil {
		return domain.NullChecksum, zerr.With(err, "kind", obj.Kind().String())
	}
	return c, nil
}

type documentKind int

const (
	regularDocument documentKind = iota
	additionalDocument
	analyzerConfigDocument
)

const editorConfig = ".editorconfig"

func classify(name string) documentKind {
	if name == editorConfig || strings.HasSuffix(name, ".globalconfig") {
		return analyzerConfigDocument
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".txt", ".json", ".yaml", ".yml":
		return additionalDocument
	default:
		return regularDocument
	}
}
