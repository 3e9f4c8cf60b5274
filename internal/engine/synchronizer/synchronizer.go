// Package synchronizer walks checksum trees level by level and batch-fetches whatever
// the local cache is missing, one tree level per network round.
package synchronizer

import (
	"context"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options tunes a Synchronizer.
type Options struct {
	// ProjectParallelism bounds how many project nodes are resolved at once.
	// Values below two resolve projects sequentially.
	ProjectParallelism int
	// DocumentContents adds a round that fetches the children of every document node.
	DocumentContents bool
}

// Synchronizer orchestrates batched synchronization on top of an AssetProvider.
// Every top-level call holds the Gate for its whole duration.
type Synchronizer struct {
	provider ports.AssetProvider
	gate     *Gate
	tracer   ports.Tracer
	opts     Options
}

// New creates a Synchronizer. The gate is shared by every Synchronizer of the process.
func New(provider ports.AssetProvider, gate *Gate, tracer ports.Tracer, opts Options) *Synchronizer {
	return &Synchronizer{
		provider: provider,
		gate:     gate,
		tracer:   tracer,
		opts:     opts,
	}
}

// SynchronizeAssets makes every checksum of the set resolvable from cache.
// Null and cache-resident members are never requested.
func (s *Synchronizer) SynchronizeAssets(ctx context.Context, checksums domain.ChecksumSet) (err error) {
	ctx, span := s.tracer.Start(ctx, "synchronize assets", ports.WithAttribute("checksums", checksums.Len()))
	defer finish(span, &err)

	release, err := s.gate.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	missing := domain.NewChecksumSet()
	for c := range checksums.All() {
		s.addIfNeeded(missing, c)
	}
	return s.fetchRound(ctx, "assets", missing)
}

// SynchronizeSolution synchronizes the solution rooted at root: its children, its projects
// and the documents of every project, one batch per level.
func (s *Synchronizer) SynchronizeSolution(ctx context.Context, root domain.Checksum) (err error) {
	ctx, span := s.tracer.Start(ctx, "synchronize solution", ports.WithAttribute("root", root.String()))
	defer finish(span, &err)

	release, err := s.gate.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if root.IsNull() {
		return nil
	}

	solution, err := resolveAs[*domain.SolutionNode](ctx, s.provider, root)
	if err != nil {
		return err
	}

	children := domain.NewChecksumSet()
	s.collect(children, solution.Children)
	if err := s.fetchRound(ctx, "solution children", children); err != nil {
		return err
	}

	return s.synchronizeProjects(ctx, solution.Projects)
}

// SynchronizeProjects synchronizes the given projects and their documents.
func (s *Synchronizer) SynchronizeProjects(ctx context.Context, projects domain.ChecksumSet) (err error) {
	ctx, span := s.tracer.Start(ctx, "synchronize projects", ports.WithAttribute("projects", projects.Len()))
	defer finish(span, &err)

	release, err := s.gate.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return s.synchronizeProjects(ctx, projects.Sorted())
}

// synchronizeProjects assumes the gate is held.
func (s *Synchronizer) synchronizeProjects(ctx context.Context, projects []domain.Checksum) error {
	resolvable := make([]domain.Checksum, 0, len(projects))
	seen := domain.NewChecksumSet()
	missing := domain.NewChecksumSet()
	for _, p := range projects {
		if p.IsNull() || seen.Contains(p) {
			continue
		}
		seen.Add(p)
		resolvable = append(resolvable, p)
		s.addIfNeeded(missing, p)
	}

	if err := s.fetchRound(ctx, "projects", missing); err != nil {
		return err
	}

	nodes, err := resolveAll[*domain.ProjectNode](ctx, s.provider, resolvable, s.opts.ProjectParallelism)
	if err != nil {
		return err
	}

	documents := domain.NewChecksumSet()
	for _, node := range nodes {
		s.collectChecksums(documents, node.Documents)
		s.collectChecksums(documents, node.AdditionalDocuments)
		s.collectChecksums(documents, node.AnalyzerConfigDocuments)
	}
	if err := s.fetchRound(ctx, "documents", documents); err != nil {
		return err
	}

	if !s.opts.DocumentContents {
		return nil
	}
	return s.synchronizeDocumentContents(ctx, nodes)
}

// synchronizeDocumentContents fetches the children of every document of nodes in one round.
func (s *Synchronizer) synchronizeDocumentContents(ctx context.Context, nodes []*domain.ProjectNode) error {
	all := domain.NewChecksumSet()
	for _, node := range nodes {
		for _, group := range [][]domain.Checksum{node.Documents, node.AdditionalDocuments, node.AnalyzerConfigDocuments} {
			for _, d := range group {
				if !d.IsNull() {
					all.Add(d)
				}
			}
		}
	}

	documents, err := resolveAll[*domain.ChildNode](ctx, s.provider, all.Sorted(), s.opts.ProjectParallelism)
	if err != nil {
		return err
	}

	contents := domain.NewChecksumSet()
	for _, doc := range documents {
		s.collect(contents, doc.Children)
	}
	return s.fetchRound(ctx, "document contents", contents)
}

// fetchRound performs one batch fetch. Empty sets are skipped without calling the provider.
func (s *Synchronizer) fetchRound(ctx context.Context, round string, checksums domain.ChecksumSet) error {
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "synchronization canceled"), "round", round)
	}
	if checksums.Len() == 0 {
		return nil
	}

	ctx, span := s.tracer.Start(ctx, "fetch "+round, ports.WithAttribute("checksums", checksums.Len()))
	defer span.End()

	if err := s.provider.SynchronizeAssets(ctx, checksums); err != nil {
		span.RecordError(err)
		err = zerr.With(zerr.Wrap(err, "failed to synchronize "+round), "round", round)
		return zerr.With(err, "checksums", checksums.Len())
	}
	return nil
}

func finish(span ports.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
	}
	span.End()
}
