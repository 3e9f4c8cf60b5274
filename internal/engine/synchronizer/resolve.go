package synchronizer

import (
	"context"
	"fmt"

	"go.trai.ch/snapsync/internal/core/domain"
	"go.trai.ch/snapsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// resolveAs resolves c and narrows the result to T.
func resolveAs[T domain.Object](ctx context.Context, provider ports.AssetProvider, c domain.Checksum) (T, error) {
	var zero T

	obj, err := provider.Resolve(ctx, c)
	if err != nil {
		return zero, zerr.With(zerr.Wrap(err, "failed to resolve checksum"), "checksum", c.String())
	}

	node, ok := obj.(T)
	if !ok {
		actual := "none"
		if obj != nil {
			actual = obj.Kind().String()
		}
		kindErr := zerr.With(zerr.Wrap(domain.ErrUnexpectedObjectKind, "resolved object has the wrong kind"), "checksum", c.String())
		kindErr = zerr.With(kindErr, "expected", fmt.Sprintf("%T", zero))
		return zero, zerr.With(kindErr, "actual", actual)
	}
	return node, nil
}

// resolveAll resolves every checksum to T. Results keep the order of checksums.
// With parallelism above one the resolutions run concurrently, bounded by parallelism.
func resolveAll[T domain.Object](
	ctx context.Context,
	provider ports.AssetProvider,
	checksums []domain.Checksum,
	parallelism int,
) ([]T, error) {
	nodes := make([]T, len(checksums))

	if parallelism <= 1 {
		for i, c := range checksums {
			if err := ctx.Err(); err != nil {
				return nil, zerr.Wrap(err, "synchronization canceled")
			}
			node, err := resolveAs[T](ctx, provider, c)
			if err != nil {
				return nil, err
			}
			nodes[i] = node
		}
		return nodes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, c := range checksums {
		g.Go(func() error {
			node, err := resolveAs[T](gctx, provider, c)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}
