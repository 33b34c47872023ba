package augment

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-augment/pkg/augment/model"
	"github.com/askiada/go-augment/pkg/transform"
)

// sequentialStage applies op to the samples first, first+step, first+2*step...
func sequentialStage(ctx context.Context, rng transform.Source, op *operator, images, labels []*model.Image, first, step int) error {
	for i := first; i < len(images); i += step {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		img, lbl, err := op.apply(rng, images[i], labels[i])
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		images[i], labels[i] = img, lbl
	}

	return nil
}

// concurrentStage spreads the samples over workers, worker w taking every
// index congruent to w. Each worker owns a generator derived from rng.
func concurrentStage(ctx context.Context, rng Source, op *operator, images, labels []*model.Image, workers int) error {
	sources := workerSources(rng, workers)
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(workers)
	for goIdx := 0; goIdx < workers; goIdx++ {
		localGoIdx := goIdx
		errGrp.Go(func() error {
			return sequentialStage(dCtx, sources[localGoIdx], op, images, labels, localGoIdx, workers)
		})
	}

	return errGrp.Wait()
}

func runStage(ctx context.Context, rng Source, concurrent int, op *operator, images, labels []*model.Image) error {
	workers := min(concurrent, len(images))
	if workers <= 1 {
		return sequentialStage(ctx, rng, op, images, labels, 0, 1)
	}

	return concurrentStage(ctx, rng, op, images, labels, workers)
}
