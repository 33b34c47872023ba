package augment

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/askiada/go-augment/pkg/augment/model"
	"github.com/askiada/go-augment/pkg/transform"
)

// DefaultCutPerc is the default cutPerc of CutSizeHard.
const DefaultCutPerc = transform.DefaultCutPerc

// Orchestrator applies a fixed chain of randomized operators to batches of samples.
// It is not safe for concurrent use.
type Orchestrator struct {
	cfg        Config
	rng        Source
	concurrent int
	hooks      []model.Hook
	plan       []*operator
}

// New creates an orchestrator for cfg.
func New(cfg Config, opts ...Option) (*Orchestrator, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	orc := &Orchestrator{
		cfg:        cfg,
		concurrent: 1,
		plan:       buildPlan(cfg),
	}
	for _, opt := range opts {
		opt(orc)
	}
	if orc.rng == nil {
		orc.rng = newDefaultSource()
	}

	err = orc.prepareHooks()
	if err != nil {
		return nil, err
	}

	klog.V(1).Infof("augment: plan %v, rotation %s, concurrency %d", orc.Plan(), cfg.Rotation, orc.concurrent)
	if cfg.PositionShift {
		klog.V(1).Info("augment: position_shift is enabled but has no operator, ignoring it")
	}

	return orc, nil
}

func (o *Orchestrator) prepareHooks() error {
	for _, hook := range o.hooks {
		err := hook.New()
		if err != nil {
			return errors.Wrap(err, "unable to initialise hook")
		}

		parent := model.StartOperator
		for _, op := range o.plan {
			err = hook.PrepareOperator(parent, op.info)
			if err != nil {
				return errors.Wrapf(err, "unable to prepare operator %s", op.info.Name)
			}
			parent = op.info
		}
		err = hook.PrepareOperator(parent, model.EndOperator)
		if err != nil {
			return errors.Wrap(err, "unable to prepare end operator")
		}
	}

	return nil
}

// Config returns the configuration of the orchestrator.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Plan returns the names of the enabled operators in execution order.
func (o *Orchestrator) Plan() []string {
	names := make([]string, len(o.plan))
	for i, op := range o.plan {
		names[i] = op.info.Name
	}

	return names
}

// Augment runs every enabled operator over the batch.
//
// images[i] is paired with labels[i]. Both slices are updated in place with
// the augmented samples and returned. The images themselves are never modified:
// every changed sample is a new image. The first failing sample aborts the call.
func (o *Orchestrator) Augment(ctx context.Context, images, labels []*model.Image) ([]*model.Image, []*model.Image, error) {
	start := time.Now()

	err := validateBatch(images, labels)
	if err != nil {
		return nil, nil, err
	}

	for _, op := range o.plan {
		err = o.run(ctx, op, images, labels)
		if err != nil {
			return nil, nil, err
		}
	}

	err = o.notify(model.EndOperator, len(images), time.Since(start))
	if err != nil {
		return nil, nil, err
	}

	return images, labels, nil
}

// CutSizeHard crops every sample by a random fraction in [0, cutPerc) of its
// size on each border. Image and label lose exactly the same rows and columns.
func (o *Orchestrator) CutSizeHard(ctx context.Context, images, labels []*model.Image, cutPerc float64) ([]*model.Image, []*model.Image, error) {
	err := validateBatch(images, labels)
	if err != nil {
		return nil, nil, err
	}

	err = o.run(ctx, cutSizeHardOperator(cutPerc), images, labels)
	if err != nil {
		return nil, nil, err
	}

	return images, labels, nil
}

func (o *Orchestrator) run(ctx context.Context, op *operator, images, labels []*model.Image) error {
	start := time.Now()

	err := runStage(ctx, o.rng, o.concurrent, op, images, labels)
	if err != nil {
		return errors.Wrap(err, op.info.Name)
	}

	elapsed := time.Since(start)
	klog.V(2).Infof("augment: %s processed %d samples in %s", op.info.Name, len(images), elapsed)

	return o.notify(op.info, len(images), elapsed)
}

func (o *Orchestrator) notify(op *model.OperatorInfo, samples int, elapsed time.Duration) error {
	for _, hook := range o.hooks {
		err := hook.OnOperatorOutput(op, samples, elapsed)
		if err != nil {
			return errors.Wrapf(err, "hook failed on %s output", op.Name)
		}
	}

	return nil
}

// Close finishes every hook.
func (o *Orchestrator) Close() error {
	for _, hook := range o.hooks {
		err := hook.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish hook")
		}
	}

	return nil
}

func validateBatch(images, labels []*model.Image) error {
	if len(images) != len(labels) {
		return errors.Wrapf(ErrBatchLength, "got %d images and %d labels", len(images), len(labels))
	}
	for i := range images {
		if images[i].Empty() {
			return errors.Wrapf(model.ErrEmptyImage, "image %d", i)
		}
		if labels[i].Empty() {
			return errors.Wrapf(model.ErrEmptyImage, "label %d", i)
		}
		if !images[i].SameSize(labels[i]) {
			return errors.Wrapf(ErrShapeMismatch, "sample %d: image %v, label %v", i, images[i], labels[i])
		}
	}

	return nil
}
