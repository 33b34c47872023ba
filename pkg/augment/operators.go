package augment

import (
	"github.com/askiada/go-augment/pkg/augment/model"
	"github.com/askiada/go-augment/pkg/transform"
)

const (
	LabShiftName    = "lab_shift"
	PixelShiftName  = "pixel_shift"
	ContrastName    = "contrast"
	BlurName        = "blur"
	FlipName        = "flip"
	ZoomName        = "zoom"
	RotateHardName  = "rotate_hard"
	RotateSoftName  = "rotate_soft"
	NoiseName       = "noise"
	CutSizeHardName = "cut_size_hard"
)

type pairFn func(rng transform.Source, img, lbl *model.Image) (*model.Image, *model.Image, error)

type operator struct {
	info  *model.OperatorInfo
	apply pairFn
}

// imageOnly lifts a photometric transform to a pair, leaving the label as is.
func imageOnly(fn func(rng transform.Source, img *model.Image) (*model.Image, error)) pairFn {
	return func(rng transform.Source, img, lbl *model.Image) (*model.Image, *model.Image, error) {
		out, err := fn(rng, img)
		if err != nil {
			return nil, nil, err
		}

		return out, lbl, nil
	}
}

// buildPlan returns the enabled operators in execution order.
func buildPlan(cfg Config) []*operator {
	candidates := []struct {
		enabled bool
		name    string
		kind    model.OperatorKind
		apply   pairFn
	}{
		{cfg.LabShift > 0, LabShiftName, model.PhotometricKind, imageOnly(func(rng transform.Source, img *model.Image) (*model.Image, error) {
			return transform.LabShift(rng, img, cfg.LabShift, cfg.ColorOrder)
		})},
		{cfg.PixelShift > 0, PixelShiftName, model.PhotometricKind, imageOnly(func(rng transform.Source, img *model.Image) (*model.Image, error) {
			return transform.PixelShift(rng, img, cfg.PixelShift)
		})},
		{cfg.Contrast > 0, ContrastName, model.PhotometricKind, imageOnly(func(rng transform.Source, img *model.Image) (*model.Image, error) {
			return transform.Contrast(rng, img, cfg.Contrast)
		})},
		{cfg.Blur > 0, BlurName, model.PhotometricKind, imageOnly(func(rng transform.Source, img *model.Image) (*model.Image, error) {
			return transform.Blur(rng, img, cfg.Blur)
		})},
		{cfg.Flip, FlipName, model.GeometricKind, transform.Flip},
		{cfg.Zoom > 0, ZoomName, model.GeometricKind, func(rng transform.Source, img, lbl *model.Image) (*model.Image, *model.Image, error) {
			return transform.Zoom(rng, img, lbl, cfg.Zoom)
		}},
		{cfg.Rotation == RotateHard, RotateHardName, model.GeometricKind, transform.RotateHard},
		{cfg.Rotation == RotateSoft, RotateSoftName, model.GeometricKind, transform.RotateSoft},
		{cfg.Noise > 0, NoiseName, model.PhotometricKind, imageOnly(func(rng transform.Source, img *model.Image) (*model.Image, error) {
			return transform.Noise(rng, img, cfg.Noise)
		})},
	}

	plan := []*operator{}
	for _, c := range candidates {
		if !c.enabled {
			continue
		}
		plan = append(plan, &operator{
			info:  &model.OperatorInfo{Name: c.name, Kind: c.kind},
			apply: c.apply,
		})
	}

	return plan
}

func cutSizeHardOperator(cutPerc float64) *operator {
	return &operator{
		info: &model.OperatorInfo{Name: CutSizeHardName, Kind: model.GeometricKind},
		apply: func(rng transform.Source, img, lbl *model.Image) (*model.Image, *model.Image, error) {
			return transform.CutSizeHard(rng, img, lbl, cutPerc)
		},
	}
}
