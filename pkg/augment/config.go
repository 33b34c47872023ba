package augment

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-augment/pkg/transform"
)

// RotationMode selects which rotation operator runs, if any.
type RotationMode int

const (
	RotateNone RotationMode = iota
	// RotateHard rotates by a random multiple of 90 degrees without resampling.
	RotateHard
	// RotateSoft rotates by a random whole number of degrees with interpolation.
	RotateSoft
)

func (m RotationMode) String() string {
	switch m {
	case RotateNone:
		return "none"
	case RotateHard:
		return "hard"
	case RotateSoft:
		return "soft"
	}

	return "unknown"
}

// RotationFromFlags maps the rotate_hard and rotate_soft switches to a mode.
// Soft rotation wins when both are set.
func RotationFromFlags(hard, soft bool) RotationMode {
	switch {
	case soft:
		return RotateSoft
	case hard:
		return RotateHard
	}

	return RotateNone
}

// Config enables and scales the operators of an Orchestrator.
//
// Intensities lie in [0, 1]; zero disables the operator and larger values
// raise both the probability and the amplitude of its effect.
// The zero value disables everything.
type Config struct {
	Rotation RotationMode
	// Zoom shrinks each axis by up to Zoom/2.
	Zoom float64
	// Noise replaces pixels with probability Noise/2.
	Noise float64
	// PixelShift adds up to ±32*PixelShift to every channel.
	PixelShift float64
	// Blur draws Gaussian kernels up to 20*Blur-1 pixels wide.
	Blur float64
	// LabShift adds up to ±32*LabShift to every 8-bit Lab channel.
	LabShift float64
	// Contrast scales pixel values by a factor down to 1-Contrast/2.
	Contrast float64
	Flip     bool
	// PositionShift is accepted for compatibility but no operator uses it.
	PositionShift bool
	// ColorOrder is the channel order LabShift reads colours in.
	ColorOrder transform.ColorOrder
}

// DefaultConfig returns the default augmentation settings.
func DefaultConfig() Config {
	return Config{
		Rotation:      RotateHard,
		Zoom:          0.5,
		Noise:         0.5,
		PixelShift:    0.5,
		Blur:          0.5,
		LabShift:      0.5,
		Contrast:      0.5,
		Flip:          true,
		PositionShift: true,
		ColorOrder:    transform.RGB,
	}
}

// Validate checks every intensity lies in [0, 1] and the modes are known.
func (c Config) Validate() error {
	intensities := []struct {
		name  string
		value float64
	}{
		{"zoom", c.Zoom},
		{"noise", c.Noise},
		{"pixel_shift", c.PixelShift},
		{"blur", c.Blur},
		{"lab_shift", c.LabShift},
		{"contrast", c.Contrast},
	}
	for _, in := range intensities {
		if math.IsNaN(in.value) || in.value < 0 || in.value > 1 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be in [0, 1], got %v", in.name, in.value)
		}
	}
	if c.Rotation < RotateNone || c.Rotation > RotateSoft {
		return errors.Wrapf(ErrInvalidConfig, "unknown rotation mode %d", c.Rotation)
	}
	if c.ColorOrder != transform.RGB && c.ColorOrder != transform.BGR {
		return errors.Wrapf(ErrInvalidConfig, "unknown color order %d", c.ColorOrder)
	}

	return nil
}
