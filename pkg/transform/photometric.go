package transform

import (
	"github.com/askiada/go-augment/pkg/augment/model"
)

const (
	// MaxShift is the largest brightness offset drawn at intensity 1.
	MaxShift = 32.0

	minContrast = 0.1
	maxContrast = 2.0
)

func clipUint8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}

	return uint8(v)
}

// shiftOffsets draws one offset per channel in [-32*amount, 32*amount).
func shiftOffsets(rng Source, channels int, amount float64) []int {
	variance := int(amount * MaxShift)
	offsets := make([]int, channels)
	for c := range offsets {
		offsets[c] = intRange(rng, -variance, variance)
	}

	return offsets
}

// PixelShift adds a random offset to every channel of img, the same offset for
// every pixel, and clips the result to [0, 255].
func PixelShift(rng Source, img *model.Image, amount float64) (*model.Image, error) {
	offsets := shiftOffsets(rng, img.Channels, amount)
	out := img.Clone()
	for i, v := range img.Pix {
		out.Pix[i] = clipUint8(int(v) + offsets[i%img.Channels])
	}

	return out, nil
}

// ContrastFactor draws the multiplier used by Contrast.
func ContrastFactor(rng Source, amount float64) float64 {
	std := 0.5 * amount
	factor := rng.Float64()*std + (1 - std)

	return clamp(factor, minContrast, maxContrast)
}

// Contrast multiplies every value of img by a random factor in [1-amount/2, 1].
func Contrast(rng Source, img *model.Image, amount float64) (*model.Image, error) {
	return Scale(img, ContrastFactor(rng, amount)), nil
}

// Scale multiplies every value of img by factor, clipping to [0, 255] and truncating.
func Scale(img *model.Image, factor float64) *model.Image {
	f := float32(factor)
	out := img.Clone()
	for i, v := range img.Pix {
		out.Pix[i] = uint8(clamp32(float32(v)*f, 0, 255))
	}

	return out
}

// Noise replaces each pixel with probability amount/2 by a random colour.
// All channels of a replaced pixel are redrawn.
func Noise(rng Source, img *model.Image, amount float64) (*model.Image, error) {
	threshold := amount / 2
	out := img.Clone()
	for p := 0; p < img.Height*img.Width; p++ {
		if rng.Float64() >= threshold {
			continue
		}
		for c := 0; c < img.Channels; c++ {
			out.Pix[p*img.Channels+c] = uint8(rng.Intn(256))
		}
	}

	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
