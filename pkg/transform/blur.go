package transform

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/askiada/go-augment/pkg/augment/model"
)

const (
	blurSkipProbability = 0.25
	maxBlurSteps        = 10.0
)

// BlurKernelSize draws an odd kernel size in [1, 2*int(10*amount)-1].
func BlurKernelSize(rng Source, amount float64) int {
	return 2*intRange(rng, 0, int(amount*maxBlurSteps)) + 1
}

// Blur smooths img with a Gaussian of random kernel size, or returns img
// unchanged one time out of four.
func Blur(rng Source, img *model.Image, amount float64) (*model.Image, error) {
	if rng.Float64() < blurSkipProbability {
		return img, nil
	}

	return GaussianBlur(img, BlurKernelSize(rng, amount)), nil
}

// GaussianBlur smooths every channel of img with a Gaussian whose sigma is
// derived from the kernel size as OpenCV does when no sigma is given.
// A kernel size of 1 or less leaves the image unchanged.
func GaussianBlur(img *model.Image, kernelSize int) *model.Image {
	if kernelSize <= 1 {
		return img
	}
	sigma := KernelSigma(kernelSize)

	return mapPlanes(img, func(plane *image.Gray) *image.NRGBA {
		return imaging.Blur(plane, sigma)
	})
}

// KernelSigma returns the standard deviation matching an odd kernel size.
func KernelSigma(kernelSize int) float64 {
	return 0.3*((float64(kernelSize)-1)*0.5-1) + 0.8
}
