package transform

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/askiada/go-augment/pkg/augment/model"
)

// DefaultCutPerc is the largest fraction removed from each border by CutSizeHard.
const DefaultCutPerc = 0.1

// Crop returns the part of img inside rect, clipped to the image bounds.
func Crop(img *model.Image, rect image.Rectangle) *model.Image {
	rect = rect.Intersect(image.Rect(0, 0, img.Width, img.Height))

	return mapPlanes(img, func(plane *image.Gray) *image.NRGBA {
		return imaging.Crop(plane, rect)
	})
}

// CutRect draws the crop window used by CutSizeHard for a height x width image.
// Each border loses a random fraction in [0, cutPerc) of the matching dimension.
func CutRect(rng Source, height, width int, cutPerc float64) image.Rectangle {
	right := rng.Float64() * cutPerc
	down := rng.Float64() * cutPerc
	left := rng.Float64() * cutPerc
	up := rng.Float64() * cutPerc

	// A literal keeps an inverted window empty where image.Rect would swap its corners.
	return image.Rectangle{
		Min: image.Pt(int(float64(width)*left), int(float64(height)*up)),
		Max: image.Pt(width-int(float64(width)*right), height-int(float64(height)*down)),
	}
}

// CutSizeHard crops img and lbl by the same random amount on each border.
// The window is computed from the size of img.
func CutSizeHard(rng Source, img, lbl *model.Image, cutPerc float64) (*model.Image, *model.Image, error) {
	rect := CutRect(rng, img.Height, img.Width, cutPerc)

	return Crop(img, rect), Crop(lbl, rect), nil
}
