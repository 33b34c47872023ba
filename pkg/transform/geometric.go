package transform

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/askiada/go-augment/pkg/augment/model"
)

const maxZoomShrink = -0.5

// FlipLR mirrors img left to right.
func FlipLR(img *model.Image) *model.Image {
	return mapPlanes(img, func(plane *image.Gray) *image.NRGBA {
		return imaging.FlipH(plane)
	})
}

// FlipUD mirrors img top to bottom.
func FlipUD(img *model.Image) *model.Image {
	return mapPlanes(img, func(plane *image.Gray) *image.NRGBA {
		return imaging.FlipV(plane)
	})
}

// Flip mirrors img and lbl left to right, top to bottom, or not at all, each
// with probability 1/3.
func Flip(rng Source, img, lbl *model.Image) (*model.Image, *model.Image, error) {
	v := rng.Float64()
	switch {
	case v < 1.0/3.0:
		return FlipLR(img), FlipLR(lbl), nil
	case v < 2.0/3.0:
		return FlipUD(img), FlipUD(lbl), nil
	}

	return img, lbl, nil
}

// Rot90 rotates img clockwise by k quarter turns. Height and width swap when k is odd.
func Rot90(img *model.Image, k int) *model.Image {
	var rotate func(image.Image) *image.NRGBA
	switch ((k % 4) + 4) % 4 {
	case 0:
		return img
	case 1:
		rotate = imaging.Rotate270
	case 2:
		rotate = imaging.Rotate180
	default:
		rotate = imaging.Rotate90
	}

	return mapPlanes(img, func(plane *image.Gray) *image.NRGBA {
		return rotate(plane)
	})
}

// RotateHard rotates img and lbl by the same random multiple of 90 degrees.
func RotateHard(rng Source, img, lbl *model.Image) (*model.Image, *model.Image, error) {
	k := rng.Intn(4)

	return Rot90(img, k), Rot90(lbl, k), nil
}

// Resize scales img to width x height with a Catmull-Rom cubic filter.
func Resize(img *model.Image, width, height int) *model.Image {
	return mapPlanes(img, func(plane *image.Gray) *image.NRGBA {
		return imaging.Resize(plane, width, height, imaging.CatmullRom)
	})
}

// Paste draws src onto a zero canvas of width x height with its top left
// corner at (x, y). Pixels of src falling outside the canvas are dropped.
func Paste(src *model.Image, width, height, x, y int) *model.Image {
	return mapPlanes(src, func(plane *image.Gray) *image.NRGBA {
		return imaging.Paste(imaging.New(width, height, color.Black), plane, image.Pt(x, y))
	})
}

// ZoomScales draws the horizontal and vertical scale factors used by Zoom.
// Both lie in (1-amount/2, 1].
func ZoomScales(rng Source, amount float64) (scaleX, scaleY float64) {
	shrink := maxZoomShrink * amount
	scaleX = 1 + shrink*rng.Float64()
	scaleY = 1 + shrink*rng.Float64()

	return scaleX, scaleY
}

// Zoom shrinks img and lbl by the same random factors, one per axis, and
// centres them on a zero background of their original size.
func Zoom(rng Source, img, lbl *model.Image, amount float64) (*model.Image, *model.Image, error) {
	scaleX, scaleY := ZoomScales(rng, amount)

	return ZoomOut(img, scaleX, scaleY), ZoomOut(lbl, scaleX, scaleY), nil
}

// ZoomOut resizes img by (scaleX, scaleY) and centres the result inside an
// image of the original size. Offsets are floor((original-resized)/2) per axis.
func ZoomOut(img *model.Image, scaleX, scaleY float64) *model.Image {
	src := model.EnsureChannelDim(img)
	width := scaledDim(src.Width, scaleX)
	height := scaledDim(src.Height, scaleY)
	resized := Resize(src, width, height)
	out := Paste(resized, src.Width, src.Height, floorHalf(src.Width-width), floorHalf(src.Height-height))

	return model.MatchRank(out, img)
}

func scaledDim(dim int, scale float64) int {
	return max(1, int(math.Round(float64(dim)*scale)))
}

func floorHalf(v int) int {
	return int(math.Floor(float64(v) / 2))
}
