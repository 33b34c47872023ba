package transform

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/askiada/go-augment/pkg/augment/model"
)

const fullTurn = 360

// RotationMatrix returns the affine map rotating points counter-clockwise by
// degrees around (cx, cy), in image coordinates (y pointing down).
func RotationMatrix(cx, cy, degrees float64) f64.Aff3 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)

	return f64.Aff3{
		cos, sin, (1-cos)*cx - sin*cy,
		-sin, cos, sin*cx + (1-cos)*cy,
	}
}

// Rotate rotates img counter-clockwise by degrees around its centre with
// bilinear interpolation. The output keeps the size of img and the uncovered
// border is zero.
func Rotate(img *model.Image, degrees float64) *model.Image {
	src := model.EnsureChannelDim(img)
	s2d := RotationMatrix(float64(src.Width)/2, float64(src.Height)/2, degrees)

	planes := splitPlanes(src)
	for c, plane := range planes {
		dst := image.NewGray(plane.Bounds())
		draw.BiLinear.Transform(dst, s2d, plane, plane.Bounds(), draw.Src, nil)
		planes[c] = dst
	}

	return mergeGray(planes, img)
}

// RotateSoft rotates img and lbl by the same random whole number of degrees.
func RotateSoft(rng Source, img, lbl *model.Image) (*model.Image, *model.Image, error) {
	degrees := float64(rng.Intn(fullTurn))

	return Rotate(img, degrees), Rotate(lbl, degrees), nil
}
