package transform

import (
	"image"

	"github.com/askiada/go-augment/pkg/augment/model"
)

// splitPlanes copies every channel of img into its own gray image.
func splitPlanes(img *model.Image) []*image.Gray {
	planes := make([]*image.Gray, img.Channels)
	for c := range planes {
		plane := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		for i := 0; i < img.Height*img.Width; i++ {
			plane.Pix[i] = img.Pix[i*img.Channels+c]
		}
		planes[c] = plane
	}

	return planes
}

// mapPlanes applies fn to every channel of img and interleaves the results
// into a new image with the rank of img. fn must return planes of equal size.
func mapPlanes(img *model.Image, fn func(plane *image.Gray) *image.NRGBA) *model.Image {
	var out *model.Image
	for c, plane := range splitPlanes(model.EnsureChannelDim(img)) {
		res := fn(plane)
		bounds := res.Bounds()
		if out == nil {
			out = model.NewLike(img, bounds.Dy(), bounds.Dx())
		}
		// imaging widens gray input to NRGBA with R == G == B.
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				out.Pix[(y*out.Width+x)*out.Channels+c] = res.Pix[res.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)]
			}
		}
	}

	return out
}

// mergeGray interleaves gray planes of the same size into an image with the rank of like.
func mergeGray(planes []*image.Gray, like *model.Image) *model.Image {
	bounds := planes[0].Bounds()
	out := model.NewLike(like, bounds.Dy(), bounds.Dx())
	for c, plane := range planes {
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				out.Pix[(y*out.Width+x)*out.Channels+c] = plane.Pix[plane.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)]
			}
		}
	}

	return out
}
