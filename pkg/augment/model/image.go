package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyImage is returned when an image has no pixels.
var ErrEmptyImage = errors.New("image must have at least one pixel")

// Image is an 8-bit array shaped (Height, Width, Channels).
//
// Pix holds the values row-major with channels interleaved, so the value of
// channel c at row y and column x is Pix[(y*Width+x)*Channels+c].
// A single channel image may be represented without its channel axis, in which
// case Shape reports (Height, Width). See EnsureChannelDim and StripChannelDim.
type Image struct {
	Pix      []uint8
	Height   int
	Width    int
	Channels int

	flat bool
}

// New creates a zeroed (height, width, channels) image.
func New(height, width, channels int) *Image {
	return &Image{
		Pix:      make([]uint8, height*width*channels),
		Height:   height,
		Width:    width,
		Channels: channels,
	}
}

// NewGray creates a zeroed (height, width) image.
func NewGray(height, width int) *Image {
	img := New(height, width, 1)
	img.flat = true

	return img
}

// FromPix wraps pix as a (height, width, channels) image without copying it.
func FromPix(pix []uint8, height, width, channels int) (*Image, error) {
	if len(pix) != height*width*channels {
		return nil, errors.Errorf("pix has %d values, want %d for shape (%d, %d, %d)",
			len(pix), height*width*channels, height, width, channels)
	}

	return &Image{Pix: pix, Height: height, Width: width, Channels: channels}, nil
}

// NewLike creates a zeroed image with the given spatial size and the channel
// count and rank of src.
func NewLike(src *Image, height, width int) *Image {
	img := New(height, width, src.Channels)
	img.flat = src.flat

	return img
}

// Rank is 2 for an image without a channel axis and 3 otherwise.
func (img *Image) Rank() int {
	if img.flat {
		return 2
	}

	return 3
}

// Shape returns the dimensions of the image.
func (img *Image) Shape() []int {
	if img.flat {
		return []int{img.Height, img.Width}
	}

	return []int{img.Height, img.Width, img.Channels}
}

// Empty reports whether the image has no pixel.
func (img *Image) Empty() bool {
	return img == nil || img.Height <= 0 || img.Width <= 0 || img.Channels <= 0
}

// SameSize reports whether both images have the same height and width.
func (img *Image) SameSize(other *Image) bool {
	return img.Height == other.Height && img.Width == other.Width
}

// At returns the value of channel c at (y, x).
func (img *Image) At(y, x, c int) uint8 {
	return img.Pix[(y*img.Width+x)*img.Channels+c]
}

// Set sets the value of channel c at (y, x).
func (img *Image) Set(y, x, c int, v uint8) {
	img.Pix[(y*img.Width+x)*img.Channels+c] = v
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)

	return &Image{
		Pix:      pix,
		Height:   img.Height,
		Width:    img.Width,
		Channels: img.Channels,
		flat:     img.flat,
	}
}

// Equal reports whether both images have the same shape and values.
func (img *Image) Equal(other *Image) bool {
	if img.flat != other.flat || img.Height != other.Height || img.Width != other.Width || img.Channels != other.Channels {
		return false
	}
	for i := range img.Pix {
		if img.Pix[i] != other.Pix[i] {
			return false
		}
	}

	return true
}

func (img *Image) String() string {
	return fmt.Sprintf("Image%v", img.Shape())
}
