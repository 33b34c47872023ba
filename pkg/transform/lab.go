package transform

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/askiada/go-augment/pkg/augment/model"
)

// ColorOrder is the order of the colour channels of an image.
type ColorOrder int

const (
	RGB ColorOrder = iota
	BGR
)

func (o ColorOrder) String() string {
	if o == BGR {
		return "BGR"
	}

	return "RGB"
}

// LabShift converts img to 8-bit CIE L*a*b*, adds one random offset per Lab
// channel, clips to [0, 255] and converts back.
// img must have 3 channels, or 4 with the last one kept untouched as alpha.
func LabShift(rng Source, img *model.Image, amount float64, order ColorOrder) (*model.Image, error) {
	if img.Channels != 3 && img.Channels != 4 {
		return nil, errors.Wrapf(ErrUnsupportedChannels, "lab shift needs 3 or 4 channels, got %v", img)
	}
	offsets := shiftOffsets(rng, 3, amount)

	out := img.Clone()
	for p := 0; p < img.Height*img.Width; p++ {
		px := out.Pix[p*img.Channels : p*img.Channels+3]
		r, g, b := px[0], px[1], px[2]
		if order == BGR {
			r, b = b, r
		}

		lab := toLab8(r, g, b)
		for c := range lab {
			lab[c] = clipUint8(int(lab[c]) + offsets[c])
		}
		r, g, b = fromLab8(lab)

		if order == BGR {
			r, b = b, r
		}
		px[0], px[1], px[2] = r, g, b
	}

	return out, nil
}

// toLab8 encodes a colour the way 8-bit Lab images are stored:
// L scaled to [0, 255], a and b offset by 128.
func toLab8(r, g, b uint8) [3]uint8 {
	l, a, bb := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Lab()

	return [3]uint8{
		clipUint8(int(math.Round(l * 255))),
		clipUint8(int(math.Round(a*100 + 128))),
		clipUint8(int(math.Round(bb*100 + 128))),
	}
}

func fromLab8(lab [3]uint8) (r, g, b uint8) {
	c := colorful.Lab(float64(lab[0])/255, (float64(lab[1])-128)/100, (float64(lab[2])-128)/100)

	return c.Clamped().RGB255()
}
