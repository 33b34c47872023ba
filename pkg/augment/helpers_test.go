package augment_test

import (
	"testing"

	"github.com/askiada/go-augment/pkg/augment/model"
)

// scriptedSource replays fixed values, cycling when exhausted.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++

	return v
}

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[s.ii%len(s.ints)]
	s.ii++

	return v % n
}

func (s *scriptedSource) Int63() int64 {
	return 1
}

func rampImage(t *testing.T, height, width, channels int) *model.Image {
	t.Helper()

	img := model.New(height, width, channels)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 13 % 256)
	}

	return img
}

func createBatch(t *testing.T, total, height, width int) ([]*model.Image, []*model.Image) {
	t.Helper()

	images := make([]*model.Image, total)
	labels := make([]*model.Image, total)
	for i := range images {
		images[i] = rampImage(t, height, width, 3)
		labels[i] = model.StripChannelDim(rampImage(t, height, width, 1))
	}

	return images, labels
}

func cloneBatch(t *testing.T, batch []*model.Image) []*model.Image {
	t.Helper()

	res := make([]*model.Image, len(batch))
	for i, img := range batch {
		res[i] = img.Clone()
	}

	return res
}
