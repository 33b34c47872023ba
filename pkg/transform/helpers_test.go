package transform_test

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

func grayImage(t *testing.T, rows [][]uint8) *model.Image {
	t.Helper()

	img := model.NewGray(len(rows), len(rows[0]))
	for y, row := range rows {
		copy(img.Pix[y*img.Width:], row)
	}

	return img
}

func grayRows(t *testing.T, img *model.Image) [][]uint8 {
	t.Helper()

	rows := make([][]uint8, img.Height)
	for y := range rows {
		rows[y] = make([]uint8, img.Width)
		for x := range rows[y] {
			rows[y][x] = img.At(y, x, 0)
		}
	}

	return rows
}

func filledImage(t *testing.T, height, width, channels int, value uint8) *model.Image {
	t.Helper()

	img := model.New(height, width, channels)
	for i := range img.Pix {
		img.Pix[i] = value
	}

	return img
}

func rampImage(t *testing.T, height, width, channels int) *model.Image {
	t.Helper()

	img := model.New(height, width, channels)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7 % 256)
	}

	return img
}
