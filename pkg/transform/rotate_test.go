package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-augment/pkg/transform"
)

func TestRotationMatrixTurnsCounterClockwise(t *testing.T) {
	m := transform.RotationMatrix(5, 5, 90)

	// (6, 5), right of the centre, lands above it.
	x := m[0]*6 + m[1]*5 + m[2]
	y := m[3]*6 + m[4]*5 + m[5]
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 4, y, 1e-9)
}

func TestRotateKeepsSizeAndClearsCorners(t *testing.T) {
	img := filledImage(t, 10, 16, 3, 255)

	got := transform.Rotate(img, 45)
	require.Equal(t, []int{10, 16, 3}, got.Shape())
	assert.Equal(t, uint8(0), got.At(0, 0, 0))
	assert.Equal(t, uint8(0), got.At(9, 15, 2))
	assert.InDelta(t, 255, got.At(5, 8, 1), 1)
}

func TestRotateHalfTurn(t *testing.T) {
	img := grayImage(t, [][]uint8{
		{10, 20, 30, 40},
		{50, 60, 70, 80},
		{90, 100, 110, 120},
		{130, 140, 150, 160},
	})

	got := transform.Rotate(img, 180)
	assert.Equal(t, 2, got.Rank())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.InDelta(t, img.At(3-y, 3-x, 0), got.At(y, x, 0), 1, "(%d, %d)", y, x)
		}
	}
}

func TestRotateSoftSameAngleForPair(t *testing.T) {
	img := rampImage(t, 12, 12, 3)
	lbl := rampImage(t, 12, 12, 3)

	gotImg, gotLbl, err := transform.RotateSoft(&scriptedSource{ints: []int{37}}, img, lbl)
	require.NoError(t, err)
	assert.True(t, gotImg.Equal(gotLbl))
	assert.True(t, transform.Rotate(img, 37).Equal(gotImg))
}
