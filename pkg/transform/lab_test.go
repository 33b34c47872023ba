package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-augment/pkg/augment/model"
	"github.com/askiada/go-augment/pkg/transform"
)

func TestLabShiftZeroIsNearIdentity(t *testing.T) {
	img, err := model.FromPix([]uint8{
		0, 0, 0, 255, 255, 255,
		200, 30, 60, 10, 180, 90,
	}, 2, 2, 3)
	require.NoError(t, err)

	got, err := transform.LabShift(&scriptedSource{}, img, 0, transform.RGB)
	require.NoError(t, err)
	// 8-bit Lab storage costs up to a few levels per channel, most near black
	for i := range img.Pix {
		assert.InDelta(t, img.Pix[i], got.Pix[i], 8, "value %d", i)
	}
}

func TestLabShiftLightness(t *testing.T) {
	img := filledImage(t, 2, 2, 3, 100)

	// amount 0.5 draws -16 + Intn(32): +15 on L, 0 on a and b
	rng := &scriptedSource{ints: []int{31, 16, 16}}
	got, err := transform.LabShift(rng, img, 0.5, transform.BGR)
	require.NoError(t, err)

	for i, v := range got.Pix {
		assert.Greater(t, v, img.Pix[i])
	}
	assert.InDelta(t, got.Pix[0], got.Pix[1], 2)
	assert.InDelta(t, got.Pix[1], got.Pix[2], 2)
}

func TestLabShiftKeepsAlpha(t *testing.T) {
	img, err := model.FromPix([]uint8{120, 40, 200, 77}, 1, 1, 4)
	require.NoError(t, err)

	got, err := transform.LabShift(&scriptedSource{ints: []int{0, 0, 0}}, img, 1, transform.RGB)
	require.NoError(t, err)
	assert.Equal(t, uint8(77), got.Pix[3])
	assert.Equal(t, []int{1, 1, 4}, got.Shape())
}

func TestLabShiftUnsupportedChannels(t *testing.T) {
	_, err := transform.LabShift(&scriptedSource{ints: []int{0}}, model.NewGray(2, 2), 0.5, transform.RGB)
	assert.ErrorIs(t, err, transform.ErrUnsupportedChannels)
}

func TestColorOrderString(t *testing.T) {
	assert.Equal(t, "RGB", transform.RGB.String())
	assert.Equal(t, "BGR", transform.BGR.String())
}
