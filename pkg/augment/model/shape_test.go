package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-augment/pkg/augment/model"
)

func TestEnsureChannelDim(t *testing.T) {
	tcs := map[string]struct {
		img      *model.Image
		expected []int
	}{
		"gray 2d":  {img: model.NewGray(3, 4), expected: []int{3, 4, 1}},
		"gray 3d":  {img: model.New(3, 4, 1), expected: []int{3, 4, 1}},
		"color 3d": {img: model.New(3, 4, 3), expected: []int{3, 4, 3}},
		"label 3d": {img: model.New(3, 4, 5), expected: []int{3, 4, 5}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := model.EnsureChannelDim(tc.img)
			assert.Equal(t, tc.expected, got.Shape())
		})
	}
}

func TestStripChannelDim(t *testing.T) {
	tcs := map[string]struct {
		img      *model.Image
		expected []int
	}{
		"gray 2d":  {img: model.NewGray(3, 4), expected: []int{3, 4}},
		"gray 3d":  {img: model.New(3, 4, 1), expected: []int{3, 4}},
		"color 3d": {img: model.New(3, 4, 3), expected: []int{3, 4, 3}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := model.StripChannelDim(tc.img)
			assert.Equal(t, tc.expected, got.Shape())
		})
	}
}

func TestChannelDimRoundTripSharesPix(t *testing.T) {
	img := model.NewGray(2, 2)
	withDim := model.EnsureChannelDim(img)
	withDim.Pix[3] = 200

	back := model.StripChannelDim(withDim)
	assert.Equal(t, 2, back.Rank())
	assert.Equal(t, uint8(200), img.Pix[3])
	assert.Equal(t, 2, img.Rank())
}

func TestMatchRank(t *testing.T) {
	ref := model.NewGray(2, 2)
	assert.Equal(t, 2, model.MatchRank(model.New(2, 2, 1), ref).Rank())
	assert.Equal(t, 3, model.MatchRank(model.NewGray(2, 2), model.New(2, 2, 1)).Rank())
	assert.Equal(t, 3, model.MatchRank(model.New(2, 2, 3), ref).Rank())
}
