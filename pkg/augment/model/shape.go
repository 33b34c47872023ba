package model

// EnsureChannelDim returns img with an explicit trailing channel axis.
// A 2-D image is reshaped to (Height, Width, 1); any other image is returned as is.
// The returned image shares Pix with img.
func EnsureChannelDim(img *Image) *Image {
	if !img.flat {
		return img
	}
	out := *img
	out.flat = false

	return &out
}

// StripChannelDim returns img without its channel axis when it holds exactly
// one channel; any other image is returned as is.
// The returned image shares Pix with img.
func StripChannelDim(img *Image) *Image {
	if img.flat || img.Channels != 1 {
		return img
	}
	out := *img
	out.flat = true

	return &out
}

// MatchRank reshapes img to the rank of ref when their channel layout allows it.
func MatchRank(img, ref *Image) *Image {
	if ref.flat {
		return StripChannelDim(img)
	}

	return EnsureChannelDim(img)
}
