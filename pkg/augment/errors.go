package augment

import (
	"github.com/pkg/errors"
)

var (
	ErrBatchLength   = errors.New("images and labels must have the same length")
	ErrShapeMismatch = errors.New("image and label must have the same height and width")
	ErrInvalidConfig = errors.New("invalid configuration")
)
