package transform

import "github.com/pkg/errors"

var ErrUnsupportedChannels = errors.New("unsupported number of channels")
