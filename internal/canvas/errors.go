package canvas

import "errors"

// ErrInvalidDimensions is returned by New and Resize for non-positive
// width or height.
var ErrInvalidDimensions = errors.New("canvas: width and height must be positive")

// ErrUnknownFilter is returned by ApplyFilter when filterName is not
// registered in the filter package's plugin registry.
var ErrUnknownFilter = errors.New("canvas: unknown filter")

// ErrInvalidBlendMode is returned by SetLayerBlendMode for a mode value
// outside the twelve defined enum members.
var ErrInvalidBlendMode = errors.New("canvas: invalid blend mode")
