package stereo

import "errors"

var (
	// ErrNilEyeBuffers is returned by NewPresenter without eye buffers.
	ErrNilEyeBuffers = errors.New("stereo: eye buffers are nil")

	// ErrNilContext is returned by NewPresenter without an output context.
	ErrNilContext = errors.New("stereo: render context is nil")
)
