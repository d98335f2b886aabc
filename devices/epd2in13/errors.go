package epd2in13

import "errors"

// Precondition violations. These are caller programming errors: the driver
// rejects the call before any bus traffic is sent, and the instance stays in
// its previous state.
var (
	// ErrBufferSize indicates a frame buffer whose length is not exactly
	// BufSize.
	ErrBufferSize = errors.New("epd2in13: frame buffer length mismatch")

	// ErrPartialUpdate indicates a partial-window update, which this
	// controller configuration does not support.
	ErrPartialUpdate = errors.New("epd2in13: partial update not supported")

	// ErrClearFrame indicates a clear without a caller-supplied buffer,
	// which this controller configuration does not support.
	ErrClearFrame = errors.New("epd2in13: clear frame not supported")
)
