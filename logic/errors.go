package logic

import "errors"

// Invalid-argument failures from Solve. These are programmer errors: the
// caller gave Solve a topology it cannot reason about at all, as opposed to
// a topology that simply has no satisfying circuit (which Solve reports via
// its ok return, not an error).
var (
	// ErrTooFewLayers is returned when layerSizes names fewer than an
	// input and an output layer.
	ErrTooFewLayers = errors.New("logic: layerSizes must name at least an input and an output layer")
	// ErrEmptyLayer is returned when any entry of layerSizes is zero.
	ErrEmptyLayer = errors.New("logic: layerSizes entries must all be greater than zero")
)
