package octree

import (
	"errors"
	"fmt"
)

// Sentinel errors for the invalid-input failure kind (see BuildTree).
// Wrap these with fmt.Errorf("...: %w", ...) rather than returning a
// fresh error, so callers can errors.Is against them.
var (
	ErrInvalidDim      = errors.New("octree: dimension must be >= 1")
	ErrInvalidN        = errors.New("octree: object count must be >= 1")
	ErrInvalidOcc      = errors.New("octree: max leaf occupancy must be >= 1")
	ErrInvalidMode     = errors.New("octree: unrecognized object mode")
	ErrShapeMismatch   = errors.New("octree: coordinate and size slices disagree in length or dimension")
	ErrNegativeSize    = errors.New("octree: object size must be non-negative")
	ErrDegenerateRoot  = errors.New("octree: root extent is zero on every axis with more than one distinct object")
	ErrDepthOverflow   = errors.New("octree: dimension exceeds the bit width of the octant mask")
	ErrPeriodicityDims = errors.New("octree: periodicity vector length must equal the tree dimension")
)

// invalidInputError wraps a sentinel with the offending value, matching
// the call-entry validation style of the teacher's Table.Insert: reject
// immediately, no partial state, no retries.
func invalidInputError(sentinel error, detail string) error {
	return fmt.Errorf("%w: %s", sentinel, detail)
}
