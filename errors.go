package nudgenet

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and are panicked by the core
// operations that detect them: the engine treats every precondition violation as fatal at the
// point of detection.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be panicked.
var (
	ErrTooFewLayers    = Error{"network must have at least start and end layers"}
	ErrBadLayerSize    = Error{"all layer sizes must be >= 1"}
	ErrBadLearningRate = Error{"learning rate must be > 0"}
	ErrNoNudges        = Error{"no nudges have been accumulated"}
	ErrZeroChunkSize   = Error{"chunk size must be >= 1"}
	ErrWrongLayer      = Error{"neuron's layer index does not match its destination layer"}
)

// SizeMismatchError documents errors resulting from a slice of values whose length does not
// match the dimensions of the part of the Network it is given to.
type SizeMismatchError struct {
	Expected, Got int
	Of            string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("wrong number of %s: expected %d, got %d", err.Of, err.Expected, err.Got)
}

// VariantError documents requests for a node variant that does not live in the requested layer.
// Layer 0 holds only StartNodes; every later layer holds only Neurons.
type VariantError struct {
	Layer, Index int
	Want         string
}

func (err VariantError) Error() string {
	return fmt.Sprintf("node (%d, %d) is not a %s", err.Layer, err.Index, err.Want)
}
