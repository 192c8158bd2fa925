package bptree

import (
	"fmt"

	"github.com/aacfactory/errors"
)

var (
	// ErrInvalidCapacity is the cause wrapped by New when capacity < 4.
	ErrInvalidCapacity = fmt.Errorf("capacity must be at least 4")
	// ErrInvalidRange is the cause wrapped by Range when the low bound
	// resolves strictly past the high bound.
	ErrInvalidRange = fmt.Errorf("range low bound is greater than high bound")
	// ErrKeyNotFound is the cause wrapped by the must-style helpers that
	// require a key to be present.
	ErrKeyNotFound = fmt.Errorf("key not found")
	// ErrCorruptState is the cause wrapped by CheckInvariants failures.
	ErrCorruptState = fmt.Errorf("tree invariant violated")
)

func invalidCapacityError(capacity int) error {
	return errors.ServiceError("bptree: invalid capacity").
		WithCause(ErrInvalidCapacity).
		WithMeta("capacity", fmt.Sprintf("%d", capacity))
}

func invalidRangeError() error {
	return errors.ServiceError("bptree: invalid range").WithCause(ErrInvalidRange)
}

func keyNotFoundError() error {
	return errors.ServiceError("bptree: key not found").WithCause(ErrKeyNotFound)
}

// corruptStateError builds the structured diagnostic CheckInvariants
// returns on the first violation it finds, carrying enough metadata to
// locate the offending node.
func corruptStateError(reason string, nodeID NodeId, index int) error {
	return errors.ServiceError("bptree: invariant violated").
		WithCause(ErrCorruptState).
		WithMeta("reason", reason).
		WithMeta("node", fmt.Sprintf("%d", nodeID)).
		WithMeta("index", fmt.Sprintf("%d", index))
}
