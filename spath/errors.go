package spath

import "errors"

// ErrInvalidArgument is the class of errors caused by malformed inputs. All
// the errors below except ErrUnreachable satisfy errors.Is(err,
// ErrInvalidArgument).
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNodeNotFound is returned when a node id does not belong to the graph.
	ErrNodeNotFound = &argError{"node not found"}

	// ErrDuplicateNode is returned when creating a node whose id is already
	// used in the graph.
	ErrDuplicateNode = &argError{"duplicate node"}

	// ErrNegativeWeight is returned when adding an edge with a negative (or
	// NaN) weight.
	ErrNegativeWeight = &argError{"negative edge weight"}

	// ErrBadMaxDistance is returned when the maximum distance option is
	// negative or NaN.
	ErrBadMaxDistance = &argError{"max distance must be non-negative"}
)

// ErrUnreachable is returned when reconstructing the path to a node that was
// not reached by the search.
var ErrUnreachable = errors.New("unreachable node")

// argError is an error of the ErrInvalidArgument class.
type argError struct {
	msg string
}

func (e *argError) Error() string {
	return e.msg
}

func (e *argError) Is(target error) bool {
	return target == ErrInvalidArgument
}
