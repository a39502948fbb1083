package ir

import "errors"

var (
	// ErrInvalidArgument reports a nil node or visitor where one is
	// required.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedOperation reports an operation applied to a node
	// of the wrong kind.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
