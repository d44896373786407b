package core

import "errors"

var (
	ErrOutOfBounds   = errors.New("out of bounds")
	ErrInvalidSize   = errors.New("invalid rectangle size")
	ErrInvalidAnchor = errors.New("invalid anchor")
	ErrInvalidOwner  = errors.New("invalid owner")
)
