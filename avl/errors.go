package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrKeyNotFound signals a missing key or the dereferencing of End.
	ErrKeyNotFound = errors.New("avl: key not found")
	// ErrStaleHandle signals the use of a handle to an erased entry.
	ErrStaleHandle = errors.New("avl: stale handle")
	// ErrForeignHandle signals the use of a handle with a tree it does not belong to.
	ErrForeignHandle = errors.New("avl: handle belongs to a different tree")
)
