package kv

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a key that does not exist. Store.Delete itself never
	// returns it; surfaces with strict delete semantics do.
	ErrNotFound = errors.New("key not found")
	// ErrNotObject reports a snapshot whose top-level JSON value is not an object.
	ErrNotObject = errors.New("snapshot is not a JSON object")
	// ErrNotString reports a snapshot member whose value is not a JSON string.
	ErrNotString = errors.New("snapshot value is not a JSON string")
	// ErrInvalidUTF8 reports a key or value that JSON cannot carry unchanged.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// ParseError is returned by ImportJSON when the snapshot text cannot be decoded.
type ParseError struct {
	// Offset is the input byte offset at which decoding stopped.
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("kv: invalid snapshot at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
