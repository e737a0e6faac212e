package design

import "errors"

var (
	// ErrUnknownKind reports a descriptor or name that matches no variant.
	ErrUnknownKind = errors.New("unknown filter kind")
	// ErrUnusedField reports a descriptor parameter the variant does not take.
	ErrUnusedField = errors.New("parameter not used by filter kind")
)
