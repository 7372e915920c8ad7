// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

import "fmt"

// ErrKind taxonomises the errors this package returns. It is a taxonomy
// of kinds, not of individual error values: callers that need to branch
// on it should use errors.As against *Error and switch on Kind.
//
// A decapsulation mismatch is never reported through this type: implicit
// rejection in Decapsulate always returns a (different) shared key
// rather than an error.
type ErrKind int

const (
	// ErrKindConfiguration: an unknown or inconsistent parameter set,
	// surfaced at construction time.
	ErrKindConfiguration ErrKind = iota
	// ErrKindDeserialization: input bytes don't match the declared
	// length for a key or ciphertext, surfaced from the parse routine.
	ErrKindDeserialization
	// ErrKindEntropy: the caller-supplied random source failed. Only
	// ever surfaced from KeyGen or Encapsulate, never from Decapsulate.
	ErrKindEntropy
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindConfiguration:
		return "configuration"
	case ErrKindDeserialization:
		return "deserialization"
	case ErrKindEntropy:
		return "entropy"
	default:
		return "unknown"
	}
}

// Error is the single error type this package returns. Every exported
// operation either returns its declared output or a *Error; there is no
// other error type and no panic reachable from valid-length inputs.
type Error struct {
	Kind ErrKind
	msg  string
}

func (e *Error) Error() string {
	return "clwe: " + e.msg
}

func configError(format string, args ...any) *Error {
	return &Error{Kind: ErrKindConfiguration, msg: fmt.Sprintf(format, args...)}
}

func deserializationError(format string, args ...any) *Error {
	return &Error{Kind: ErrKindDeserialization, msg: fmt.Sprintf(format, args...)}
}

func entropyError(err error) *Error {
	return &Error{Kind: ErrKindEntropy, msg: "reading randomness: " + err.Error()}
}
