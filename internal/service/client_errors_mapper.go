// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/adapter"
)

// ErrorKind tells a UI how to react to a client error.
type ErrorKind string

const (
	KindUnknown          ErrorKind = "unknown"
	KindTransient        ErrorKind = "transient"
	KindAuthorization    ErrorKind = "authorization"
	KindStateConflict    ErrorKind = "state_conflict"
	KindIntegrity        ErrorKind = "integrity"
	KindTerminalIdentity ErrorKind = "terminal_identity"
	KindInvalidInput     ErrorKind = "invalid_input"
	KindNotFound         ErrorKind = "not_found"
	KindResourceFailure  ErrorKind = "resource_failure"
)

var errorKindMap = map[error]ErrorKind{
	ErrTransient: KindTransient,

	ErrUnauthorized:     KindAuthorization,
	ErrPermissionDenied: KindAuthorization,
	ErrWrongCredentials: KindAuthorization,

	ErrChunkOutOfBounds:     KindStateConflict,
	ErrAlreadyUploaded:      KindStateConflict,
	ErrChunkAlreadyUploaded: KindStateConflict,
	ErrNotClaimed:           KindStateConflict,
	ErrNotRequested:         KindStateConflict,
	ErrFileAlreadyExists:    KindStateConflict,
	ErrFileNotUploaded:      KindStateConflict,
	ErrFilePending:          KindStateConflict,
	ErrShareInconsistent:    KindStateConflict,

	ErrShareRevocationFailed: KindStateConflict,

	ErrKeyUnavailable:   KindIntegrity,
	ErrDecryptionFailed: KindIntegrity,

	ErrAnonymousCaller:    KindTerminalIdentity,
	ErrUserNotRegistered:  KindTerminalIdentity,
	ErrResourceUnresolved: KindTerminalIdentity,

	ErrFileTooLarge:      KindInvalidInput,
	ErrUsernameTooLong:   KindInvalidInput,
	ErrUsernameTaken:     KindInvalidInput,
	ErrAlreadyRegistered: KindInvalidInput,
	ErrInvalidQuery:      KindInvalidInput,
	ErrLoginTaken:        KindInvalidInput,
	ErrNoPassphrase:      KindInvalidInput,

	ErrResourceCreationFailed: KindResourceFailure,

	ErrFileNotFound:    KindNotFound,
	ErrNoSuchRecipient: KindNotFound,
	ErrAliasNotFound:   KindNotFound,
}

// KindOf classifies err by the outermost client sentinel in its chain.
// Errors outside the client taxonomy are unknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if kind, ok := errorKindMap[err]; ok {
		return kind
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if kind := KindOf(inner); kind != KindUnknown {
				return kind
			}
		}
	case interface{ Unwrap() error }:
		return KindOf(e.Unwrap())
	}
	return KindUnknown
}

// Retryable reports whether err may succeed when tried again.
func Retryable(err error) bool {
	return KindOf(err) == KindTransient
}

// deviceKeyHint is appended to integrity errors.
const deviceKeyHint = "the key material may only exist on the device that created or received this file"

// Hint returns a user-facing suggestion for err, or an empty string.
func Hint(err error) string {
	switch KindOf(err) {
	case KindIntegrity:
		return deviceKeyHint
	case KindTerminalIdentity:
		if errors.Is(err, ErrAnonymousCaller) {
			return "log in again"
		}
		return "register a username first"
	case KindTransient:
		return "try again later"
	case KindResourceFailure:
		return "storage could not be created, contact the server operator"
	default:
		return ""
	}
}

// mapAdapterError translates a transport error into the client taxonomy.
// Kinds already expressed by response unions never reach here.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrTransient, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrAnonymousCaller, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrFileTooLarge, err)
	case errors.Is(err, adapter.ErrUnknownResponse):
		return fmt.Errorf("%w: %w", ErrUnknownResponse, err)
	}

	return err
}

func unknownResponse[K ~string](op string, kind K) error {
	return fmt.Errorf("%w: %s answered %q", ErrUnknownResponse, op, string(kind))
}
