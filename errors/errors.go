// Package errors provides error handling for jobsweep.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel marking for the pipeline failure taxonomy
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Classify as a pipeline failure category
//	return errors.WrapStorage(err, "upsert positions")
//
//	// Check the category
//	if errors.IsStorage(err) {
//	    // unrecoverable environment problem
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Pipeline failure taxonomy. Every error that crosses a stage boundary is
// marked with exactly one of these sentinels; anything unmarked propagates
// unmodified and is not caught anywhere.
var (
	// ErrTransport indicates a network or HTTP failure while calling the API
	ErrTransport = New("transport failure")

	// ErrMalformedRecord indicates a response that violates the expected shape
	ErrMalformedRecord = New("malformed record")

	// ErrStorage indicates a schema, query, or transaction failure
	ErrStorage = New("storage failure")

	// ErrDelivery indicates a filesystem or SMTP failure during reporting or notification
	ErrDelivery = New("delivery failure")
)

// WrapTransport wraps an error with context and marks it as a transport failure.
func WrapTransport(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrTransport)
}

// WrapMalformedRecord wraps an error with context and marks it as a malformed record.
func WrapMalformedRecord(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrMalformedRecord)
}

// WrapStorage wraps an error with context and marks it as a storage failure.
func WrapStorage(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrStorage)
}

// WrapDelivery wraps an error with context and marks it as a delivery failure.
func WrapDelivery(err error, msg string) error {
	return Mark(Wrap(err, msg), ErrDelivery)
}

// NewTransportf creates a transport failure with a formatted message.
func NewTransportf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrTransport)
}

// NewMalformedRecordf creates a malformed-record failure with a formatted message.
func NewMalformedRecordf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrMalformedRecord)
}

// NewStoragef creates a storage failure with a formatted message.
func NewStoragef(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrStorage)
}

// NewDeliveryf creates a delivery failure with a formatted message.
func NewDeliveryf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrDelivery)
}

// IsTransport checks if an error is or wraps ErrTransport
func IsTransport(err error) bool {
	return err != nil && Is(err, ErrTransport)
}

// IsMalformedRecord checks if an error is or wraps ErrMalformedRecord
func IsMalformedRecord(err error) bool {
	return err != nil && Is(err, ErrMalformedRecord)
}

// IsStorage checks if an error is or wraps ErrStorage
func IsStorage(err error) bool {
	return err != nil && Is(err, ErrStorage)
}

// IsDelivery checks if an error is or wraps ErrDelivery
func IsDelivery(err error) bool {
	return err != nil && Is(err, ErrDelivery)
}
