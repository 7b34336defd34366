// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package exiterror couples an exit code with an optional displayable
// message, and provides the report and exit entry points a program's
// main function funnels its outcome through.
package exiterror

import (
	"fmt"

	"github.com/Azure/azure-proc-exit/pkg/exitcode"
	"github.com/pkg/errors"
)

// ExitError pairs one exit code with an optional displayable message.
// The message, when present, is written to the error stream by Report;
// the code travels to the parent process through the exit status and is
// never part of the printed text. A missing message means the failure
// was already reported through another channel and the process should
// exit silently.
type ExitError struct {
	code exitcode.Code
	msg  interface{}
}

// New creates an ExitError with no message. Creating one from Success
// is a programming error and panics; OK is the path for codes that may
// legitimately be Success.
func New(code exitcode.Code) *ExitError {
	if code.IsSuccess() {
		panic("exiterror: cannot create an ExitError from the success code")
	}
	return &ExitError{code: code}
}

// WithMessage attaches a displayable message, replacing any previous
// one. Any value fmt can render is accepted.
func (e *ExitError) WithMessage(msg interface{}) *ExitError {
	e.msg = msg
	return e
}

// Code returns the exit code the process should terminate with.
func (e *ExitError) Code() exitcode.Code {
	return e.code
}

// Error returns the message text, or an empty string for a silent
// failure.
func (e *ExitError) Error() string {
	if e.msg == nil {
		return ""
	}
	return fmt.Sprint(e.msg)
}

// Unwrap exposes the message when it is itself an error, so errors.Is
// and errors.As keep seeing through an ExitError.
func (e *ExitError) Unwrap() error {
	if err, ok := e.msg.(error); ok {
		return err
	}
	return nil
}

// OK returns nil when code is Success, and a silent ExitError carrying
// the code otherwise.
func OK(code exitcode.Code) error {
	if code.IsSuccess() {
		return nil
	}
	return New(code)
}

// WithCode converts any error into an ExitError carrying the
// caller-chosen code, with the error's own text as the message. A nil
// error stays nil.
func WithCode(err error, code exitcode.Code) error {
	if err == nil {
		return nil
	}
	return New(code).WithMessage(err)
}

// Wrapf is WithCode with context added to the message on the way up,
// so the printed text reads "<context>: <err>".
func Wrapf(err error, code exitcode.Code, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return New(code).WithMessage(errors.Wrapf(err, format, args...))
}

// FromIOError converts an I/O error into an ExitError, deriving the
// code from the sysexits mapping with the signal mapping as a secondary
// lookup and IOErr as the final fallback. The error's own text becomes
// the message. A nil error stays nil.
func FromIOError(err error) error {
	if err == nil {
		return nil
	}
	return New(exitcode.FromIOError(err)).WithMessage(err)
}
