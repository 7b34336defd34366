// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exitcode

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// BSD sysexits(3) codes, a contiguous range categorizing why a program
// failed.
const (
	// UsageErr means the command was used incorrectly, e.g. with the
	// wrong number of arguments or a bad flag.
	UsageErr Code = 64

	// DataErr means the input data was incorrect in some way. This is
	// for user data, not system files.
	DataErr Code = 65

	// NoInput means an input file did not exist or was not readable.
	NoInput Code = 66

	// NoUser means the specified user did not exist.
	NoUser Code = 67

	// NoHost means the specified host did not exist.
	NoHost Code = 68

	// ServiceUnavailable means a service is unavailable, e.g. a support
	// program or file does not exist. Also a catch-all when something
	// did not work and the reason is unknown.
	ServiceUnavailable Code = 69

	// SoftwareErr means an internal software error was detected.
	SoftwareErr Code = 70

	// OSErr means an operating system error was detected, such as a
	// failure to fork or create a pipe.
	OSErr Code = 71

	// OSFileErr means a system file does not exist, cannot be opened,
	// or has some other error.
	OSFileErr Code = 72

	// CantCreate means a user-specified output file cannot be created.
	CantCreate Code = 73

	// IOErr means an error occurred while doing I/O on some file.
	IOErr Code = 74

	// TempFail means a temporary failure; the request should be
	// reattempted later.
	TempFail Code = 75

	// ProtocolErr means the remote system returned something that was
	// not possible during a protocol exchange.
	ProtocolErr Code = 76

	// NoPerm means insufficient permission to perform the operation.
	// This is for high level permissions, not file system problems.
	NoPerm Code = 77

	// ConfigErr means something was found in an unconfigured or
	// misconfigured state.
	ConfigErr Code = 78
)

// IOToSysexits maps an I/O error to the closest sysexits(3) code. The
// second return is false when no category applies; callers typically
// try IOToSignal next and fall back to IOErr.
func IOToSysexits(err error) (Code, bool) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return OSFileErr, true
	case errors.Is(err, fs.ErrPermission):
		return NoPerm, true
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.ENOTCONN):
		return ProtocolErr, true
	case errors.Is(err, syscall.EADDRINUSE), errors.Is(err, syscall.EADDRNOTAVAIL):
		return ServiceUnavailable, true
	case errors.Is(err, fs.ErrExist):
		return CantCreate, true
	case errors.Is(err, os.ErrInvalid),
		errors.Is(err, syscall.EINVAL),
		errors.Is(err, io.ErrUnexpectedEOF):
		return DataErr, true
	case errors.Is(err, io.ErrShortWrite):
		return NoInput, true
	}
	return 0, false
}

// FromIOError classifies an I/O error into an exit code. The mapping is
// total: the sysexits table is consulted first, then the signal table;
// an operating system error outside both tables yields IOErr, and an
// error carrying no OS error number at all yields Failure.
func FromIOError(err error) Code {
	if err == nil {
		return Success
	}
	if code, ok := IOToSysexits(err); ok {
		return code
	}
	if code, ok := IOToSignal(err); ok {
		return code
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return IOErr
	}
	return Failure
}
