// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package exitcode provides a typed process exit code along with
// catalogs of the well-known values: the generic codes, the BSD
// sysexits(3) range and the shell convention for signal deaths (128+N).
package exitcode

import "github.com/Azure/azure-proc-exit/pkg/exithelper"

// Code is a process exit code. Values 0-255 are portable across all
// supported operating systems; wider values stay representable and
// introspectable, and are only replaced with Default at the final
// termination boundary.
type Code int

const (
	// Success indicates the process exited successfully.
	Success Code = 0

	// Failure is the generic failure code.
	Failure Code = 1

	// Unknown is the catch-all code for a process that exits for an
	// unknown reason.
	Unknown Code = 2
)

// Default is the code reported when a value cannot be represented on
// the host platform. It is Failure rather than Success so that
// coerce-or-default never turns an out-of-range failure into success.
const Default = Failure

// New wraps a raw integer status. No validation is performed.
func New(raw int) Code {
	return Code(raw)
}

// Raw returns the underlying value unchanged.
func (c Code) Raw() int {
	return int(c)
}

// IsSuccess reports whether the code is Success.
func (c Code) IsSuccess() bool {
	return c == Success
}

// IsFailure reports whether the code is anything other than Success.
func (c Code) IsFailure() bool {
	return !c.IsSuccess()
}

// IsPortable reports whether the code can be represented on every
// supported operating system. Windows allows wider exit codes; Unix
// keeps only the low 8 bits.
func (c Code) IsPortable() bool {
	return 0 <= c && c <= 255
}

// Coerce returns the code unchanged when it is portable. The second
// return is false when the value is not representable everywhere;
// callers usually fall back to Default.
func (c Code) Coerce() (Code, bool) {
	if !c.IsPortable() {
		return 0, false
	}
	return c, true
}

// AsPortable narrows the code to its 8-bit representation, if portable.
func (c Code) AsPortable() (uint8, bool) {
	coerced, ok := c.Coerce()
	if !ok {
		return 0, false
	}
	return uint8(coerced), true
}

// reservedRanges lists the documented ranges: generic codes,
// sysexits(3), the shell's not-executable/not-found/invalid-exit codes,
// the signal codes and the out-of-range marker. Values in the gaps
// between ranges are deliberately not reserved.
var reservedRanges = [...]struct{ lo, hi Code }{
	{Success, Unknown},
	{UsageErr, ConfigErr},
	{NotExecutable, InvalidExit},
	{sigBase + 1, sigBase + 15},
	{StatusOutOfRange, StatusOutOfRange},
}

// IsReserved reports whether the code falls inside one of the
// documented ranges. Applications choosing custom codes should avoid
// reserved values to keep their meaning unambiguous.
func (c Code) IsReserved() bool {
	for _, r := range reservedRanges {
		if r.lo <= c && c <= r.hi {
			return true
		}
	}
	return false
}

// Exit terminates the process with the portable representation of the
// code, falling back to Default when the raw value is out of range.
// Under the production exiter this call does not return.
func (c Code) Exit() {
	coerced, ok := c.Coerce()
	if !ok {
		coerced = Default
	}
	exithelper.Exiter.Exit(coerced.Raw())
}
