// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exitcode

import (
	"errors"
	"os"
	"syscall"
)

// Shell convention codes, per the Bash exit-status documentation.
const (
	// NotExecutable means the command was found but is not executable
	// by the shell.
	NotExecutable Code = 126

	// NotFound usually means the command was not found by the shell,
	// or that the command was found but a library it requires is not.
	NotFound Code = 127

	// InvalidExit is reported by the shell for an invalid argument to
	// exit.
	InvalidExit Code = 128

	// StatusOutOfRange is reported when the exit status falls outside
	// the 0-255 range the shell accepts.
	StatusOutOfRange Code = 255
)

// Shells report termination by signal N as 128+N.
const sigBase Code = 128

const (
	// SigHup is sent to a process when its controlling terminal is
	// closed.
	SigHup Code = sigBase + 1

	// SigInt is sent by the controlling terminal when the user wishes
	// to interrupt the process.
	SigInt Code = sigBase + 2

	// SigQuit is sent by the controlling terminal when the user quits
	// from the keyboard.
	SigQuit Code = sigBase + 3

	// SigIll is sent when an illegal instruction is encountered.
	SigIll Code = sigBase + 4

	// SigTrap is sent on a trace or breakpoint trap.
	SigTrap Code = sigBase + 5

	// SigAbrt is the process abort signal.
	SigAbrt Code = sigBase + 6

	// SigFpe is sent on an erroneous arithmetic operation.
	SigFpe Code = sigBase + 8

	// SigKill terminates the process immediately and cannot be caught
	// or ignored.
	SigKill Code = sigBase + 9

	// SigSegv is sent on an invalid memory reference.
	SigSegv Code = sigBase + 11

	// SigPipe is sent when a process writes to a pipe with no reader
	// on the other end.
	SigPipe Code = sigBase + 13

	// SigAlrm is sent when a previously set alarm elapses.
	SigAlrm Code = sigBase + 14

	// SigTerm requests termination; unlike SigKill it can be caught.
	SigTerm Code = sigBase + 15
)

// IOToSignal maps an I/O error to the code a shell would report had
// the equivalent signal killed the process. The second return is false
// when the error has no signal equivalence; callers choose their own
// fallback, typically IOErr.
func IOToSignal(err error) (Code, bool) {
	switch {
	case errors.Is(err, syscall.EPIPE):
		return SigPipe, true
	case errors.Is(err, syscall.ETIMEDOUT), errors.Is(err, os.ErrDeadlineExceeded):
		return SigAlrm, true
	case errors.Is(err, syscall.EINTR):
		return SigInt, true
	}
	return 0, false
}
