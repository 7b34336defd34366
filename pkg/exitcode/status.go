// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exitcode

import (
	"errors"
	"os"
	"os/exec"
)

// FromProcessState converts a completed child process's state into a
// code. A normal exit yields the child's own status; on Unix a process
// killed by signal N yields 128+N; when neither is obtainable the
// result is Default.
func FromProcessState(state *os.ProcessState) Code {
	if raw, ok := platformExitCode(state); ok {
		return New(raw)
	}
	return Default
}

// FromError classifies the error returned by running a child process,
// for example from exec.Cmd.Run. A nil error means the child succeeded.
// Errors that do not carry an exit status, such as a failure to start
// the process at all, yield Default.
func FromError(err error) Code {
	if err == nil {
		return Success
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return FromProcessState(exitErr.ProcessState)
	}
	return Default
}
