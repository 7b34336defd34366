// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exitcode

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// FromSignal returns the shell convention code for a process terminated
// by sig.
func FromSignal(sig unix.Signal) Code {
	return sigBase + Code(sig)
}

func platformExitCode(state *os.ProcessState) (int, bool) {
	if state == nil {
		return 0, false
	}
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return 0, false
	}
	if status.Exited() {
		return status.ExitStatus(), true
	}
	if status.Signaled() {
		return FromSignal(unix.Signal(status.Signal())).Raw(), true
	}
	return 0, false
}
