// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exiterror

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Azure/azure-proc-exit/pkg/exitcode"
	"github.com/go-kit/kit/log"
)

// errorStream is where Report writes messages. Tests swap it to capture
// the output.
var errorStream io.Writer = os.Stderr

// Report consumes the outcome of a program's run function and returns
// the code the process should exit with. A message, when present, is
// written to the error stream with a trailing newline; at this point
// the program is already on its terminal error path, so a failed write
// (for example a closed stream) is swallowed. Errors that are not
// ExitErrors report Default with their own text as the message.
func Report(err error) exitcode.Code {
	if err == nil {
		return exitcode.Success
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.msg != nil {
			fmt.Fprintln(errorStream, exitErr.msg)
		}
		return exitErr.code
	}
	fmt.Fprintln(errorStream, err)
	return exitcode.Default
}

// ReportWithLog behaves like Report for programs that route failures
// through a logger: the message, when present, goes to ctx as a
// structured record instead of the raw error stream.
func ReportWithLog(ctx log.Logger, err error) exitcode.Code {
	if err == nil {
		return exitcode.Success
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.msg != nil {
			ctx.Log("exitCode", exitErr.code.Raw(), "message", exitErr.Error())
		}
		return exitErr.code
	}
	ctx.Log("exitCode", exitcode.Default.Raw(), "message", err.Error())
	return exitcode.Default
}

// Exit reports the outcome and terminates the process with the
// resulting code. Under the production exiter this call does not
// return.
func Exit(err error) {
	Report(err).Exit()
}
