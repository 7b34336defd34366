// Package exithelper isolates the final os.Exit call so that callers
// and tests can intercept process termination.
package exithelper

import "os"

// defaultExitCode replaces raw values the shell cannot represent.
const defaultExitCode = 1

type IExitHelper interface {
	Exit(exitCode int)
}

// ProcessExitHelper terminates the current process. Raw values outside
// the portable 0-255 range are replaced with the default failure code;
// this is the only place such substitution happens, so codes stay
// introspectable until the very end.
type ProcessExitHelper struct{}

func (*ProcessExitHelper) Exit(exitCode int) {
	if exitCode < 0 || exitCode > 255 {
		exitCode = defaultExitCode
	}
	os.Exit(exitCode)
}

// Exiter is the helper used at process termination. Tests replace it
// with a mock to observe the code instead of exiting.
var Exiter IExitHelper = &ProcessExitHelper{}
