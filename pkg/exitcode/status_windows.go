// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exitcode

import "os"

func platformExitCode(state *os.ProcessState) (int, bool) {
	if state == nil {
		return 0, false
	}
	if code := state.ExitCode(); code >= 0 {
		return code, true
	}
	return 0, false
}
