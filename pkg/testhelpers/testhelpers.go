// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package testhelpers contains shared helpers for tests that need to
// observe process termination instead of performing it.
package testhelpers

import (
	"testing"

	"github.com/Azure/azure-proc-exit/pkg/exithelper"
)

// MockExitHelper records exit codes instead of terminating the process.
type MockExitHelper struct {
	Codes []int
}

func (m *MockExitHelper) Exit(exitCode int) {
	m.Codes = append(m.Codes, exitCode)
}

// LastCode returns the most recently recorded exit code, or -1 when
// Exit was never called.
func (m *MockExitHelper) LastCode() int {
	if len(m.Codes) == 0 {
		return -1
	}
	return m.Codes[len(m.Codes)-1]
}

// ReplaceExiter installs helper as the process exiter for the duration
// of the test and restores the previous one afterwards.
func ReplaceExiter(t *testing.T, helper exithelper.IExitHelper) {
	previous := exithelper.Exiter
	exithelper.Exiter = helper
	t.Cleanup(func() {
		exithelper.Exiter = previous
	})
}
