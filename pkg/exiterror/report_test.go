// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.
package exiterror

import (
	"bytes"
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/Azure/azure-proc-exit/pkg/exitcode"
	"github.com/Azure/azure-proc-exit/pkg/testhelpers"
	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
)

// captureErrorStream redirects Report's output into a buffer for the
// duration of the test.
func captureErrorStream(t *testing.T) *bytes.Buffer {
	previous := errorStream
	buffer := &bytes.Buffer{}
	errorStream = buffer
	t.Cleanup(func() {
		errorStream = previous
	})
	return buffer
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, syscall.EPIPE
}

func TestReportSuccess(t *testing.T) {
	buffer := captureErrorStream(t)
	assert.Equal(t, exitcode.Success, Report(nil))
	assert.Equal(t, "", buffer.String())
}

func TestReportWritesMessageWithTrailingNewline(t *testing.T) {
	buffer := captureErrorStream(t)
	code := Report(New(exitcode.Failure).WithMessage("boom"))
	assert.Equal(t, exitcode.Failure, code)
	assert.Equal(t, "boom\n", buffer.String())
}

func TestReportSilentFailureWritesNothing(t *testing.T) {
	buffer := captureErrorStream(t)
	code := Report(New(exitcode.Failure))
	assert.Equal(t, exitcode.Failure, code)
	assert.Equal(t, "", buffer.String())
}

func TestReportGenericError(t *testing.T) {
	buffer := captureErrorStream(t)
	code := Report(errors.New("kaput"))
	assert.Equal(t, exitcode.Default, code)
	assert.Equal(t, "kaput\n", buffer.String())
}

func TestReportSwallowsWriteFailures(t *testing.T) {
	previous := errorStream
	errorStream = brokenWriter{}
	t.Cleanup(func() {
		errorStream = previous
	})

	assert.NotPanics(t, func() {
		code := Report(New(exitcode.NoPerm).WithMessage("unwritable"))
		assert.Equal(t, exitcode.NoPerm, code)
	})
}

func TestReportWithLog(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLogfmtLogger(buffer)

	code := ReportWithLog(logger, New(exitcode.ConfigErr).WithMessage("bad config"))
	assert.Equal(t, exitcode.ConfigErr, code)
	assert.Contains(t, buffer.String(), "exitCode=78")
	assert.Contains(t, buffer.String(), "bad config")
}

func TestReportWithLogSilentFailureLogsNothing(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLogfmtLogger(buffer)

	code := ReportWithLog(logger, New(exitcode.ConfigErr))
	assert.Equal(t, exitcode.ConfigErr, code)
	assert.Equal(t, "", buffer.String())
}

func TestReportWithLogSuccess(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLogfmtLogger(buffer)

	assert.Equal(t, exitcode.Success, ReportWithLog(logger, nil))
	assert.Equal(t, "", buffer.String())
}

func TestExitSuccess(t *testing.T) {
	captureErrorStream(t)
	mock := &testhelpers.MockExitHelper{}
	testhelpers.ReplaceExiter(t, mock)

	Exit(nil)
	assert.Equal(t, 0, mock.LastCode())
}

func TestExitWithClassifiedIOError(t *testing.T) {
	buffer := captureErrorStream(t)
	mock := &testhelpers.MockExitHelper{}
	testhelpers.ReplaceExiter(t, mock)

	denied := &fs.PathError{Op: "open", Path: "/etc/shadow", Err: syscall.EACCES}
	Exit(FromIOError(denied))
	assert.Equal(t, exitcode.NoPerm.Raw(), mock.LastCode())
	assert.Equal(t, denied.Error()+"\n", buffer.String())
}

func TestExitWithBrokenPipe(t *testing.T) {
	captureErrorStream(t)
	mock := &testhelpers.MockExitHelper{}
	testhelpers.ReplaceExiter(t, mock)

	Exit(FromIOError(syscall.EPIPE))
	assert.Equal(t, exitcode.SigPipe.Raw(), mock.LastCode())
	assert.Equal(t, 141, mock.LastCode())
}
