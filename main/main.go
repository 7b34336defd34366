package main

import (
	"io"
	"os"

	"github.com/Azure/azure-proc-exit/pkg/exitcode"
	"github.com/Azure/azure-proc-exit/pkg/exiterror"
)

// Example entry point: copies the named files to standard output and
// exits with a classified code when anything goes wrong.
func main() {
	exiterror.Exit(run(os.Args[1:]))
}

func run(args []string) error {
	if len(args) == 0 {
		return exiterror.New(exitcode.UsageErr).WithMessage("usage: printfile <path>...")
	}
	for _, name := range args {
		if err := printFile(name); err != nil {
			return err
		}
	}
	return nil
}

func printFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return exiterror.FromIOError(err)
	}
	defer file.Close()
	_, err = io.Copy(os.Stdout, file)
	return exiterror.FromIOError(err)
}
