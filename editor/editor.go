// Package editor resolves the user's preferred text editor, runs it
// against a file and returns the file's final contents once the editor
// exits.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrEditorNotFound is returned when no environment variable names an
// editor and none of the default candidates exist on PATH.
var ErrEditorNotFound = errors.New(
	"unable to find a viable editor on this system: consider setting your $VISUAL or $EDITOR variable")

// SpawnError reports that the editor process could not be started at
// all, for example because the configured command does not exist or is
// not executable.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not launch editor %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Invoker runs an interactive editor. The zero value reads the real
// process environment and spawns real processes; the function fields
// exist so tests can run without process-wide mutation.
type Invoker struct {
	// Getenv reads a configuration variable. Defaults to os.Getenv.
	Getenv func(key string) string

	// LookPath resolves a program name to an executable path.
	// Defaults to exec.LookPath.
	LookPath func(name string) (string, error)

	// Run executes the prepared editor process and waits for it to
	// exit. Defaults to (*exec.Cmd).Run.
	Run func(cmd *exec.Cmd) error

	// Stdin and Stdout are handed to the editor and consulted by the
	// TTY heuristic. Default to os.Stdin and os.Stdout.
	Stdin  *os.File
	Stdout *os.File

	// TTYDevice is the terminal device opened when output is
	// redirected. Defaults to the platform's controlling terminal.
	TTYDevice string
}

func (v Invoker) getenv(key string) string {
	if v.Getenv != nil {
		return v.Getenv(key)
	}
	return os.Getenv(key)
}

func (v Invoker) lookPath(name string) (string, error) {
	if v.LookPath != nil {
		return v.LookPath(name)
	}
	return exec.LookPath(name)
}

func (v Invoker) runCmd(cmd *exec.Cmd) error {
	if v.Run != nil {
		return v.Run(cmd)
	}
	return cmd.Run()
}

func (v Invoker) stdin() *os.File {
	if v.Stdin != nil {
		return v.Stdin
	}
	return os.Stdin
}

func (v Invoker) stdout() *os.File {
	if v.Stdout != nil {
		return v.Stdout
	}
	return os.Stdout
}

func (v Invoker) ttyDevice() string {
	if v.TTYDevice != "" {
		return v.TTYDevice
	}
	return ttyDevice
}
