package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/shlex"
	"github.com/mattn/go-isatty"
)

// TTYMode controls whether the editor's output is redirected to the
// controlling terminal instead of inheriting the invoker's stdout.
type TTYMode int

const (
	// TTYAuto redirects only when stdin is a terminal and stdout is
	// not. This is a heuristic for "called from a program whose stdout
	// is redirected while a user is still present at a terminal"; it
	// is not a guaranteed detection, and callers that know their
	// situation should pass TTYOn or TTYOff.
	TTYAuto TTYMode = iota
	TTYOn
	TTYOff
)

// Options configure a single Edit call.
type Options struct {
	// Path is the file handed to the editor. When empty, a fresh
	// temporary file is allocated; Edit does not delete it afterwards.
	Path string

	// Contents, when non-nil, is written to the target before the
	// editor starts, truncating whatever was there. Text is a
	// convenience for the same thing; Contents wins when both are set.
	Contents []byte
	Text     string

	// TTY selects the output redirection mode.
	TTY TTYMode

	// Suffix is appended to a generated temporary file name, so
	// extension-aware editors pick the right mode.
	Suffix string
}

// Edit runs the user's editor against the target file, blocks until the
// editor exits and returns the file's final contents. The editor's exit
// status is deliberately not inspected: the user may have saved the file
// even if the editor reported failure, so the file is read back
// regardless.
func (v Invoker) Edit(o Options) ([]byte, error) {
	editor, err := v.Editor()
	if err != nil {
		return nil, err
	}

	tokens, err := shlex.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("could not parse editor command %q: %w", editor, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("editor command %q names no program", editor)
	}

	argv := append(tokens, Args(realBase(tokens[0]))...)

	path := o.Path
	if path == "" {
		if path, err = tempFile(o.Suffix); err != nil {
			return nil, err
		}
	}

	contents := o.Contents
	if contents == nil && o.Text != "" {
		contents = []byte(o.Text)
	}
	if contents != nil {
		if err := os.WriteFile(path, contents, 0o600); err != nil {
			return nil, fmt.Errorf("could not write initial contents: %w", err)
		}
	}

	argv = append(argv, path)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = v.stdin()
	cmd.Stdout = v.stdout()
	cmd.Stderr = os.Stderr

	if v.useTTY(o.TTY) {
		device := v.ttyDevice()
		tty, err := os.OpenFile(device, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("could not open terminal %s: %w", device, err)
		}
		defer tty.Close()
		cmd.Stdout = tty
	}

	if err := v.runCmd(cmd); err != nil {
		var exit *exec.ExitError
		if !errors.As(err, &exit) {
			return nil, &SpawnError{Command: argv[0], Err: err}
		}
		// The editor ran and exited non-zero. The file may still have
		// been saved, so fall through and read it back.
	}

	final, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read edited file: %w", err)
	}

	return final, nil
}

// EditString asks the user to edit the given string in a scratch file
// and returns the saved result.
func (v Invoker) EditString(s string) (string, error) {
	out, err := v.Edit(Options{Text: s})
	return string(out), err
}

// Edit runs an edit with the process environment and real streams.
func Edit(o Options) ([]byte, error) {
	return Invoker{}.Edit(o)
}

// EditString asks the user to edit the given string in a scratch file.
func EditString(s string) (string, error) {
	return Invoker{}.EditString(s)
}

func (v Invoker) useTTY(mode TTYMode) bool {
	switch mode {
	case TTYOn:
		return true
	case TTYOff:
		return false
	}
	return autoTTY(isTerminal(v.stdin()), isTerminal(v.stdout()))
}

// autoTTY is the TTYAuto rule: an interactive user on stdin whose
// stdout is redirected gets the editor routed straight to the terminal,
// keeping editor noise out of the redirected stream.
func autoTTY(stdinTTY, stdoutTTY bool) bool {
	return stdinTTY && !stdoutTTY
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// realBase reduces the first editor token to the binary name the flag
// table keys on: path stripped, symlinks resolved. A token that cannot
// be resolved (a bare name, or a path that is gone) is used as-is.
func realBase(token string) string {
	if resolved, err := filepath.EvalSymlinks(token); err == nil {
		token = resolved
	}
	return filepath.Base(token)
}

func tempFile(suffix string) (string, error) {
	f, err := os.CreateTemp("", "visedit-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("could not create a temporary file: %w", err)
	}

	name := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not create a temporary file: %w", err)
	}

	return name, nil
}
