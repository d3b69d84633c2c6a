package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRecorder is a stub spawner: it records the prepared command and
// never starts a process.
type runRecorder struct {
	cmd *exec.Cmd
	err error
}

func (r *runRecorder) run(cmd *exec.Cmd) error {
	r.cmd = cmd
	return r.err
}

func newInvoker(env map[string]string, recorder *runRecorder) Invoker {
	return Invoker{
		Getenv:   fakeEnv(env),
		LookPath: fakeLookPath(nil),
		Run:      recorder.run,
	}
}

func targetPath(t *testing.T, recorder *runRecorder) string {
	require.NotNil(t, recorder.cmd)
	require.NotEmpty(t, recorder.cmd.Args)

	path := recorder.cmd.Args[len(recorder.cmd.Args)-1]
	t.Cleanup(func() { os.Remove(path) })
	return path
}

func TestEditRoundTrip(t *testing.T) {
	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	out, err := v.Edit(Options{Text: "hello"})
	targetPath(t, recorder)

	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestEditRawContents(t *testing.T) {
	contents := []byte{0x00, 0xff, 0x10, 'a'}

	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	out, err := v.Edit(Options{Contents: contents})
	targetPath(t, recorder)

	assert.NoError(t, err)
	assert.Equal(t, contents, out)
}

func TestEditTruncatesExistingContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0o600))

	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	out, err := v.Edit(Options{Path: path, Text: "short"})

	assert.NoError(t, err)
	assert.Equal(t, []byte("short"), out)
}

func TestEditEmbeddedFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"VISUAL": "emacsclient -c"}, recorder)

	_, err := v.Edit(Options{Path: path, Text: "body"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"emacsclient", "-c", "-nw", path}, recorder.cmd.Args)
}

func TestEditAppliesFlagTable(t *testing.T) {
	cases := []struct {
		editor   string
		expected []string
	}{
		{editor: "vim", expected: []string{"vim", "-f", "-o"}},
		{editor: "gedit", expected: []string{"gedit", "-w", "--new-window"}},
		{editor: "unheard-of-editor", expected: []string{"unheard-of-editor"}},
	}

	for _, tc := range cases {
		t.Run(tc.editor, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.txt")

			recorder := &runRecorder{}
			v := newInvoker(map[string]string{"VISUAL": tc.editor}, recorder)

			_, err := v.Edit(Options{Path: path, Text: "body"})

			assert.NoError(t, err)
			assert.Equal(t, append(tc.expected, path), recorder.cmd.Args)
		})
	}
}

func TestEditSuffix(t *testing.T) {
	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	_, err := v.Edit(Options{Text: "# notes", Suffix: ".md"})
	path := targetPath(t, recorder)

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".md"), "expected %q to end in .md", path)
}

func TestEditTempPathsAreUnique(t *testing.T) {
	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	_, err := v.Edit(Options{Text: "one"})
	require.NoError(t, err)
	first := targetPath(t, recorder)

	_, err = v.Edit(Options{Text: "two"})
	require.NoError(t, err)
	second := targetPath(t, recorder)

	assert.NotEqual(t, first, second)
}

func TestEditSpawnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	recorder := &runRecorder{err: errors.New("fork/exec: permission denied")}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	out, err := v.Edit(Options{Path: path, Text: "body"})

	assert.Nil(t, out)
	var spawnErr *SpawnError
	assert.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, "fake-editor", spawnErr.Command)
}

func TestEditIgnoresEditorExitStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	recorder := &runRecorder{err: &exec.ExitError{}}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)

	out, err := v.Edit(Options{Path: path, Text: "saved anyway"})

	assert.NoError(t, err)
	assert.Equal(t, []byte("saved anyway"), out)
}

func TestEditEditorNotFound(t *testing.T) {
	recorder := &runRecorder{}
	v := newInvoker(nil, recorder)

	out, err := v.Edit(Options{Text: "body"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrEditorNotFound)
	assert.Nil(t, recorder.cmd, "no process should be prepared without an editor")
}

func TestEditBlankEditorCommand(t *testing.T) {
	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "   "}, recorder)

	_, err := v.Edit(Options{Text: "body"})

	assert.Error(t, err)
	assert.Nil(t, recorder.cmd)
}

func TestEditInheritsStreams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	stdout, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer stdout.Close()

	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)
	v.Stdout = stdout

	_, err = v.Edit(Options{Path: path, Text: "body", TTY: TTYOff})

	assert.NoError(t, err)
	assert.Same(t, stdout, recorder.cmd.Stdout)
}

func TestEditTTYOnRedirectsToDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	device, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	require.NoError(t, device.Close())

	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)
	v.TTYDevice = device.Name()

	out, err := v.Edit(Options{Path: path, Text: "body", TTY: TTYOn})

	assert.NoError(t, err)
	assert.Equal(t, []byte("body"), out)

	redirected, ok := recorder.cmd.Stdout.(*os.File)
	require.True(t, ok, "stdout should be the terminal device, got %T", recorder.cmd.Stdout)
	assert.Equal(t, device.Name(), redirected.Name())
}

func TestEditTTYDeviceOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	recorder := &runRecorder{}
	v := newInvoker(map[string]string{"EDITOR": "fake-editor"}, recorder)
	v.TTYDevice = filepath.Join(t.TempDir(), "no-such-tty")

	out, err := v.Edit(Options{Path: path, Text: "body", TTY: TTYOn})

	assert.Nil(t, out)
	assert.ErrorContains(t, err, "could not open terminal")
	assert.Nil(t, recorder.cmd, "editor must not run without its terminal")
}

func TestAutoTTY(t *testing.T) {
	cases := []struct {
		stdinTTY  bool
		stdoutTTY bool
		expected  bool
	}{
		{stdinTTY: true, stdoutTTY: false, expected: true},
		{stdinTTY: true, stdoutTTY: true, expected: false},
		{stdinTTY: false, stdoutTTY: false, expected: false},
		{stdinTTY: false, stdoutTTY: true, expected: false},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("stdin=%v stdout=%v", tc.stdinTTY, tc.stdoutTTY)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, autoTTY(tc.stdinTTY, tc.stdoutTTY))
		})
	}
}

func TestRealBase(t *testing.T) {
	dir := t.TempDir()

	real := filepath.Join(dir, "vim.basic")
	require.NoError(t, os.WriteFile(real, []byte("#!/bin/sh\n"), 0o755))

	link := filepath.Join(dir, "vim")
	require.NoError(t, os.Symlink(real, link))

	assert.Equal(t, "vim.basic", realBase(link))
	assert.Equal(t, "vim.basic", realBase(real))
	assert.Equal(t, "emacsclient", realBase("emacsclient"))
}
