package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	cases := []struct {
		base     string
		expected []string
	}{
		{base: "vim", expected: []string{"-f", "-o"}},
		{base: "gvim", expected: []string{"-f", "-o"}},
		{base: "vim.basic", expected: []string{"-f", "-o"}},
		{base: "vim.tiny", expected: []string{"-f", "-o"}},
		{base: "emacs", expected: []string{"-nw"}},
		{base: "emacsclient", expected: []string{"-nw"}},
		{base: "gedit", expected: []string{"-w", "--new-window"}},
		{base: "nano", expected: []string{"-R"}},
		{base: "code", expected: []string{"-w", "-n"}},
	}

	for _, tc := range cases {
		t.Run(tc.base, func(t *testing.T) {
			assert.Equal(t, tc.expected, Args(tc.base))
		})
	}
}

func TestArgsUnknownEditors(t *testing.T) {
	for _, base := range []string{"", "nvim", "notepad.exe", "subl", "some random string"} {
		t.Run(base, func(t *testing.T) {
			assert.Empty(t, Args(base))
		})
	}
}

func TestArgsIsPure(t *testing.T) {
	for _, base := range []string{"vim", "gedit", "unknown"} {
		first := Args(base)
		second := Args(base)

		assert.Equal(t, first, second)
	}
}
