//go:build !windows

package editor

// ttyDevice is the controlling terminal of the process.
const ttyDevice = "/dev/tty"
