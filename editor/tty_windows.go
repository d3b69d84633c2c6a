//go:build windows

package editor

// ttyDevice is the console device of the process.
const ttyDevice = "CON:"
