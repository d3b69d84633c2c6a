package editor

// Args returns the extra flags that make the given editor open a file
// in the foreground and block until the user is done. The argument is
// the bare binary name, path stripped and symlinks resolved. Editors
// not in the table need no extra flags.
func Args(base string) []string {
	switch base {
	case "vim", "gvim", "vim.basic", "vim.tiny":
		return []string{"-f", "-o"}
	case "emacs", "emacsclient":
		return []string{"-nw"}
	case "gedit":
		return []string{"-w", "--new-window"}
	case "nano":
		return []string{"-R"}
	case "code":
		return []string{"-w", "-n"}
	}
	return nil
}
