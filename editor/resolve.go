package editor

// Environment variables naming the editor command, in priority order.
const (
	visualEnv = "VISUAL"
	editorEnv = "EDITOR"
)

// defaultEditors are fallback candidates consulted in order when neither
// environment variable is set.
var defaultEditors = []string{
	"editor",
	"vim",
	"emacs",
	"nano",
}

// Editor returns the command used to edit files. A value set in $VISUAL
// or $EDITOR is returned verbatim and may embed flags, e.g.
// "emacsclient -c". With neither set, the first default editor found on
// PATH is returned as an absolute path. ErrEditorNotFound is returned
// when all of that fails.
func (v Invoker) Editor() (string, error) {
	if editor := v.getenv(visualEnv); editor != "" {
		return editor, nil
	}
	if editor := v.getenv(editorEnv); editor != "" {
		return editor, nil
	}

	for _, name := range defaultEditors {
		if path, err := v.lookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrEditorNotFound
}

// Editor resolves the editor command using the process environment.
func Editor() (string, error) {
	return Invoker{}.Editor()
}
