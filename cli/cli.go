package cli

import (
	"fmt"
	"net/url"
	"os"

	"techiecaro/visedit/core"
	"techiecaro/visedit/editor"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"
)

type whichCmd struct{}

func (whichCmd) Run() error {
	resolved, err := editor.Editor()
	if err != nil {
		return err
	}
	fmt.Println(resolved)
	return nil
}

type editCmd struct {
	Path     string `arg:"" optional:"" help:"File to edit. A scratch file is allocated when omitted." predictor:"path"`
	Contents string `help:"Initial contents written to the file before the editor starts."`
	Suffix   string `help:"Extension for the scratch file, e.g. .md."`
	TTY      string `help:"Route the editor's output to the terminal." enum:"auto,on,off" default:"auto"`
}

func (e editCmd) Run() error {
	opts := editor.Options{
		Path:   e.Path,
		Text:   e.Contents,
		Suffix: e.Suffix,
		TTY:    ttyMode(e.TTY),
	}

	final, err := editor.Edit(opts)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(final)
	return err
}

func ttyMode(flag string) editor.TTYMode {
	switch flag {
	case "on":
		return editor.TTYOn
	case "off":
		return editor.TTYOff
	}
	return editor.TTYAuto
}

type blobCmd struct {
	SourcePath      url.URL  `arg:"" name:"source_path" help:"Location of the blob to edit." predictor:"path"`
	DestinationPath *url.URL `arg:"" name:"destination_path" optional:"" help:"Final location of the edited blob, if different." predictor:"path"`
}

func (b blobCmd) GetDestinationPath() url.URL {
	if b.DestinationPath != nil {
		return *b.DestinationPath
	}
	return b.SourcePath
}

func (b blobCmd) Run() error {
	return core.Edit(b.SourcePath, b.GetDestinationPath(), editor.Invoker{})
}

type viewCmd struct {
	SourcePath url.URL `arg:"" name:"source_path" help:"Location of the blob to view." predictor:"path"`
}

func (v viewCmd) Run() error {
	return core.View(v.SourcePath, editor.Invoker{})
}

var Cli struct {
	Which whichCmd `cmd:"" help:"Print the editor command that would be used."`
	Edit  editCmd  `cmd:"" help:"Edit a file in the resolved editor and print the result."`
	Blob  blobCmd  `cmd:"" help:"Edits a remote blob and optionally stores it elsewhere."`
	View  viewCmd  `cmd:"" help:"Views a remote blob."`

	// Completion
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`

	Version kong.VersionFlag `help:"Print version information and quit."`
}
