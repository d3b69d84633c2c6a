package main

import (
	"os"

	"techiecaro/visedit/cli"
	"techiecaro/visedit/version"

	"github.com/alecthomas/kong"
)

func main() {
	parser := kong.Must(
		&cli.Cli,
		kong.Name("visedit"),
		kong.Description(`
			Edit files, scratch buffers and remote blobs in your preferred editor.

			Example executions:
			visedit which
			visedit edit --suffix .md
			visedit blob s3://a-bucket/path/blob.json
		`),
		kong.UsageOnError(),
		kong.Vars{"version": version.Get().String()},
	)

	cli.AddCompletion(parser)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run())
}
