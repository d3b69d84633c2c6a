// Package core implements the blob editing flows: stage a blob into a
// temporary file, hand it to the user's editor and store the result.
package core

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"

	"techiecaro/visedit/editor"
	"techiecaro/visedit/shovel"
	"techiecaro/visedit/storage"
)

// Invoker runs the user's editor against a staged file and returns the
// file's final contents. Satisfied by editor.Invoker.
type Invoker interface {
	Edit(o editor.Options) ([]byte, error)
}

// Edit stages the source blob locally, lets the user edit it and writes
// the result to the destination. An unchanged file is not written out.
func Edit(source url.URL, destination url.URL, inv Invoker) error {
	src, err := storage.GetFileStorage(source)
	if err != nil {
		return err
	}
	dst, err := storage.GetFileStorage(destination)
	if err != nil {
		return err
	}

	shovelInstance := shovel.MultiShovel{
		SourceCompressed:      shovel.IsCompressed(source.String()),
		DestinationCompressed: shovel.IsCompressed(destination.String()),
	}

	return remoteEdit(getBaseName(source), src, dst, shovelInstance, inv)
}

// View stages the source blob locally and lets the user browse it in
// the editor. Nothing is written back.
func View(source url.URL, inv Invoker) error {
	src, err := storage.GetFileStorage(source)
	if err != nil {
		return err
	}

	shovelInstance := shovel.MultiShovel{
		SourceCompressed: shovel.IsCompressed(source.String()),
	}

	return remoteView(getBaseName(source), src, shovelInstance, inv)
}

func remoteEdit(baseName string, src io.ReadCloser, dst io.WriteCloser, sh shovel.Shovel, inv Invoker) error {
	// Staging file keeps the blob's name, so the editor can pick its
	// mode from the extension. Close removes it.
	tmp, err := newNamedTempFile(baseName)
	if err != nil {
		return err
	}
	defer tmp.Close()

	if err := sh.CopyIn(tmp.file, src); err != nil {
		return err
	}

	staged, final, err := localEdit(tmp.Name(), inv)
	if err != nil {
		return err
	}

	// If nothing changed, don't write to final destination
	if bytes.Equal(staged, final) {
		fmt.Println("No change to input, not writing to the destination")
		return nil
	}

	return sh.CopyOut(dst, io.NopCloser(bytes.NewReader(final)))
}

func remoteView(baseName string, src io.ReadCloser, sh shovel.Shovel, inv Invoker) error {
	tmp, err := newNamedTempFile(baseName)
	if err != nil {
		return err
	}
	defer tmp.Close()

	if err := sh.CopyIn(tmp.file, src); err != nil {
		return err
	}

	staged, final, err := localEdit(tmp.Name(), inv)
	if err != nil {
		return err
	}

	if !bytes.Equal(staged, final) {
		fmt.Println("Running in a view mode. Changes were discarded!")
	}

	return nil
}

// localEdit runs the editor on the staged file and returns the bytes
// before and after the session. The after bytes come from the invoker,
// which re-reads the path, so editors that replace the file instead of
// rewriting it in place are handled.
func localEdit(path string, inv Invoker) (staged []byte, final []byte, err error) {
	staged, err = os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	final, err = inv.Edit(editor.Options{Path: path})
	if err != nil {
		return nil, nil, err
	}

	return staged, final, nil
}
