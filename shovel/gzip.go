package shovel

import (
	"compress/gzip"
	"io"
)

// A GzipShovel converts between gzip on the storage side and plain
// bytes on the staging side.
type GzipShovel struct{}

// CopyIn decompresses src into dst and closes src.
func (g GzipShovel) CopyIn(dst io.WriteCloser, src io.ReadCloser) error {
	gz, err := gzip.NewReader(src)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, gz); err != nil {
		return err
	}

	return closeAll(gz, src)
}

// CopyOut compresses src into dst and closes dst. The gzip writer must
// close first so the stream trailer lands in the blob.
func (g GzipShovel) CopyOut(dst io.WriteCloser, src io.ReadCloser) error {
	gz := gzip.NewWriter(dst)

	if _, err := io.Copy(gz, src); err != nil {
		return err
	}

	return closeAll(gz, dst)
}
