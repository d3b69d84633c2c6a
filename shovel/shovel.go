// Package shovel copies blob data between remote storage and the local
// staging file, converting formats along the way.
package shovel

import (
	"io"
	"path"

	"github.com/hashicorp/go-multierror"
)

// A Shovel copies data between reader and writer.
type Shovel interface {
	CopyIn(dst io.WriteCloser, src io.ReadCloser) error
	CopyOut(dst io.WriteCloser, src io.ReadCloser) error
}

// IsCompressed checks should the filename go through the
// compression/decompression.
func IsCompressed(filename string) bool {
	return path.Ext(filename) == ".gz"
}

// closeAll closes every closer in order and reports all failures, not
// just the first. Order matters for wrapped streams: the wrapper must
// flush before the underlying stream closes.
func closeAll(closers ...io.Closer) error {
	var merr *multierror.Error
	for _, closer := range closers {
		merr = multierror.Append(merr, closer.Close())
	}
	return merr.ErrorOrNil()
}
