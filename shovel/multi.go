package shovel

import "io"

// A MultiShovel copies between reader and writer, compressing or
// decompressing each side as its filename dictates.
type MultiShovel struct {
	SourceCompressed      bool
	DestinationCompressed bool
}

// CopyIn copies data from reader to writer, decompressing when the
// source is compressed. Then it closes the reader.
func (m MultiShovel) CopyIn(dst io.WriteCloser, src io.ReadCloser) error {
	return m.pick(m.SourceCompressed).CopyIn(dst, src)
}

// CopyOut copies data from reader to writer, compressing when the
// destination is compressed. Then it closes the writer.
func (m MultiShovel) CopyOut(dst io.WriteCloser, src io.ReadCloser) error {
	return m.pick(m.DestinationCompressed).CopyOut(dst, src)
}

func (m MultiShovel) pick(compressed bool) Shovel {
	if compressed {
		return GzipShovel{}
	}
	return PlainShovel{}
}
