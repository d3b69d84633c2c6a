package shovel

import "io"

// A PlainShovel copies bytes verbatim.
type PlainShovel struct{}

// CopyIn streams src into dst and closes src.
func (p PlainShovel) CopyIn(dst io.WriteCloser, src io.ReadCloser) error {
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return closeAll(src)
}

// CopyOut streams src into dst and closes dst.
func (p PlainShovel) CopyOut(dst io.WriteCloser, src io.ReadCloser) error {
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return closeAll(dst)
}
