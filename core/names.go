package core

import (
	"net/url"
	"path"
	"strings"

	"techiecaro/visedit/shovel"
)

const gzipSuffix = ".gz"

// getBaseName names the staging file after the blob, minus the
// compression suffix the staged copy no longer carries.
func getBaseName(fileURL url.URL) string {
	baseName := path.Base(fileURL.String())
	if shovel.IsCompressed(fileURL.String()) {
		baseName = strings.TrimSuffix(baseName, gzipSuffix)
	}
	return baseName
}
