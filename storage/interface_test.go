package storage_test

import (
	"net/url"
	"testing"

	"techiecaro/visedit/storage"

	"github.com/stretchr/testify/assert"
)

func TestGetFileListerPrefixes(t *testing.T) {
	prefixes := storage.GetFileListerPrefixes()

	expected := []string{"./", "file://", "s3://"}

	assert.Equal(t, expected, prefixes, "Invalid prefixes")
}

func TestGetFileStorageUnknownScheme(t *testing.T) {
	uri, err := url.Parse("gopher://host/blob.txt")
	assert.NoError(t, err)

	fs, err := storage.GetFileStorage(*uri)

	assert.Nil(t, fs)
	assert.ErrorContains(t, err, "no storage backend")
}

func TestGetFileListerUnknownScheme(t *testing.T) {
	uri, err := url.Parse("gopher://host/")
	assert.NoError(t, err)

	lister := storage.GetFileLister(*uri)

	assert.Empty(t, lister(*uri))
}
