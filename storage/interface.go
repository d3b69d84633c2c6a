// Package storage dispatches blob URLs to their backing store. Backends
// register themselves by URL prefix; local paths and s3:// URLs are
// supported.
package storage

import (
	"fmt"
	"io"
	"net/url"
	"sort"
)

// FileStorage reads and writes a single blob. Reading starts on the
// first Read call; buffered writes are flushed by Close.
type FileStorage interface {
	io.Reader
	io.Writer
	io.Closer
}

// Lister suggests blob URLs matching a prefix, for shell completion.
type Lister func(prefix url.URL) []url.URL

type registrationInfo struct {
	storage           func(uri url.URL) (FileStorage, error)
	lister            Lister
	prefixes          []string
	completionPrompts []string
}

var registry []registrationInfo

func registerFileStorage(info registrationInfo) {
	registry = append(registry, info)
}

func schemePrefix(uri url.URL) string {
	if uri.Scheme == "" {
		return ""
	}
	return uri.Scheme + "://"
}

func lookup(uri url.URL) (registrationInfo, bool) {
	prefix := schemePrefix(uri)
	for _, info := range registry {
		for _, registered := range info.prefixes {
			if registered == prefix {
				return info, true
			}
		}
	}
	return registrationInfo{}, false
}

// GetFileStorage returns the storage backend handling the given URL.
func GetFileStorage(uri url.URL) (FileStorage, error) {
	info, ok := lookup(uri)
	if !ok {
		return nil, fmt.Errorf("no storage backend can handle %q", uri.String())
	}
	return info.storage(uri)
}

// GetFileLister returns the completion lister handling the given prefix.
// Unknown prefixes get a lister with no suggestions.
func GetFileLister(prefix url.URL) Lister {
	if info, ok := lookup(prefix); ok {
		return info.lister
	}
	return func(url.URL) []url.URL { return []url.URL{} }
}

// GetFileListerPrefixes returns the URL prefixes backends answer to,
// as shown in completion prompts.
func GetFileListerPrefixes() []string {
	seen := map[string]bool{}
	prefixes := []string{}

	for _, info := range registry {
		candidates := append(info.completionPrompts, info.prefixes...)
		for _, prefix := range candidates {
			if prefix == "" || seen[prefix] {
				continue
			}
			seen[prefix] = true
			prefixes = append(prefixes, prefix)
		}
	}

	sort.Strings(prefixes)
	return prefixes
}
