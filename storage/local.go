package storage

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type localFileStorage struct {
	path string
	file *os.File
}

func getLocalFileStorage(uri url.URL) *localFileStorage {
	return &localFileStorage{path: uriToPath(uri)}
}

func (l *localFileStorage) Read(p []byte) (n int, err error) {
	if l.file == nil {
		file, err := os.OpenFile(l.path, os.O_RDONLY, 0o644)
		if err != nil {
			return 0, err
		}
		l.file = file
	}

	return l.file.Read(p)
}

func (l *localFileStorage) Write(p []byte) (n int, err error) {
	if l.file == nil {
		file, err := os.OpenFile(l.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return 0, err
		}
		l.file = file
	}

	return l.file.Write(p)
}

func (l *localFileStorage) Close() error {
	if l.file == nil {
		return nil
	}

	if err := l.file.Close(); err != nil {
		return err
	}

	l.file = nil
	return nil
}

func uriToPath(uri url.URL) string {
	if uri.Host != "" {
		return path.Join(uri.Host, uri.Path)
	}
	return uri.Path
}

func isDir(p string) bool {
	stat, err := os.Stat(p)
	if err != nil {
		return false
	}
	return stat.IsDir()
}

func localFileStorageLister(prefix url.URL) []url.URL {
	suggestions := []url.URL{}

	basePath := uriToPath(prefix)
	parentDir := basePath
	if !isDir(parentDir) {
		parentDir = path.Dir(parentDir)
	}

	entries, err := os.ReadDir(parentDir)
	if err != nil {
		return suggestions
	}

	separator := string(filepath.Separator)
	for _, entry := range entries {
		full := strings.Join([]string{strings.TrimSuffix(parentDir, separator), entry.Name()}, separator)
		if prefix.Scheme != "" || basePath == "" {
			full = path.Join(full)
		}
		if uri, err := url.Parse(full); err == nil {
			uri.Scheme = prefix.Scheme
			suggestions = append(suggestions, *uri)
		}
	}

	return suggestions
}

func init() {
	registerFileStorage(registrationInfo{
		storage: func(uri url.URL) (FileStorage, error) {
			return getLocalFileStorage(uri), nil
		},
		lister:            localFileStorageLister,
		prefixes:          []string{"", "file://"},
		completionPrompts: []string{"./"},
	})
}
