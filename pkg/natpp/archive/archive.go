// Package archive reads release archives without extracting them to disk.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrMemberNotFound indicates a requested member is not in the archive.
var ErrMemberNotFound = errors.New("archive member not found")

// Archive is an open zip archive.
type Archive struct {
	r *zip.ReadCloser
}

// Open opens the zip archive at filename.
func Open(filename string) (*Archive, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", filename, err)
	}
	return &Archive{r: r}, nil
}

// Close releases the underlying file.
func (a *Archive) Close() error {
	return a.r.Close()
}

// Members returns the names of all file members in archive order.
// Directory entries are omitted.
func (a *Archive) Members() []string {
	var names []string
	for _, f := range a.r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

// Match returns the members whose base name matches a path.Match pattern,
// in archive order.
func (a *Archive) Match(pattern string) ([]string, error) {
	var names []string
	for _, name := range a.Members() {
		ok, err := path.Match(pattern, path.Base(name))
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// ReadMember returns the content of the named member.
func (a *Archive) ReadMember(name string) ([]byte, error) {
	for _, f := range a.r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
}
