package domain

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var ErrNoContent = errors.New("file has no content")

// File is a handle to a user-selected document. Content is read lazily so a
// file set can be built without loading every document into memory.
type File struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`

	open func() (io.ReadCloser, error)
}

func NewFile(name string, size int64, contentType string, open func() (io.ReadCloser, error)) *File {
	return &File{
		Name:        name,
		Size:        size,
		ContentType: contentType,
		open:        open,
	}
}

func NewFileFromBytes(name, contentType string, data []byte) *File {
	return NewFile(name, int64(len(data)), contentType, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	})
}

func (f *File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, ErrNoContent
	}
	return f.open()
}

// Ext returns the lower-cased extension including the dot.
func (f *File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Stem returns the file name without directory and extension.
func (f *File) Stem() string {
	base := filepath.Base(f.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
