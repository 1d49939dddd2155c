// Package selection builds file handles for documents found on disk.
package selection

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/finsight/internal/domain"
)

const sniffLen = 512

// FromPath returns a handle for the regular file at path. The content type is
// taken from the extension and falls back to content sniffing.
func FromPath(path string) (*domain.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", path)
	}

	contentType, err := detectContentType(path)
	if err != nil {
		return nil, err
	}

	return domain.NewFile(filepath.Base(path), info.Size(), contentType, func() (io.ReadCloser, error) {
		return os.Open(path)
	}), nil
}

func detectContentType(path string) (_ string, err error) {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		mediaType, _, perr := mime.ParseMediaType(ct)
		if perr == nil {
			return mediaType, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(buf[:n]))

	return mediaType, nil
}

// Collect builds a file set from slot assignments. Paths for single-document
// categories go to the document slot.
func Collect(category domain.Category, slots map[string]string) (*domain.FileSet, error) {
	set := domain.NewFileSet(category)

	for slot, path := range slots {
		f, err := FromPath(path)
		if err != nil {
			return nil, err
		}

		if err := set.Select(slot, f, domain.SourcePicker); err != nil {
			return nil, err
		}
	}

	return set, nil
}
