package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/selection"
)

const (
	manifestName = "manifest.csv"
	readyMarker  = ".ready"
)

type manifestRow struct {
	Slot string `csv:"slot"`
	File string `csv:"file"`
}

// batchReady reports whether a multi-slot batch directory has been fully
// written. Either a manifest or an empty .ready marker finishes a batch.
func batchReady(dir string) bool {
	for _, name := range []string{manifestName, readyMarker} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// batchFiles maps the files of a batch directory to slots, using the
// manifest when present and the file stem otherwise.
func batchFiles(dir string, category domain.Category) (*domain.FileSet, error) {
	assignments, err := readManifest(filepath.Join(dir, manifestName))
	if errors.Is(err, os.ErrNotExist) {
		assignments, err = assignByStem(dir, category.Layout())
	}
	if err != nil {
		return nil, err
	}

	return selectAll(category, assignments)
}

func selectAll(category domain.Category, assignments map[string]string) (*domain.FileSet, error) {
	set := domain.NewFileSet(category)

	for slot, path := range assignments {
		f, err := selection.FromPath(path)
		if err != nil {
			return nil, err
		}

		if err := set.Select(slot, f, domain.SourceDrop); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func readManifest(path string) (_ map[string]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest decoder: %w", err)
	}

	dir := filepath.Dir(path)
	assignments := make(map[string]string)

	for {
		var row manifestRow

		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode manifest row: %w", err)
		}

		if row.Slot == "" || row.File == "" {
			return nil, fmt.Errorf("invalid manifest row #%d: slot and file are required", len(assignments)+1)
		}

		if filepath.Base(row.File) != row.File {
			return nil, fmt.Errorf("invalid manifest row #%d: file %q must be a plain name", len(assignments)+1, row.File)
		}

		assignments[row.Slot] = filepath.Join(dir, row.File)
	}

	return assignments, nil
}

func assignByStem(dir string, layout *domain.Layout) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	slots := make(map[string]string, len(layout.Slots))
	for _, s := range layout.Slots {
		slots[strings.ToLower(s.Key)] = s.Key
	}

	assignments := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		slot, ok := slots[strings.ToLower(stem)]
		if !ok {
			return nil, fmt.Errorf("file %q does not name a slot of the %s layout", entry.Name(), layout.Name)
		}

		assignments[slot] = filepath.Join(dir, entry.Name())
	}

	return assignments, nil
}
