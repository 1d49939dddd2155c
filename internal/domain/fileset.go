package domain

import "fmt"

const missingCategoryMessage = "Please select a document type before processing."

// SlotFile is a populated slot.
type SlotFile struct {
	Slot string
	File *File
}

// FileSet holds the files selected for one submission, keyed by the slots of
// the layout the current category uses.
type FileSet struct {
	category Category
	layout   *Layout
	files    map[string]*File
}

func NewFileSet(category Category) *FileSet {
	return &FileSet{
		category: category,
		layout:   category.Layout(),
		files:    make(map[string]*File),
	}
}

func (s *FileSet) Category() Category {
	return s.category
}

func (s *FileSet) Layout() *Layout {
	return s.layout
}

// SetCategory changes the document type. Switching to a different layout
// clears every slot.
func (s *FileSet) SetCategory(category Category) {
	layout := category.Layout()
	if layout != s.layout {
		clear(s.files)
	}

	s.category = category
	s.layout = layout
}

// Select puts the file into the slot, replacing any previous one.
func (s *FileSet) Select(slot string, file *File, src Source) error {
	sl, ok := s.layout.Slot(slot)
	if !ok {
		return fmt.Errorf("%w %q for %s layout", ErrUnknownSlot, slot, s.layout.Name)
	}

	if s.layout.Validate && !sl.Accepts(file, src) {
		return &RejectedFileError{
			Slot:     slot,
			FileName: file.Name,
			Message:  sl.rejectMessage(src),
		}
	}

	s.files[slot] = file

	return nil
}

func (s *FileSet) Remove(slot string) {
	delete(s.files, slot)
}

// Reset empties every slot and clears the document type.
func (s *FileSet) Reset() {
	clear(s.files)
	s.category = ""
	s.layout = SingleLayout
}

func (s *FileSet) File(slot string) *File {
	return s.files[slot]
}

// Populated returns the filled slots in layout order.
func (s *FileSet) Populated() []SlotFile {
	populated := make([]SlotFile, 0, len(s.files))
	for _, sl := range s.layout.Slots {
		if f, ok := s.files[sl.Key]; ok {
			populated = append(populated, SlotFile{Slot: sl.Key, File: f})
		}
	}

	return populated
}

// Ready returns a *ValidationError when the set cannot be submitted.
func (s *FileSet) Ready() error {
	populated := len(s.Populated())

	if s.layout.Multi {
		if populated == 0 {
			return &ValidationError{Message: s.layout.EmptyMessage}
		}
		return nil
	}

	if populated != 1 {
		return &ValidationError{Message: s.layout.EmptyMessage}
	}

	if !s.category.Valid() {
		return &ValidationError{Message: missingCategoryMessage}
	}

	return nil
}
