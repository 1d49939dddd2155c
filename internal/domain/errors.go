package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSlot        = errors.New("unknown slot")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// RejectedFileError is returned when a file does not match the accept list of
// the slot it was offered to. Message is the alert shown to the user.
type RejectedFileError struct {
	Slot     string
	FileName string
	Message  string
}

func (e *RejectedFileError) Error() string {
	return fmt.Sprintf("file %q rejected for slot %q: %s", e.FileName, e.Slot, e.Message)
}

// ValidationError reports that a file set cannot be submitted yet.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
