package orchestrator

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/kurochkinivan/finsight/internal/domain"
)

// Request is an immutable copy of a ready file set.
type Request struct {
	Category domain.Category
	Files    []domain.SlotFile
}

// NewRequest snapshots the file set. It returns a validation *Failure when the
// set is not ready for submission.
func NewRequest(set *domain.FileSet) (*Request, error) {
	if err := set.Ready(); err != nil {
		return nil, processFailure("", err)
	}

	return &Request{
		Category: set.Category(),
		Files:    set.Populated(),
	}, nil
}

func (r *Request) validate() error {
	if len(r.Files) > 0 {
		return nil
	}

	msg := "No files to process"
	if r.Category == domain.CategoryGSTReturn {
		msg = "No Excel files to process"
	}

	return &Failure{Kind: KindValidation, Message: msg}
}

func (r *Request) clone() *Request {
	return &Request{Category: r.Category, Files: slices.Clone(r.Files)}
}

// Size is the total size of the request files in bytes.
func (r *Request) Size() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.File.Size
	}
	return n
}

// Handoff is what the results view receives after a successful attempt.
type Handoff struct {
	FileName      string          `json:"fileName"`
	Result        json.RawMessage `json:"result"`
	DocumentType  domain.Category `json:"documentType,omitempty"`
	IsAuditReport bool            `json:"isAuditReport,omitempty"`
}

func newHandoff(req *Request, result json.RawMessage, now time.Time) *Handoff {
	switch req.Category {
	case domain.CategoryAudit:
		return &Handoff{
			FileName:      "Audit Report - " + now.Format(time.DateOnly),
			Result:        result,
			DocumentType:  domain.CategoryAudit,
			IsAuditReport: true,
		}

	case domain.CategoryGSTReturn:
		return &Handoff{
			FileName:     "GST Reports - " + now.Format(time.DateOnly),
			Result:       result,
			DocumentType: domain.CategoryGSTReturn,
		}

	default:
		return &Handoff{
			FileName:     req.Files[0].File.Name,
			Result:       result,
			DocumentType: req.Category,
		}
	}
}
