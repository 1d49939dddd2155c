package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a submission.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Submission is the persisted record of one hand-off, successful or not.
type Submission struct {
	ID            uuid.UUID       `db:"id"              json:"id"`
	Name          string          `db:"name"            json:"name"`
	Source        string          `db:"source"          json:"source"`
	Category      Category        `db:"category"        json:"category"`
	Size          int64           `db:"size"            json:"size"`
	Status        Status          `db:"status"          json:"status"`
	FailureKind   string          `db:"failure_kind"    json:"failure_kind,omitempty"`
	ErrorMessage  string          `db:"error_message"   json:"error_message,omitempty"`
	IsAuditReport bool            `db:"is_audit_report" json:"is_audit_report"`
	Result        json.RawMessage `db:"result"          json:"result,omitempty"`
	CreatedAt     time.Time       `db:"created_at"      json:"created_at"`
	ProcessedAt   *time.Time      `db:"processed_at"    json:"processed_at,omitempty"`
}

// Job is one unit of work for the inbox pipeline.
type Job struct {
	ID       uuid.UUID
	Name     string // name of the known submission, if any
	Source   string
	Category Category
	Files    []SlotFile
}

// JobResult carries the outcome of a job through the writer and reporter.
type JobResult struct {
	Job          *Job
	Submission   *Submission
	Transactions []*Transaction // filled for successful single-document results
}
