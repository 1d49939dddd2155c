package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
)

const (
	maxUploadBytes  = 64 << 20
	maxUploadMemory = 32 << 20
)

type Submitter interface {
	TrySubmit(job *domain.Job) error
	TryRetry() error
}

type SubmissionsReader interface {
	SubmissionsPage(ctx context.Context, limit, offset uint64) ([]*domain.Submission, int, error)
	SubmissionByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

type TransactionsReader interface {
	TransactionsBySubmission(ctx context.Context, id uuid.UUID) ([]*domain.Transaction, error)
}

type TransactionsExporter interface {
	Export(w io.Writer, transactions []*domain.Transaction) error
}

type SubmissionsHandler struct {
	log          *slog.Logger
	submitter    Submitter
	submissions  SubmissionsReader
	transactions TransactionsReader
	exporter     TransactionsExporter
}

func NewSubmissionsHandler(
	log *slog.Logger,
	submitter Submitter,
	submissions SubmissionsReader,
	transactions TransactionsReader,
	exporter TransactionsExporter,
) *SubmissionsHandler {
	return &SubmissionsHandler{
		log:          log,
		submitter:    submitter,
		submissions:  submissions,
		transactions: transactions,
		exporter:     exporter,
	}
}

type CreateSubmissionResponse struct {
	ID uuid.UUID `json:"id"`
}

// CreateSubmission accepts a multipart form with a document_type field and
// either a "file" part or one part per slot key. The job is queued only when
// nothing else is processing.
func (h *SubmissionsHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	category, err := domain.ParseCategory(r.FormValue("document_type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	set, err := uploadedFiles(category, r.MultipartForm.File)
	if err != nil {
		http.Error(w, rejectionText(err), http.StatusBadRequest)
		return
	}

	if err := set.Ready(); err != nil {
		http.Error(w, rejectionText(err), http.StatusBadRequest)
		return
	}

	job := &domain.Job{
		ID:       uuid.New(),
		Category: category,
		Files:    set.Populated(),
	}

	err = h.submitter.TrySubmit(job)
	if errors.Is(err, orchestrator.ErrBusy) {
		http.Error(w, "another submission is being processed", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.InfoContext(r.Context(), "submission accepted",
		slog.String("submission_id", job.ID.String()),
		slog.String("document_type", string(category)),
		slog.Int("files_count", len(job.Files)),
	)

	writeJSON(w, http.StatusAccepted, CreateSubmissionResponse{ID: job.ID})
}

type GetSubmissionsResponse struct {
	Submissions []*domain.Submission `json:"submissions"`
	Pagination  Pagination           `json:"pagination"`
}

func (h *SubmissionsHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	submissions, total, err := h.submissions.SubmissionsPage(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetSubmissionsResponse{
		Submissions: submissions,
		Pagination:  newPagination(page, limit, total),
	})
}

type GetSubmissionResponse struct {
	Submission *domain.Submission    `json:"submission"`
	Handoff    *orchestrator.Handoff `json:"handoff,omitempty"`
	Failure    *orchestrator.Failure `json:"failure,omitempty"`
}

func (h *SubmissionsHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submission, ok := h.submissionFromPath(w, r)
	if !ok {
		return
	}

	resp := GetSubmissionResponse{Submission: submission}

	switch submission.Status {
	case domain.StatusDone:
		resp.Handoff = &orchestrator.Handoff{
			FileName:      submission.Name,
			Result:        submission.Result,
			DocumentType:  submission.Category,
			IsAuditReport: submission.IsAuditReport,
		}
	case domain.StatusError:
		resp.Failure = &orchestrator.Failure{
			Kind:    orchestrator.FailureKind(submission.FailureKind),
			Message: submission.ErrorMessage,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *SubmissionsHandler) GetTransactionsCSV(w http.ResponseWriter, r *http.Request) {
	submission, ok := h.submissionFromPath(w, r)
	if !ok {
		return
	}

	transactions, err := h.transactions.TransactionsBySubmission(r.Context(), submission.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", submission.ID.String()+".csv"))

	if err := h.exporter.Export(w, transactions); err != nil {
		h.log.ErrorContext(r.Context(), "failed to export transactions",
			slog.String("submission_id", submission.ID.String()),
			slog.String("err", err.Error()),
		)
	}
}

func (h *SubmissionsHandler) submissionFromPath(w http.ResponseWriter, r *http.Request) (*domain.Submission, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid submission id", http.StatusBadRequest)
		return nil, false
	}

	submission, err := h.submissions.SubmissionByID(r.Context(), id)
	if errors.Is(err, domain.ErrSubmissionNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}

	return submission, true
}

// uploadedFiles copies the form parts into a file set. The single-document
// layout also accepts its file under the "file" field.
func uploadedFiles(category domain.Category, parts map[string][]*multipart.FileHeader) (*domain.FileSet, error) {
	set := domain.NewFileSet(category)

	for field, headers := range parts {
		slot := field
		if field == "file" && !category.IsMultiSlot() {
			slot = domain.SingleSlotKey
		}

		if len(headers) != 1 {
			return nil, fmt.Errorf("expected one file for %q, got %d", field, len(headers))
		}

		f, err := readPart(headers[0])
		if err != nil {
			return nil, err
		}

		if err := set.Select(slot, f, domain.SourcePicker); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func readPart(fh *multipart.FileHeader) (_ *domain.File, err error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %q: %w", fh.Filename, err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %q: %w", fh.Filename, err)
	}

	return domain.NewFileFromBytes(fh.Filename, fh.Header.Get("Content-Type"), data), nil
}

func rejectionText(err error) string {
	var (
		rerr *domain.RejectedFileError
		verr *domain.ValidationError
	)

	switch {
	case errors.As(err, &rerr):
		return rerr.Message
	case errors.As(err, &verr):
		return verr.Message
	default:
		return err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
