package v1

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/finsight/internal/orchestrator"
	"github.com/kurochkinivan/finsight/internal/progress"
)

type Orchestrator interface {
	State() orchestrator.State
	Reset() error
	Subscribe() *progress.Subscription
}

type HealthChecker interface {
	BaseURL() string
	Health(ctx context.Context) error
}

type StateHandler struct {
	log          *slog.Logger
	orchestrator Orchestrator
	backend      HealthChecker
	submitter    Submitter
}

func NewStateHandler(log *slog.Logger, orch Orchestrator, backend HealthChecker, submitter Submitter) *StateHandler {
	return &StateHandler{
		log:          log,
		orchestrator: orch,
		backend:      backend,
		submitter:    submitter,
	}
}

type BackendHealth struct {
	URL       string `json:"url"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string             `json:"status"`
	Phase   orchestrator.Phase `json:"phase"`
	Backend BackendHealth      `json:"backend"`
}

// GetHealth reports agent liveness along with a fresh backend probe. An
// unavailable backend does not make the agent unhealthy.
func (h *StateHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	backend := BackendHealth{URL: h.backend.BaseURL(), Available: true}

	if err := h.backend.Health(r.Context()); err != nil {
		backend.Available = false
		backend.Error = err.Error()
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Phase:   h.orchestrator.State().Phase,
		Backend: backend,
	})
}

func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orchestrator.State())
}

func (h *StateHandler) Reset(w http.ResponseWriter, r *http.Request) {
	err := h.orchestrator.Reset()
	if errors.Is(err, orchestrator.ErrNotTerminal) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.orchestrator.State())
}

// Retry re-runs the last failed request through the submitter so that the
// outcome is persisted like any other submission.
func (h *StateHandler) Retry(w http.ResponseWriter, r *http.Request) {
	state := h.orchestrator.State()
	if state.Phase != orchestrator.PhaseFailed {
		http.Error(w, orchestrator.ErrNothingToRetry.Error(), http.StatusConflict)
		return
	}

	err := h.submitter.TryRetry()
	if errors.Is(err, orchestrator.ErrBusy) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.InfoContext(r.Context(), "retry requested", slog.Int("attempt", state.Attempt))

	w.WriteHeader(http.StatusAccepted)
}
