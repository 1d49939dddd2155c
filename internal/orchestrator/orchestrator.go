// Package orchestrator drives one document submission at a time: liveness
// probe, upload, simulated progress and result hand-off.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/kurochkinivan/finsight/internal/backend"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/progress"
	"github.com/kurochkinivan/finsight/internal/session"
)

var (
	ErrBusy            = errors.New("a submission is already in progress")
	ErrNotTerminal     = errors.New("no finished submission to act on")
	ErrNothingToRetry  = errors.New("no failed submission to retry")
	ErrCeilingExceeded = errors.New("processing ceiling exceeded")
)

type Backend interface {
	BaseURL() string
	Health(ctx context.Context) error
	Process(ctx context.Context, u *backend.Upload) (json.RawMessage, error)
}

// Timing holds the per-mode durations of an attempt.
type Timing struct {
	Tick           time.Duration
	Ceiling        time.Duration
	RequestTimeout time.Duration
}

type Config struct {
	Single       Timing
	Multi        Timing
	HandoffDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Single: Timing{
			Tick:           2500 * time.Millisecond,
			Ceiling:        5 * time.Minute,
			RequestTimeout: 4 * time.Minute,
		},
		Multi: Timing{
			Tick:           3 * time.Second,
			Ceiling:        10 * time.Minute,
			RequestTimeout: 9 * time.Minute,
		},
		HandoffDelay: 1500 * time.Millisecond,
	}
}

func (c Config) timing(category domain.Category) Timing {
	if category.IsMultiSlot() {
		return c.Multi
	}
	return c.Single
}

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseProbing    Phase = "probing"
	PhaseProcessing Phase = "processing"
	PhaseCompleting Phase = "completing"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

type State struct {
	Phase    Phase              `json:"phase"`
	Attempt  int                `json:"attempt"`
	Category domain.Category    `json:"documentType,omitempty"`
	Progress *progress.Snapshot `json:"progress,omitempty"`
	Handoff  *Handoff           `json:"handoff,omitempty"`
	Failure  *Failure           `json:"failure,omitempty"`
}

type Orchestrator struct {
	log      *slog.Logger
	backend  Backend
	recorder session.Recorder
	hub      *progress.Hub
	cfg      Config
	now      func() time.Time

	mu      sync.Mutex
	phase   Phase
	attempt int
	last    *Request
	tracker *progress.Tracker
	handoff *Handoff
	failure *Failure
}

// New creates an orchestrator. recorder and hub may be nil.
func New(log *slog.Logger, b Backend, recorder session.Recorder, hub *progress.Hub, cfg Config) *Orchestrator {
	if hub == nil {
		hub = progress.NewHub()
	}

	return &Orchestrator{
		log:      log,
		backend:  b,
		recorder: recorder,
		hub:      hub,
		cfg:      cfg,
		now:      time.Now,
		phase:    PhaseIdle,
	}
}

// Subscribe streams progress snapshots of every attempt.
func (o *Orchestrator) Subscribe() *progress.Subscription {
	return o.hub.Subscribe()
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := State{
		Phase:   o.phase,
		Attempt: o.attempt,
		Handoff: o.handoff,
		Failure: o.failure,
	}

	if o.last != nil {
		s.Category = o.last.Category
	}

	if o.tracker != nil {
		snap := o.tracker.Snapshot()
		s.Progress = &snap
	}

	return s
}

// Submit runs one attempt to completion. It returns ErrBusy while another
// attempt is running and a *Failure when the attempt fails.
func (o *Orchestrator) Submit(ctx context.Context, req *Request) (*Handoff, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	attempt, err := o.begin(req.clone(), false)
	if err != nil {
		return nil, err
	}

	return o.run(ctx, attempt, req)
}

// Retry re-runs the last request from scratch. Only a failed attempt can be
// retried.
func (o *Orchestrator) Retry(ctx context.Context) (*Handoff, error) {
	o.mu.Lock()
	req := o.last
	o.mu.Unlock()

	if req == nil {
		return nil, ErrNothingToRetry
	}

	attempt, err := o.begin(req, true)
	if err != nil {
		return nil, err
	}

	return o.run(ctx, attempt, req)
}

// Reset discards the outcome of the finished attempt and returns to idle.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.phase.Terminal() {
		return ErrNotTerminal
	}

	o.clearLocked()
	o.phase = PhaseIdle

	return nil
}

func (o *Orchestrator) begin(req *Request, retry bool) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.phase != PhaseIdle && !o.phase.Terminal() {
		return 0, ErrBusy
	}

	if retry && o.phase != PhaseFailed {
		return 0, ErrNothingToRetry
	}

	o.clearLocked()
	o.attempt++
	o.last = req
	o.phase = PhaseProbing

	return o.attempt, nil
}

func (o *Orchestrator) clearLocked() {
	o.tracker = nil
	o.handoff = nil
	o.failure = nil
}

func (o *Orchestrator) run(ctx context.Context, attempt int, req *Request) (*Handoff, error) {
	log := o.log.With(
		slog.Int("attempt", attempt),
		slog.String("document_type", string(req.Category)),
		slog.Int("files_count", len(req.Files)),
	)

	o.record(ctx, "processing_started", slog.String("document_type", string(req.Category)))

	log.DebugContext(ctx, "probing backend")

	if err := o.backend.Health(ctx); err != nil {
		return nil, o.fail(ctx, log, probeFailure(o.backend.BaseURL(), err))
	}

	result, err := o.process(ctx, log, attempt, req)
	if err != nil {
		return nil, o.fail(ctx, log, processFailure(o.backend.BaseURL(), err))
	}

	handoff := newHandoff(req, result, o.now())

	o.setPhase(PhaseCompleting)

	timer := time.NewTimer(o.cfg.HandoffDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, o.fail(ctx, log, processFailure(o.backend.BaseURL(), context.Cause(ctx)))
	}

	o.mu.Lock()
	o.handoff = handoff
	o.phase = PhaseDone
	o.mu.Unlock()

	log.InfoContext(ctx, "processing succeeded", slog.String("file_name", handoff.FileName))
	o.record(ctx, "processing_succeeded", slog.String("document_type", string(req.Category)))

	return handoff, nil
}

// process uploads under the ceiling deadline while the tracker ticks. The
// tracker and ceiling are torn down exactly once, by whichever outcome
// arrives first.
func (o *Orchestrator) process(ctx context.Context, log *slog.Logger, attempt int, req *Request) (json.RawMessage, error) {
	timing := o.cfg.timing(req.Category)

	ceilingCtx, cancelCeiling := context.WithTimeoutCause(ctx, timing.Ceiling, ErrCeilingExceeded)

	tracker := progress.NewTracker(attempt, progress.Steps, timing.Tick, o.hub)

	var once sync.Once
	teardown := func() {
		once.Do(func() {
			tracker.Stop()
			cancelCeiling()
		})
	}
	defer teardown()

	o.mu.Lock()
	o.tracker = tracker
	o.phase = PhaseProcessing
	o.mu.Unlock()

	go tracker.Run(ceilingCtx)

	log.InfoContext(ctx, "processing started")

	result, err := o.backend.Process(ceilingCtx, &backend.Upload{
		Category: req.Category,
		Files:    req.Files,
		Timeout:  timing.RequestTimeout,
	})
	if err != nil {
		teardown()
		return nil, err
	}

	tracker.Complete()
	teardown()

	return result, nil
}

func (o *Orchestrator) fail(ctx context.Context, log *slog.Logger, f *Failure) *Failure {
	o.mu.Lock()
	o.failure = f
	o.phase = PhaseFailed
	o.mu.Unlock()

	attrs := []any{slog.String("kind", string(f.Kind))}
	if f.Err != nil {
		attrs = append(attrs, slog.String("err", f.Err.Error()))
	}
	log.ErrorContext(ctx, "processing failed", attrs...)

	o.record(ctx, "processing_failed", slog.String("kind", string(f.Kind)))

	return f
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

func (o *Orchestrator) record(ctx context.Context, name string, attrs ...slog.Attr) {
	if o.recorder != nil {
		o.recorder.Record(ctx, name, attrs...)
	}
}
