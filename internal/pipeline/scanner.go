package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
	"github.com/kurochkinivan/finsight/internal/selection"
)

// settleDelay lets writers finish a burst of file events before a scan.
const settleDelay = 500 * time.Millisecond

// Scanner turns inbox entries into jobs. The inbox holds one directory per
// document type: single-document types contain files, multi-slot types
// contain one directory per batch.
type Scanner struct {
	log                 *slog.Logger
	watchDir            string
	scanInterval        time.Duration
	jobs                chan<- *domain.Job
	submissionsProvider SubmissionsProvider
	submissionUpdater   SubmissionUpdater
	now                 func() time.Time
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	jobs chan<- *domain.Job,
	submissionsProvider SubmissionsProvider,
	submissionUpdater SubmissionUpdater,
) *Scanner {
	return &Scanner{
		log:                 log,
		watchDir:            watchDir,
		scanInterval:        scanInterval,
		jobs:                jobs,
		submissionsProvider: submissionsProvider,
		submissionUpdater:   submissionUpdater,
		now:                 time.Now,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.jobs)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	var (
		events      <-chan fsnotify.Event
		watchErrors <-chan error
		settle      <-chan time.Time
	)
	watcher, err := s.newWatcher()
	if err != nil {
		s.log.WarnContext(ctx, "file system notifications disabled, polling only", slog.String("err", err.Error()))
	} else {
		defer watcher.Close()
		events = watcher.Events
		watchErrors = watcher.Errors
	}

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")
			s.scan(ctx)

		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}

			if event.Op.Has(fsnotify.Create) {
				s.watchNewDir(ctx, watcher, event.Name)
			}

			s.log.DebugContext(ctx, "inbox changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))

			settle = time.After(settleDelay)

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}

			s.log.WarnContext(ctx, "file system watcher error", slog.String("err", err.Error()))

		case <-settle:
			settle = nil
			s.scan(ctx)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scan(ctx context.Context) {
	if err := s.scanInbox(ctx); err != nil {
		s.log.ErrorContext(ctx, "failed to scan inbox", slog.String("err", err.Error()))
	}
}

// newWatcher watches the inbox and its category directories so that new
// files are noticed between ticks.
func (s *Scanner) newWatcher() (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(s.watchDir); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to watch %q: %w", s.watchDir, err), watcher.Close())
	}

	for _, c := range domain.Categories {
		dir := filepath.Join(s.watchDir, string(c))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			_ = watcher.Add(dir)
		}
	}

	return watcher, nil
}

func (s *Scanner) watchNewDir(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	if err := watcher.Add(path); err != nil {
		s.log.WarnContext(ctx, "failed to watch directory", slog.String("path", path), slog.String("err", err.Error()))
	}
}

func (s *Scanner) scanInbox(ctx context.Context) error {
	known, err := s.knownSubmissions(ctx)
	if err != nil {
		return err
	}

	for _, category := range domain.Categories {
		dir := filepath.Join(s.watchDir, string(category))

		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read directory %q: %w", dir, err)
		}

		for _, entry := range entries {
			err := s.processEntry(ctx, category, entry, known)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to process entry, skipping",
					slog.String("source", filepath.Join(string(category), entry.Name())),
					slog.String("err", err.Error()),
				)
				continue
			}
		}
	}

	return nil
}

func (s *Scanner) knownSubmissions(ctx context.Context) (map[string]*domain.Submission, error) {
	submissions, err := s.submissionsProvider.Submissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	known := make(map[string]*domain.Submission, len(submissions))
	for _, sub := range submissions {
		known[sub.Source] = sub
	}

	return known, nil
}

func (s *Scanner) processEntry(
	ctx context.Context,
	category domain.Category,
	entry os.DirEntry,
	known map[string]*domain.Submission,
) error {
	if entry.Name()[0] == '.' {
		return nil
	}

	multi := category.IsMultiSlot()
	if entry.IsDir() != multi {
		return nil
	}

	source := filepath.Join(string(category), entry.Name())
	path := filepath.Join(s.watchDir, source)

	if multi && !batchReady(path) {
		return nil
	}

	submission, ok := known[source]
	if ok && submission.Status != domain.StatusPending {
		return nil
	}

	if !ok {
		submission = &domain.Submission{
			ID:        uuid.New(),
			Name:      entry.Name(),
			Source:    source,
			Category:  category,
			CreatedAt: s.now(),
		}
	}

	set, err := s.fileSet(category, path)
	if err != nil {
		return s.reject(ctx, submission, err)
	}

	if err := set.Ready(); err != nil {
		return s.reject(ctx, submission, err)
	}

	job := &domain.Job{
		ID:       submission.ID,
		Name:     submission.Name,
		Source:   source,
		Category: category,
		Files:    set.Populated(),
	}

	submission.Status = domain.StatusProcessing
	submission.Size = jobSize(job)

	if err := s.submissionUpdater.UpdateOrCreateSubmission(ctx, submission); err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}

	s.log.DebugContext(ctx, "updated submission status to processing", slog.String("source", source))

	select {
	case s.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func (s *Scanner) fileSet(category domain.Category, path string) (*domain.FileSet, error) {
	if category.IsMultiSlot() {
		return batchFiles(path, category)
	}

	f, err := selection.FromPath(path)
	if err != nil {
		return nil, err
	}

	set := domain.NewFileSet(category)
	if err := set.Select(domain.SingleSlotKey, f, domain.SourceDrop); err != nil {
		return nil, err
	}

	return set, nil
}

// reject records an inbox entry that can never be submitted so it is not
// picked up again.
func (s *Scanner) reject(ctx context.Context, submission *domain.Submission, cause error) error {
	now := s.now()

	submission.Status = domain.StatusError
	submission.FailureKind = string(orchestrator.KindValidation)
	submission.ErrorMessage = rejectionMessage(cause)
	submission.ProcessedAt = &now

	if err := s.submissionUpdater.UpdateOrCreateSubmission(ctx, submission); err != nil {
		return fmt.Errorf("failed to save rejected submission: %w", err)
	}

	s.log.WarnContext(ctx, "inbox entry rejected",
		slog.String("source", submission.Source),
		slog.String("err", cause.Error()),
	)

	return nil
}

func rejectionMessage(err error) string {
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

func jobSize(job *domain.Job) int64 {
	var n int64
	for _, f := range job.Files {
		n += f.File.Size
	}
	return n
}
