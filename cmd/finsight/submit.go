package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kurochkinivan/finsight/internal/app"
	"github.com/kurochkinivan/finsight/internal/config"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
	"github.com/kurochkinivan/finsight/internal/progress"
	"github.com/kurochkinivan/finsight/internal/selection"
	"github.com/urfave/cli/v3"
)

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "Upload documents to the backend and print the result",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "category",
				Aliases:  []string{"t"},
				Usage:    "Set document type (bank_statement, gst_return, trial_balance, audit)",
				Required: true,
				Validator: func(s string) error {
					_, err := domain.ParseCategory(s)
					return err
				},
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Set the document `FILE` for single-document types",
			},
			&cli.StringSliceFlag{
				Name:  "slot",
				Usage: "Assign a file to a slot as `KEY=PATH` for audit and GST types",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the hand-off JSON to `FILE` instead of stdout",
			},
			&cli.IntFlag{
				Name:  "retry",
				Usage: "Retry a failed submission up to `N` times",
				Validator: func(n int) error {
					if n < 0 {
						return errors.New("retry count must not be negative")
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFrom(ctx)
			if err != nil {
				return err
			}

			category, err := domain.ParseCategory(cmd.String("category"))
			if err != nil {
				return err
			}

			assignments, err := slotAssignments(category, cmd.String("file"), cmd.StringSlice("slot"))
			if err != nil {
				return err
			}

			set, err := selection.Collect(category, assignments)
			if err != nil {
				return selectionError(err)
			}

			req, err := orchestrator.NewRequest(set)
			if err != nil {
				return err
			}

			agent := app.NewAgent(log, config.Load(cmd))
			defer agent.Close()

			handoff, err := submit(ctx, agent.Orchestrator, req, cmd.Int("retry"), os.Stderr)
			if err != nil {
				return err
			}

			return writeHandoff(cmd.String("out"), handoff)
		},
	}
}

// slotAssignments maps slot keys to file paths. --file targets the single
// document slot.
func slotAssignments(category domain.Category, file string, slots []string) (map[string]string, error) {
	assignments := make(map[string]string, len(slots)+1)

	if file != "" {
		if category.IsMultiSlot() {
			return nil, fmt.Errorf("%s takes files per slot, use --slot KEY=PATH", category.Label())
		}
		assignments[domain.SingleSlotKey] = file
	}

	for _, s := range slots {
		key, path, ok := strings.Cut(s, "=")
		if !ok || key == "" || path == "" {
			return nil, fmt.Errorf("invalid slot assignment %q, expected KEY=PATH", s)
		}

		if _, dup := assignments[key]; dup {
			return nil, fmt.Errorf("slot %q assigned more than once", key)
		}

		assignments[key] = path
	}

	return assignments, nil
}

func selectionError(err error) error {
	var rerr *domain.RejectedFileError
	if errors.As(err, &rerr) {
		return errors.New(rerr.Message)
	}
	return err
}

// submit runs the request, rendering progress to w, and retries failed
// attempts up to retries times.
func submit(
	ctx context.Context,
	orch *orchestrator.Orchestrator,
	req *orchestrator.Request,
	retries int,
	w io.Writer,
) (*orchestrator.Handoff, error) {
	sub := orch.Subscribe()
	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		renderProgress(w, sub.C())
	}()
	defer func() {
		sub.Cancel()
		<-rendered
	}()

	handoff, err := orch.Submit(ctx, req)

	var failure *orchestrator.Failure
	for attempt := 1; attempt <= retries && errors.As(err, &failure) && retryable(failure); attempt++ {
		fmt.Fprintf(w, "\n%s\n\nRetrying (%d/%d)...\n", failure.Message, attempt, retries)
		handoff, err = orch.Retry(ctx)
	}

	if errors.As(err, &failure) {
		fmt.Fprintf(w, "\n%s\n\n%s\n", failure.Message, recoveryHint(failure, retries))
		return nil, fmt.Errorf("processing failed: %s", failure.Kind)
	}

	return handoff, err
}

func retryable(f *orchestrator.Failure) bool {
	return f.Kind != orchestrator.KindValidation && f.Kind != orchestrator.KindCanceled
}

func recoveryHint(f *orchestrator.Failure, retries int) string {
	switch {
	case !retryable(f):
		return "Fix the selected files and submit again."
	case retries > 0:
		return fmt.Sprintf("Gave up after %d retries. Submit again once the backend is healthy.", retries)
	default:
		return "Submit again, or pass --retry N to retry processing automatically."
	}
}

func renderProgress(w io.Writer, snapshots <-chan progress.Snapshot) {
	attempt, cursor := 0, -1

	for snap := range snapshots {
		if snap.Attempt != attempt {
			attempt, cursor = snap.Attempt, -1
			fmt.Fprintf(w, "Attempt %d\n", attempt)
		}

		if snap.Cursor <= cursor {
			continue
		}

		for ; cursor < snap.Cursor && cursor < len(snap.Steps); cursor++ {
			if cursor >= 0 {
				fmt.Fprintf(w, "  [%d/%d] %s done\n", cursor+1, len(snap.Steps), snap.Steps[cursor])
			}
		}

		if current := snap.Current(); current != "" {
			fmt.Fprintf(w, "  [%d/%d] %s...\n", snap.Cursor+1, len(snap.Steps), current)
		}
	}
}

func writeHandoff(path string, handoff *orchestrator.Handoff) (err error) {
	out := io.Writer(os.Stdout)

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", path, err)
		}
		defer func() { err = errors.Join(err, f.Close()) }()

		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(handoff); err != nil {
		return fmt.Errorf("failed to write hand-off: %w", err)
	}

	return nil
}
