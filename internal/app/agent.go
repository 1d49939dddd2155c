package app

import (
	"log/slog"

	"github.com/kurochkinivan/finsight/internal/backend"
	"github.com/kurochkinivan/finsight/internal/config"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
	"github.com/kurochkinivan/finsight/internal/progress"
	"github.com/kurochkinivan/finsight/internal/session"
)

// Agent is the submission machinery shared by the CLI and the server. It
// needs no database.
type Agent struct {
	Session      *session.Session
	Backend      *backend.Client
	Hub          *progress.Hub
	Orchestrator *orchestrator.Orchestrator
}

func NewAgent(log *slog.Logger, cfg *config.Config) *Agent {
	sess := session.Open(log, session.Credentials{
		User:  cfg.Session.User,
		Token: cfg.Session.Token,
	})

	opts := []backend.Option{backend.WithTokenSource(sess)}
	if cfg.Backend.MaxResponseBytes > 0 {
		opts = append(opts, backend.WithMaxResponseBytes(cfg.Backend.MaxResponseBytes))
	}

	client := backend.NewClient(log, cfg.Backend.URL, cfg.Backend.ProbeTimeout, opts...)
	hub := progress.NewHub()

	return &Agent{
		Session:      sess,
		Backend:      client,
		Hub:          hub,
		Orchestrator: orchestrator.New(log, client, sess, hub, OrchestratorConfig(cfg.Processing)),
	}
}

// OrchestratorConfig fills unset timings with the defaults.
func OrchestratorConfig(p config.Processing) orchestrator.Config {
	c := orchestrator.DefaultConfig()

	override(&c.Single.Tick, p.SingleTick)
	override(&c.Multi.Tick, p.MultiTick)
	override(&c.Single.Ceiling, p.SingleCeiling)
	override(&c.Multi.Ceiling, p.MultiCeiling)
	override(&c.Single.RequestTimeout, p.SingleRequestTimeout)
	override(&c.Multi.RequestTimeout, p.MultiRequestTimeout)
	override(&c.HandoffDelay, p.HandoffDelay)

	return c
}

func override[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// Close stops progress delivery and ends the session.
func (a *Agent) Close() error {
	a.Hub.Close()
	return a.Session.Close()
}
