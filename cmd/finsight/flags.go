package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/finsight/internal/backend"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	var config string

	return &cli.Command{
		Name:    "finsight",
		Usage:   "Document upload agent for the finsight processing backend",
		Version: version,
		Flags:   rootFlags(&config),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := logLevel.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
				return ctx, fmt.Errorf("invalid log level: %w", err)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			submitCommand(),
			serveCommand(&config),
			historyCommand(&config),
			stepsCommand(),
		},
	}
}

func loggerFrom(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}
	return log, nil
}

func yamlSource(config *string, key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(config)))
}

func envYAMLSource(config *string, env, key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(cli.EnvVar(env), yaml.YAML(key, altsrc.NewStringPtrSourcer(config)))
}

// rootFlags configure the backend client and the orchestrator and are
// shared by every command.
func rootFlags(config *string) []cli.Flag {
	defaults := orchestrator.DefaultConfig()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: config,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "info",
			Sources: envYAMLSource(config, "FINSIGHT_LOG_LEVEL", "log_level"),
		},
		&cli.StringFlag{
			Name:    "backend-url",
			Aliases: []string{"b"},
			Usage:   "Set processing backend base URL",
			Value:   backend.DefaultBaseURL,
			Sources: envYAMLSource(config, "FINSIGHT_BACKEND_URL", "backend.url"),
		},
		&cli.DurationFlag{
			Name:    "probe-timeout",
			Usage:   "Set backend health check deadline",
			Value:   backend.DefaultProbeTimeout,
			Sources: yamlSource(config, "backend.probe_timeout"),
		},
		&cli.Int64Flag{
			Name:    "max-response-bytes",
			Usage:   "Limit the size of a backend response body",
			Value:   backend.DefaultMaxResponseBytes,
			Sources: yamlSource(config, "backend.max_response_bytes"),
		},
		&cli.DurationFlag{
			Name:    "single-tick",
			Usage:   "Set progress step interval for single documents",
			Value:   defaults.Single.Tick,
			Sources: yamlSource(config, "processing.single.tick"),
		},
		&cli.DurationFlag{
			Name:    "multi-tick",
			Usage:   "Set progress step interval for audit and GST batches",
			Value:   defaults.Multi.Tick,
			Sources: yamlSource(config, "processing.multi.tick"),
		},
		&cli.DurationFlag{
			Name:    "single-ceiling",
			Usage:   "Set overall processing limit for single documents",
			Value:   defaults.Single.Ceiling,
			Sources: yamlSource(config, "processing.single.ceiling"),
		},
		&cli.DurationFlag{
			Name:    "multi-ceiling",
			Usage:   "Set overall processing limit for audit and GST batches",
			Value:   defaults.Multi.Ceiling,
			Sources: yamlSource(config, "processing.multi.ceiling"),
		},
		&cli.DurationFlag{
			Name:    "single-request-timeout",
			Usage:   "Set upload request timeout for single documents",
			Value:   defaults.Single.RequestTimeout,
			Sources: yamlSource(config, "processing.single.request_timeout"),
		},
		&cli.DurationFlag{
			Name:    "multi-request-timeout",
			Usage:   "Set upload request timeout for audit and GST batches",
			Value:   defaults.Multi.RequestTimeout,
			Sources: yamlSource(config, "processing.multi.request_timeout"),
		},
		&cli.DurationFlag{
			Name:    "handoff-delay",
			Usage:   "Set pause between completion and result hand-off",
			Value:   defaults.HandoffDelay,
			Sources: yamlSource(config, "processing.handoff_delay"),
		},
		&cli.StringFlag{
			Name:    "user",
			Usage:   "Set the user the session is opened for",
			Sources: envYAMLSource(config, "FINSIGHT_USER", "session.user"),
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Set the bearer token sent to the backend",
			Sources: envYAMLSource(config, "FINSIGHT_TOKEN", "session.token"),
		},
	}
}

func postgresFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  envYAMLSource(config, "FINSIGHT_PG_HOST", "postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  envYAMLSource(config, "FINSIGHT_PG_PORT", "postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  envYAMLSource(config, "FINSIGHT_PG_USERNAME", "postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  envYAMLSource(config, "FINSIGHT_PG_PASSWORD", "postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "finsight",
			Sources:  envYAMLSource(config, "FINSIGHT_PG_DBNAME", "postgresql.dbname"),
			Required: true,
		},
	}
}

func serveFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set inbox directory to watch for new documents",
			Value:     "inbox",
			Sources:   yamlSource(config, "app.watch_dir"),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write reports to",
			Value:     "reports",
			Sources:   yamlSource(config, "app.reports_dir"),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:     "scan-interval",
			Aliases:  []string{"s"},
			Value:    3 * time.Second,
			Usage:    "Set inbox scan interval",
			Sources:  yamlSource(config, "app.scan_interval"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: yamlSource(config, "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: envYAMLSource(config, "FINSIGHT_HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: yamlSource(config, "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: yamlSource(config, "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: yamlSource(config, "http.write_timeout"),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
