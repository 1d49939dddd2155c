package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Backend
	Processing
	Session
	PostgreSQL
	HTTP
}

type App struct {
	WatchDirectory        string
	ReportsDirectory      string
	DirectoryScanInterval time.Duration
}

type Backend struct {
	URL              string
	ProbeTimeout     time.Duration
	MaxResponseBytes int64
}

type Processing struct {
	SingleTick           time.Duration
	MultiTick            time.Duration
	SingleCeiling        time.Duration
	MultiCeiling         time.Duration
	SingleRequestTimeout time.Duration
	MultiRequestTimeout  time.Duration
	HandoffDelay         time.Duration
}

type Session struct {
	User  string
	Token string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads every known flag. Flags a command does not define stay at their
// zero value.
func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
		},
		Backend: Backend{
			URL:              cmd.String("backend-url"),
			ProbeTimeout:     cmd.Duration("probe-timeout"),
			MaxResponseBytes: cmd.Int64("max-response-bytes"),
		},
		Processing: Processing{
			SingleTick:           cmd.Duration("single-tick"),
			MultiTick:            cmd.Duration("multi-tick"),
			SingleCeiling:        cmd.Duration("single-ceiling"),
			MultiCeiling:         cmd.Duration("multi-ceiling"),
			SingleRequestTimeout: cmd.Duration("single-request-timeout"),
			MultiRequestTimeout:  cmd.Duration("multi-request-timeout"),
			HandoffDelay:         cmd.Duration("handoff-delay"),
		},
		Session: Session{
			User:  cmd.String("user"),
			Token: cmd.String("token"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
