package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kurochkinivan/finsight/internal/app"
	"github.com/kurochkinivan/finsight/internal/config"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/urfave/cli/v3"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

func historyCommand(configFile *string) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recent submissions",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Show at most `N` submissions",
				Value:   defaultHistoryLimit,
				Validator: func(n int) error {
					if n < 1 || n > maxHistoryLimit {
						return fmt.Errorf("limit must be in range [1;%d]", maxHistoryLimit)
					}
					return nil
				},
			},
		}, postgresFlags(configFile)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFrom(ctx)
			if err != nil {
				return err
			}

			submissions, total, err := app.New(log, config.Load(cmd)).History(ctx, uint64(cmd.Int("limit")))
			if err != nil {
				return err
			}

			return printHistory(os.Stdout, submissions, total)
		},
	}
}

func printHistory(w io.Writer, submissions []*domain.Submission, total int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tCREATED\tTYPE\tSTATUS\tNAME\tERROR")
	for _, s := range submissions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.CreatedAt.Local().Format(time.DateTime),
			s.Category.Label(),
			s.Status,
			s.Name,
			firstLine(s.ErrorMessage),
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nshowing %d of %d submissions\n", len(submissions), total)
	return err
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
