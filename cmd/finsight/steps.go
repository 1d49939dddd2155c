package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/progress"
	"github.com/urfave/cli/v3"
)

func stepsCommand() *cli.Command {
	return &cli.Command{
		Name:  "steps",
		Usage: "List document types, their slots and the processing steps",
		Action: func(_ context.Context, _ *cli.Command) error {
			return printSteps(os.Stdout)
		},
	}
}

func printSteps(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, c := range domain.Categories {
		layout := c.Layout()
		fmt.Fprintf(tw, "%s (%s)\n", c.Label(), c)

		for _, s := range layout.Slots {
			key := s.Key
			if !layout.Multi {
				key = "--file"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", key, s.Label, strings.Join(s.Extensions, " "))
		}

		fmt.Fprintln(tw)
	}

	fmt.Fprintln(tw, "Processing steps")
	for i, step := range progress.Steps {
		fmt.Fprintf(tw, "  %d.\t%s\n", i+1, step)
	}

	return tw.Flush()
}
