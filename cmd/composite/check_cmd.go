package main

import (
	"errors"
	"os"

	"github.com/deepnoodle-ai/composite/check"
	"github.com/deepnoodle-ai/wonton/cli"
)

var errCheckFailed = errors.New("check failed")

func checkHandler(ctx *cli.Context) error {
	colored := useColor(ctx, os.Stdout)
	logger, err := newLogger(ctx, os.Stderr, useColor(ctx, os.Stderr))
	if err != nil {
		return err
	}

	cfg := &check.Config{
		Patterns:     ctx.Args(),
		RunPattern:   ctx.String("run"),
		SkipFixtures: ctx.Bool("no-fixtures"),
		Logger:       &logger,
	}
	summary, err := check.Run(ctx.Context(), cfg)
	if err != nil {
		return err
	}

	output := check.NewOutput(check.OutputConfig{
		Writer:   os.Stdout,
		Verbose:  ctx.Bool("verbose"),
		UseColor: colored,
	})
	output.PrintResults(summary)

	if !summary.Success() {
		return errCheckFailed
	}
	return nil
}
