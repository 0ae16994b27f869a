package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/wonton/cli"
)

// infoHandler prints build information. The plain version string is served
// by the app's own version command.
func infoHandler(ctx *cli.Context) error {
	if strings.ToLower(ctx.String("output")) == "json" {
		return writeJSON(os.Stdout, map[string]any{
			"version": version,
			"commit":  commit,
			"date":    date,
		}, useColor(ctx, os.Stdout))
	}
	fmt.Printf("composite %s (commit %s, built %s)\n", version, commit, date)
	return nil
}
