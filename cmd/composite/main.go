package main

import (
	stderrors "errors"
	"os"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New("composite").
		Description("Go composite value semantics for dynamic hosts").
		Version(version).
		AddCompletionCommand()

	app.GlobalFlags(
		cli.Bool("no-color", "").Env("NO_COLOR").Help("Disable colored output"),
		cli.String("log-level", "").Env("COMPOSITE_LOG_LEVEL").
			Help("Log level (debug, info, warn, error)"),
	)

	app.Command("check").
		Description("Run fixture scenarios and *.check.yaml files").
		Args("patterns?").
		Flags(
			cli.Bool("verbose", "v").Help("Show scenario log lines"),
			cli.String("run", "r").Help("Run only scenarios matching pattern"),
			cli.Bool("no-fixtures", "").Help("Skip the built-in fixtures"),
		).
		Run(checkHandler)

	app.Command("inspect").
		Description("Build an array and print it").
		Flags(
			cli.String("dims", "d").Help("Comma separated dimensions, such as 2,4"),
			cli.String("zero", "z").Default("0").Help("Zero value (YAML or JSON)"),
			cli.String("init", "i").Help("Initializer (YAML or JSON)"),
			cli.String("slice", "s").Help("Print the window low:high of a one-dimensional array"),
			cli.Bool("stores", "").Help("Show the backing store handle"),
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(inspectHandler)

	app.Command("info").
		Description("Print build information").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(infoHandler)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			return
		}
		if stderrors.Is(err, errCheckFailed) {
			os.Exit(1)
		}
		printError(err)
		os.Exit(cli.GetExitCode(err))
	}
}

func printError(err error) {
	f := errors.NewFormatter(color.ShouldColorize(os.Stderr))
	os.Stderr.WriteString(f.FormatError(err))
}
