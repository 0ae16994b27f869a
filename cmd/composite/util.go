package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/rs/zerolog"
)

// useColor reports whether output to w should be colored.
func useColor(ctx *cli.Context, w *os.File) bool {
	return !ctx.Bool("no-color") && color.ShouldColorize(w)
}

// newLogger returns a console logger on w at the level named by the
// log-level flag.
func newLogger(ctx *cli.Context, w io.Writer, colored bool) (zerolog.Logger, error) {
	name := ctx.String("log-level")
	if name == "" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level: %q", name)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !colored}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// writeJSON writes v as indented JSON, highlighted when colored is set.
func writeJSON(w io.Writer, v any, colored bool) error {
	var data []byte
	var err error
	if colored {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
