package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/wonton/color"
	"github.com/hashicorp/go-multierror"
)

// Formatter renders errors for display on a terminal.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorLabel = color.BrightRed
	colorCode  = color.BrightBlack
	colorPipe  = color.BrightBlack
	colorHint  = color.BrightYellow
	colorNote  = color.BrightBlue
)

// FormattedError is an error broken into the parts the Formatter prints.
type FormattedError struct {
	Code    ErrorCode
	Label   string
	Message string
	Hint    string
	Notes   []string
}

// ToFormatted splits err into a header and notes. The label and code come
// from the error kind. The "kind: " prefix is stripped from the message.
// Each error held by an aggregate becomes a note.
func ToFormatted(err error) *FormattedError {
	kind := KindOf(err)
	out := &FormattedError{Code: kind.Code(), Label: kind.String()}

	var agg *multierror.Error
	if stderrors.As(err, &agg) && len(agg.Errors) > 1 {
		out.Message = fmt.Sprintf("%d problems", len(agg.Errors))
		for _, e := range agg.Errors {
			out.Notes = append(out.Notes, e.Error())
		}
		return out
	}
	out.Message = strings.TrimPrefix(err.Error(), out.Label+": ")
	return out
}

// Format renders err as "label[code]: message", followed by hint and note
// lines.
func (f *Formatter) Format(err *FormattedError) string {
	var b strings.Builder
	label := err.Label
	if label == "" {
		label = "error"
	}
	b.WriteString(f.apply(colorLabel, label))
	if err.Code != "" {
		b.WriteString(f.apply(colorCode, "["+string(err.Code)+"]"))
	}
	b.WriteString(": ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Hint != "" {
		f.writeLine(&b, colorHint, "hint", err.Hint)
	}
	for _, note := range err.Notes {
		f.writeLine(&b, colorNote, "note", note)
	}
	return b.String()
}

// FormatError is shorthand for Format(ToFormatted(err)).
func (f *Formatter) FormatError(err error) string {
	return f.Format(ToFormatted(err))
}

func (f *Formatter) writeLine(b *strings.Builder, c color.Color, label, text string) {
	b.WriteString(f.apply(colorPipe, "  = "))
	b.WriteString(f.apply(c, label+": "))
	b.WriteString(text)
	b.WriteString("\n")
}

func (f *Formatter) apply(c color.Color, s string) string {
	if f.UseColor {
		return c.Apply(s)
	}
	return s
}
