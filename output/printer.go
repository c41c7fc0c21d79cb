package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/nojima/httpui/input"
	"github.com/pkg/errors"
)

type Printer interface {
	PrintRequestLine(request *input.Request) error
	PrintBody(text string) error
}

type PrinterConfig struct {
	// Writer receives the response text.
	Writer io.Writer
	// InfoWriter receives the request line; nil disables it.
	InfoWriter  io.Writer
	EnableColor bool
}

// NewPrinter picks the pretty printer when colours are enabled.
func NewPrinter(config PrinterConfig) Printer {
	if config.EnableColor {
		return NewPrettyPrinter(config)
	}
	return NewPlainPrinter(config)
}

// printBody writes the response text uncoloured and ends it with a newline;
// the text may be an error message.
func printBody(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(err, "printing response")
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}
