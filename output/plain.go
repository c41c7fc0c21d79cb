package output

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/bytefmt"
	"github.com/nojima/httpui/input"
)

type PlainPrinter struct {
	writer     io.Writer
	infoWriter io.Writer
}

func NewPlainPrinter(config PrinterConfig) Printer {
	return &PlainPrinter{
		writer:     config.Writer,
		infoWriter: config.InfoWriter,
	}
}

func (p *PlainPrinter) PrintRequestLine(request *input.Request) error {
	if p.infoWriter == nil {
		return nil
	}
	_, err := fmt.Fprintf(p.infoWriter, "%s %s (%d headers, %s body)\n",
		request.Method, request.URL, len(request.Header.Fields), FormatSize(len(request.Body)))
	return err
}

func (p *PlainPrinter) PrintBody(text string) error {
	return printBody(p.writer, text)
}

// FormatSize renders a byte count the way the status line and request line show it.
func FormatSize(n int) string {
	return bytefmt.ByteSize(uint64(n))
}
