package output

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/nojima/httpui/input"
)

type PrettyPrinter struct {
	writer         io.Writer
	infoWriter     io.Writer
	aurora         aurora.Aurora
	requestPalette *RequestPalette
}

type RequestPalette struct {
	Method  aurora.Color
	URL     aurora.Color
	Summary aurora.Color
}

var defaultRequestPalette = RequestPalette{
	Method:  aurora.BrownFg | aurora.BoldFm,
	URL:     aurora.CyanFg,
	Summary: aurora.BrightFg | aurora.BlackFg,
}

func NewPrettyPrinter(config PrinterConfig) Printer {
	return &PrettyPrinter{
		writer:         config.Writer,
		infoWriter:     config.InfoWriter,
		aurora:         aurora.NewAurora(config.EnableColor),
		requestPalette: &defaultRequestPalette,
	}
}

func (p *PrettyPrinter) PrintRequestLine(request *input.Request) error {
	if p.infoWriter == nil {
		return nil
	}
	summary := fmt.Sprintf("(%d headers, %s body)", len(request.Header.Fields), FormatSize(len(request.Body)))
	_, err := fmt.Fprintf(p.infoWriter, "%s %s %s\n",
		p.aurora.Colorize(string(request.Method), p.requestPalette.Method),
		p.aurora.Colorize(request.URL, p.requestPalette.URL),
		p.aurora.Colorize(summary, p.requestPalette.Summary))
	return err
}

func (p *PrettyPrinter) PrintBody(text string) error {
	return printBody(p.writer, text)
}
