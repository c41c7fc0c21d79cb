package httpui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/nojima/httpui/exchange"
	"github.com/nojima/httpui/flags"
	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/logging"
	"github.com/nojima/httpui/output"
	"github.com/nojima/httpui/tui"
	"github.com/nojima/httpui/version"
	"github.com/nojima/httpui/worker"
	"github.com/pkg/errors"
)

func Main() error {
	// Parse flags
	args, flagSet, optionSet, err := flags.Parse(
		os.Args,
		isatty.IsTerminal(os.Stdin.Fd()),
		isatty.IsTerminal(os.Stdout.Fd()),
	)
	if err != nil {
		flagSet.PrintUsage(os.Stderr)
		return err
	}
	if optionSet.PrintVersion {
		version.PrintVersion(os.Stdout)
		return nil
	}
	if optionSet.PrintLicenses {
		version.PrintLicenses(os.Stdout)
		return nil
	}

	// Parse positional arguments
	request, err := input.ParseArgs(args, os.Stdin, &optionSet.InputOptions)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(os.Stderr)
		return err
	}
	if err != nil {
		return err
	}

	// Logging goes to stderr only when the terminal is not taken by the editor
	logOptions := optionSet.LogOptions
	if optionSet.Send {
		logOptions.Fallback = os.Stderr
	}
	logger, closeLog, err := logging.New(logOptions)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := exchange.BuildHTTPClient(&optionSet.ExchangeOptions)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := worker.New(client, logger)
	defer w.Close()
	go w.Run(ctx)

	if optionSet.Send {
		printer := output.NewPrinter(output.PrinterConfig{
			Writer:      os.Stdout,
			InfoWriter:  os.Stderr,
			EnableColor: optionSet.OutputOptions.EnableColor,
		})
		return sendOnce(ctx, w, request, printer)
	}

	var programOptions []tea.ProgramOption
	if optionSet.InputOptions.ReadStdin {
		// stdin held the body; keys come from the terminal
		programOptions = append(programOptions, tea.WithInputTTY())
	}
	logger.WithField("version", version.Current().String()).Info("starting editor")
	return tui.Run(w, request, logger, programOptions...)
}

type session interface {
	Submit(request input.Request) error
	Recv(ctx context.Context) (string, error)
}

// sendOnce pushes a single request through the worker and prints what comes back.
func sendOnce(ctx context.Context, s session, request *input.Request, printer output.Printer) error {
	if err := printer.PrintRequestLine(request); err != nil {
		return err
	}
	if err := s.Submit(request.Clone()); err != nil {
		return err
	}
	text, err := s.Recv(ctx)
	if err != nil {
		return err
	}
	return printer.PrintBody(text)
}
