package flags

import (
	"io"
	"regexp"
	"time"

	"github.com/nojima/httpui/exchange"
	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/logging"
	"github.com/nojima/httpui/output"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options
	LogOptions      logging.Options
	Send            bool
	PrintVersion    bool
	PrintLicenses   bool
}

type terminalInfo struct {
	stdinIsTerminal  bool
	stdoutIsTerminal bool
}

func Parse(args []string, stdinIsTerminal, stdoutIsTerminal bool) ([]string, FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdinIsTerminal:  stdinIsTerminal,
		stdoutIsTerminal: stdoutIsTerminal,
	})
}

func parse(args []string, terminal terminalInfo) ([]string, FlagSet, *OptionSet, error) {
	inputOptions := input.Options{}
	logOptions := logging.Options{}
	var send, ignoreStdin, printVersion, printLicenses bool
	timeout := "0"

	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] [URL] [Name:Value ...]")
	flagSet.StringVarLong(&inputOptions.Body, "data", 'd', "request body")
	flagSet.BoolVarLong(&send, "send", 's', "send the request once and print the response instead of opening the editor")
	flagSet.BoolVarLong(&ignoreStdin, "ignore-stdin", 0, "do not attempt to read stdin")
	flagSet.StringVarLong(&timeout, "timeout", 0, "timeout seconds or duration for each request (0 means none)")
	flagSet.StringVarLong(&logOptions.File, "log-file", 0, "append logs to this file")
	flagSet.StringVarLong(&logOptions.Level, "log-level", 0, "log level (trace, debug, info, warn, error)")
	flagSet.StringVarLong(&logOptions.Format, "log-format", 0, "log format (text, json, ecs)")
	flagSet.BoolVarLong(&printVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&printLicenses, "licenses", 0, "print licenses of this program and its dependencies and exit")
	if err := flagSet.Getopt(args, nil); err != nil {
		return nil, flagSet, nil, errors.Wrap(err, "parsing flags")
	}

	// Check stdin
	if !ignoreStdin && !terminal.stdinIsTerminal {
		inputOptions.ReadStdin = true
	}

	// Parse --timeout
	d, err := parseDurationOrSeconds(timeout)
	if err != nil {
		return nil, flagSet, nil, err
	}

	optionSet := &OptionSet{
		InputOptions: inputOptions,
		ExchangeOptions: exchange.Options{
			Timeout: d,
		},
		OutputOptions: output.Options{
			EnableColor: terminal.stdoutIsTerminal,
		},
		LogOptions:    logOptions,
		Send:          send,
		PrintVersion:  printVersion,
		PrintLicenses: printLicenses,
	}
	return flagSet.Args(), flagSet, optionSet, nil
}

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d < 0 {
		return time.Duration(0), errors.Errorf("Value of --timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}
