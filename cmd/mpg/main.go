// Command mpg converts fuel consumption between US miles per gallon and
// liters per 100 kilometers.
//
// Usage:
//
//	mpg [-margin n] [-format text|json|msgpack] [-check] [-v] <value> [precision]
//
// The conversion is symmetric, so the same command converts in both
// directions:
//
//	$ mpg 30
//	7.842
//	$ mpg 7.842
//	30
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/govalues/mpg"
	"github.com/govalues/mpg/approx"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

type options struct {
	margin int
	format string
	check  bool
	debug  bool
	value  string
	prec   int
}

// record is written by the json and msgpack formats.
type record struct {
	Input     string     `json:"input" msgpack:"input"`
	Precision int        `json:"precision" msgpack:"precision"`
	Result    mpg.Buffer `json:"-" msgpack:"result"`
	Value     string     `json:"result" msgpack:"-"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(opts, stdout, logger); err != nil {
		logger.Error("conversion failed", "input", opts.value, "precision", opts.prec, "error", err)
		return exitFailure
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mpg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.margin, "margin", mpg.DefaultMargin, "extra whole digits reserved for intermediate results")
	fs.StringVar(&opts.format, "format", "text", "output format (text, json, msgpack)")
	fs.BoolVar(&opts.check, "check", false, "compare the result with arbitrary-precision libraries")
	fs.BoolVar(&opts.debug, "v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: mpg [flags] <value> [precision]")
		fmt.Fprintln(fs.Output(), "Converts between US MPG and L/100km; precision defaults to", mpg.DefaultPrec)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	usage := func(format string, a ...any) (options, error) {
		fmt.Fprintf(fs.Output(), "mpg: "+format+"\n", a...)
		fs.Usage()
		return options{}, errUsage
	}
	switch opts.format {
	case "text", "json", "msgpack":
	default:
		return usage("unknown format %q", opts.format)
	}
	if opts.margin < 0 {
		return usage("negative margin %v", opts.margin)
	}

	opts.prec = mpg.DefaultPrec
	switch fs.NArg() {
	case 2:
		p, err := strconv.Atoi(fs.Arg(1))
		if err != nil || p < 0 {
			return usage("invalid precision %q", fs.Arg(1))
		}
		opts.prec = p
		fallthrough
	case 1:
		opts.value = fs.Arg(0)
	default:
		return usage("expected a value and an optional precision, got %v argument(s)", fs.NArg())
	}
	return opts, nil
}

func execute(opts options, w io.Writer, logger *slog.Logger) error {
	c, err := mpg.NewConverter(opts.margin, opts.prec)
	if err != nil {
		return err
	}
	d, err := mpg.ParseDigits(opts.value)
	if err != nil {
		return err
	}
	logger.Debug("converting", "input", d, "margin", opts.margin, "precision", opts.prec)
	r, err := c.Convert(d)
	if err != nil {
		return err
	}
	logger.Debug("converted", "result", r, "size", r.Size())

	if opts.check {
		ch := approx.Checker{Logger: logger}
		rep, err := ch.Compare(opts.value, opts.prec)
		if err != nil {
			logger.Warn("check incomplete", "error", err)
		}
		return writeReport(w, opts.format, rep)
	}
	rec := record{Input: opts.value, Precision: opts.prec, Result: r, Value: r.String()}
	return writeRecord(w, opts.format, rec)
}

func writeRecord(w io.Writer, format string, rec record) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(rec)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(rec)
	default:
		_, err := fmt.Fprintln(w, rec.Value)
		return err
	}
}

func writeReport(w io.Writer, format string, rep approx.Report) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(rep)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(rep)
	}
	if _, err := fmt.Fprintf(w, "%-10s %s\n", "mpg", rep.Result); err != nil {
		return err
	}
	for _, res := range rep.Results {
		if _, err := fmt.Fprintf(w, "%-10s %s (deviation %s)\n", res.Backend, res.Value, res.Deviation); err != nil {
			return err
		}
	}
	return nil
}
