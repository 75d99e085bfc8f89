// Package cli turns command-line arguments into the options of a parsefn
// run.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fossabot/parse-function/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is everything one run needs.
type Options struct {
	Config  config.Config
	Sources []string // function text given as arguments
	Files   []string // JavaScript files to extract from
	Stdin   bool     // read one function from stdin
	REPL    bool
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns the options, a boolean
// reporting whether the program should exit cleanly, or an *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("parsefn", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
parsefn - describe JavaScript functions: name, params, args and body.

Usage:
  parsefn [options] [SOURCE...]

Arguments:
  SOURCE
    Function source text, e.g. "function add (a, b) { return a + b }".
    A single "-" reads the source from stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	var files stringList
	flagSet.Var(&files, "file", "JavaScript file to extract functions from (repeatable).")
	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	formatFlag := flagSet.String("format", "", "Output format. Options: 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	kindsFlag := flagSet.String("kinds", "", "Comma separated kinds to extract from files: declaration, expression, arrow, method.")
	maxSizeFlag := flagSet.Int64("max-file-size", 0, "Largest JavaScript file to read, in bytes.")
	replFlag := flagSet.Bool("repl", false, "Start an interactive prompt.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// explicitly set flags win over the config file
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *formatFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "kinds":
			cfg.Kinds = splitList(*kindsFlag)
		case "max-file-size":
			cfg.MaxFileSize = *maxSizeFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{Config: cfg, Files: files, REPL: *replFlag}
	for _, arg := range flagSet.Args() {
		if arg == "-" {
			opts.Stdin = true
			continue
		}
		opts.Sources = append(opts.Sources, arg)
	}

	if !opts.REPL && !opts.Stdin && len(opts.Sources) == 0 && len(opts.Files) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "sources", len(opts.Sources), "files", len(opts.Files))
	return opts, false, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewLogger builds a logger for the given level and format. It does not
// touch the global logger.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}
