package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fossabot/parse-function/internal/cli"
	"github.com/fossabot/parse-function/internal/ctxlog"
	"github.com/fossabot/parse-function/internal/render"
	"github.com/fossabot/parse-function/jsextract"
)

func main() {
	// Minimal logger until flags are read.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with their own streams.
func run(ctx context.Context, inR io.Reader, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(opts.Config.LogLevel, opts.Config.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	if opts.REPL {
		return runREPL(ctx, opts.Config.Format, outW)
	}

	records, err := collect(ctx, opts, inR)
	if err != nil {
		return err
	}
	logger.Debug("Parsed functions.", "count", len(records))
	return render.Write(outW, opts.Config.Format, records)
}

// collect parses every source named by opts, in argument order: literal
// sources first, then stdin, then files.
func collect(ctx context.Context, opts *cli.Options, inR io.Reader) ([]render.Record, error) {
	logger := ctxlog.FromContext(ctx)
	var records []render.Record

	for _, src := range opts.Sources {
		records = append(records, render.FromSource(src))
	}

	if opts.Stdin {
		data, err := io.ReadAll(inR)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		records = append(records, render.FromSource(strings.TrimRight(string(data), "\r\n")))
	}

	if len(opts.Files) == 0 {
		return records, nil
	}

	extractOpts, err := opts.Config.ExtractOptions()
	if err != nil {
		return nil, &cli.ExitError{Code: 2, Message: err.Error()}
	}
	extractor := jsextract.New(extractOpts...)
	for _, path := range opts.Files {
		funcs, err := extractor.ExtractFile(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.Info("Extracted functions.", "file", path, "count", len(funcs))
		for _, f := range funcs {
			records = append(records, render.FromFunc(f))
		}
	}
	return records, nil
}
