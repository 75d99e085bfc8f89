package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/fossabot/parse-function/internal/ctxlog"
	"github.com/fossabot/parse-function/internal/render"
)

const (
	historyFile = ".parsefn_history"
	promptMain  = "parsefn> "
	replHelp    = `Type a function on one line to parse it.
  :format json|yaml   switch the output format
  :help               show this help
  :quit               leave`
)

var userHomeDir = os.UserHomeDir

// replSession is the state of one interactive prompt.
type replSession struct {
	format string
	outW   io.Writer
}

func runREPL(ctx context.Context, format string, outW io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(ctx)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	s := &replSession{format: format, outW: outW}
	fmt.Fprintln(outW, replHelp)
	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(outW)
				break
			}
			return fmt.Errorf("read prompt: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if s.handle(line) {
			break
		}
	}

	if histPath == "" {
		return nil
	}
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	} else {
		logger.Debug("Could not save history.", "path", histPath, "error", err)
	}
	return nil
}

// historyPath returns the history file in the user's home directory, or ""
// when there is no home directory to keep it in.
func historyPath(ctx context.Context) string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		ctxlog.FromContext(ctx).Debug("No home directory, history disabled.", "error", err)
		return ""
	}
	return filepath.Join(home, historyFile)
}

// handle runs one line of input and reports whether the session is over.
func (s *replSession) handle(line string) (exit bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		if err := render.Write(s.outW, s.format, []render.Record{render.FromSource(line)}); err != nil {
			fmt.Fprintln(s.outW, err)
		}
		return false
	}

	fields := strings.Fields(trimmed)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(s.outW, replHelp)
	case ":format":
		if len(fields) != 2 || (fields[1] != "json" && fields[1] != "yaml") {
			fmt.Fprintln(s.outW, "usage: :format json|yaml")
			return false
		}
		s.format = fields[1]
		fmt.Fprintf(s.outW, "format: %s\n", s.format)
	default:
		fmt.Fprintf(s.outW, "unknown command %s (try :help)\n", fields[0])
	}
	return false
}
