// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/exact/internal/rpn"
)

func (a *app) newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive reverse-Polish session",
		Long: `Read expressions line by line on one persistent stack and print the
top after every line.

Session commands:
  :stack   print the whole stack, bottom first
  :clear   empty the stack
  :quit    leave the session (Ctrl-D works too)

Line editing and history are available when stdin is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := &session{app: a, eval: a.evaluator(), out: cmd.OutOrStdout()}
			if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
				return s.interactive()
			}

			return s.batch(cmd.InOrStdin())
		},
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// session is one REPL run over a persistent evaluator.
type session struct {
	app  *app
	eval *rpn.Evaluator
	out  io.Writer
}

// handle processes one input line and reports whether the session should end.
func (s *session) handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case ":quit", ":q", ":exit":
		return true
	case ":clear":
		s.eval.Reset()
		return false
	case ":stack":
		for _, v := range s.eval.Stack() {
			fmt.Fprintln(s.out, s.app.render(v))
		}
		return false
	}

	if err := s.eval.Eval(line); err != nil {
		printError(s.out, err)
		return false
	}
	if top, err := s.eval.Top(); err == nil {
		fmt.Fprintln(s.out, s.app.render(top))
	}

	return false
}

// batch reads lines from r without prompting.
func (s *session) batch(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s.handle(sc.Text()) {
			return nil
		}
	}

	return sc.Err()
}

// interactive runs a liner prompt with history persisted to the configured file.
func (s *session) interactive() error {
	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)

	history := s.app.cfg.REPL.HistoryFile
	if f, err := os.Open(history); err == nil {
		if _, err = l.ReadHistory(f); err != nil {
			s.app.logger.Warn("reading history", "path", history, "error", err)
		}
		f.Close()
	}
	defer s.saveHistory(l, history)

	for {
		line, err := l.Prompt(s.app.cfg.REPL.Prompt)
		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				l.AppendHistory(line)
			}
			if s.handle(line) {
				return nil
			}
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		default:
			return err
		}
	}
}

func (s *session) saveHistory(l *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		s.app.logger.Warn("saving history", "path", path, "error", err)
		return
	}
	defer f.Close()
	if _, err = l.WriteHistory(f); err != nil {
		s.app.logger.Warn("saving history", "path", path, "error", err)
	}
}
