package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/peterh/liner"
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/errors"
	"github.com/pontaoski/lumen/eval"
	"github.com/ztrue/tracerr"
)

const (
	promptMain = "lumen> "
	promptCont = "  ...> "
)

// incomplete reports whether err only means the input stopped early, in
// which case the REPL keeps reading lines.
func incomplete(err error) bool {
	switch err.(type) {
	case errors.UnexpectedEOF, errors.UnclosedString:
		return true
	}
	return false
}

// replExec runs one input. Unlike a file run, a runtime failure is
// reported and the session continues from the state before the input.
func replExec(program ast.Body, st eval.State, out io.Writer) (next eval.State) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}
			fmt.Fprintf(out, "error: %s\n", tracerr.Unwrap(rerr))
			next = st
		}
	}()

	next = eval.Exec(program, st)
	if len(program) > 0 && eval.IsExpression(program[len(program)-1]) {
		fmt.Fprintln(out, ast.Display(next.Value()))
	}
	return next
}

func repl(conf config, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if conf.HistoryFile != "" {
		if f, err := os.Open(conf.HistoryFile); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(conf.HistoryFile); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	st := eval.State{Env: eval.Builtins(out)}
	var input strings.Builder

	for {
		prompt := promptMain
		if input.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			input.Reset()
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		if input.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit":
				return nil
			case ":env":
				fmt.Fprintln(out, repr.String(st.Env.Names()))
				continue
			}
		}

		input.WriteString(line)
		input.WriteString("\n")

		program, err := parseSource(input.String(), "<repl>")
		if incomplete(err) {
			continue
		}
		ln.AppendHistory(strings.TrimSpace(input.String()))
		input.Reset()

		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		st = replExec(program, st, out)
	}
}
