package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/exitcode"
	"todo/internal/ui"
)

// startShell parses the common flags given to "todo shell" and runs the
// shell with them as defaults for every line.
func (d *Dispatcher) startShell(ctx context.Context, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	common.register(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return exitcode.UserError
	}

	d.defaults = common
	return d.runShell(ctx, out, errOut)
}

// runShell reads command lines until EOF, quit or exit, and dispatches each
// against the same session. A prompt is shown only on a terminal.
//
// For piped input the exit code is that of the last failing line, so a
// script of commands fails the way a single command would.
func (d *Dispatcher) runShell(ctx context.Context, out, errOut io.Writer) int {
	cfg, err := d.config(d.defaults)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	interactive := ui.IsTTYReader(d.in)
	status := exitcode.Success
	lines := newLineReader(d.in)
	defer lines.close()

loop:
	for ctx.Err() == nil {
		if interactive {
			fmt.Fprint(out, cfg.Prompt)
		}

		var res scanResult
		select {
		case <-ctx.Done():
			break loop
		case res = <-lines.next():
		}
		if !res.ok {
			if res.err != nil {
				fmt.Fprintf(errOut, "error: read input: %v\n", res.err)
				return exitcode.UserError
			}
			break
		}

		line := strings.TrimSpace(res.line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case fields[0] == "quit" || fields[0] == "exit":
			return exitcode.Success
		case fields[0] == "shell":
			fmt.Fprintln(errOut, "error: already in a shell")
			status = exitcode.UserError
			continue
		}

		if code := d.dispatch(ctx, fields, out, errOut); code != exitcode.Success {
			status = code
		}
	}

	if interactive {
		fmt.Fprintln(out)
		return exitcode.Success
	}
	return status
}

type scanResult struct {
	line string
	ok   bool
	err  error
}

// lineReader scans one line per request on its own goroutine so the shell
// can stop waiting when its context is cancelled. Input is only read when
// asked for, leaving stdin alone while a command such as tui owns it.
type lineReader struct {
	requests chan struct{}
	results  chan scanResult
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		requests: make(chan struct{}),
		results:  make(chan scanResult, 1),
	}
	go func() {
		scanner := bufio.NewScanner(r)
		for range lr.requests {
			if scanner.Scan() {
				lr.results <- scanResult{line: scanner.Text(), ok: true}
				continue
			}
			lr.results <- scanResult{err: scanner.Err()}
			return
		}
	}()
	return lr
}

// next asks for the following line and returns the channel it arrives on.
func (lr *lineReader) next() <-chan scanResult {
	lr.requests <- struct{}{}
	return lr.results
}

func (lr *lineReader) close() {
	close(lr.requests)
}
