// Package batch replays files of command lines, one invocation per line.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrRecursiveBatch is returned for a file that is already being replayed
	// further up the include chain.
	ErrRecursiveBatch = errors.New("batch file includes itself")
	ErrUnreadableFile = errors.New("Unable to read file")
)

// Evaluator runs one line's arguments and returns its printable result.
// It must be safe for concurrent use.
type Evaluator func(ctx context.Context, args []string) (string, error)

// Result is the outcome of one line.
type Result struct {
	File   string
	Line   int
	Args   []string
	Output string
	Err    error
}

// Run evaluates every non-empty line of path with at most workers lines in
// flight, and returns the results in file order. Lines carrying a file flag
// are replaced by the results of that file.
func Run(ctx context.Context, path string, workers int, eval Evaluator) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	r := &runner{
		workers: workers,
		eval:    eval,
		active:  make(map[string]bool),
	}
	return r.run(ctx, path)
}

type runner struct {
	workers int
	eval    Evaluator
	// active only ever changes on the calling goroutine.
	active map[string]bool
}

type line struct {
	no   int
	text string
}

func (r *runner) run(ctx context.Context, path string) ([]Result, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	if r.active[key] {
		return nil, fmt.Errorf("%w: %s", ErrRecursiveBatch, path)
	}

	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableFile, path, err)
	}

	r.active[key] = true
	defer delete(r.active, key)

	slots := make([][]Result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, ln := range lines {
		args := SplitLine(ln.text)
		if nested, ok := FileArg(args); ok {
			res, err := r.run(gctx, nested)
			if err != nil {
				res = []Result{{File: path, Line: ln.no, Args: args, Err: err}}
			}
			slots[i] = res
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := r.eval(gctx, args)
			slots[i] = []Result{{File: path, Line: ln.no, Args: args, Output: out, Err: err}}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var results []Result
	for _, s := range slots {
		results = append(results, s...)
	}
	return results, nil
}

func readLines(path string) ([]line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []line
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, line{no: n, text: text})
	}
	return lines, sc.Err()
}

// multiValueFlags take every following bare word as one more value.
var multiValueFlags = map[string]bool{
	"--tiles":  true,
	"-m":       true,
	"--manual": true,
}

// SplitLine turns a line into arguments with JoinValues applied.
func SplitLine(s string) []string {
	return JoinValues(strings.Fields(s))
}

// JoinValues joins the words after a multi-value flag with commas, so
// "--tiles 123m 456p" becomes "--tiles 123m,456p".
func JoinValues(fields []string) []string {
	args := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		args = append(args, f)
		if !multiValueFlags[f] {
			continue
		}
		var values []string
		for i+1 < len(fields) && !strings.HasPrefix(fields[i+1], "-") {
			i++
			values = append(values, fields[i])
		}
		if len(values) > 0 {
			args = append(args, strings.Join(values, ","))
		}
	}
	return args
}

// FileArg returns the value of a -f or --file flag in args.
func FileArg(args []string) (string, bool) {
	for i, a := range args {
		switch {
		case a == "-f" || a == "--file":
			if i+1 < len(args) {
				return args[i+1], true
			}
		case strings.HasPrefix(a, "--file="):
			return strings.TrimPrefix(a, "--file="), true
		case strings.HasPrefix(a, "-f="):
			return strings.TrimPrefix(a, "-f="), true
		}
	}
	return "", false
}
