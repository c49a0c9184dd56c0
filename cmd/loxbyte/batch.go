package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"loxbyte"
)

type batchCmd struct {
	concurrency int
	debug       bool
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "compile and run many source files concurrently" }
func (*batchCmd) Usage() string {
	return `batch [-j N] <file> [file...]:
  Run each file in its own Interpreter, bounded by -j concurrent workers.
  Prints every file's result or error, then exits 65 if any file failed
  to compile, else 70 if any failed at runtime, else 0.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.concurrency, "j", 4, "maximum number of files to run concurrently")
	f.BoolVar(&c.debug, "debug", false, "disassemble and trace each file's execution")
}

func (c *batchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, (&ArgumentError{Message: "batch: no source files given"}).Error())
		return exitUsage
	}

	results := make([]batchResult, len(files))

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(c.concurrency)

	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			results[i] = runOne(path, c.debug)
			return nil
		})
	}
	_ = eg.Wait() // runOne never returns an error; failures live in batchResult

	status := subcommands.ExitSuccess
	for _, r := range results {
		fmt.Println(r.describe())
		switch {
		case r.exitCode == exitDataErr || r.exitCode == exitUsage:
			status = exitDataErr
		case r.exitCode == exitSoftErr && status != exitDataErr:
			status = exitSoftErr
		}
	}
	return subcommands.ExitStatus(status)
}

type batchResult struct {
	path     string
	source   string
	output   string
	err      error
	exitCode int
}

func (r batchResult) describe() string {
	if r.err != nil {
		return fmt.Sprintf("%s: %s", r.path, formatDiagnostic(r.source, r.err))
	}
	return fmt.Sprintf("%s: %s", r.path, r.output)
}

func runOne(path string, debug bool) batchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return batchResult{path: path, err: err, exitCode: exitUsage}
	}

	source := string(data)
	var out bytes.Buffer
	err = loxbyte.New(debug).Interpret(source, &out)
	if err != nil {
		return batchResult{path: path, source: source, err: err, exitCode: exitStatusFor(err)}
	}
	return batchResult{path: path, output: strings.TrimSuffix(out.String(), "\n")}
}
