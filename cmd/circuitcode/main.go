// Command circuitcode encodes text into three SVG documents and decodes it
// back from them.
//
//	circuitcode encode [-o prefix] [-debug] TEXT...
//	circuitcode decode A.svg B.svg C.svg
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/circuitcode"
)

const (
	exitSuccess           = 0
	exitDecodeFailure     = 1
	exitInvalidInvocation = 2
	exitIOError           = 3
)

type invocationError struct {
	msg string
}

func (e *invocationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &invocationError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: circuitcode encode|decode ...")
		return exitInvalidInvocation
	}
	var err error
	code := exitSuccess
	switch args[0] {
	case "encode":
		err = encode(args[1:], stdout, stderr)
	case "decode":
		code, err = decode(args[1:], stdout, stderr)
	default:
		err = invalidf("unknown command %q (expected encode|decode)", args[0])
	}
	if err == nil {
		return code
	}
	fmt.Fprintln(stderr, err)
	var inv *invocationError
	if errors.As(err, &inv) {
		return exitInvalidInvocation
	}
	return exitIOError
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func logger(debug bool, stderr io.Writer) *slog.Logger {
	if !debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func encode(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("encode")
	prefix := fs.String("o", "circuit", "output file prefix; writes <prefix>-0.svg .. -2.svg")
	debug := fs.Bool("debug", false, "log per panel statistics to stderr")
	if err := fs.Parse(args); err != nil {
		return invalidf("encode: %v", err)
	}
	if fs.NArg() == 0 {
		return invalidf("encode: missing TEXT")
	}
	text := strings.Join(fs.Args(), " ")

	docs, err := circuitcode.Encode(text, circuitcode.WithLogger(logger(*debug, stderr)))
	if err != nil {
		return invalidf("encode: %v", err)
	}
	for v, doc := range docs {
		name := fmt.Sprintf("%s-%d.svg", *prefix, v)
		if err := os.WriteFile(name, doc, 0o644); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func decode(args []string, stdout, stderr io.Writer) (int, error) {
	fs := newFlagSet("decode")
	debug := fs.Bool("debug", false, "log rejected panels to stderr")
	if err := fs.Parse(args); err != nil {
		return 0, invalidf("decode: %v", err)
	}
	if fs.NArg() != circuitcode.Variants {
		return 0, invalidf("decode: need exactly %d files, got %d", circuitcode.Variants, fs.NArg())
	}
	if l := logger(*debug, stderr); l != nil {
		circuitcode.SetLogger(l)
	}

	docs := make([][]byte, fs.NArg())
	for i, name := range fs.Args() {
		b, err := os.ReadFile(name)
		if err != nil {
			return 0, fmt.Errorf("decode: %w", err)
		}
		docs[i] = b
	}
	msg, err := circuitcode.Decode(docs...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitDecodeFailure, nil
	}
	fmt.Fprintln(stdout, msg.Text)
	if err := msg.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitDecodeFailure, nil
	}
	return exitSuccess, nil
}
