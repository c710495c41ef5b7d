// Command lzhuff compresses files with the LZ77+Huffman pipeline and
// benchmarks it against other codecs.
//
// Usage:
//
//	lzhuff compress [-window N] [-memory] [-verify] FILE
//	lzhuff decompress [-window N] [-o OUT] FILE.lz77.huff
//	lzhuff bench [-windows 16,256,4096,65535] [-chart out.svg] [-repeat N] FILE
//	lzhuff sizes DIR
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
)

type command struct {
	run      func(env *env, args []string) error
	flags    *flag.FlagSet
	argsDesc string
	desc     string
}

// env carries the process streams so commands can be driven from tests.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

func newEnv(stdout, stderr io.Writer, verbose bool) *env {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return &env{
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
}

var errUsage = errors.New("usage error")

func commands() map[string]*command {
	return map[string]*command{
		"compress":   newCompressCommand(),
		"decompress": newDecompressCommand(),
		"bench":      newBenchCommand(),
		"sizes":      newSizesCommand(),
	}
}

func printUsage(w io.Writer, cmds map[string]*command) {
	fmt.Fprintln(w, "Usage: lzhuff [-v] <command> [arguments]")
	fmt.Fprintln(w, "Commands available:")

	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := cmds[name]
		fmt.Fprintf(w, "    %-10s %-28s %s\n", name, cmd.argsDesc, cmd.desc)
	}
}

// run executes one command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	top := flag.NewFlagSet("lzhuff", flag.ContinueOnError)
	top.SetOutput(stderr)
	verbose := top.Bool("v", false, "debug logging")
	cmds := commands()
	top.Usage = func() { printUsage(stderr, cmds) }

	if err := top.Parse(args); err != nil {
		return 2
	}
	if top.NArg() == 0 {
		fmt.Fprintln(stderr, "error: expected a command")
		printUsage(stderr, cmds)

		return 2
	}

	name := top.Arg(0)
	cmd, ok := cmds[name]
	if !ok {
		fmt.Fprintf(stderr, "error: unknown command %q\n", name)
		printUsage(stderr, cmds)

		return 2
	}

	e := newEnv(stdout, stderr, *verbose)
	cmd.flags.SetOutput(stderr)
	if err := cmd.flags.Parse(top.Args()[1:]); err != nil {
		return 2
	}

	if err := cmd.run(e, cmd.flags.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%s %s: %v\n", name, cmd.argsDesc, err)
			cmd.flags.Usage()

			return 2
		}
		e.log.Error(name+" failed", "err", err)

		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
