package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vbroda17/lzhuff"
	"github.com/vbroda17/lzhuff/bench"
	"github.com/vbroda17/lzhuff/format"
	"github.com/vbroda17/lzhuff/huffman"
	"github.com/vbroda17/lzhuff/internal/hash"
	"github.com/vbroda17/lzhuff/lz77"
)

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d argument(s), got %d", errUsage, n, len(args))
	}

	return nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}

	return info.Size()
}

func newCompressCommand() *command {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	window := fs.Int("window", lz77.MaxWindowSize, "LZ77 search window size (1-65535)")
	memory := fs.Bool("memory", false, "keep intermediate data in memory")
	verify := fs.Bool("verify", false, "decompress the result and compare digests")
	dump := fs.Bool("dump", false, "print the Huffman tree level by level")

	return &command{
		flags:    fs,
		argsDesc: "FILE",
		desc:     "write FILE.lz77 and FILE.lz77.huff",
		run: func(e *env, args []string) error {
			if err := expectArgs(args, 1); err != nil {
				return err
			}

			opts := []lzhuff.Option{lzhuff.WithWindowSize(*window)}
			if *memory {
				opts = append(opts, lzhuff.WithInMemoryScratch())
			}

			start := time.Now()
			paths, err := lzhuff.CompressFile(args[0], opts...)
			if err != nil {
				return err
			}
			e.log.Info("compressed",
				"input", paths.Input, "input_bytes", fileSize(paths.Input),
				"lz77_bytes", fileSize(paths.LZ77),
				"output", paths.Huffman, "output_bytes", fileSize(paths.Huffman),
				"window", *window, "elapsed", time.Since(start))

			if !*verify && !*dump {
				return nil
			}
			tree, err := lzhuff.LoadTree(paths.Huffman)
			if err != nil {
				return err
			}
			if *dump {
				if err = tree.Dump(e.stdout); err != nil {
					return err
				}
			}
			if *verify {
				return verifyFile(e, paths, tree, opts)
			}

			return nil
		},
	}
}

// verifyFile decodes the pipeline output straight into a digest and compares
// it with the input's, without writing the restored file.
func verifyFile(e *env, paths lzhuff.Paths, tree *huffman.Tree, opts []lzhuff.Option) error {
	in, err := os.Open(paths.Input)
	if err != nil {
		return err
	}
	want, wantLen, err := hash.Digest(in)
	_ = in.Close()
	if err != nil {
		return err
	}

	huff, err := os.Open(paths.Huffman)
	if err != nil {
		return err
	}
	defer huff.Close()

	got := hash.NewWriter()
	if err = lzhuff.Decompress(huff, got, tree, opts...); err != nil {
		return fmt.Errorf("verify %s: %w", paths.Input, err)
	}
	if want != got.Sum64() || wantLen != got.Len() {
		return fmt.Errorf("verify %s: digest %016x (%d bytes), restored %016x (%d bytes)",
			paths.Input, want, wantLen, got.Sum64(), got.Len())
	}
	e.log.Debug("verified", "input", paths.Input, "xxhash", fmt.Sprintf("%016x", want))

	return nil
}

func newDecompressCommand() *command {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	window := fs.Int("window", lz77.MaxWindowSize, "LZ77 window size used to compress")
	out := fs.String("o", "", "output path (default: input without .lz77.huff)")

	return &command{
		flags:    fs,
		argsDesc: "FILE.lz77.huff",
		desc:     "restore a file, FILE.lz77 must sit next to it",
		run: func(e *env, args []string) error {
			if err := expectArgs(args, 1); err != nil {
				return err
			}

			outPath := *out
			if outPath == "" {
				src, err := lzhuff.SourcePath(args[0])
				if err != nil {
					return err
				}
				outPath = src
			}

			start := time.Now()
			if err := lzhuff.DecompressFile(args[0], outPath, lzhuff.WithWindowSize(*window)); err != nil {
				return err
			}
			e.log.Info("decompressed",
				"input", args[0], "output", outPath,
				"output_bytes", fileSize(outPath), "elapsed", time.Since(start))

			return nil
		},
	}
}

func parseWindows(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: bad window %q", errUsage, field)
		}
		out = append(out, n)
	}

	return out, nil
}

func parseBaselines(s string) ([]format.CompressionType, error) {
	var out []format.CompressionType
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		typ, ok := format.ParseCompressionType(field)
		if !ok {
			return nil, fmt.Errorf("%w: unknown codec %q", errUsage, field)
		}
		out = append(out, typ)
	}

	return out, nil
}

func newBenchCommand() *command {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	windows := fs.String("windows", "16,256,4096,65535", "comma-separated LZ77 window sizes")
	chartPath := fs.String("chart", "", "write an SVG ratio chart to this path")
	repeat := fs.Int("repeat", 1, "runs per measurement, timings are averaged")
	baselines := fs.String("baselines", "none,zstd,s2,lz4,snappy,brotli", "comma-separated codecs to compare against")
	level := fs.Int("level", 0, "baseline compression level on each codec's scale, 0 for defaults")

	return &command{
		flags:    fs,
		argsDesc: "FILE",
		desc:     "sweep window sizes and compare with other codecs",
		run: func(e *env, args []string) error {
			if err := expectArgs(args, 1); err != nil {
				return err
			}
			ws, err := parseWindows(*windows)
			if err != nil {
				return err
			}
			types, err := parseBaselines(*baselines)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			e.log.Debug("bench input", "file", args[0], "bytes", len(data), "windows", ws)

			rec, err := bench.Sweep(data,
				bench.WithWindows(ws...),
				bench.WithBaselines(types...),
				bench.WithLevel(*level),
				bench.WithRepeat(*repeat))
			if err != nil {
				return err
			}
			if err = rec.WriteTable(e.stdout); err != nil {
				return err
			}

			if *chartPath == "" {
				return nil
			}
			f, err := os.Create(*chartPath)
			if err != nil {
				return err
			}
			if err = rec.WriteChart(f); err != nil {
				_ = f.Close()
				return err
			}
			e.log.Info("chart written", "path", *chartPath)

			return f.Close()
		},
	}
}

func newSizesCommand() *command {
	fs := flag.NewFlagSet("sizes", flag.ContinueOnError)

	return &command{
		flags:    fs,
		argsDesc: "DIR",
		desc:     "list file sizes in DIR",
		run: func(e *env, args []string) error {
			if err := expectArgs(args, 1); err != nil {
				return err
			}
			sizes, err := bench.FileSizes(args[0])
			if err != nil {
				return err
			}

			return bench.WriteSizes(e.stdout, sizes)
		},
	}
}
