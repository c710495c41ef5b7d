package bench

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
)

// FileSize is a regular file and its size in bytes.
type FileSize struct {
	Path string
	Size int64
}

// FileSizes lists the regular files directly inside dir, sorted by name.
// Use it to compare an input with its .lz77 and .lz77.huff artifacts.
func FileSizes(dir string) ([]FileSize, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("bench: read dir: %w", err)
	}

	var out []FileSize
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("bench: stat %s: %w", e.Name(), err)
		}
		out = append(out, FileSize{Path: filepath.Join(dir, e.Name()), Size: info.Size()})
	}

	return out, nil
}

// WriteSizes writes sizes as an aligned two-column table.
func WriteSizes(w io.Writer, sizes []FileSize) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, fs := range sizes {
		fmt.Fprintf(tw, "%d\t%s\n", fs.Size, fs.Path)
	}

	return tw.Flush()
}
