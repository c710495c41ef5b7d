package bench

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/vbroda17/lzhuff/format"
)

// ErrNotEnoughPoints is returned by WriteChart when fewer than two window
// sizes were measured.
var ErrNotEnoughPoints = errors.New("bench: chart needs at least two window sizes")

// WriteTable writes the results as an aligned text table.
func (r *Recorder) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "algorithm\twindow\toriginal\tcompressed\tratio\tsaved\tcompress\tdecompress\t")
	for _, res := range r.results {
		window := "-"
		if res.Window > 0 {
			window = strconv.Itoa(res.Window)
		}
		s := res.Stats
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f\t%.1f%%\t%s\t%s\t\n",
			res.Name, window, s.OriginalSize, s.CompressedSize,
			s.CompressionRatio(), s.SpaceSavings(),
			time.Duration(s.CompressionTimeNs), time.Duration(s.DecompressionTimeNs))
	}

	return tw.Flush()
}

// WriteChart renders the compression ratio of LZ77 and LZ77+Huffman against
// window size as an SVG line chart.
func (r *Recorder) WriteChart(w io.Writer) error {
	var series []chart.Series
	for _, typ := range []format.CompressionType{format.CompressionLZ77, format.CompressionDeflate} {
		points := r.Series(typ.String())
		if len(points) < 2 {
			return fmt.Errorf("%w: %d %s results", ErrNotEnoughPoints, len(points), typ)
		}

		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.Window)
			ys[i] = p.Stats.CompressionRatio()
		}
		series = append(series, chart.ContinuousSeries{
			Name:    typ.String(),
			Style:   chart.Style{DotWidth: 3},
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		XAxis:  chart.XAxis{Name: "window size"},
		YAxis:  chart.YAxis{Name: "compressed / original"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.SVG, w)
}
