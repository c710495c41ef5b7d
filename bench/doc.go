// Package bench measures lzhuff against itself across LZ77 window sizes and
// against third-party codecs.
//
// Sweep returns a Recorder of Results. The Recorder holds no global state;
// callers that want several inputs in one report create one Recorder per
// input or Record into a shared one.
//
//	rec, err := bench.Sweep(data, bench.WithWindows(16, 256, 4096), bench.WithRepeat(3))
//	if err != nil {
//	    return err
//	}
//	rec.WriteTable(os.Stdout)
//	rec.WriteChart(svgFile)
package bench
