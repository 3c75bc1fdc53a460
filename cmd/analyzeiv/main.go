// analyzeiv reduces one I-V sweep dump to small-signal metrics
// (conductance and resistance around 0 V, on/off currents) and
// renders the sweep as a PNG curve. Metrics are written as JSON and
// as plain text, both from the same in-memory value.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"

	"github.com/nanolab/sweepkit/derive"
	"github.com/nanolab/sweepkit/ivmetrics"
	"github.com/nanolab/sweepkit/smallsignal"
	"github.com/nanolab/sweepkit/sweepdata"
)

func main() {
	var resultsDir, input, vCol, iCol, outDir string
	var vOn, vOff, deltaG0 float64
	var logPlot, hist bool

	flag.StringVar(&resultsDir, "results-dir", "", "Directory containing I-V results")
	flag.StringVar(&input, "input", "", "Data file with I-V data. Relative paths are resolved inside -results-dir. If omitted, a single *.csv file in -results-dir is auto-detected.")
	flag.StringVar(&vCol, "v-col", "V", "Voltage column name in the data header")
	flag.StringVar(&iCol, "i-col", "I", "Current column name in the data header")
	flag.Float64Var(&vOn, "v-on", 0.6, "Voltage at which to report the 'on' current")
	flag.Float64Var(&vOff, "v-off", 0.0, "Voltage at which to report the 'off' / leakage current")
	flag.Float64Var(&deltaG0, "delta-g0", 0.05, "Half-width of the voltage window around 0 V used for the small-signal fit")
	flag.StringVar(&outDir, "out-dir", "", "Output directory for plots and metric files. Defaults to <results-dir>/analysis.")
	flag.BoolVar(&logPlot, "log-plot", false, "Also generate a log10(|I|) vs V plot")
	flag.BoolVar(&hist, "hist", false, "Print a console histogram of the measured currents")
	flag.Parse()

	if resultsDir == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Sweep I-V Analysis")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Results directory: %s\n", resultsDir)

	if _, err := os.Stat(resultsDir); err != nil {
		log.Fatalln(fmt.Errorf("%w: results directory %s", errMissingInput, resultsDir))
	}

	inputPath, err := findInputFile(resultsDir, input)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("Using data file: %s\n", inputPath)

	if outDir == "" {
		outDir = filepath.Join(resultsDir, "analysis")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	// One read; the metadata and table passes each get their own
	// reader over the same bytes.
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	meta, err := sweepdata.ParseMetadata(bytes.NewReader(raw))
	if err != nil {
		log.Fatalln(err)
	}
	if src := meta.GetString("source", ""); src != "" {
		fmt.Printf("Source: %s  Date: %s\n", src, meta.GetString("date", "?"))
	}

	table, err := sweepdata.LoadTable(bytes.NewReader(raw))
	if err != nil {
		log.Fatalln(err)
	}

	vIdx, err := table.ColumnIndex(vCol)
	if err != nil {
		log.Fatalln(fmt.Errorf("%s: %w", inputPath, err))
	}
	iIdx, err := table.ColumnIndex(iCol)
	if err != nil {
		log.Fatalln(fmt.Errorf("%s: %w", inputPath, err))
	}

	series, err := table.Series(vIdx, iIdx)
	if err != nil {
		log.Fatalln(err)
	}

	// All metrics are computed before any output file is opened, so a
	// failed run leaves no partial metrics behind.
	g0, r0, err := smallsignal.Extract(series, deltaG0)
	if err != nil {
		log.Fatalln(err)
	}
	ion, err := smallsignal.CurrentAt(series, vOn)
	if err != nil {
		log.Fatalln(err)
	}
	ioff, err := smallsignal.CurrentAt(series, vOff)
	if err != nil {
		log.Fatalln(err)
	}

	metrics := ivmetrics.New(inputPath, vOn, vOff, deltaG0, g0, r0, ion, ioff)

	if err := writeMetrics(metrics, outDir); err != nil {
		log.Fatalln(err)
	}

	fmt.Println()
	fmt.Println("Computed metrics:")
	for _, f := range metrics.Fields() {
		fmt.Printf("  %s: %v\n", f.Key, f.Value)
	}

	if hist {
		fmt.Println()
		fmt.Println("Current distribution:")
		h := histogram.Hist(25, series.I)
		if err := histogram.Fprint(os.Stdout, h, histogram.Linear(40)); err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	fmt.Println()
	fmt.Printf("Generating plots in: %s\n", outDir)
	if err := plotCurve(filepath.Join(outDir, "iv_curve.png"), "Voltage (V)", "Current (A)", series.V, series.I); err != nil {
		log.Fatalln(err)
	}
	if logPlot {
		logI := derive.Default.AbsLog10(series.I)
		if err := plotCurve(filepath.Join(outDir, "iv_curve_log.png"), "Voltage (V)", "log10(|I|) (A)", series.V, logI); err != nil {
			log.Fatalln(err)
		}
	}

	fmt.Println()
	fmt.Println("Analysis complete.")
	fmt.Printf("  Metrics: %s\n", filepath.Join(outDir, metricsJSONName))
	fmt.Printf("           %s\n", filepath.Join(outDir, metricsTextName))
	fmt.Println("  Plots:   iv_curve.png")
	if logPlot {
		fmt.Println("           iv_curve_log.png")
	}
}
