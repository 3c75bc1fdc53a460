package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/nanolab/sweepkit/ivmetrics"
)

const (
	metricsJSONName = "iv_metrics.json"
	metricsTextName = "iv_metrics.txt"
	metricsTitle    = "Sweep I-V Metrics"
)

var (
	errMissingInput   = errors.New("no input data found")
	errAmbiguousInput = errors.New("multiple candidate input files")
)

// findInputFile decides which data file to analyze. An explicit
// input wins (resolved inside resultsDir when relative). Otherwise
// exactly one *.csv file must exist in resultsDir: none is a missing
// input, several are ambiguous and the caller must pick one with
// -input rather than have a file chosen silently.
func findInputFile(resultsDir, input string) (string, error) {
	if input != "" {
		candidate := input
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(resultsDir, candidate)
		}

		if _, err := os.Stat(candidate); err != nil {
			return "", fmt.Errorf("%w: specified input %s", errMissingInput, candidate)
		}

		return candidate, nil
	}

	matches, err := filepath.Glob(filepath.Join(resultsDir, "*.csv"))
	if err != nil {
		return "", pfx.Err(err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no *.csv files in %s (export I-V data to CSV and re-run, or specify a file with -input)", errMissingInput, resultsDir)
	}

	if len(matches) > 1 {
		return "", fmt.Errorf("%w in %s:\n  %s\nplease specify one explicitly via -input", errAmbiguousInput, resultsDir, strings.Join(matches, "\n  "))
	}

	return matches[0], nil
}

// writeMetrics serializes one Metrics value to both output files.
func writeMetrics(m ivmetrics.Metrics, outDir string) error {
	jsonFile, err := os.Create(filepath.Join(outDir, metricsJSONName))
	if err != nil {
		return pfx.Err(err)
	}
	defer jsonFile.Close()

	if err := m.WriteJSON(jsonFile); err != nil {
		return err
	}

	textFile, err := os.Create(filepath.Join(outDir, metricsTextName))
	if err != nil {
		return pfx.Err(err)
	}
	defer textFile.Close()

	return m.WriteText(textFile, metricsTitle)
}

// plotCurve renders one x/y curve to a PNG file.
func plotCurve(filename, xLabel, yLabel string, x, y []float64) error {
	graph := chart.Chart{
		Width:  768,
		Height: 512,
		XAxis: chart.XAxis{
			Name: xLabel,
		},
		YAxis: chart.YAxis{
			Name: yLabel,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: x,
				YValues: y,
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return pfx.Err(err)
	}

	return nil
}
