// fetsummary summarizes FET characterization sweeps: a gm/Id sweep
// (diode-connected Vgs=Vds) and an output-conductance sweep at fixed
// drain current. It renders the key analog design charts and prints
// distribution statistics for the derived figures of merit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/montanaflynn/stats"

	"github.com/nanolab/sweepkit/derive"
)

func main() {
	var gmidPath, avPath, outDir string
	var nTicks int

	flag.StringVar(&gmidPath, "gmid", "", "gm/Id sweep data file (vgs=vds diode sweep)")
	flag.StringVar(&avPath, "av", "", "Output-conductance sweep data file (vds sweep at fixed Id)")
	flag.StringVar(&outDir, "out-dir", "", "Output directory for charts. Defaults to the gm/Id file's directory.")
	flag.IntVar(&nTicks, "ticks", 6, "Number of major ticks on chart y-axes")
	flag.Parse()

	if gmidPath == "" || avPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if outDir == "" {
		outDir = filepath.Dir(gmidPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalln(err)
	}

	gmid, err := loadGmIDSweep(gmidPath)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("gm/Id data: %s  %s\n", gmid.Meta.GetString("source", "?"), gmid.Meta.GetString("date", "?"))
	fmt.Printf("  Device: %s  W = %g um,  L = %g um,  corner = %s\n",
		gmid.Device, gmid.WUm, gmid.LUm, gmid.Corner)

	av, err := loadAVSweep(avPath)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("av data:    %s  %s\n", av.Meta.GetString("source", "?"), av.Meta.GetString("date", "?"))
	fmt.Printf("  Id = %g uA\n", av.IdUA)

	// Derived columns
	vstarMV := derive.Scale(gmid.VStar, 1e3)
	ftGmID := derive.Product(gmid.FtGHz, gmid.GmID)
	ro := derive.Default.Reciprocal(av.Gds)
	gmRo := derive.Product(av.Gm, ro)
	logIdUA := derive.Default.AbsLog10(gmid.IdUA)

	title := fmt.Sprintf("%s  W=%gum L=%gum corner=%s", gmid.Device, gmid.WUm, gmid.LUm, gmid.Corner)

	charts := []struct {
		file, xLabel, yLabel string
		x, y                 []float64
	}{
		{"fet_gmid_vs_vgs.png", "Vgs (V)", "gm/Id (1/V)", gmid.Vgs, gmid.GmID},
		{"fet_id_vs_vstar.png", "V* (mV)", "log10(Id) (uA)", vstarMV, logIdUA},
		{"fet_intrinsic_gain.png", "Vds (V)", "gm*ro (V/V)", av.Vds, gmRo},
		{"fet_ft_efficiency.png", "V* (mV)", "ft*gm/Id (GHz/V)", vstarMV, ftGmID},
	}

	for _, c := range charts {
		path := filepath.Join(outDir, c.file)
		if err := plotSweep(path, title, c.xLabel, c.yLabel, c.x, c.y, nTicks); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("Chart saved to %s\n", path)
	}

	// Distribution summary for the derived figures of merit
	medGmID, err := stats.Median(gmid.GmID)
	if err != nil {
		log.Fatalln(err)
	}
	maxGain, err := stats.Max(gmRo)
	if err != nil {
		log.Fatalln(err)
	}
	peakFtEff, err := stats.Max(ftGmID)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  median gm/Id:      %.3g 1/V\n", medGmID)
	fmt.Printf("  max gm*ro:         %.3g V/V\n", maxGain)
	fmt.Printf("  peak ft*gm/Id:     %.3g GHz/V\n", peakFtEff)
}
