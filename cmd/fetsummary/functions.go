package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/nanolab/sweepkit/sweepdata"
)

// Column layout of the gm/Id sweep dump (wrdata with wr_vecnames):
//   v-sweep vgs id_ua gm gds vth gm_id vstar ft_GHz vdsat vgsteff
const (
	gmidColVgs   = 1
	gmidColIdUA  = 2
	gmidColGm    = 3
	gmidColGds   = 4
	gmidColGmID  = 6
	gmidColVStar = 7
	gmidColFt    = 8
)

// Column layout of the output-conductance sweep dump:
//   v-sweep vd vg id_ua gm gds av
const (
	avColVds = 0
	avColGm  = 4
	avColGds = 5
)

type gmIDSweep struct {
	Meta   sweepdata.Metadata
	Device string
	Corner string
	WUm    float64
	LUm    float64
	Vgs    []float64
	IdUA   []float64
	Gm     []float64
	Gds    []float64
	GmID   []float64
	VStar  []float64
	FtGHz  []float64
}

type avSweep struct {
	Meta sweepdata.Metadata
	IdUA float64
	Vds  []float64
	Gm   []float64
	Gds  []float64
}

func loadGmIDSweep(path string) (*gmIDSweep, error) {
	meta, table, err := loadSweepFile(path, gmidColFt+1)
	if err != nil {
		return nil, err
	}

	return &gmIDSweep{
		Meta:   meta,
		Device: meta.GetString("device", "unknown"),
		Corner: meta.GetString("corner", "tt"),
		WUm:    meta.GetFloat("W_um", 1),
		LUm:    meta.GetFloat("L_um", 0.15),
		Vgs:    table.Column(gmidColVgs),
		IdUA:   table.Column(gmidColIdUA),
		Gm:     table.Column(gmidColGm),
		Gds:    table.Column(gmidColGds),
		GmID:   table.Column(gmidColGmID),
		VStar:  table.Column(gmidColVStar),
		FtGHz:  table.Column(gmidColFt),
	}, nil
}

func loadAVSweep(path string) (*avSweep, error) {
	meta, table, err := loadSweepFile(path, avColGds+1)
	if err != nil {
		return nil, err
	}

	return &avSweep{
		Meta: meta,
		IdUA: meta.GetFloat("Id_uA", 10),
		Vds:  table.Column(avColVds),
		Gm:   table.Column(avColGm),
		Gds:  table.Column(avColGds),
	}, nil
}

func loadSweepFile(path string, minColumns int) (sweepdata.Metadata, *sweepdata.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, pfx.Err(err)
	}

	meta, err := sweepdata.ParseMetadata(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}

	table, err := sweepdata.LoadTable(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}

	if len(table.Rows) == 0 {
		return nil, nil, fmt.Errorf("no numeric rows in %s", path)
	}
	for r, row := range table.Rows {
		if len(row) < minColumns {
			return nil, nil, fmt.Errorf("%s: row %d has %d columns, need at least %d", path, r, len(row), minColumns)
		}
	}

	return meta, table, nil
}

// yTicks spreads n major ticks evenly over [min, max].
func yTicks(y []float64, n int) []chart.Tick {
	if len(y) == 0 || n < 2 {
		return nil
	}

	lo, hi := y[0], y[0]
	for _, v := range y {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return nil
	}

	ticks := make([]chart.Tick, 0, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		v := lo + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.3g", v)})
	}
	return ticks
}

func plotSweep(filename, title, xLabel, yLabel string, x, y []float64, nTicks int) error {
	graph := chart.Chart{
		Title:  title,
		Width:  768,
		Height: 512,
		XAxis: chart.XAxis{
			Name: xLabel,
		},
		YAxis: chart.YAxis{
			Name:  yLabel,
			Ticks: yTicks(y, nTicks),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: x,
				YValues: y,
			},
		},
	}

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
