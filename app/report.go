package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/piv/entity"
	"github.com/AnkushinDaniil/piv/entity/parameters"
)

func writeHTML(w io.Writer, layout *entity.Layout) error {
	image, win := layout.Image(), layout.Window()
	scatter := charts.NewScatter()

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     "100%",
			Height:    "800px",
			PageTitle: "PIV interrogation window layout",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%d x %d windows of %dx%d px", layout.Cols(), layout.Rows(), win.Width, win.Height),
			Subtitle: fmt.Sprintf("image %dx%d px", image.Width, image.Height),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "layout",
					Title: "Save as image",
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x, px",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "y, px",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	scatter.AddSeries("Window centres", layout.CentreData())
	scatter.AddSeries("Search region corners", layout.SearchData())

	return scatter.Render(w)
}

func writeCSV(w io.Writer, layout *entity.Layout) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"row", "col", "x", "y", "cx", "cy"}); err != nil {
		return err
	}
	for _, win := range layout.Windows() {
		cx, cy := layout.Centre(win)
		record := []string{
			strconv.Itoa(win.Row),
			strconv.Itoa(win.Col),
			strconv.Itoa(win.X),
			strconv.Itoa(win.Y),
			strconv.Itoa(cx),
			strconv.Itoa(cy),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeYAML writes the resolved parameters only, keyed by option name, so
// the report can be fed back as a config source.
func writeYAML(w io.Writer, params *parameters.Parameters) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(params); err != nil {
		return err
	}
	return enc.Close()
}
