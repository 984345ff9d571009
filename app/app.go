package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/piv/entity"
	"github.com/AnkushinDaniil/piv/entity/format"
	"github.com/AnkushinDaniil/piv/entity/mode"
	"github.com/AnkushinDaniil/piv/entity/options"
	"github.com/AnkushinDaniil/piv/entity/parameters"
)

// Settings describe one run. Source and Output are optional: without a
// source only Overrides and defaults apply, without an output no report is
// written.
type Settings struct {
	Source    string
	Overrides options.Map
	Mode      mode.Mode
	Output    string
	Format    format.Format
	Print     bool
	Image     parameters.Size
}

type App struct {
	settings Settings
	stdout   io.Writer
}

func New(settings Settings, stdout io.Writer) *App {
	return &App{
		settings: settings,
		stdout:   stdout,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"source":    a.settings.Source,
		"overrides": len(a.settings.Overrides),
		"mode":      a.settings.Mode,
		"output":    a.settings.Output,
		"format":    a.settings.Format,
		"image":     fmt.Sprintf("%dx%d", a.settings.Image.Width, a.settings.Image.Height),
	}).Debug("App started")

	params, err := Load(a.settings.Source, a.settings.Mode, a.settings.Overrides)
	if err != nil {
		return fmt.Errorf("failed to load parameters: %w", err)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	log.WithFields(log.Fields(params.Fields())).Info("Parameters resolved")

	if a.settings.Print {
		if _, err := fmt.Fprint(a.stdout, params.Summary()); err != nil {
			return fmt.Errorf("failed to print parameters: %w", err)
		}
	}

	layout, err := entity.NewLayout(a.settings.Image, params)
	if err != nil {
		return fmt.Errorf("failed to build window layout: %w", err)
	}
	log.WithFields(log.Fields{
		"cols":    layout.Cols(),
		"rows":    layout.Rows(),
		"windows": layout.Cols() * layout.Rows(),
	}).Info("Window layout built")

	if a.settings.Output == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.writeReport(params, layout)
}

// Load builds the option map from source, applies overrides on top and
// resolves it. An empty source resolves the overrides alone.
func Load(source string, m mode.Mode, overrides options.Map) (*parameters.Parameters, error) {
	optionMap := options.Map{}
	if source != "" {
		var err error
		optionMap, err = options.Parse(source, m)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"source":  source,
			"entries": len(optionMap),
		}).Debug("Options read")
	}
	return parameters.Resolve(optionMap.Merge(overrides))
}

func (a *App) writeReport(params *parameters.Parameters, layout *entity.Layout) error {
	f, err := os.Create(a.settings.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	writeTime := time.Now()
	switch a.settings.Format {
	case format.HTML:
		err = writeHTML(f, layout)
	case format.Csv:
		err = writeCSV(f, layout)
	case format.Yaml:
		err = writeYAML(f, params)
	default:
		err = fmt.Errorf("unsupported format: %v", a.settings.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s report: %w", a.settings.Format, err)
	}
	log.WithFields(log.Fields{
		"output": a.settings.Output,
		"time":   time.Since(writeTime),
	}).Info("Report written")
	return nil
}
