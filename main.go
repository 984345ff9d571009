package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/piv/app"
	"github.com/AnkushinDaniil/piv/entity/format"
	"github.com/AnkushinDaniil/piv/entity/mode"
	"github.com/AnkushinDaniil/piv/entity/options"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		settings   app.Settings
		overrides  map[string]string
		modeText   string
		formatText string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "piv",
		Short: "Resolve PIV analysis parameters and preview the interrogation window layout",
		Long: `piv reads analysis options from a key:value file (or TOML/YAML by extension),
applies --set overrides, resolves defaults and derived values, validates them,
and optionally writes a window layout report.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			if settings.Mode, err = mode.UnmarshalText(modeText); err != nil {
				return err
			}
			if settings.Format, err = format.UnmarshalText(formatText); err != nil {
				return err
			}
			settings.Overrides = options.Map(overrides)

			return app.New(settings, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&settings.Source, "config", "c", "", "option file; .toml and .yaml/.yml are read as structured documents")
	f.StringToStringVarP(&overrides, "set", "s", nil, "override an option, key=value (repeatable)")
	f.StringVar(&modeText, "mode", mode.Strict.String(), "option file grammar: strict or lenient")
	f.StringVarP(&settings.Output, "output", "o", "", "write a report to this path")
	f.StringVarP(&formatText, "format", "f", format.HTML.String(), "report format: html, csv or yaml")
	f.BoolVarP(&settings.Print, "print", "p", false, "print the resolved parameters")
	f.IntVar(&settings.Image.Width, "image-width", 1024, "image width in pixels for the window layout")
	f.IntVar(&settings.Image.Height, "image-height", 1024, "image height in pixels for the window layout")
	f.StringVar(&logLevel, "log-level", log.InfoLevel.String(), "log level: debug, info, warn or error")

	return cmd
}
