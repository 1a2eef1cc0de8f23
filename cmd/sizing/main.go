package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ja7ad/sizing/pkg/chart"
	"github.com/ja7ad/sizing/pkg/clip"
	"github.com/ja7ad/sizing/pkg/report"
	"github.com/ja7ad/sizing/pkg/sizing"
)

type opts struct {
	// inputs
	months  int
	rate    int
	battery string
	clamp   bool

	// model
	profilePath string
	container   string

	// outputs
	format   string
	csvPath  string
	jsonPath string
	htmlPath string
	svgDir   string

	verbose bool
}

func main() {
	env, err := loadEnv()
	if err != nil {
		log := newLogger(os.Stderr, false)
		log.Error().Err(err).Msg("sizing failed")
		os.Exit(2)
	}

	root := newRootCmd(env, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(env envDefaults, stdout, stderr io.Writer) *cobra.Command {
	o := opts{
		months:      env.Months,
		rate:        env.Rate,
		battery:     env.Battery,
		profilePath: env.Profile,
		container:   env.Container,
		verbose:     env.Verbose,
	}

	root := &cobra.Command{
		Use:   "sizing",
		Short: "Battery and SD card sizing for audio-sensing deployments",
		Long: `The sizing tool estimates, for a battery-powered audio-sensing device,
the charge drawn over a deployment (Ah), the battery weight needed to hold
it (lbs) and the SD card capacity filled by inference-triggered clips (GB).

Inputs: months deployed (1-24), inferences per hour (1-800) and battery
chemistry (Li-Po or Li-Ion). Defaults may be set with SIZING_MONTHS,
SIZING_RATE, SIZING_BATTERY, SIZING_PROFILE and SIZING_CONTAINER.

Examples:
  sizing -m 12 -r 1 -b lipo
  sizing -m 24 -r 800 -b li-ion --html out/report.html --csv out/months.csv
  sizing --profile device.yaml --container wav --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, o.verbose)
			if err := run(cmd.Context(), o, stdout, log); err != nil {
				log.Error().Err(err).Msg("sizing failed")
				return err
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().IntVarP(&o.months, "months", "m", o.months, "deployment duration in months [1..24]")
	root.Flags().IntVarP(&o.rate, "rate", "r", o.rate, "inferences per hour [1..800]")
	root.Flags().StringVarP(&o.battery, "battery", "b", o.battery, "battery chemistry: li-po | li-ion")
	root.Flags().BoolVar(&o.clamp, "clamp", false, "clamp out-of-range inputs instead of rejecting them")
	root.Flags().StringVar(&o.container, "container", o.container, "clip container on the card: raw | wav (overrides the profile)")

	root.Flags().StringVar(&o.format, "format", "text", "stdout format: text | json | yaml")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write the month-by-month projection to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write inputs, profile, result and projection to JSON file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write report and charts to HTML file")
	root.Flags().StringVar(&o.svgDir, "svg-dir", "", "write the three charts as SVG files into this directory")

	root.PersistentFlags().StringVar(&o.profilePath, "profile", o.profilePath, "YAML device profile (currents, voltage, clip format, densities)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", o.verbose, "debug logging")

	root.AddCommand(newClipCmd(&o, stdout, stderr))
	return root
}

func run(ctx context.Context, o opts, stdout io.Writer, log zerolog.Logger) error {
	in, err := collectInput(o, log)
	if err != nil {
		return err
	}

	p, err := loadProfile(o, log)
	if err != nil {
		return err
	}
	calc := sizing.New(p)
	p = calc.Profile()

	res, err := calc.Calculate(in)
	if err != nil {
		return err
	}
	log.Debug().
		Int("months", in.Months).
		Int("rate", in.InferencesPerHour).
		Stringer("battery", in.Battery).
		Float64("charge_ah", res.ChargeAh).
		Float64("weight_lbs", res.WeightLbs).
		Float64("sd_gb", res.SDSizeGB).
		Msg("estimate computed")

	doc := document{
		Input:   in,
		Profile: p,
		Result:  res,
		Months:  sizing.Project(in, res),
	}
	charts := chart.Charts(in.Months, res)

	switch o.format {
	case "", "text":
		fmt.Fprintf(stdout, _console, time.Now().Format("2006-01-02 15:04:05"))
		if err := report.Write(stdout, in, p, res); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		if err := report.Summary(stdout, in, res); err != nil {
			return err
		}
	case "json":
		if err := writeJSON(stdout, doc); err != nil {
			return err
		}
	case "yaml":
		if err := writeYAML(stdout, doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", o.format)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(f *os.File) error { return writeCSV(f, doc.Months) }); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		log.Info().Str("path", o.csvPath).Msg("projection written")
	}
	if o.jsonPath != "" {
		if err := writeFile(o.jsonPath, func(f *os.File) error { return writeJSON(f, doc) }); err != nil {
			return fmt.Errorf("json: %w", err)
		}
		log.Info().Str("path", o.jsonPath).Msg("json written")
	}
	if o.htmlPath != "" {
		if err := writeFile(o.htmlPath, func(f *os.File) error { return writeHTML(f, doc, charts) }); err != nil {
			return fmt.Errorf("html: %w", err)
		}
		log.Info().Str("path", o.htmlPath).Msg("html report written")
	}
	if o.svgDir != "" {
		paths, err := writeSVGs(o.svgDir, charts)
		if err != nil {
			return fmt.Errorf("svg: %w", err)
		}
		log.Info().Strs("paths", paths).Msg("charts written")
	}
	return nil
}

// collectInput turns the flag values into a validated Input, clamping
// instead of rejecting when asked to.
func collectInput(o opts, log zerolog.Logger) (sizing.Input, error) {
	b, err := sizing.ParseBattery(o.battery)
	if err != nil {
		if !o.clamp {
			return sizing.Input{}, err
		}
		log.Warn().Str("battery", o.battery).Msg("unknown battery type, using Li-Po")
		b = sizing.LiPo
	}

	raw := sizing.Input{Months: o.months, InferencesPerHour: o.rate, Battery: b}
	if !o.clamp {
		if err := raw.Validate(); err != nil {
			return sizing.Input{}, err
		}
		return raw, nil
	}

	in := raw.Clamp()
	if in != raw {
		log.Warn().
			Int("months", raw.Months).Int("months_clamped", in.Months).
			Int("rate", raw.InferencesPerHour).Int("rate_clamped", in.InferencesPerHour).
			Msg("input clamped to declared range")
	}
	return in, nil
}

// loadProfile reads the YAML profile, if any, and applies the container flag.
func loadProfile(o opts, log zerolog.Logger) (*sizing.Profile, error) {
	p := sizing.DefaultProfile()
	if o.profilePath != "" {
		var err error
		if p, err = sizing.LoadProfile(o.profilePath); err != nil {
			return nil, err
		}
		log.Debug().Str("path", o.profilePath).Msg("profile loaded")
	}
	if o.container != "" {
		c, err := clip.ParseContainer(o.container)
		if err != nil {
			return nil, err
		}
		p.Container = c
	}
	return p, nil
}

const _console = `Sizing - Battery & SD Card Estimation Tool
Copyright (c) 2024 Javad Rajabzadeh Inc. All rights reserved.

* GitHub: https://github.com/ja7ad/sizing

Sizing report as of %s:

`
