package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ja7ad/sizing/pkg/clip"
)

// newClipCmd writes a silent clip in the profile's recording format, handy
// for checking how a card's filesystem rounds clip sizes.
func newClipCmd(o *opts, stdout, stderr io.Writer) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Write a silent reference clip (WAV) in the profile's recording format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, o.verbose)

			var wavBytes float64
			p, err := loadProfile(opts{profilePath: o.profilePath}, log)
			if err == nil {
				err = writeFile(out, func(f *os.File) error { return clip.WriteSilence(f, p.Clip) })
			}
			if err == nil {
				wavBytes, err = p.Clip.FileBytes(clip.WAV)
			}
			if err != nil {
				log.Error().Err(err).Msg("clip failed")
				return err
			}

			log.Info().
				Str("path", filepath.Clean(out)).
				Float64("seconds", p.Clip.Seconds).
				Int("sample_rate", p.Clip.SampleRate).
				Int("bit_depth", p.Clip.BitDepth).
				Int("channels", p.Clip.Channels).
				Float64("bytes", wavBytes).
				Msg("reference clip written")
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.Flags().StringVarP(&out, "out", "o", "clip.wav", "output WAV path")
	return cmd
}
