// Package report prints the Fermi estimation: the selections, every
// intermediate quantity of the sizing model and the three headline numbers.
package report

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/sizing/pkg/clip"
	"github.com/ja7ad/sizing/pkg/sizing"
)

// Write prints the full estimation for in, computed as r under profile p.
func Write(w io.Writer, in sizing.Input, p *sizing.Profile, r sizing.Result) error {
	bw := bufio.NewWriter(w)
	a := p.Active
	f := p.Clip

	fmt.Fprintln(bw, "========Selections========")
	fmt.Fprintf(bw, "Inference Rate: %d (inferences/hour)\n", in.InferencesPerHour)
	fmt.Fprintf(bw, "Duration: %d (months)\n", in.Months)
	fmt.Fprintf(bw, "Battery Type: %s\n", in.Battery)
	fmt.Fprintln(bw, "==========================")

	fmt.Fprint(bw, "\n========Fermi Estimations========\n\n")

	fmt.Fprintln(bw, "Current Measurements (mA):")
	fmt.Fprintf(bw, "Baseline = %g mA\n", a.BaselineMA)
	fmt.Fprintf(bw, "Mic = %g mA\n", a.MicMA)
	fmt.Fprintf(bw, "Inference & Mel Spec = %g mA\n", a.InferenceMA)
	fmt.Fprintf(bw, "SD Write = %g mA\n", a.SDWriteMA)
	fmt.Fprintf(bw, "Piezo = %g nA\n", a.PiezoMA*1e6)
	fmt.Fprintf(bw, "Idle Current = %.2f mA\n\n", r.IdleCurrentA*1000)

	fmt.Fprintln(bw, "Active Current Calculations (mA):")
	fmt.Fprintln(bw, "Active Current = Baseline + Inference & Mel Spec + Mic + SD Write + Piezo")
	fmt.Fprintf(bw, "Active Current = %.2f mA\n\n", r.ActiveCurrentA*1000)

	fmt.Fprintln(bw, "Charge (Ah) Calculations:")
	fmt.Fprintf(bw, "Duration (hr) = Duration (months) * %g days/month * 24 hr/day\n", p.DaysPerMonth)
	fmt.Fprintf(bw, "Duration (hr) = %.2f hr\n", r.DurationHours)
	fmt.Fprintf(bw, "Active Fraction = Inference Rate (inf/hr) * %g sec / 3600 sec/hr = %.5f\n", f.Seconds, r.ActiveDuty)
	fmt.Fprintln(bw, "Charge = Duration (hr) * [(Active Current (A) * Active Fraction) + (Idle Current (A) * (1 - Active Fraction))]")
	fmt.Fprintf(bw, "Charge = %.2f hr * [(%.5f A * %.5f) + (%.5f A * (1 - %.5f))]\n",
		r.DurationHours, r.ActiveCurrentA, r.ActiveDuty, r.IdleCurrentA, r.ActiveDuty)
	fmt.Fprintf(bw, "Charge: %.2f Ah\n\n", r.ChargeAh)

	fmt.Fprintln(bw, "Weight (lbs) Calculations:")
	fmt.Fprintln(bw, "Energy (Wh) = Charge (Ah) * Nominal Voltage (V)")
	fmt.Fprintf(bw, "Energy (Wh) = %.2f Ah * %g V\n", r.ChargeAh, p.VoltageV)
	fmt.Fprintf(bw, "Weight (lbs) = Energy (Wh) / Energy Density (Wh/kg) * %g (conversion factor)\n", p.KgToLbs)
	fmt.Fprintf(bw, "Weight (lbs) = (%.2f Wh) / %g Wh/kg * %g\n", r.EnergyWh, r.EnergyDensity, p.KgToLbs)
	fmt.Fprintf(bw, "Weight: %.2f lbs\n\n", r.WeightLbs)

	fmt.Fprintln(bw, "SD Card Size Calculations (GB):")
	fmt.Fprintln(bw, "File Size (Bytes) = (Sample Rate (Hz) * Duration (sec) * Channels (channel) * Bit Depth (bits/channel)) / Byte Conv (bits/byte)")
	fmt.Fprintf(bw, "File Size (Bytes) = (%d Hz * %g sec * %d channel * %d bits/channel) / 8",
		f.SampleRate, f.Seconds, f.Channels, f.BitDepth)
	if p.Container == clip.WAV {
		fmt.Fprint(bw, " + WAV header")
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "File Size (Bytes) = %d Bytes\n", r.ClipBytes.Uint64())
	fmt.Fprintln(bw, "SD Size (GB) = File Size (Bytes) * Inference Rate (Inf/hr) * Duration (hr) / 1e9 (conversion to GB)")
	fmt.Fprintf(bw, "SD Size (GB) = %d Bytes * %d Inf/hr * %.2f hr / 1e9\n",
		r.ClipBytes.Uint64(), in.InferencesPerHour, r.DurationHours)
	fmt.Fprintf(bw, "SD Size: %.2f GB\n\n", r.SDSizeGB)

	fmt.Fprintln(bw, "=================================")
	return bw.Flush()
}

// Summary prints the three headline metrics as an aligned table.
func Summary(w io.Writer, in sizing.Input, r sizing.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE\tUNIT")
	fmt.Fprintln(tw, "------\t-----\t----")
	fmt.Fprintf(tw, "charge\t%.2f\tAh\n", r.ChargeAh)
	fmt.Fprintf(tw, "battery weight (%s)\t%.2f\tlbs\n", in.Battery, r.WeightLbs)
	fmt.Fprintf(tw, "sd card size\t%.2f\tGB\n", r.SDSizeGB)
	return tw.Flush()
}
