// Package sizing estimates what a battery-powered audio-sensing device needs
// for a deployment: the charge it draws (Ah), the battery weight that stores
// that charge (lbs) and the card capacity its recorded clips fill (GB).
//
// The device alternates between an active mode (record a clip, compute a mel
// spectrogram, run inference, write to card) and standby. With r inferences
// per hour and clips of s seconds the active duty fraction is r*s/3600, so
//
//	hours  = months * days_per_month * 24
//	charge = hours * (I_active*duty + I_idle*(1-duty))
//	energy = charge * V
//	weight = energy / density(chemistry) * 2.205
//	sd     = clip_bytes * r * hours / 1e9
//
// Everything is float64 and nothing is rounded; rounding is left to display.
package sizing

import (
	"fmt"
	"math"

	"github.com/ja7ad/sizing/pkg/clip"
	"github.com/ja7ad/sizing/pkg/types"
)

const (
	hoursPerDay    = 24
	secondsPerHour = 3600
	bytesPerGB     = 1e9
)

// Calculator evaluates the sizing model for one device profile.
type Calculator struct {
	profile *Profile
}

// New creates a calculator with the given profile.
// Fields > 0 in p override defaults.
// Notes:
//   - nil p uses the defaults as-is.
//   - Active replaces the default breakdown as a whole when any component is
//     set and none is negative (zero components are respected).
//   - Clip replaces the default format only if it passes clip.Format.Check.
//   - An unknown Container falls back to raw.
func New(p *Profile) *Calculator {
	base := _defaultProfile()
	if p == nil {
		return &Calculator{profile: base}
	}

	merged := *base

	// Positive-only overrides
	if p.IdleMA > 0 {
		merged.IdleMA = p.IdleMA
	}
	if p.VoltageV > 0 {
		merged.VoltageV = p.VoltageV
	}
	if p.DaysPerMonth > 0 {
		merged.DaysPerMonth = p.DaysPerMonth
	}
	if p.Density.LiPo > 0 {
		merged.Density.LiPo = p.Density.LiPo
	}
	if p.Density.LiIon > 0 {
		merged.Density.LiIon = p.Density.LiIon
	}
	if p.KgToLbs > 0 {
		merged.KgToLbs = p.KgToLbs
	}

	a := p.Active
	if a != (Currents{}) && a.BaselineMA >= 0 && a.MicMA >= 0 && a.InferenceMA >= 0 &&
		a.SDWriteMA >= 0 && a.PiezoMA >= 0 {
		merged.Active = a
	}

	if p.Clip != (clip.Format{}) && p.Clip.Check() == nil {
		merged.Clip = p.Clip
	}
	if c, err := clip.ParseContainer(string(p.Container)); err == nil {
		merged.Container = c
	}

	return &Calculator{profile: &merged}
}

// Profile returns a copy of the effective profile.
func (c *Calculator) Profile() *Profile {
	cp := *c.profile
	return &cp
}

// Calculate validates in and evaluates the model. It only fails for input
// outside the declared ranges, or when the profile's clip length makes the
// requested rate impossible (ErrSaturated).
func (c *Calculator) Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	p := c.profile

	rate := float64(in.InferencesPerHour)
	hours := float64(in.Months) * p.DaysPerMonth * hoursPerDay
	duty := rate * (p.Clip.Seconds / secondsPerHour)
	if duty > 1 {
		return Result{}, fmt.Errorf("%w: %d/h of %gs clips", ErrSaturated, in.InferencesPerHour, p.Clip.Seconds)
	}

	activeA, idleA := p.ActiveCurrentA(), p.IdleCurrentA()
	charge := hours * (activeA*duty + idleA*(1-duty))
	energy := charge * p.VoltageV
	density := p.Density.For(in.Battery)
	weight := (energy / density) * p.KgToLbs

	clipBytes, err := p.Clip.FileBytes(p.Container)
	if err != nil {
		return Result{}, err
	}
	sd := (clipBytes * rate * hours) / bytesPerGB

	return Result{
		DurationHours:  hours,
		ActiveDuty:     duty,
		ActiveCurrentA: activeA,
		IdleCurrentA:   idleA,
		ChargeAh:       charge,
		EnergyWh:       energy,
		EnergyDensity:  density,
		WeightLbs:      weight,
		ClipBytes:      types.Bytes(math.Round(clipBytes)),
		SDSizeGB:       sd,
	}, nil
}

var defaultCalculator = New(nil)

// Calculate evaluates in against the default profile.
func Calculate(in Input) (Result, error) { return defaultCalculator.Calculate(in) }
