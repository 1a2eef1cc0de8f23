package sizing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ja7ad/sizing/pkg/clip"
	"github.com/ja7ad/sizing/pkg/types"
)

// Battery is the cell chemistry of the pack.
type Battery int

const (
	LiPo Battery = iota
	LiIon
)

// ParseBattery accepts "lipo", "li-po", "liion", "li-ion" (any case) or the
// numeric values 0 and 1.
func ParseBattery(s string) (Battery, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lipo", "li-po", "li_po", "0":
		return LiPo, nil
	case "liion", "li-ion", "li_ion", "1":
		return LiIon, nil
	}
	return 0, fmt.Errorf("%w: unknown battery type %q", ErrInvalidInput, s)
}

func (b Battery) String() string {
	switch b {
	case LiPo:
		return "Li-Po"
	case LiIon:
		return "Li-Ion"
	default:
		return "Battery(" + strconv.Itoa(int(b)) + ")"
	}
}

func (b Battery) MarshalText() ([]byte, error) {
	if b != LiPo && b != LiIon {
		return nil, fmt.Errorf("%w: unknown battery type %d", ErrInvalidInput, int(b))
	}
	return []byte(b.String()), nil
}

func (b *Battery) UnmarshalText(text []byte) error {
	v, err := ParseBattery(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Declared input ranges.
const (
	MinMonths = 1
	MaxMonths = 24
	MinRate   = 1
	MaxRate   = 800
)

// Input is one deployment scenario.
type Input struct {
	Months            int     `json:"months" yaml:"months" validate:"min=1,max=24"`
	InferencesPerHour int     `json:"inferences_per_hour" yaml:"inferences_per_hour" validate:"min=1,max=800"`
	Battery           Battery `json:"battery" yaml:"battery" validate:"oneof=0 1"`
}

// Currents is the active-mode current breakdown, in milliamps.
type Currents struct {
	BaselineMA  float64 `json:"baseline_ma" yaml:"baseline_ma" validate:"gte=0"`
	MicMA       float64 `json:"mic_ma" yaml:"mic_ma" validate:"gte=0"`
	InferenceMA float64 `json:"inference_ma" yaml:"inference_ma" validate:"gte=0"` // inference & mel spectrogram
	SDWriteMA   float64 `json:"sd_write_ma" yaml:"sd_write_ma" validate:"gte=0"`
	PiezoMA     float64 `json:"piezo_ma" yaml:"piezo_ma" validate:"gte=0"`
}

// TotalMA is the active current: baseline + inference + mic + SD write + piezo.
func (c Currents) TotalMA() float64 {
	return c.BaselineMA + c.InferenceMA + c.MicMA + c.SDWriteMA + c.PiezoMA
}

// Density is the energy density per chemistry, in Wh/kg.
type Density struct {
	LiPo  float64 `json:"lipo" yaml:"lipo" validate:"gt=0"`
	LiIon float64 `json:"liion" yaml:"liion" validate:"gt=0"`
}

// For returns the density of chemistry b.
func (d Density) For(b Battery) float64 {
	if b == LiIon {
		return d.LiIon
	}
	return d.LiPo
}

// Profile holds the device constants.
// Units:
//   - Active/IdleMA: milliamps
//   - VoltageV: volts (nominal pack voltage)
//   - DaysPerMonth: days
//   - Density: Wh/kg
//   - KgToLbs: lbs per kg
type Profile struct {
	Active       Currents       `json:"active" yaml:"active"`
	IdleMA       float64        `json:"idle_ma" yaml:"idle_ma" validate:"gt=0"`
	VoltageV     float64        `json:"voltage_v" yaml:"voltage_v" validate:"gt=0"`
	DaysPerMonth float64        `json:"days_per_month" yaml:"days_per_month" validate:"gt=0"`
	Clip         clip.Format    `json:"clip" yaml:"clip"`
	Container    clip.Container `json:"container" yaml:"container" validate:"omitempty,oneof=raw wav"`
	Density      Density        `json:"density" yaml:"density"`
	KgToLbs      float64        `json:"kg_to_lbs" yaml:"kg_to_lbs" validate:"gt=0"`
}

// ActiveCurrentA is the active current in amps.
func (p *Profile) ActiveCurrentA() float64 { return p.Active.TotalMA() / 1000 }

// IdleCurrentA is the standby current in amps.
func (p *Profile) IdleCurrentA() float64 { return p.IdleMA / 1000 }

// DefaultProfile returns a fresh copy of the bench-measured device constants.
func DefaultProfile() *Profile { return _defaultProfile() }

// _defaultProfile returns a Profile pre-filled with the measured device.
func _defaultProfile() *Profile {
	return &Profile{
		Active: Currents{
			BaselineMA:  12.4,    // MCU + regulators
			MicMA:       10.2,    // microphone
			InferenceMA: 2.6,     // inference & mel spectrogram
			SDWriteMA:   3,       // SD card write
			PiezoMA:     0.00005, // 50 nA
		},
		IdleMA:       2.9,     // standby
		VoltageV:     3.3,     // nominal
		DaysPerMonth: 30.1467, // mean month
		Clip:         clip.DefaultFormat(),
		Container:    clip.Raw,
		Density:      Density{LiPo: 150, LiIon: 250},
		KgToLbs:      2.205,
	}
}

// Result is the estimate for one Input.
type Result struct {
	DurationHours  float64     `json:"duration_hours" yaml:"duration_hours"`
	ActiveDuty     float64     `json:"active_duty" yaml:"active_duty"`
	ActiveCurrentA float64     `json:"active_current_a" yaml:"active_current_a"`
	IdleCurrentA   float64     `json:"idle_current_a" yaml:"idle_current_a"`
	ChargeAh       float64     `json:"charge_ah" yaml:"charge_ah"`
	EnergyWh       float64     `json:"energy_wh" yaml:"energy_wh"`
	EnergyDensity  float64     `json:"energy_density_wh_kg" yaml:"energy_density_wh_kg"`
	WeightLbs      float64     `json:"weight_lbs" yaml:"weight_lbs"`
	ClipBytes      types.Bytes `json:"clip_bytes" yaml:"clip_bytes"`
	SDSizeGB       float64     `json:"sd_size_gb" yaml:"sd_size_gb"`
}
