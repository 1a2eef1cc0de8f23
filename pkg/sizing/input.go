package sizing

import "github.com/ja7ad/sizing/pkg/util"

// NewInput builds a validated Input. Out-of-range values are rejected with an
// error wrapping ErrInvalidInput that names every failing field.
func NewInput(months, rate int, battery Battery) (Input, error) {
	in := Input{Months: months, InferencesPerHour: rate, Battery: battery}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Validate checks the declared ranges.
func (in Input) Validate() error { return check(in, ErrInvalidInput) }

// Clamp bounds every scalar into its declared range, the way a bounded
// numeric widget would. An unknown battery becomes LiPo.
func (in Input) Clamp() Input {
	out := Input{
		Months:            util.ClampInt(in.Months, MinMonths, MaxMonths),
		InferencesPerHour: util.ClampInt(in.InferencesPerHour, MinRate, MaxRate),
		Battery:           in.Battery,
	}
	if out.Battery != LiPo && out.Battery != LiIon {
		out.Battery = LiPo
	}
	return out
}
