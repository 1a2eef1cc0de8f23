package sizing

// Point is the cumulative estimate after Month months of a deployment.
type Point struct {
	Month         int     `json:"month" yaml:"month"`
	DurationHours float64 `json:"duration_hours" yaml:"duration_hours"`
	ChargeAh      float64 `json:"charge_ah" yaml:"charge_ah"`
	EnergyWh      float64 `json:"energy_wh" yaml:"energy_wh"`
	WeightLbs     float64 `json:"weight_lbs" yaml:"weight_lbs"`
	SDSizeGB      float64 `json:"sd_size_gb" yaml:"sd_size_gb"`
}

// Project spreads r linearly over the deployment: one point per month from 0
// to in.Months. Consumption is constant-rate, so point m equals the estimate
// for an m-month deployment.
func Project(in Input, r Result) []Point {
	if in.Months <= 0 {
		return nil
	}
	pts := make([]Point, 0, in.Months+1)
	n := float64(in.Months)
	for m := 0; m <= in.Months; m++ {
		f := float64(m) / n
		pts = append(pts, Point{
			Month:         m,
			DurationHours: r.DurationHours * f,
			ChargeAh:      r.ChargeAh * f,
			EnergyWh:      r.EnergyWh * f,
			WeightLbs:     r.WeightLbs * f,
			SDSizeGB:      r.SDSizeGB * f,
		})
	}
	return pts
}
