package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envDefaults are the flag defaults, read from SIZING_* variables.
// Battery stays a string so it is parsed, rejected or clamped with -b.
type envDefaults struct {
	Months    int    `envconfig:"MONTHS" default:"12"`
	Rate      int    `envconfig:"RATE" default:"1"`
	Battery   string `envconfig:"BATTERY" default:"lipo"`
	Profile   string `envconfig:"PROFILE"`
	Container string `envconfig:"CONTAINER"`
	Verbose   bool   `envconfig:"VERBOSE" default:"false"`
}

func loadEnv() (envDefaults, error) {
	var env envDefaults
	if err := envconfig.Process("sizing", &env); err != nil {
		return envDefaults{}, fmt.Errorf("environment: %w", err)
	}
	return env, nil
}
