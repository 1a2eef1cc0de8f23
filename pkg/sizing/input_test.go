package sizing

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewInput_Boundaries(t *testing.T) {
	for _, tc := range []struct{ m, r int }{{1, 1}, {24, 800}, {1, 800}, {24, 1}} {
		in, err := NewInput(tc.m, tc.r, LiIon)
		require.NoError(t, err)
		assert.Equal(t, Input{Months: tc.m, InferencesPerHour: tc.r, Battery: LiIon}, in)
	}
}

func TestNewInput_NamesEveryFailingField(t *testing.T) {
	_, err := NewInput(0, 9000, Battery(5))
	require.ErrorIs(t, err, ErrInvalidInput)
	msg := err.Error()
	assert.Contains(t, msg, "months must be >= 1 (got 0)")
	assert.Contains(t, msg, "inferences_per_hour must be <= 800 (got 9000)")
	assert.Contains(t, msg, "battery must be one of [0 1]")
}

func TestInput_Clamp(t *testing.T) {
	got := Input{Months: -3, InferencesPerHour: 10_000, Battery: Battery(9)}.Clamp()
	assert.Equal(t, Input{Months: 1, InferencesPerHour: 800, Battery: LiPo}, got)
	require.NoError(t, got.Validate())

	same := Input{Months: 7, InferencesPerHour: 42, Battery: LiIon}
	assert.Equal(t, same, same.Clamp())
}

func TestParseBattery(t *testing.T) {
	for in, want := range map[string]Battery{
		"lipo": LiPo, "Li-Po": LiPo, "0": LiPo, " LIPO ": LiPo,
		"liion": LiIon, "Li-Ion": LiIon, "1": LiIon, "li_ion": LiIon,
	} {
		got, err := ParseBattery(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBattery("nimh")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBattery_TextEncodings(t *testing.T) {
	assert.Equal(t, "Li-Po", LiPo.String())
	assert.Equal(t, "Li-Ion", LiIon.String())
	assert.Equal(t, "Battery(7)", Battery(7).String())

	in := Input{Months: 3, InferencesPerHour: 5, Battery: LiIon}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"months":3,"inferences_per_hour":5,"battery":"Li-Ion"}`, string(b))

	var back Input
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, in, back)

	var y Input
	require.NoError(t, yaml.Unmarshal([]byte("months: 2\ninferences_per_hour: 9\nbattery: lipo\n"), &y))
	assert.Equal(t, Input{Months: 2, InferencesPerHour: 9, Battery: LiPo}, y)

	_, err = Battery(3).MarshalText()
	require.ErrorIs(t, err, ErrInvalidInput)
}
