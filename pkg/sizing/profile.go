package sizing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads a YAML device profile. Keys that are absent keep their
// default value; unknown keys are rejected. The result is validated strictly.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadProfile, err)
	}
	return ParseProfile(raw)
}

// ParseProfile decodes a YAML device profile over the defaults.
func ParseProfile(raw []byte) (*Profile, error) {
	p := _defaultProfile()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrBadProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every field of the profile.
func (p *Profile) Validate() error {
	if err := check(p, ErrBadProfile); err != nil {
		return err
	}
	if p.Active.TotalMA() <= 0 {
		return fmt.Errorf("%w: active current must be > 0", ErrBadProfile)
	}
	if err := p.Clip.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadProfile, err)
	}
	return nil
}

// YAML encodes the profile in the same layout LoadProfile reads.
func (p *Profile) YAML() ([]byte, error) {
	return yaml.Marshal(p)
}
