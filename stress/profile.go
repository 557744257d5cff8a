// Precedence: flags (cmd) > CMAP_* environment > YAML file > defaults.

package stress

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cmap/core"
)

// ErrInvalidProfile is wrapped by every Profile validation failure.
var ErrInvalidProfile = errors.New("stress: invalid profile")

// EnvPrefix prefixes every environment override (CMAP_SEED, CMAP_STEPS, ...).
const EnvPrefix = "CMAP_"

// Defaults of DefaultProfile.
const (
	DefaultSeed       = 1
	DefaultSteps      = 1000
	DefaultDimension  = core.DefaultDimension
	DefaultDarts      = 64
	DefaultSewRatio   = 0.6
	DefaultCheckEvery = 1
)

// Profile describes one stress run.
type Profile struct {
	// Seed drives both the soup and the operation sequence.
	Seed int64 `yaml:"seed" env:"SEED" json:"seed"`

	// Steps is the number of sew/unsew attempts.
	Steps int `yaml:"steps" env:"STEPS" json:"steps"`

	// Dimension of the map, in [1, core.MaxDimension].
	Dimension int `yaml:"dimension" env:"DIMENSION" json:"dimension"`

	// Darts is the size of the initial soup.
	Darts int `yaml:"darts" env:"DARTS" json:"darts"`

	// SewRatio is the probability that a step tries a sew rather than an unsew.
	SewRatio float64 `yaml:"sew_ratio" env:"SEW_RATIO" json:"sew_ratio"`

	// AttributeDims lists the enabled attribute dimensions; empty means all
	// of 0..Dimension.
	AttributeDims []int `yaml:"attribute_dims" env:"ATTRIBUTE_DIMS" envSeparator:"," json:"attribute_dims"`

	// CheckEvery runs core.Validate every CheckEvery steps; 0 checks only at the end.
	CheckEvery int `yaml:"check_every" env:"CHECK_EVERY" json:"check_every"`
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() Profile {
	return Profile{
		Seed:       DefaultSeed,
		Steps:      DefaultSteps,
		Dimension:  DefaultDimension,
		Darts:      DefaultDarts,
		SewRatio:   DefaultSewRatio,
		CheckEvery: DefaultCheckEvery,
	}
}

// LoadProfile starts from DefaultProfile, merges the YAML file at path (skipped
// when path is empty), applies CMAP_* environment overrides and validates.
//
// Errors: file and YAML errors, environment parse errors, ErrInvalidProfile.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return p, fmt.Errorf("stress: read profile: %w", err)
		}
		if err = yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("stress: parse profile %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&p, env.Options{Prefix: EnvPrefix}); err != nil {
		return p, fmt.Errorf("stress: parse env: %w", err)
	}
	return p, p.Validate()
}

// Validate checks every field range.
func (p Profile) Validate() error {
	switch {
	case p.Steps < 0:
		return fmt.Errorf("%w: steps %d < 0", ErrInvalidProfile, p.Steps)
	case p.Dimension < 1 || p.Dimension > core.MaxDimension:
		return fmt.Errorf("%w: dimension %d not in [1,%d]", ErrInvalidProfile, p.Dimension, core.MaxDimension)
	case p.Darts < 1:
		return fmt.Errorf("%w: darts %d < 1", ErrInvalidProfile, p.Darts)
	case p.SewRatio < 0 || p.SewRatio > 1:
		return fmt.Errorf("%w: sew_ratio %g not in [0,1]", ErrInvalidProfile, p.SewRatio)
	case p.CheckEvery < 0:
		return fmt.Errorf("%w: check_every %d < 0", ErrInvalidProfile, p.CheckEvery)
	}
	for _, i := range p.AttributeDims {
		if i < 0 || i > p.Dimension {
			return fmt.Errorf("%w: attribute dimension %d not in [0,%d]", ErrInvalidProfile, i, p.Dimension)
		}
	}
	return nil
}

// attributeDims resolves the empty list to every dimension.
func (p Profile) attributeDims() []int {
	if len(p.AttributeDims) > 0 {
		return p.AttributeDims
	}
	out := make([]int, 0, p.Dimension+1)
	for i := 0; i <= p.Dimension; i++ {
		out = append(out, i)
	}
	return out
}
