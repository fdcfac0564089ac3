package prediction

import (
	"fmt"
	"strings"

	apperrors "rtk-backend/internal/errors"
)

// Environment is a MIL-HDBK-217F operating environment code.
type Environment string

const (
	EnvGroundBenign               Environment = "GB"
	EnvGroundFixed                Environment = "GF"
	EnvGroundMobile               Environment = "GM"
	EnvNavalSheltered             Environment = "NS"
	EnvNavalUnsheltered           Environment = "NU"
	EnvAirborneInhabitedCargo     Environment = "AIC"
	EnvAirborneInhabitedFighter   Environment = "AIF"
	EnvAirborneUninhabitedCargo   Environment = "AUC"
	EnvAirborneUninhabitedFighter Environment = "AUF"
	EnvAirborneRotaryWinged       Environment = "ARW"
	EnvSpaceFlight                Environment = "SF"
	EnvMissileFlight              Environment = "MF"
	EnvMissileLaunch              Environment = "ML"
	EnvCannonLaunch               Environment = "CL"
)

// NumEnvironments is the number of columns in every environment table.
const NumEnvironments = 14

var environments = [NumEnvironments]Environment{
	EnvGroundBenign,
	EnvGroundFixed,
	EnvGroundMobile,
	EnvNavalSheltered,
	EnvNavalUnsheltered,
	EnvAirborneInhabitedCargo,
	EnvAirborneInhabitedFighter,
	EnvAirborneUninhabitedCargo,
	EnvAirborneUninhabitedFighter,
	EnvAirborneRotaryWinged,
	EnvSpaceFlight,
	EnvMissileFlight,
	EnvMissileLaunch,
	EnvCannonLaunch,
}

// Environments returns all environments in handbook column order.
func Environments() []Environment {
	out := make([]Environment, NumEnvironments)
	copy(out, environments[:])
	return out
}

// ParseEnvironment accepts a handbook code in any case.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToUpper(strings.TrimSpace(s)))
	if env.Index() < 0 {
		return "", apperrors.NewValidationError("environment", fmt.Sprintf("unknown environment %q", s))
	}
	return env, nil
}

// Index returns the handbook column for the environment or -1.
func (e Environment) Index() int {
	for i, env := range environments {
		if env == e {
			return i
		}
	}
	return -1
}

// IsValid checks if the Environment is one of the handbook codes
func (e Environment) IsValid() bool {
	return e.Index() >= 0
}

// Harsh reports whether derating limits for harsh service apply.
func (e Environment) Harsh() bool {
	switch e {
	case EnvGroundBenign, EnvGroundFixed, EnvSpaceFlight:
		return false
	}
	return true
}

// EnvironmentClass groups environments for dormant conversion factors.
type EnvironmentClass string

const (
	ClassGround   EnvironmentClass = "ground"
	ClassNaval    EnvironmentClass = "naval"
	ClassAirborne EnvironmentClass = "airborne"
	ClassSpace    EnvironmentClass = "space"
)

// Class returns the environment's dormant conversion class.
func (e Environment) Class() EnvironmentClass {
	switch e {
	case EnvGroundBenign, EnvGroundFixed, EnvGroundMobile:
		return ClassGround
	case EnvNavalSheltered, EnvNavalUnsheltered:
		return ClassNaval
	case EnvSpaceFlight:
		return ClassSpace
	}
	return ClassAirborne
}

// EnvTable holds one handbook value per environment; a zero entry marks the
// environment as not applicable.
type EnvTable [NumEnvironments]float64

// Lookup returns the table value for env.
func (t EnvTable) Lookup(env Environment) (float64, error) {
	idx := env.Index()
	if idx < 0 {
		return 0, apperrors.NewValidationError("environment", fmt.Sprintf("unknown environment %q", env))
	}
	if t[idx] <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrEnvironmentNotApplicable, env)
	}
	return t[idx], nil
}
