package core

import "strings"

// Environment is the deployment stage the advisor runs in. It decides the
// logger format and the gin mode.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// GinMode maps the environment onto gin's release/test/debug modes.
func (e Environment) GinMode() string {
	switch e {
	case Production, Staging:
		return "release"
	case Testing:
		return "test"
	default:
		return "debug"
	}
}

// ParseEnvironment normalises v into a known environment. Unknown values
// become Development so a missing ENVIRONMENT never blocks startup.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Staging:
		return Staging
	case Testing:
		return Testing
	default:
		return Development
	}
}

// Decode lets envconfig bind ENVIRONMENT directly into an Environment.
func (e *Environment) Decode(v string) error {
	*e = ParseEnvironment(v)
	return nil
}
