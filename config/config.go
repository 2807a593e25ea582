package config

// Epsilon is the shared near-zero tolerance for balance comparisons.
//
// Amortizing balances drift slightly negative or positive from floating
// rounding; every component treats |x| <= Epsilon as exactly zero so that
// loop-termination and inertness checks agree across packages.
const Epsilon = 1e-9

// Config holds simulation-wide numeric parameters.
// These were previously hardcoded magic numbers throughout the codebase.
type Config struct {
	// Epsilon is the near-zero balance tolerance. Defaults to the package
	// Epsilon constant; overriding it is only useful in numeric experiments.
	Epsilon float64

	// HorizonMonths is the default projection horizon when a caller does
	// not specify one. 360 covers a full 30Y mortgage term.
	HorizonMonths int
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	Epsilon:       Epsilon,
	HorizonMonths: 360,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}
