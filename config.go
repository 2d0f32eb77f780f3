package kitaev

import "time"

// Config carries the tunable knobs of the library.
type Config struct {
	// DataDir is the base directory for persisted task results.
	DataDir string
	// Seed drives the simulator backend's sampling RNG.
	Seed int64
	// ResultTimeout bounds how long callers should wait on a job handle.
	ResultTimeout time.Duration
}

// NewConfig returns a Config with the defaults.
func NewConfig() *Config {
	return &Config{
		DataDir:       "data",
		Seed:          1,
		ResultTimeout: 30 * time.Second,
	}
}
