package batch

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config controls a batch run.
type Config struct {
	// Workers bounds the number of samples classified concurrently.
	// Default: number of CPUs.
	Workers int

	// StopOnError aborts the run at the first sample that fails to
	// classify instead of recording the failure and carrying on.
	StopOnError bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DHARA_BATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("DHARA_BATCH_STOP_ON_ERROR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StopOnError = b
		}
	}

	return cfg
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func workerCount(workers, items int) int {
	return max(min(workers, items), 1)
}
