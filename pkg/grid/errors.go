package grid

import "fmt"

// ConfigError reports a problem with a Slitherlink instance: bad
// dimensions, a non-rectangular row, or an out-of-range clue.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid instance: %s", e.Reason)
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
