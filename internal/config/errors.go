package config

import (
	"fmt"
	"strings"
)

// ConfigError reports missing or invalid configuration. Missing lists the
// environment variables or flags that must be supplied.
//
//nolint:revive // ConfigError reads better than Error at call sites
type ConfigError struct {
	Message string
	Missing []string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config error: %s", e.Message)
	if len(e.Missing) > 0 {
		msg += ": " + strings.Join(e.Missing, ", ")
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
