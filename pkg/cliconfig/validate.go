package cliconfig

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/scenectl/scenectl/pkg/logging"
)

// Validate checks the configuration for out-of-range or malformed values.
func (c *CLIConfig) Validate() error {
	var errs []error

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range (0-65535)", c.Port))
	}
	if c.Timeout < 0 || c.Timeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("timeout %d is out of range (0-%d)", c.Timeout, MaxTimeout))
	}
	if c.EditorURL != "" {
		if err := validateURL(c.EditorURL); err != nil {
			errs = append(errs, err)
		}
	}
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "" && !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("editorUrl %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("editorUrl %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("editorUrl %q has no host", raw)
	}
	return nil
}

