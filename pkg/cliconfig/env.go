package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names
const (
	EnvEditorURL = "SCENECTL_EDITOR_URL"
	EnvHost      = "SCENECTL_HOST"
	EnvPort      = "SCENECTL_PORT"
	EnvTimeout   = "SCENECTL_TIMEOUT"
	EnvLogLevel  = "SCENECTL_LOG_LEVEL"
	EnvLogFormat = "SCENECTL_LOG_FORMAT"
	EnvLayout    = "SCENECTL_LAYOUT"
	EnvJSON      = "SCENECTL_JSON"
	EnvVerbose   = "SCENECTL_VERBOSE"
	EnvConfig    = "SCENECTL_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment and reports
// every variable that could not be parsed.
func LoadEnvConfig(cfg *CLIConfig) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	var errs []error

	setString := func(env, key string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
			cfg.Sources[key] = SourceEnv
		}
	}
	setInt := func(env, key string, dst *int) {
		v := os.Getenv(env)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: not an integer", env, v))
			return
		}
		*dst = n
		cfg.Sources[key] = SourceEnv
	}
	setBool := func(env, key string, dst *bool) {
		v := os.Getenv(env)
		if v == "" {
			return
		}
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", env, v, err))
			return
		}
		*dst = b
		cfg.Sources[key] = SourceEnv
	}

	setString(EnvEditorURL, "editorUrl", &cfg.EditorURL)
	setString(EnvHost, "host", &cfg.Host)
	setInt(EnvPort, "port", &cfg.Port)
	setInt(EnvTimeout, "timeout", &cfg.Timeout)
	setString(EnvLogLevel, "logLevel", &cfg.LogLevel)
	setString(EnvLogFormat, "logFormat", &cfg.LogFormat)
	setString(EnvLayout, "layout", &cfg.Layout)
	setBool(EnvJSON, "json", &cfg.JSON)
	setBool(EnvVerbose, "verbose", &cfg.Verbose)

	return errors.Join(errs...)
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, errors.New("not a boolean")
}
