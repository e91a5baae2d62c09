package cliconfig

import (
	"net"
	"strconv"
	"time"
)

// DefaultHost is the editor host.
const DefaultHost = "localhost"

// DefaultPort is the editor control API port.
const DefaultPort = 7777

// DefaultTimeout is the per-request timeout in seconds.
const DefaultTimeout = 30

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "info"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// MaxTimeout is the largest accepted timeout in seconds.
const MaxTimeout = 3600

// DefaultEditorURL returns the editor base URL for host and port.
func DefaultEditorURL(host string, port int) string {
	if host == "" {
		host = DefaultHost
	}
	if port == 0 {
		port = DefaultPort
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port))
}

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Host:      DefaultHost,
		Port:      DefaultPort,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	for _, key := range []string{"host", "port", "timeout", "logLevel", "logFormat", "json", "verbose"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}

// ResolvedURL returns the editor base URL the client should use.
func (c *CLIConfig) ResolvedURL() string {
	if c.EditorURL != "" {
		return c.EditorURL
	}
	return DefaultEditorURL(c.Host, c.Port)
}

// TimeoutDuration returns Timeout as a duration. Zero disables the timeout.
func (c *CLIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
