// Package cliconfig provides configuration types and loading for the scenectl CLI.
package cliconfig

// CLIConfig represents the complete configuration for the scenectl CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.scenectlrc.yaml in current directory)
// 4. Global config file (~/.config/scenectl/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Editor connection. EditorURL wins over Host and Port when set.
	EditorURL string `yaml:"editorUrl,omitempty" json:"editorUrl,omitempty"`
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Timeout   int    `yaml:"timeout" json:"timeout"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Scene settings
	Layout string `yaml:"layout,omitempty" json:"layout,omitempty"`

	// Output settings
	Verbose bool `yaml:"verbose" json:"verbose"`
	JSON    bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so an explicit
	// false can be told apart from an omitted boolean.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// knownKeys lists the YAML keys accepted in config files.
var knownKeys = map[string]bool{
	"editorUrl": true,
	"host":      true,
	"port":      true,
	"timeout":   true,
	"logLevel":  true,
	"logFormat": true,
	"layout":    true,
	"verbose":   true,
	"json":      true,
}
