package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/cliconfig"
	"github.com/scenectl/scenectl/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	editorURL  string
	configPath string
	jsonOutput bool
	jsonPath   string
	logLevel   string
	logFormat  string
	timeoutSec int

	// cfg is the effective configuration, resolved before every command.
	cfg = cliconfig.NewDefault()
	// logger writes diagnostics to stderr.
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scenectl",
	Short: "scenectl drives a 3D editor through its HTTP control API",
	Long: `scenectl creates, edits and inspects scene objects in a running editor
through its JSON-over-HTTP control API, and builds whole scenes from layout files.

Configuration can be provided via flags, SCENECTL_* environment variables,
a local .scenectlrc.yaml or a global ~/.config/scenectl/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // Errors are printed by the caller of Execute.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return loadConfig(cmd) },
}

// Execute runs the command named by the process arguments.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration and logger.
// Precedence: flags > env > config files > defaults.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := cliconfig.LoadAll(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	setFlag := func(name, key string, apply func()) {
		if flags.Changed(name) {
			apply()
			loaded.Sources[key] = cliconfig.SourceFlag
		}
	}
	setFlag("editor-url", "editorUrl", func() { loaded.EditorURL = editorURL })
	setFlag("timeout", "timeout", func() { loaded.Timeout = timeoutSec })
	setFlag("log-level", "logLevel", func() { loaded.LogLevel = logLevel })
	setFlag("log-format", "logFormat", func() { loaded.LogFormat = logFormat })
	setFlag("json", "json", func() { loaded.JSON = jsonOutput })

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	jsonOutput = loaded.JSON
	logger = newLogger(cmd, loaded)
	return nil
}

func newLogger(cmd *cobra.Command, c *cliconfig.CLIConfig) *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(c.LogLevel),
		Format: logging.ParseFormat(c.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&editorURL, "editor-url", "", "Editor control API base URL (default: http://localhost:7777)")
	pf.StringVar(&configPath, "config", "", "Config file to use instead of .scenectlrc.yaml")
	pf.BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	pf.StringVar(&jsonPath, "jsonpath", "", "Print only the parts of the result selected by a JSONPath expression")
	pf.StringVar(&logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format: text, json")
	pf.IntVar(&timeoutSec, "timeout", cliconfig.DefaultTimeout, "Per-request timeout in seconds (0 disables)")
}
