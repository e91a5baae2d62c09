package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/cli/internal/output"
	"github.com/scenectl/scenectl/pkg/cliconfig"
)

// ConfigOutput is the JSON form of the config command.
type ConfigOutput struct {
	Config    *cliconfig.CLIConfig `json:"config"`
	EditorURL string               `json:"resolvedEditorUrl"`
	Sources   map[string]string    `json:"sources"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where each value came from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := ConfigOutput{Config: cfg, EditorURL: cfg.ResolvedURL(), Sources: cfg.Sources}
		return printResult(cmd, out, func(w io.Writer) {
			values := map[string]any{
				"editorUrl": cfg.EditorURL,
				"host":      cfg.Host,
				"port":      cfg.Port,
				"timeout":   cfg.Timeout,
				"logLevel":  cfg.LogLevel,
				"logFormat": cfg.LogFormat,
				"layout":    cfg.Layout,
				"json":      cfg.JSON,
				"verbose":   cfg.Verbose,
			}
			tw := output.Table(w)
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, k := range cfg.SourceKeys() {
				fmt.Fprintf(tw, "%s\t%v\t%s\n", k, values[k], cfg.Sources[k])
			}
			_ = tw.Flush()
			fmt.Fprintf(w, "\nEditor URL: %s\n", cfg.ResolvedURL())
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
