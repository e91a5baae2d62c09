package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the editor control API is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := newEditorClient()
		resp := client.Status(cmd.Context())
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Editor at %s is reachable\n", client.BaseURL())
			printFields(w, resp)
		})
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show project information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp := newEditorClient().ProjectInfo(cmd.Context())
		return printResponse(cmd, resp, func(w io.Writer) {
			printFields(w, resp)
		})
	},
}

// printFields writes the operation-specific fields of a Response as
// sorted "key: value" lines.
func printFields(w io.Writer, resp editorclient.Response) {
	keys := make([]string, 0, len(resp))
	for k := range resp {
		if k == editorclient.FieldSuccess || k == editorclient.FieldError {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %v\n", k, resp[k])
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(infoCmd)
}
