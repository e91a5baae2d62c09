package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scenectl/scenectl/pkg/cli/internal/output"
	"github.com/scenectl/scenectl/pkg/scene"
)

var sceneLayout string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a scene from a layout",
	Long: `Build a scene from a layout file, or the built-in demo scene: a ground slab,
a ring of coloured spheres and a directional light, finishing with the
first sphere selected and framed.

The command fails only when the editor cannot be reached. Steps that fail
after that are listed in the report and the build carries on.`,
	Example: `  scenectl build
  scenectl build --layout scene.yaml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		b, err := newBuilder()
		if err != nil {
			return err
		}
		report, err := b.Build(cmd.Context())
		return finishRun(cmd, "build", report, err)
	},
}

var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Delete every object a layout creates",
	Long: `Delete every object a layout creates, light first and ground last.
Objects that are already gone are reported but do not fail the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		b, err := newBuilder()
		if err != nil {
			return err
		}
		report, err := b.Teardown(cmd.Context())
		return finishRun(cmd, "teardown", report, err)
	},
}

func newBuilder() (*scene.Builder, error) {
	path := cfg.Layout
	if sceneLayout != "" {
		path = sceneLayout
	}

	layout := scene.DefaultLayout()
	if path != "" {
		l, err := scene.LoadLayout(path)
		if err != nil {
			return nil, err
		}
		layout = l
	}

	return scene.NewBuilder(newEditorClient(),
		scene.WithLayout(layout),
		scene.WithLogger(logger),
	), nil
}

func finishRun(cmd *cobra.Command, verb string, report *scene.Report, runErr error) error {
	if runErr != nil && !jsonOutput && jsonPath == "" {
		return runErr
	}
	err := printResult(cmd, report, func(w io.Writer) {
		printReport(w, verb, report)
	})
	if runErr != nil {
		return runErr
	}
	return err
}

var titleCase = cases.Title(language.English)

// stateTitle renders a state name for humans, e.g. "Building Ground".
func stateTitle(s scene.State) string {
	return titleCase.String(strings.ReplaceAll(s.String(), "-", " "))
}

func printReport(w io.Writer, verb string, report *scene.Report) {
	tw := output.Table(w)
	fmt.Fprintln(tw, "STAGE\tACTION\tTARGET\tRESULT")
	for _, s := range report.Steps {
		result := "ok"
		if !s.Success {
			result = "FAILED: " + s.Error
		}
		target := s.Target
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", stateTitle(s.State), s.Action, target, result)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nScene %s finished (%s): %d succeeded, %d failed\n",
		verb, stateTitle(report.Final), report.Succeeded(), report.Failed())
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&sceneLayout, "layout", "", "Layout file (default: built-in demo scene)")

	rootCmd.AddCommand(teardownCmd)
	teardownCmd.Flags().StringVar(&sceneLayout, "layout", "", "Layout file (default: built-in demo scene)")
}
