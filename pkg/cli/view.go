package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

var (
	screenshotCamera string
	screenshotWidth  int
	screenshotHeight int
)

var selectCmd = &cobra.Command{
	Use:   "select NAME",
	Short: "Select a game object in the editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := newEditorClient().Select(cmd.Context(), args[0])
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Selected %s\n", args[0])
		})
	},
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Frame the current selection in the scene view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp := newEditorClient().FocusSelected(cmd.Context())
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintln(w, "Focused selection")
		})
	},
}

var screenshotCmd = &cobra.Command{
	Use:     "screenshot PATH",
	Short:   "Render a camera to an image file",
	Example: `  scenectl screenshot Assets/Screenshots/scene.png --width 1280 --height 720`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		resp := newEditorClient().Screenshot(cmd.Context(), path,
			editorclient.WithCamera(screenshotCamera),
			editorclient.WithResolution(screenshotWidth, screenshotHeight))
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Saved %dx%d screenshot to %s\n", screenshotWidth, screenshotHeight, path)
		})
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Enter play mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp := newEditorClient().Play(cmd.Context())
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintln(w, "Play mode started")
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Leave play mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp := newEditorClient().Stop(cmd.Context())
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintln(w, "Play mode stopped")
		})
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(focusCmd)

	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().StringVar(&screenshotCamera, "camera", editorclient.DefaultCameraName, "Camera to render")
	screenshotCmd.Flags().IntVar(&screenshotWidth, "width", editorclient.DefaultScreenWidth, "Image width in pixels")
	screenshotCmd.Flags().IntVar(&screenshotHeight, "height", editorclient.DefaultScreenHeight, "Image height in pixels")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stopCmd)
}
