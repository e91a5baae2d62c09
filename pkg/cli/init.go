package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scenectl/scenectl/pkg/editorclient"
	"github.com/scenectl/scenectl/pkg/scene"
)

// DefaultLayoutFile is the file init writes when no name is given.
const DefaultLayoutFile = "scene.yaml"

var (
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init [FILE]",
	Short: "Write a scene layout file",
	Long: `Write a scene layout file describing the demo scene, ready to edit.
With --interactive, answer a few questions to shape the ring and screenshot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := DefaultLayoutFile
		if len(args) == 1 {
			path = args[0]
		}
		if !initForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		layout := scene.DefaultLayout()
		if initInteractive {
			if err := runLayoutForm(layout); err != nil {
				return err
			}
		}

		data, err := marshalLayout(layout)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write layout: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d objects)\n", path, len(layout.EntityNames()))
		return nil
	},
}

// marshalLayout encodes a layout and checks it parses back cleanly.
func marshalLayout(l *scene.Layout) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, err
	}
	if _, err := scene.ParseLayout(data); err != nil {
		return nil, err
	}
	return data, nil
}

func runLayoutForm(l *scene.Layout) error {
	count := strconv.Itoa(l.Ring.Count)
	radius := strconv.FormatFloat(l.Ring.Radius, 'g', -1, 64)
	primitive := string(l.Ring.Primitive)
	shot := l.Screenshot.Path

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many objects in the ring?").
				Value(&count).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 1000 {
						return errors.New("enter a whole number between 1 and 1000")
					}
					return nil
				}),
			huh.NewInput().
				Title("Ring radius").
				Value(&radius).
				Validate(func(s string) error {
					r, err := strconv.ParseFloat(s, 64)
					if err != nil || r < 0 {
						return errors.New("enter a non-negative number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Which primitive should the ring use?").
				Options(
					huh.NewOption("Sphere", string(editorclient.PrimitiveSphere)),
					huh.NewOption("Cube", string(editorclient.PrimitiveCube)),
					huh.NewOption("Capsule", string(editorclient.PrimitiveCapsule)),
					huh.NewOption("Cylinder", string(editorclient.PrimitiveCylinder)),
				).
				Value(&primitive),
			huh.NewInput().
				Title("Screenshot path (leave empty to skip)").
				Placeholder("Assets/Screenshots/scene.png").
				Value(&shot),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	l.Ring.Count, _ = strconv.Atoi(count)
	l.Ring.Radius, _ = strconv.ParseFloat(radius, 64)
	l.Ring.Primitive = editorclient.PrimitiveType(primitive)
	l.Screenshot.Path = shot
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Answer questions to shape the layout")
}
