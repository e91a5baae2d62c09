package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/cli/internal/flags"
	"github.com/scenectl/scenectl/pkg/cli/internal/output"
	"github.com/scenectl/scenectl/pkg/cli/internal/parse"
	"github.com/scenectl/scenectl/pkg/editorclient"
)

// DefaultNamesPath selects object names from a list response.
const DefaultNamesPath = "$.gameObjects[*].name"

var knownTransformFields = map[string]bool{
	editorclient.FieldX: true, editorclient.FieldY: true, editorclient.FieldZ: true,
	editorclient.FieldRotationX: true, editorclient.FieldRotationY: true, editorclient.FieldRotationZ: true,
	editorclient.FieldScaleX: true, editorclient.FieldScaleY: true, editorclient.FieldScaleZ: true,
}

var (
	createPrimitive string
	createX         float64
	createY         float64
	createZ         float64

	deleteMatch     string
	deleteNamesPath string

	transformSet flags.FloatAssignments

	colorAlpha float64

	lightType string
	lightX    float64
	lightY    float64
	lightZ    float64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the objects in the open scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp := newEditorClient().ListGameObjects(cmd.Context())
		return printResponse(cmd, resp, func(w io.Writer) {
			objs, ok := resp["gameObjects"].([]any)
			if !ok {
				printFields(w, resp)
				return
			}
			if len(objs) == 0 {
				fmt.Fprintln(w, "No objects in scene")
				return
			}
			tw := output.Table(w)
			fmt.Fprintln(tw, "NAME\tKIND\tTYPE\tPOSITION")
			for _, o := range objs {
				m, _ := o.(map[string]any)
				kind := m["primitiveType"]
				if lt, ok := m["lightType"]; ok {
					kind = lt
				}
				fmt.Fprintf(tw, "%v\t%v\t%v\t%s\n", m["name"], m["kind"], kind, formatVector(m["position"]))
			}
			_ = tw.Flush()
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a primitive game object",
	Example: `  scenectl create Ground --primitive Plane
  scenectl create Ball --primitive Sphere --y 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		resp := newEditorClient().CreateGameObject(cmd.Context(), name,
			editorclient.WithPrimitive(editorclient.PrimitiveType(createPrimitive)),
			editorclient.At(createX, createY, createZ))
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Created %s (%s)\n", name, createPrimitive)
		})
	},
}

// DeleteResult is the outcome of one deletion in a batch.
type DeleteResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

var deleteCmd = &cobra.Command{
	Use:   "delete [NAME...]",
	Short: "Delete game objects by name or glob",
	Example: `  scenectl delete Ground
  scenectl delete Sphere_0 Sphere_1
  scenectl delete --match 'Sphere_*'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteMatch != "" && len(args) > 0 {
			return errors.New("use either object names or --match, not both")
		}
		if deleteMatch == "" && len(args) == 0 {
			return errors.New("at least one object name or --match is required")
		}

		client := newEditorClient()
		ctx := cmd.Context()

		if deleteMatch == "" && len(args) == 1 {
			resp := client.DeleteGameObject(ctx, args[0])
			return printResponse(cmd, resp, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted %s\n", args[0])
			})
		}

		names := args
		if deleteMatch != "" {
			list := client.ListGameObjects(ctx)
			if !list.Success() {
				return remoteError(list)
			}
			matched, err := matchNames(map[string]any(list), deleteNamesPath, deleteMatch)
			if err != nil {
				return err
			}
			names = matched
		}

		results := make([]DeleteResult, 0, len(names))
		failed := 0
		for _, name := range names {
			resp := client.DeleteGameObject(ctx, name)
			if !resp.Success() {
				failed++
			}
			results = append(results, DeleteResult{Name: name, Success: resp.Success(), Error: resp.ErrorMessage()})
		}

		err := printResult(cmd, results, func(w io.Writer) {
			if len(results) == 0 {
				fmt.Fprintf(w, "No objects match %s\n", deleteMatch)
				return
			}
			for _, r := range results {
				if r.Success {
					fmt.Fprintf(w, "Deleted %s\n", r.Name)
				} else {
					fmt.Fprintf(w, "Failed to delete %s: %s\n", r.Name, r.Error)
				}
			}
		})
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d deletions failed", ErrRemoteFailure, failed, len(results))
		}
		return nil
	},
}

// matchNames selects names from a list response with namesPath and keeps
// those matching the glob pattern, sorted.
func matchNames(list any, namesPath, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	values, err := selectJSONPath(list, namesPath)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, v := range values {
		name, ok := v.(string)
		if !ok {
			continue
		}
		if ok, _ := doublestar.Match(pattern, name); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

var transformCmd = &cobra.Command{
	Use:   "transform NAME --set FIELD=VALUE...",
	Short: "Set position, rotation or scale fields of a game object",
	Example: `  scenectl transform Ground --set scaleX=10 --set scaleZ=10
  scenectl transform Ball --set y=3 --set rotationY=45`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(transformSet) == 0 {
			return errors.New("at least one --set FIELD=VALUE is required")
		}
		fields := editorclient.TransformFields(transformSet)
		for k := range fields {
			if !knownTransformFields[k] {
				output.Warn(cmd.ErrOrStderr(), "%q is not a standard transform field; sending it anyway", k)
			}
		}

		name := args[0]
		resp := newEditorClient().Transform(cmd.Context(), name, fields)
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Transformed %s\n", name)
		})
	},
}

var colorCmd = &cobra.Command{
	Use:     "color NAME R G B",
	Short:   "Set the material colour of a game object",
	Example: `  scenectl color Ground 0.3 0.3 0.3`,
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		rgb, err := parse.Floats(args[1:])
		if err != nil {
			return err
		}
		name := args[0]
		resp := newEditorClient().SetColor(cmd.Context(), name, editorclient.RGBA(rgb[0], rgb[1], rgb[2], colorAlpha))
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Set colour of %s\n", name)
		})
	},
}

var lightCmd = &cobra.Command{
	Use:     "light NAME",
	Short:   "Create a light",
	Example: `  scenectl light Sun --type Directional --y 10`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		resp := newEditorClient().CreateLight(cmd.Context(), name,
			editorclient.WithLightType(editorclient.LightType(lightType)),
			editorclient.LightAt(lightX, lightY, lightZ))
		return printResponse(cmd, resp, func(w io.Writer) {
			fmt.Fprintf(w, "Created %s light %s\n", lightType, name)
		})
	},
}

func formatVector(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("(%v, %v, %v)", m["x"], m["y"], m["z"])
}

func init() {
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createPrimitive, "primitive", string(editorclient.PrimitiveCube), "Primitive type: Cube, Sphere, Capsule, Cylinder, Plane, Quad")
	createCmd.Flags().Float64Var(&createX, "x", 0, "Initial X position")
	createCmd.Flags().Float64Var(&createY, "y", 0, "Initial Y position")
	createCmd.Flags().Float64Var(&createZ, "z", 0, "Initial Z position")

	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVar(&deleteMatch, "match", "", "Delete every object whose name matches this glob")
	deleteCmd.Flags().StringVar(&deleteNamesPath, "names-path", DefaultNamesPath, "JSONPath selecting object names from the list response")

	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().Var(&transformSet, "set", "Transform field assignment FIELD=VALUE (repeatable)")

	rootCmd.AddCommand(colorCmd)
	colorCmd.Flags().Float64Var(&colorAlpha, "alpha", 1, "Alpha channel")

	rootCmd.AddCommand(lightCmd)
	lightCmd.Flags().StringVar(&lightType, "type", string(editorclient.LightPoint), "Light type: Point, Directional, Spot, Area")
	lightCmd.Flags().Float64Var(&lightX, "x", 0, "X position")
	lightCmd.Flags().Float64Var(&lightY, "y", 3, "Y position")
	lightCmd.Flags().Float64Var(&lightZ, "z", 0, "Z position")
}
