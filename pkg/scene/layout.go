package scene

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

// ErrInvalidLayout is returned for layout files that fail to parse or validate.
var ErrInvalidLayout = errors.New("invalid layout")

//go:embed layout.schema.json
var layoutSchemaJSON string

const layoutSchemaURL = "layout.schema.json"

var (
	layoutSchemaOnce sync.Once
	layoutSchema     *jsonschema.Schema
	layoutSchemaErr  error
)

// Layout parameterises a Build. DefaultLayout reproduces the demo scene.
type Layout struct {
	Ground     GroundSpec     `yaml:"ground" json:"ground"`
	Ring       RingSpec       `yaml:"ring" json:"ring"`
	Light      LightSpec      `yaml:"light" json:"light"`
	Focus      FocusSpec      `yaml:"focus" json:"focus"`
	Screenshot ScreenshotSpec `yaml:"screenshot" json:"screenshot"`

	colors *colorPrograms
}

// GroundSpec describes the floor slab.
type GroundSpec struct {
	Name      string                     `yaml:"name" json:"name"`
	Primitive editorclient.PrimitiveType `yaml:"primitive" json:"primitive"`
	Position  editorclient.Vector3       `yaml:"position" json:"position"`
	Scale     editorclient.Vector3       `yaml:"scale" json:"scale"`
	Color     editorclient.Color         `yaml:"color" json:"color"`
}

// RingSpec describes the circle of generated entities.
type RingSpec struct {
	Count      int                        `yaml:"count" json:"count"`
	Radius     float64                    `yaml:"radius" json:"radius"`
	Height     float64                    `yaml:"height" json:"height"`
	Primitive  editorclient.PrimitiveType `yaml:"primitive" json:"primitive"`
	NamePrefix string                     `yaml:"namePrefix" json:"namePrefix"`

	// ColorExpr replaces the rainbow sweep with per-channel expressions.
	// Expressions see i, n, hue (i/n), angle, pi, sin and cos.
	ColorExpr *ColorExpr `yaml:"colorExpr,omitempty" json:"colorExpr,omitempty"`
}

// ColorExpr holds one expression per colour channel. A defaults to 1.
type ColorExpr struct {
	R string `yaml:"r" json:"r"`
	G string `yaml:"g" json:"g"`
	B string `yaml:"b" json:"b"`
	A string `yaml:"a,omitempty" json:"a,omitempty"`
}

// LightSpec describes the scene light.
type LightSpec struct {
	Name     string                 `yaml:"name" json:"name"`
	Type     editorclient.LightType `yaml:"type" json:"type"`
	Position editorclient.Vector3   `yaml:"position" json:"position"`
}

// FocusSpec names the entity framed at the end of a build.
// An empty target means the first ring entity.
type FocusSpec struct {
	Target string `yaml:"target" json:"target"`
}

// ScreenshotSpec enables a final capture when Path is set.
type ScreenshotSpec struct {
	Path   string `yaml:"path" json:"path"`
	Camera string `yaml:"camera" json:"camera"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// DefaultLayout returns the demo scene: a grey ground slab, eight rainbow
// spheres on a circle of radius 3 and one directional light.
func DefaultLayout() *Layout {
	return &Layout{
		Ground: GroundSpec{
			Name:      "Ground",
			Primitive: editorclient.PrimitiveCube,
			Position:  editorclient.Vector3{X: 0, Y: -0.5, Z: 0},
			Scale:     editorclient.Vector3{X: 10, Y: 0.1, Z: 10},
			Color:     editorclient.RGB(0.3, 0.3, 0.3),
		},
		Ring: RingSpec{
			Count:      8,
			Radius:     3,
			Height:     0.5,
			Primitive:  editorclient.PrimitiveSphere,
			NamePrefix: "Sphere_",
		},
		Light: LightSpec{
			Name:     "MainLight",
			Type:     editorclient.LightDirectional,
			Position: editorclient.Vector3{X: 0, Y: 10, Z: 0},
		},
		Screenshot: ScreenshotSpec{
			Camera: editorclient.DefaultCameraName,
			Width:  editorclient.DefaultScreenWidth,
			Height: editorclient.DefaultScreenHeight,
		},
	}
}

// LoadLayout reads and validates a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout validates data against the layout schema and decodes it over
// DefaultLayout, so omitted keys keep their demo values.
func ParseLayout(data []byte) (*Layout, error) {
	if err := validateLayout(data); err != nil {
		return nil, err
	}

	l := DefaultLayout()
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := l.Compile(); err != nil {
		return nil, err
	}
	return l, nil
}

func validateLayout(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if raw == nil {
		return nil
	}

	// Round-trip through JSON so the validator sees JSON types, not YAML ones.
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	dec := json.NewDecoder(bytes.NewReader(asJSON))
	dec.UseNumber()
	var inst any
	if err := dec.Decode(&inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	schema, err := compiledLayoutSchema()
	if err != nil {
		return fmt.Errorf("layout schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s", ErrInvalidLayout, describeValidation(verr))
		}
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return nil
}

func compiledLayoutSchema() (*jsonschema.Schema, error) {
	layoutSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(layoutSchemaURL, strings.NewReader(layoutSchemaJSON)); err != nil {
			layoutSchemaErr = err
			return
		}
		layoutSchema, layoutSchemaErr = compiler.Compile(layoutSchemaURL)
	})
	return layoutSchema, layoutSchemaErr
}

// describeValidation flattens the leaf causes into "location: message" pairs.
func describeValidation(err *jsonschema.ValidationError) string {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return loc + ": " + err.Message
	}
	parts := make([]string, 0, len(err.Causes))
	for _, cause := range err.Causes {
		parts = append(parts, describeValidation(cause))
	}
	return strings.Join(parts, "; ")
}

// Compile prepares colour expressions. ParseLayout calls it; layouts built in
// code only need it when Ring.ColorExpr is set.
func (l *Layout) Compile() error {
	l.colors = nil
	if l.Ring.ColorExpr == nil {
		return nil
	}
	progs, err := compileColorExpr(l.Ring.ColorExpr)
	if err != nil {
		return fmt.Errorf("%w: ring.colorExpr: %v", ErrInvalidLayout, err)
	}
	l.colors = progs
	return nil
}

// EntityName returns the name of ring entity i.
func (l *Layout) EntityName(i int) string {
	return l.Ring.NamePrefix + strconv.Itoa(i)
}

// FocusTarget returns the entity selected at the end of a build.
func (l *Layout) FocusTarget() string {
	if l.Focus.Target != "" {
		return l.Focus.Target
	}
	return l.EntityName(0)
}

// EntityNames lists every entity a Build creates, in creation order.
func (l *Layout) EntityNames() []string {
	names := make([]string, 0, l.Ring.Count+2)
	names = append(names, l.Ground.Name)
	for i := 0; i < l.Ring.Count; i++ {
		names = append(names, l.EntityName(i))
	}
	return append(names, l.Light.Name)
}

// ColorAt returns the colour of ring entity i.
func (l *Layout) ColorAt(i int) (editorclient.Color, error) {
	if l.Ring.ColorExpr == nil {
		return RainbowColor(i, l.Ring.Count), nil
	}
	if l.colors == nil {
		if err := l.Compile(); err != nil {
			return editorclient.Color{}, err
		}
	}
	return l.colors.eval(i, l.Ring.Count)
}

type colorPrograms struct {
	r, g, b, a *vm.Program
}

func colorEnv(i, n int) map[string]any {
	hue := 0.0
	if n > 0 {
		hue = float64(i) / float64(n)
	}
	return map[string]any{
		"i":     i,
		"n":     n,
		"hue":   hue,
		"angle": RingAngle(i, n),
		"pi":    math.Pi,
		"sin":   math.Sin,
		"cos":   math.Cos,
	}
}

func compileColorExpr(ce *ColorExpr) (*colorPrograms, error) {
	env := colorEnv(0, 1)
	compile := func(channel, src string) (*vm.Program, error) {
		prog, err := expr.Compile(src, expr.Env(env))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", channel, err)
		}
		return prog, nil
	}

	var (
		progs colorPrograms
		err   error
	)
	if progs.r, err = compile("r", ce.R); err != nil {
		return nil, err
	}
	if progs.g, err = compile("g", ce.G); err != nil {
		return nil, err
	}
	if progs.b, err = compile("b", ce.B); err != nil {
		return nil, err
	}
	if ce.A != "" {
		if progs.a, err = compile("a", ce.A); err != nil {
			return nil, err
		}
	}
	return &progs, nil
}

func (p *colorPrograms) eval(i, n int) (editorclient.Color, error) {
	env := colorEnv(i, n)
	run := func(channel string, prog *vm.Program) (float64, error) {
		out, err := expr.Run(prog, env)
		if err != nil {
			return 0, fmt.Errorf("colour %s for entity %d: %w", channel, i, err)
		}
		switch v := out.(type) {
		case float64:
			return clamp01(v), nil
		case int:
			return clamp01(float64(v)), nil
		default:
			return 0, fmt.Errorf("colour %s for entity %d: expression returned %T, want number", channel, i, out)
		}
	}

	var (
		c   = editorclient.Color{A: 1}
		err error
	)
	if c.R, err = run("r", p.r); err != nil {
		return editorclient.Color{}, err
	}
	if c.G, err = run("g", p.g); err != nil {
		return editorclient.Color{}, err
	}
	if c.B, err = run("b", p.b); err != nil {
		return editorclient.Color{}, err
	}
	if p.a != nil {
		if c.A, err = run("a", p.a); err != nil {
			return editorclient.Color{}, err
		}
	}
	return c, nil
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
