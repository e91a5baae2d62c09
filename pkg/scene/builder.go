package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scenectl/scenectl/pkg/editorclient"
	"github.com/scenectl/scenectl/pkg/logging"
)

// ErrNotConnected is returned when the connectivity check fails.
// No scene operation is attempted after it.
var ErrNotConnected = errors.New("editor not reachable")

// Editor is the subset of the control client a Builder drives.
// *editorclient.Client satisfies it.
type Editor interface {
	Status(ctx context.Context) editorclient.Response
	CreateGameObject(ctx context.Context, name string, opts ...editorclient.CreateOption) editorclient.Response
	DeleteGameObject(ctx context.Context, name string) editorclient.Response
	Transform(ctx context.Context, name string, fields editorclient.TransformFields) editorclient.Response
	SetColor(ctx context.Context, gameObjectName string, color editorclient.Color) editorclient.Response
	CreateLight(ctx context.Context, name string, opts ...editorclient.LightOption) editorclient.Response
	Select(ctx context.Context, name string) editorclient.Response
	FocusSelected(ctx context.Context) editorclient.Response
	Screenshot(ctx context.Context, path string, opts ...editorclient.ScreenshotOption) editorclient.Response
}

var _ Editor = (*editorclient.Client)(nil)

// Step actions recorded in reports.
const (
	ActionStatus     = "status"
	ActionCreate     = "create"
	ActionTransform  = "transform"
	ActionColor      = "color"
	ActionLight      = "light"
	ActionSelect     = "select"
	ActionFocus      = "focus"
	ActionScreenshot = "screenshot"
	ActionDelete     = "delete"
)

// Builder runs the scene workflow against an Editor. Calls are strictly
// sequential; a Builder must not be shared between goroutines.
type Builder struct {
	editor Editor
	layout *Layout
	logger *slog.Logger
	onStep func(StepResult)
	state  State
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLayout replaces the default layout.
func WithLayout(l *Layout) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.layout = l
		}
	}
}

// WithLogger sets the logger receiving one record per step.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStepHook registers fn to be called after every step.
func WithStepHook(fn func(StepResult)) BuilderOption {
	return func(b *Builder) {
		b.onStep = fn
	}
}

// NewBuilder creates a Builder using DefaultLayout unless WithLayout is given.
func NewBuilder(editor Editor, opts ...BuilderOption) *Builder {
	b := &Builder{
		editor: editor,
		layout: DefaultLayout(),
		logger: logging.Nop(),
		state:  StateStart,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the state the Builder last entered.
func (b *Builder) State() State {
	return b.state
}

// Layout returns the layout the Builder uses.
func (b *Builder) Layout() *Layout {
	return b.layout
}

// Build creates the scene. It returns ErrNotConnected when the editor is
// unreachable; failures of later steps are only recorded in the report.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := b.logger.With("run", report.RunID)

	if err := b.checkConnection(ctx, report, log); err != nil {
		return report, err
	}

	l := b.layout

	b.enter(StateBuildingGround, report, log)
	g := l.Ground
	b.step(report, log, ActionCreate, g.Name, b.editor.CreateGameObject(ctx, g.Name,
		editorclient.WithPrimitive(g.Primitive),
		editorclient.At(g.Position.X, g.Position.Y, g.Position.Z)))
	b.step(report, log, ActionTransform, g.Name, b.editor.Transform(ctx, g.Name,
		editorclient.Scale(g.Scale.X, g.Scale.Y, g.Scale.Z)))
	b.step(report, log, ActionColor, g.Name, b.editor.SetColor(ctx, g.Name, g.Color))

	b.enter(StateBuildingRing, report, log)
	for i := 0; i < l.Ring.Count; i++ {
		name := l.EntityName(i)
		pos := RingPosition(i, l.Ring.Count, l.Ring.Radius, l.Ring.Height)
		b.step(report, log, ActionCreate, name, b.editor.CreateGameObject(ctx, name,
			editorclient.WithPrimitive(l.Ring.Primitive),
			editorclient.At(pos.X, pos.Y, pos.Z)))

		color, err := l.ColorAt(i)
		if err != nil {
			b.record(report, log, StepResult{Action: ActionColor, Target: name, Error: err.Error()})
			continue
		}
		b.step(report, log, ActionColor, name, b.editor.SetColor(ctx, name, color))
	}

	b.enter(StateAddingLight, report, log)
	b.step(report, log, ActionLight, l.Light.Name, b.editor.CreateLight(ctx, l.Light.Name,
		editorclient.WithLightType(l.Light.Type),
		editorclient.LightAt(l.Light.Position.X, l.Light.Position.Y, l.Light.Position.Z)))

	b.enter(StateSelectingFocus, report, log)
	target := l.FocusTarget()
	b.step(report, log, ActionSelect, target, b.editor.Select(ctx, target))
	b.step(report, log, ActionFocus, target, b.editor.FocusSelected(ctx))

	if shot := l.Screenshot; shot.Path != "" {
		b.enter(StateCapturingScreenshot, report, log)
		b.step(report, log, ActionScreenshot, shot.Path, b.editor.Screenshot(ctx, shot.Path,
			editorclient.WithCamera(shot.Camera),
			editorclient.WithResolution(shot.Width, shot.Height)))
	}

	b.enter(StateDone, report, log)
	log.Info("scene build finished", "succeeded", report.Succeeded(), "failed", report.Failed())
	return report, nil
}

// Teardown deletes every entity the layout names, light first and ground
// last. Like Build it stops only when the connectivity check fails.
func (b *Builder) Teardown(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := b.logger.With("run", report.RunID)

	if err := b.checkConnection(ctx, report, log); err != nil {
		return report, err
	}

	b.enter(StateTearingDown, report, log)
	names := b.layout.EntityNames()
	for i := len(names) - 1; i >= 0; i-- {
		b.step(report, log, ActionDelete, names[i], b.editor.DeleteGameObject(ctx, names[i]))
	}

	b.enter(StateDone, report, log)
	log.Info("scene teardown finished", "succeeded", report.Succeeded(), "failed", report.Failed())
	return report, nil
}

func (b *Builder) checkConnection(ctx context.Context, report *Report, log *slog.Logger) error {
	b.enter(StateCheckingConnection, report, log)
	resp := b.editor.Status(ctx)
	b.step(report, log, ActionStatus, "", resp)
	if resp.Success() {
		return nil
	}
	b.enter(StateFailed, report, log)
	return fmt.Errorf("%w: %s", ErrNotConnected, resp.ErrorMessage())
}

func (b *Builder) enter(s State, report *Report, log *slog.Logger) {
	b.state = s
	report.Final = s
	log.Debug("state", "state", s.String())
}

func (b *Builder) step(report *Report, log *slog.Logger, action, target string, resp editorclient.Response) {
	b.record(report, log, StepResult{
		Action:  action,
		Target:  target,
		Success: resp.Success(),
		Error:   resp.ErrorMessage(),
	})
}

func (b *Builder) record(report *Report, log *slog.Logger, res StepResult) {
	res.State = b.state
	report.Steps = append(report.Steps, res)

	attrs := []any{"state", res.State.String(), "action", res.Action}
	if res.Target != "" {
		attrs = append(attrs, "target", res.Target)
	}
	if res.Success {
		log.Info("step ok", attrs...)
	} else {
		log.Warn("step failed", append(attrs, "error", res.Error)...)
	}

	if b.onStep != nil {
		b.onStep(res)
	}
}
