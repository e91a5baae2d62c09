package editorclient

import (
	"context"
	"net/http"
)

// Control API paths.
const (
	PathStatus        = "/api/status"
	PathProjectInfo   = "/api/project/info"
	PathCreateObject  = "/api/gameobject/create"
	PathDeleteObject  = "/api/gameobject/delete"
	PathTransform     = "/api/gameobject/transform"
	PathListObjects   = "/api/gameobject/list"
	PathMaterialColor = "/api/material/color"
	PathCreateLight   = "/api/light/create"
	PathScreenshot    = "/api/camera/screenshot"
	PathSelectObject  = "/api/selection/gameobject"
	PathFocusSelected = "/api/selection/focus"
	PathScenePlay     = "/api/scene/play"
	PathSceneStop     = "/api/scene/stop"
)

// Screenshot defaults.
const (
	DefaultCameraName   = "Main Camera"
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
)

// Status checks that the editor is reachable and its control API is up.
func (c *Client) Status(ctx context.Context) Response {
	return c.Send(ctx, http.MethodGet, PathStatus, nil)
}

// ProjectInfo returns project metadata.
func (c *Client) ProjectInfo(ctx context.Context) Response {
	return c.Send(ctx, http.MethodGet, PathProjectInfo, nil)
}

type createParams struct {
	primitive PrimitiveType
	position  Vector3
}

// CreateOption customises CreateGameObject.
type CreateOption func(*createParams)

// WithPrimitive selects the mesh. Defaults to Cube.
func WithPrimitive(p PrimitiveType) CreateOption {
	return func(cp *createParams) {
		cp.primitive = p
	}
}

// At sets the initial position. Defaults to the origin.
func At(x, y, z float64) CreateOption {
	return func(cp *createParams) {
		cp.position = Vector3{X: x, Y: y, Z: z}
	}
}

// CreateGameObject instantiates a primitive named name.
func (c *Client) CreateGameObject(ctx context.Context, name string, opts ...CreateOption) Response {
	p := createParams{primitive: PrimitiveCube}
	for _, opt := range opts {
		opt(&p)
	}
	return c.Send(ctx, http.MethodPost, PathCreateObject, Payload{
		"name":          name,
		"primitiveType": string(p.primitive),
		"x":             p.position.X,
		"y":             p.position.Y,
		"z":             p.position.Z,
	})
}

// DeleteGameObject removes the named object.
func (c *Client) DeleteGameObject(ctx context.Context, name string) Response {
	return c.Send(ctx, http.MethodPost, PathDeleteObject, Payload{"name": name})
}

// Transform merges fields into the payload for the named object.
func (c *Client) Transform(ctx context.Context, name string, fields TransformFields) Response {
	payload := make(Payload, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["name"] = name
	return c.Send(ctx, http.MethodPost, PathTransform, payload)
}

// ListGameObjects returns the objects in the open scene.
func (c *Client) ListGameObjects(ctx context.Context) Response {
	return c.Send(ctx, http.MethodGet, PathListObjects, nil)
}

// SetColor sets the material colour of the named object.
// Use RGB for an opaque colour.
func (c *Client) SetColor(ctx context.Context, gameObjectName string, color Color) Response {
	return c.Send(ctx, http.MethodPost, PathMaterialColor, Payload{
		"gameObjectName": gameObjectName,
		"r":              color.R,
		"g":              color.G,
		"b":              color.B,
		"a":              color.A,
	})
}

type lightParams struct {
	kind     LightType
	position Vector3
}

// LightOption customises CreateLight.
type LightOption func(*lightParams)

// WithLightType selects the light kind. Defaults to Point.
func WithLightType(t LightType) LightOption {
	return func(lp *lightParams) {
		lp.kind = t
	}
}

// LightAt sets the light position. Defaults to (0, 3, 0).
func LightAt(x, y, z float64) LightOption {
	return func(lp *lightParams) {
		lp.position = Vector3{X: x, Y: y, Z: z}
	}
}

// CreateLight adds a light named name.
func (c *Client) CreateLight(ctx context.Context, name string, opts ...LightOption) Response {
	p := lightParams{
		kind:     LightPoint,
		position: Vector3{X: 0, Y: 3, Z: 0},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return c.Send(ctx, http.MethodPost, PathCreateLight, Payload{
		"name": name,
		"type": string(p.kind),
		"x":    p.position.X,
		"y":    p.position.Y,
		"z":    p.position.Z,
	})
}

type screenshotParams struct {
	camera string
	width  int
	height int
}

// ScreenshotOption customises Screenshot.
type ScreenshotOption func(*screenshotParams)

// WithCamera renders from the named camera. Defaults to "Main Camera".
func WithCamera(name string) ScreenshotOption {
	return func(sp *screenshotParams) {
		sp.camera = name
	}
}

// WithResolution sets the output size. Defaults to 1920x1080.
func WithResolution(width, height int) ScreenshotOption {
	return func(sp *screenshotParams) {
		sp.width = width
		sp.height = height
	}
}

// Screenshot renders a camera to path, relative to the editor project.
func (c *Client) Screenshot(ctx context.Context, path string, opts ...ScreenshotOption) Response {
	p := screenshotParams{
		camera: DefaultCameraName,
		width:  DefaultScreenWidth,
		height: DefaultScreenHeight,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return c.Send(ctx, http.MethodPost, PathScreenshot, Payload{
		"cameraName": p.camera,
		"path":       path,
		"width":      p.width,
		"height":     p.height,
	})
}

// Select makes the named object the editor selection.
func (c *Client) Select(ctx context.Context, name string) Response {
	return c.Send(ctx, http.MethodPost, PathSelectObject, Payload{"name": name})
}

// FocusSelected frames the current selection in the scene view.
func (c *Client) FocusSelected(ctx context.Context) Response {
	return c.Send(ctx, http.MethodPost, PathFocusSelected, nil)
}

// Play enters play mode.
func (c *Client) Play(ctx context.Context) Response {
	return c.Send(ctx, http.MethodPost, PathScenePlay, nil)
}

// Stop leaves play mode.
func (c *Client) Stop(ctx context.Context) Response {
	return c.Send(ctx, http.MethodPost, PathSceneStop, nil)
}
