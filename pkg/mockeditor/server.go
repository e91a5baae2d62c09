package mockeditor

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/scenectl/scenectl/internal/storage"
	"github.com/scenectl/scenectl/pkg/editorclient"
	"github.com/scenectl/scenectl/pkg/httputil"
	"github.com/scenectl/scenectl/pkg/logging"
)

// Request is one journaled call.
type Request struct {
	Method    string         `json:"method"`
	Path      string         `json:"path"`
	RequestID string         `json:"requestId,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Capture is a recorded screenshot request.
type Capture struct {
	Path   string `json:"path"`
	Camera string `json:"cameraName"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ProjectInfo is returned by the project info route.
type ProjectInfo struct {
	ProjectName   string `json:"projectName"`
	EditorVersion string `json:"editorVersion"`
	Platform      string `json:"platform"`
	DataPath      string `json:"dataPath"`
}

// DefaultProjectInfo describes the stand-in project.
func DefaultProjectInfo() ProjectInfo {
	return ProjectInfo{
		ProjectName:   "SceneDemo",
		EditorVersion: "mock-1.0",
		Platform:      "StandaloneLinux64",
		DataPath:      "/projects/SceneDemo/Assets",
	}
}

// Server implements http.Handler for the editor control API.
type Server struct {
	mu       sync.Mutex
	store    storage.EntityStore
	journal  []Request
	captures []Capture
	failures map[string]string
	selected string
	playing  bool
	nextID   int
	project  ProjectInfo
	started  time.Time
	logger   *slog.Logger
	mux      *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProjectInfo overrides the project info payload.
func WithProjectInfo(info ProjectInfo) Option {
	return func(s *Server) {
		s.project = info
	}
}

// WithFailure makes every request to path fail with message.
func WithFailure(path, message string) Option {
	return func(s *Server) {
		s.failures[path] = message
	}
}

// New creates a Server with an empty scene.
func New(opts ...Option) *Server {
	s := &Server{
		store:    storage.NewInMemoryEntityStore(),
		failures: make(map[string]string),
		project:  DefaultProjectInfo(),
		started:  time.Now(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mux = s.routes()
	return s
}

type route struct {
	method  string
	path    string
	handler func(s *Server, w http.ResponseWriter, payload map[string]any)
}

var routeTable = []route{
	{http.MethodGet, editorclient.PathStatus, (*Server).handleStatus},
	{http.MethodGet, editorclient.PathProjectInfo, (*Server).handleProjectInfo},
	{http.MethodPost, editorclient.PathCreateObject, (*Server).handleCreate},
	{http.MethodPost, editorclient.PathDeleteObject, (*Server).handleDelete},
	{http.MethodPost, editorclient.PathTransform, (*Server).handleTransform},
	{http.MethodGet, editorclient.PathListObjects, (*Server).handleList},
	{http.MethodPost, editorclient.PathMaterialColor, (*Server).handleColor},
	{http.MethodPost, editorclient.PathCreateLight, (*Server).handleLight},
	{http.MethodPost, editorclient.PathScreenshot, (*Server).handleScreenshot},
	{http.MethodPost, editorclient.PathSelectObject, (*Server).handleSelect},
	{http.MethodPost, editorclient.PathFocusSelected, (*Server).handleFocus},
	{http.MethodPost, editorclient.PathScenePlay, (*Server).handlePlay},
	{http.MethodPost, editorclient.PathSceneStop, (*Server).handleStop},
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	known := make(map[string]string, len(routeTable))
	for _, rt := range routeTable {
		known[rt.path] = rt.method
		mux.HandleFunc(rt.method+" "+rt.path, s.wrap(rt.handler))
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("unmatched request", "method", r.Method, "path", r.URL.Path)
		if method, ok := known[r.URL.Path]; ok {
			httputil.WriteMethodNotAllowed(w, method)
			return
		}
		httputil.WriteNotFound(w, "Unknown endpoint: "+r.URL.Path)
	})
	return mux
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) wrap(h func(*Server, http.ResponseWriter, map[string]any)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if r.Method != http.MethodGet {
			p, err := httputil.DecodeObject(r.Body)
			if err != nil {
				s.logger.Debug("bad request body", "path", r.URL.Path, "error", err)
				httputil.WriteBadRequest(w, "Invalid JSON: "+err.Error())
				return
			}
			payload = p
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		s.journal = append(s.journal, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: r.Header.Get(editorclient.RequestIDHeader),
			Payload:   payload,
		})
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path)

		if msg, ok := s.failures[r.URL.Path]; ok {
			httputil.WriteFailure(w, http.StatusInternalServerError, msg)
			return
		}
		h(s, w, payload)
	}
}

// Requests returns a copy of the request journal.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.journal))
	copy(out, s.journal)
	return out
}

// Entities returns the scene contents in creation order.
func (s *Server) Entities() []*storage.Entity {
	return s.store.List()
}

// Entity returns the named entity, or nil.
func (s *Server) Entity(name string) *storage.Entity {
	return s.store.Get(name)
}

// Captures returns the screenshots taken so far.
func (s *Server) Captures() []Capture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Capture, len(s.captures))
	copy(out, s.captures)
	return out
}

// Selected returns the name of the selected entity.
func (s *Server) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Playing reports whether play mode is on.
func (s *Server) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// SetFailure makes requests to path fail with message. An empty message
// clears the failure.
func (s *Server) SetFailure(path, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == "" {
		delete(s.failures, path)
		return
	}
	s.failures[path] = message
}

// Reset empties the scene and the journal.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
	s.journal = nil
	s.captures = nil
	s.selected = ""
	s.playing = false
}

// --- Handlers ---
// Handlers run with s.mu held.

func (s *Server) handleStatus(w http.ResponseWriter, _ map[string]any) {
	httputil.WriteSuccess(w, map[string]any{
		"status":        "running",
		"editorVersion": s.project.EditorVersion,
		"isPlaying":     s.playing,
		"objectCount":   s.store.Count(),
		"uptimeSeconds": int(time.Since(s.started).Seconds()),
	})
}

func (s *Server) handleProjectInfo(w http.ResponseWriter, _ map[string]any) {
	httputil.WriteSuccess(w, map[string]any{
		"projectName":   s.project.ProjectName,
		"editorVersion": s.project.EditorVersion,
		"platform":      s.project.Platform,
		"dataPath":      s.project.DataPath,
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, p map[string]any) {
	name, ok := requireName(w, p, "name")
	if !ok {
		return
	}
	prim := editorclient.PrimitiveType(stringField(p, "primitiveType", string(editorclient.PrimitiveCube)))
	if !validPrimitive(prim) {
		httputil.WriteBadRequest(w, "Unknown primitive type: "+string(prim))
		return
	}
	pos, err := vectorFields(p, editorclient.FieldX, editorclient.FieldY, editorclient.FieldZ, editorclient.Vector3{})
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	e := &storage.Entity{
		Name:      name,
		Kind:      storage.KindGameObject,
		Primitive: string(prim),
		Position:  pos,
		Scale:     editorclient.Vector3{X: 1, Y: 1, Z: 1},
	}
	s.insert(w, e, "GameObject")
}

func (s *Server) handleLight(w http.ResponseWriter, p map[string]any) {
	name, ok := requireName(w, p, "name")
	if !ok {
		return
	}
	lt := editorclient.LightType(stringField(p, "type", string(editorclient.LightPoint)))
	if !validLight(lt) {
		httputil.WriteBadRequest(w, "Unknown light type: "+string(lt))
		return
	}
	pos, err := vectorFields(p, editorclient.FieldX, editorclient.FieldY, editorclient.FieldZ, editorclient.Vector3{})
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	e := &storage.Entity{
		Name:      name,
		Kind:      storage.KindLight,
		LightType: string(lt),
		Position:  pos,
		Scale:     editorclient.Vector3{X: 1, Y: 1, Z: 1},
	}
	s.insert(w, e, "Light")
}

func (s *Server) insert(w http.ResponseWriter, e *storage.Entity, label string) {
	if err := s.store.Create(e); err != nil {
		if errors.Is(err, storage.ErrExists) {
			httputil.WriteConflict(w, fmt.Sprintf("%s already exists: %s", label, e.Name))
			return
		}
		httputil.WriteFailure(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.nextID++
	httputil.WriteSuccess(w, map[string]any{
		"name":       e.Name,
		"instanceId": s.nextID,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, p map[string]any) {
	name, ok := requireName(w, p, "name")
	if !ok {
		return
	}
	if !s.store.Delete(name) {
		httputil.WriteNotFound(w, "GameObject not found: "+name)
		return
	}
	if s.selected == name {
		s.selected = ""
	}
	httputil.WriteSuccess(w, map[string]any{"name": name})
}

func (s *Server) handleTransform(w http.ResponseWriter, p map[string]any) {
	name, ok := requireName(w, p, "name")
	if !ok {
		return
	}
	current := s.store.Get(name)
	if current == nil {
		httputil.WriteNotFound(w, "GameObject not found: "+name)
		return
	}

	pos, err := vectorFields(p, editorclient.FieldX, editorclient.FieldY, editorclient.FieldZ, current.Position)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	rot, err := vectorFields(p, editorclient.FieldRotationX, editorclient.FieldRotationY, editorclient.FieldRotationZ, current.Rotation)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	scale, err := vectorFields(p, editorclient.FieldScaleX, editorclient.FieldScaleY, editorclient.FieldScaleZ, current.Scale)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	_ = s.store.Update(name, func(e *storage.Entity) {
		e.Position, e.Rotation, e.Scale = pos, rot, scale
	})
	httputil.WriteSuccess(w, map[string]any{
		"name":     name,
		"position": pos,
		"rotation": rot,
		"scale":    scale,
	})
}

func (s *Server) handleList(w http.ResponseWriter, _ map[string]any) {
	entities := s.store.List()
	httputil.WriteSuccess(w, map[string]any{
		"gameObjects": entities,
		"count":       len(entities),
	})
}

func (s *Server) handleColor(w http.ResponseWriter, p map[string]any) {
	name, ok := requireName(w, p, "gameObjectName")
	if !ok {
		return
	}
	if !s.store.Exists(name) {
		httputil.WriteNotFound(w, "GameObject not found: "+name)
		return
	}

	var (
		c    editorclient.Color
		errs []error
	)
	c.R, errs = channel(p, "r", 0, errs)
	c.G, errs = channel(p, "g", 0, errs)
	c.B, errs = channel(p, "b", 0, errs)
	c.A, errs = channel(p, "a", 1, errs)
	if err := errors.Join(errs...); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	_ = s.store.Update(name, func(e *storage.Entity) {
		e.Color = &c
	})
	httputil.WriteSuccess(w, map[string]any{
		"gameObjectName": name,
		"color":          c,
	})
}

func (s *Server) handleScreenshot(w http.ResponseWriter, p map[string]any) {
	path := stringField(p, "path", "")
	if path == "" {
		httputil.WriteBadRequest(w, "path is required")
		return
	}
	camera := stringField(p, "cameraName", editorclient.DefaultCameraName)
	if camera != editorclient.DefaultCameraName && !s.store.Exists(camera) {
		httputil.WriteNotFound(w, "Camera not found: "+camera)
		return
	}
	width, errW := intField(p, "width", editorclient.DefaultScreenWidth)
	height, errH := intField(p, "height", editorclient.DefaultScreenHeight)
	if err := errors.Join(errW, errH); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	if width <= 0 || height <= 0 {
		httputil.WriteBadRequest(w, fmt.Sprintf("invalid resolution %dx%d", width, height))
		return
	}

	s.captures = append(s.captures, Capture{Path: path, Camera: camera, Width: width, Height: height})
	httputil.WriteSuccess(w, map[string]any{
		"path":   path,
		"width":  width,
		"height": height,
	})
}

func (s *Server) handleSelect(w http.ResponseWriter, p map[string]any) {
	name, ok := requireName(w, p, "name")
	if !ok {
		return
	}
	if !s.store.Exists(name) {
		httputil.WriteNotFound(w, "GameObject not found: "+name)
		return
	}
	s.selected = name
	httputil.WriteSuccess(w, map[string]any{"selected": name})
}

func (s *Server) handleFocus(w http.ResponseWriter, _ map[string]any) {
	if s.selected == "" {
		httputil.WriteBadRequest(w, "No GameObject selected")
		return
	}
	httputil.WriteSuccess(w, map[string]any{"focused": s.selected})
}

func (s *Server) handlePlay(w http.ResponseWriter, _ map[string]any) {
	s.playing = true
	httputil.WriteSuccess(w, map[string]any{"isPlaying": true})
}

func (s *Server) handleStop(w http.ResponseWriter, _ map[string]any) {
	s.playing = false
	httputil.WriteSuccess(w, map[string]any{"isPlaying": false})
}

// --- Payload helpers ---

func requireName(w http.ResponseWriter, p map[string]any, key string) (string, bool) {
	name := stringField(p, key, "")
	if name == "" {
		httputil.WriteBadRequest(w, key+" is required")
		return "", false
	}
	return name, true
}

func stringField(p map[string]any, key, def string) string {
	if v, ok := p[key].(string); ok && v != "" {
		return v
	}
	return def
}

func floatField(p map[string]any, key string, def float64) (float64, error) {
	raw, ok := p[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return f, nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
}

func intField(p map[string]any, key string, def int) (int, error) {
	f, err := floatField(p, key, float64(def))
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return int(f), nil
}

func vectorFields(p map[string]any, kx, ky, kz string, def editorclient.Vector3) (editorclient.Vector3, error) {
	x, ex := floatField(p, kx, def.X)
	y, ey := floatField(p, ky, def.Y)
	z, ez := floatField(p, kz, def.Z)
	if err := errors.Join(ex, ey, ez); err != nil {
		return editorclient.Vector3{}, err
	}
	return editorclient.Vector3{X: x, Y: y, Z: z}, nil
}

func channel(p map[string]any, key string, def float64, errs []error) (float64, []error) {
	v, err := floatField(p, key, def)
	if err != nil {
		return 0, append(errs, err)
	}
	if v < 0 || v > 1 {
		return 0, append(errs, fmt.Errorf("%s must be between 0 and 1", key))
	}
	return v, errs
}

func validPrimitive(p editorclient.PrimitiveType) bool {
	switch p {
	case editorclient.PrimitiveCube, editorclient.PrimitiveSphere, editorclient.PrimitiveCapsule,
		editorclient.PrimitiveCylinder, editorclient.PrimitivePlane, editorclient.PrimitiveQuad:
		return true
	}
	return false
}

func validLight(t editorclient.LightType) bool {
	switch t {
	case editorclient.LightPoint, editorclient.LightDirectional, editorclient.LightSpot, editorclient.LightArea:
		return true
	}
	return false
}
