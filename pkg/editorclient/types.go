package editorclient

// PrimitiveType names a built-in mesh the editor can instantiate.
type PrimitiveType string

// Primitive types understood by the editor.
const (
	PrimitiveCube     PrimitiveType = "Cube"
	PrimitiveSphere   PrimitiveType = "Sphere"
	PrimitiveCapsule  PrimitiveType = "Capsule"
	PrimitiveCylinder PrimitiveType = "Cylinder"
	PrimitivePlane    PrimitiveType = "Plane"
	PrimitiveQuad     PrimitiveType = "Quad"
)

// LightType names a light kind.
type LightType string

// Light types understood by the editor.
const (
	LightPoint       LightType = "Point"
	LightDirectional LightType = "Directional"
	LightSpot        LightType = "Spot"
	LightArea        LightType = "Area"
)

// Vector3 is a position, rotation or scale triple.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Color is an RGBA colour with channels in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a colour with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Transform field names accepted by /api/gameobject/transform.
const (
	FieldX         = "x"
	FieldY         = "y"
	FieldZ         = "z"
	FieldRotationX = "rotationX"
	FieldRotationY = "rotationY"
	FieldRotationZ = "rotationZ"
	FieldScaleX    = "scaleX"
	FieldScaleY    = "scaleY"
	FieldScaleZ    = "scaleZ"
)

// TransformFields is the free-form set of numeric transform fields.
// Keys are sent verbatim; the editor decides which ones it understands.
type TransformFields map[string]float64

// Translate returns position fields.
func Translate(x, y, z float64) TransformFields {
	return TransformFields{FieldX: x, FieldY: y, FieldZ: z}
}

// Rotate returns Euler rotation fields in degrees.
func Rotate(x, y, z float64) TransformFields {
	return TransformFields{FieldRotationX: x, FieldRotationY: y, FieldRotationZ: z}
}

// Scale returns local scale fields.
func Scale(x, y, z float64) TransformFields {
	return TransformFields{FieldScaleX: x, FieldScaleY: y, FieldScaleZ: z}
}

// Merge combines field sets. Later sets win on key collisions.
func Merge(sets ...TransformFields) TransformFields {
	out := make(TransformFields)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}
