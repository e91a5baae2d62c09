// Package scene builds a procedural demo scene through the editor control API.
//
// A Builder walks a fixed state machine:
//
//	start -> checking-connection -> failed
//	                             -> building-ground -> building-ring
//	                                -> adding-light -> selecting-focus
//	                                -> [capturing-screenshot] -> done
//
// The connectivity check is the only fatal step. Every later step is
// attempted even if an earlier one failed, and nothing is rolled back;
// Teardown is the explicit compensating action.
//
// Ring placement and colours are pure functions of the entity index, so the
// same Layout always produces the same scene.
package scene
