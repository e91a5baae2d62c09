// Package cli provides the command-line interface for scenectl.
//
// Every command except init, mock-editor, config and version talks to a running
// editor through its JSON-over-HTTP control API:
//   - status, info: Check connectivity and show project metadata
//   - list: Show the objects in the open scene
//   - create, delete, transform, color, light: Edit scene objects
//   - select, focus: Drive the editor selection and scene view
//   - screenshot: Capture a camera to an image file
//   - play, stop: Toggle play mode
//   - call: Send a raw request to any control route
//   - build, teardown: Create or remove a whole scene from a layout
//
// Offline commands:
//   - init: Write a scene layout file, optionally through an interactive form
//   - mock-editor: Serve an in-memory stand-in editor for scripts and demos
//   - config: Show the effective configuration and where each value came from
//   - version: Show scenectl version
//
// Single-operation commands exit 1 when the editor answers success=false.
// build and teardown exit 1 only when the editor cannot be reached; later
// step failures are listed in the report.
//
// Usage:
//
//	scenectl status
//	scenectl create Cube_1 --primitive Cube --y 1
//	scenectl transform Cube_1 --set scaleX=2 --set rotationY=45
//	scenectl color Cube_1 1 0 0
//	scenectl list --jsonpath '$.gameObjects[*].name'
//	scenectl delete --match 'Sphere_*'
//	scenectl build --layout scene.yaml
//	scenectl mock-editor --addr :7777
package cli
