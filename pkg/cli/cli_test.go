package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenectl/scenectl/pkg/editorclient"
	"github.com/scenectl/scenectl/pkg/scene"
)

// --- Helpers ---

// outputMode sets the global output flags for one test.
func outputMode(t *testing.T, asJSON bool, path string) {
	t.Helper()
	prevJSON, prevPath := jsonOutput, jsonPath
	jsonOutput, jsonPath = asJSON, path
	t.Cleanup(func() { jsonOutput, jsonPath = prevJSON, prevPath })
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

var listResponse = map[string]any{
	"success": true,
	"gameObjects": []any{
		map[string]any{"name": "Ground", "kind": "gameobject"},
		map[string]any{"name": "Sphere_1", "kind": "gameobject"},
		map[string]any{"name": "Sphere_0", "kind": "gameobject"},
		map[string]any{"name": "MainLight", "kind": "light"},
	},
}

// --- printResponse ---

func TestPrintResponse_Text(t *testing.T) {
	outputMode(t, false, "")
	cmd, buf := testCommand()

	err := printResponse(cmd, editorclient.Response{"success": true}, func(w io.Writer) {
		_, _ = w.Write([]byte("Created Ground\n"))
	})

	require.NoError(t, err)
	assert.Equal(t, "Created Ground\n", buf.String())
}

func TestPrintResponse_TextFailure(t *testing.T) {
	outputMode(t, false, "")
	cmd, buf := testCommand()
	called := false

	err := printResponse(cmd, editorclient.Response{"success": false, "error": "GameObject not found: X"}, func(io.Writer) {
		called = true
	})

	require.ErrorIs(t, err, ErrRemoteFailure)
	assert.Equal(t, "editor reported failure: GameObject not found: X", err.Error())
	assert.False(t, called)
	assert.Empty(t, buf.String())
}

func TestPrintResponse_JSONFailureStillPrints(t *testing.T) {
	outputMode(t, true, "")
	cmd, buf := testCommand()

	err := printResponse(cmd, editorclient.Response{"success": false, "error": "boom"}, nil)

	require.ErrorIs(t, err, ErrRemoteFailure)
	assert.JSONEq(t, `{"success":false,"error":"boom"}`, buf.String())
}

func TestPrintResponse_MissingErrorMessage(t *testing.T) {
	outputMode(t, false, "")
	cmd, _ := testCommand()

	err := printResponse(cmd, editorclient.Response{"status": "odd"}, nil)

	assert.EqualError(t, err, "editor reported failure: no error message")
}

// --- JSONPath ---

func TestPrintJSONPath(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"strings are bare", "$.gameObjects[*].name", "Ground\nSphere_1\nSphere_0\nMainLight\n"},
		{"non-strings are JSON", "$.success", "true\n"},
		{"objects are compact JSON", "$.gameObjects[0]", `{"kind":"gameobject","name":"Ground"}` + "\n"},
		{"no match prints nothing", "$.missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printJSONPath(&buf, listResponse, tt.expr))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintJSONPath_Invalid(t *testing.T) {
	var buf bytes.Buffer
	err := printJSONPath(&buf, listResponse, "$.gameObjects[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSONPath")
}

func TestPrintResult_JSONPathOnStruct(t *testing.T) {
	outputMode(t, false, "$.steps[*].action")
	cmd, buf := testCommand()
	report := &scene.Report{Steps: []scene.StepResult{{Action: "status"}, {Action: "create"}}}

	require.NoError(t, printResult(cmd, report, nil))
	assert.Equal(t, "status\ncreate\n", buf.String())
}

// --- delete --match ---

func TestMatchNames(t *testing.T) {
	got, err := matchNames(listResponse, DefaultNamesPath, "Sphere_*")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sphere_0", "Sphere_1"}, got)

	got, err = matchNames(listResponse, DefaultNamesPath, "{Ground,MainLight}")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ground", "MainLight"}, got)

	got, err = matchNames(listResponse, DefaultNamesPath, "Cube_*")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchNames_CustomPath(t *testing.T) {
	data := map[string]any{"items": []any{map[string]any{"id": "A1"}, map[string]any{"id": "B1"}}}
	got, err := matchNames(data, "$.items[*].id", "A*")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, got)
}

func TestMatchNames_InvalidPattern(t *testing.T) {
	_, err := matchNames(listResponse, DefaultNamesPath, "Sphere_[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

// --- call --data ---

func TestReadPayload(t *testing.T) {
	t.Run("empty means no body", func(t *testing.T) {
		p, err := readPayload(nil, "")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("inline object", func(t *testing.T) {
		p, err := readPayload(nil, `{"name":"Cube","x":1.5}`)
		require.NoError(t, err)
		assert.Equal(t, "Cube", p["name"])
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "body.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"FromFile"}`), 0o600))
		p, err := readPayload(nil, "@"+path)
		require.NoError(t, err)
		assert.Equal(t, "FromFile", p["name"])
	})

	t.Run("from stdin", func(t *testing.T) {
		p, err := readPayload(strings.NewReader(`{"name":"Piped"}`), "@-")
		require.NoError(t, err)
		assert.Equal(t, "Piped", p["name"])
	})

	for _, bad := range []string{`[1,2]`, `null`, `{nope`} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := readPayload(nil, bad)
			assert.Error(t, err)
		})
	}
}

// --- build report ---

func TestStateTitle(t *testing.T) {
	assert.Equal(t, "Building Ground", stateTitle(scene.StateBuildingGround))
	assert.Equal(t, "Checking Connection", stateTitle(scene.StateCheckingConnection))
	assert.Equal(t, "Done", stateTitle(scene.StateDone))
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, "build", &scene.Report{
		Final: scene.StateDone,
		Steps: []scene.StepResult{
			{State: scene.StateCheckingConnection, Action: "status", Success: true},
			{State: scene.StateBuildingGround, Action: "color", Target: "Ground", Error: "material missing"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Checking Connection")
	assert.Contains(t, out, "FAILED: material missing")
	assert.Contains(t, out, "Scene build finished (Done): 1 succeeded, 1 failed")
}

func TestFinishRun_NotConnectedText(t *testing.T) {
	outputMode(t, false, "")
	cmd, buf := testCommand()
	gateErr := scene.ErrNotConnected

	err := finishRun(cmd, "build", &scene.Report{Final: scene.StateFailed}, gateErr)

	assert.True(t, errors.Is(err, scene.ErrNotConnected))
	assert.Empty(t, buf.String())
}

func TestFinishRun_NotConnectedJSON(t *testing.T) {
	outputMode(t, true, "")
	cmd, buf := testCommand()

	err := finishRun(cmd, "build", &scene.Report{RunID: "r1", Final: scene.StateFailed}, scene.ErrNotConnected)

	assert.ErrorIs(t, err, scene.ErrNotConnected)
	assert.Contains(t, buf.String(), `"final": "failed"`)
}

// --- init ---

func TestMarshalLayout_RoundTrips(t *testing.T) {
	l := scene.DefaultLayout()
	l.Ring.Count = 5
	l.Screenshot.Path = "shot.png"

	data, err := marshalLayout(l)
	require.NoError(t, err)

	parsed, err := scene.ParseLayout(data)
	require.NoError(t, err)
	assert.Equal(t, 5, parsed.Ring.Count)
	assert.Equal(t, "shot.png", parsed.Screenshot.Path)
	assert.Equal(t, l.Ground, parsed.Ground)
}

// --- version ---

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "v1.2.0", displayVersion("1.2.0"))
	assert.Equal(t, "v1.2.0", displayVersion("v1.2.0"))
	assert.Equal(t, "dev", displayVersion("dev"))
	assert.Equal(t, "(devel)", displayVersion("(devel)"))
}

func TestBuildVersion(t *testing.T) {
	out := buildVersion()
	assert.NotEmpty(t, out.Go)
	assert.NotEmpty(t, out.OS)
	assert.NotEmpty(t, out.Version)
}

// --- command tree ---

func TestCommandTree(t *testing.T) {
	want := []string{
		"build", "call", "color", "config", "create", "delete", "focus", "info",
		"init", "light", "list", "mock-editor", "play", "screenshot", "select",
		"status", "stop", "teardown", "transform", "version",
	}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
