package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/cli/internal/output"
	"github.com/scenectl/scenectl/pkg/editorclient"
)

// printResult outputs a single operation result.
//
// Contract: when --json or --jsonpath is active, ONLY the JSON encoding of
// data (or the selected parts of it) is written to stdout. textFn is called
// only in text mode.
func printResult(cmd *cobra.Command, data any, textFn func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	switch {
	case jsonPath != "":
		generic, err := toGeneric(data)
		if err != nil {
			return err
		}
		return printJSONPath(out, generic, jsonPath)
	case jsonOutput:
		return output.JSON(out, data)
	default:
		textFn(out)
		return nil
	}
}

// printResponse outputs an editor Response and turns success=false into
// ErrRemoteFailure. In text mode failures print nothing; the error is
// reported by the caller.
func printResponse(cmd *cobra.Command, resp editorclient.Response, textFn func(w io.Writer)) error {
	if !resp.Success() && jsonPath == "" && !jsonOutput {
		return remoteError(resp)
	}
	if err := printResult(cmd, map[string]any(resp), textFn); err != nil {
		return err
	}
	if !resp.Success() {
		return remoteError(resp)
	}
	return nil
}

// printJSONPath writes every value selected by expr, one per line.
// Strings are written bare, everything else as compact JSON.
func printJSONPath(w io.Writer, data any, expr string) error {
	results, err := selectJSONPath(data, expr)
	if err != nil {
		return err
	}
	for _, r := range results {
		if s, ok := r.(string); ok {
			fmt.Fprintln(w, s)
			continue
		}
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	}
	return nil
}

func selectJSONPath(data any, expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}
	return x.Get(data), nil
}

// toGeneric converts typed values into the map/slice form JSONPath works on.
func toGeneric(v any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
