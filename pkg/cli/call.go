package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

var callData string

var callCmd = &cobra.Command{
	Use:   "call METHOD PATH",
	Short: "Send a raw request to a control API route",
	Long: `Send a raw request to a control API route and print the response.

--data takes a JSON object, or @FILE to read it from a file ("@-" reads stdin).
The body is only sent for non-GET requests.`,
	Example: `  scenectl call GET /api/status
  scenectl call POST /api/gameobject/create --data '{"name":"Cube","primitiveType":"Cube"}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := strings.ToUpper(args[0])
		path := args[1]
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("path %q must start with /", path)
		}

		payload, err := readPayload(cmd.InOrStdin(), callData)
		if err != nil {
			return err
		}
		if payload != nil && method == http.MethodGet {
			return errors.New("--data is not sent with GET requests")
		}

		resp := newEditorClient().Send(cmd.Context(), method, path, payload)
		return printResponse(cmd, resp, func(w io.Writer) {
			printFields(w, resp)
		})
	},
}

// readPayload decodes --data into a Payload. An empty value means no body.
func readPayload(stdin io.Reader, data string) (editorclient.Payload, error) {
	if data == "" {
		return nil, nil
	}

	raw := []byte(data)
	if name, ok := strings.CutPrefix(data, "@"); ok {
		var err error
		if name == "-" {
			raw, err = io.ReadAll(stdin)
		} else {
			raw, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload editorclient.Payload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("payload must be a JSON object: %w", err)
	}
	if payload == nil {
		return nil, errors.New("payload must be a JSON object, got null")
	}
	return payload, nil
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringVarP(&callData, "data", "d", "", "JSON object body, or @FILE")
}
