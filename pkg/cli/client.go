package cli

import (
	"github.com/scenectl/scenectl/pkg/editorclient"
)

// newEditorClient creates a control API client from the effective configuration.
func newEditorClient() *editorclient.Client {
	return editorclient.New(cfg.ResolvedURL(),
		editorclient.WithTimeout(cfg.TimeoutDuration()),
		editorclient.WithLogger(logger),
	)
}
