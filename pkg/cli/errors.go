package cli

import (
	"errors"
	"fmt"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

// ErrRemoteFailure is returned when the editor answers success=false.
var ErrRemoteFailure = errors.New("editor reported failure")

func remoteError(resp editorclient.Response) error {
	msg := resp.ErrorMessage()
	if msg == "" {
		msg = "no error message"
	}
	return fmt.Errorf("%w: %s", ErrRemoteFailure, msg)
}
