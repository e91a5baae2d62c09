// Package editorclient is an HTTP client for the editor's JSON control API.
//
// Every operation goes through Client.Send, which turns a method, path and
// optional payload into a Response. Transport faults never escape Send: they
// come back as a Response with success set to false and an error of the form
// "Cannot connect to <base url>: <cause>". Callers therefore branch on a
// single field:
//
//	c := editorclient.New("http://localhost:7777")
//	resp := c.CreateGameObject(ctx, "Ground", editorclient.At(0, -0.5, 0))
//	if !resp.Success() {
//	    log.Printf("create failed: %s", resp.ErrorMessage())
//	}
//
// The client holds no model of the remote scene. Entity identity and
// existence are owned by the editor.
package editorclient
