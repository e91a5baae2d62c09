// Package mockeditor is an in-process stand-in for the editor's control API.
//
// A Server keeps an in-memory scene, answers every control route with the
// same JSON envelopes the editor uses and journals each request so tests can
// assert the exact call sequence a client produced:
//
//	srv := mockeditor.New()
//	ts := httptest.NewServer(srv)
//	defer ts.Close()
//
//	c := editorclient.New(ts.URL)
//	c.CreateGameObject(ctx, "Ground")
//	srv.Requests() // [{POST /api/gameobject/create {...}}]
//
// The scenectl mock-editor command serves it on a real listener.
package mockeditor
