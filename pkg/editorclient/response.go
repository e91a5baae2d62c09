package editorclient

// Envelope field names shared by every control API response.
const (
	FieldSuccess = "success"
	FieldError   = "error"
)

// Payload is the flat JSON object sent as a request body.
type Payload map[string]any

// Response is a decoded control API response.
// Fields other than success and error are operation specific and passed
// through untouched.
type Response map[string]any

// Success reports whether the editor flagged the operation as successful.
// A missing or non-boolean success field counts as failure.
func (r Response) Success() bool {
	ok, _ := r[FieldSuccess].(bool)
	return ok
}

// ErrorMessage returns the error string carried by a failed response.
func (r Response) ErrorMessage() string {
	msg, _ := r[FieldError].(string)
	return msg
}

// failure builds a Response in the same shape the editor uses for errors.
func failure(msg string) Response {
	return Response{
		FieldSuccess: false,
		FieldError:   msg,
	}
}
