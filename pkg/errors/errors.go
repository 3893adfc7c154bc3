package errors

// HTTPError carries an HTTP status code alongside a client-facing message.
// Delivery layers map domain errors into these; the response package renders
// them without leaking internals.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code to respond with.
func (e *HTTPError) StatusCode() int {
	return e.Code
}
