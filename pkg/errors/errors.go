package errors

import "fmt"

// HTTPError is an error carrying the HTTP status code it should map to.
// Delivery layers translate domain errors into HTTPError via mapError.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
