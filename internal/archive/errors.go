package archive

import (
	"fmt"
	"net/http"
)

// StatusError is a non 2xx archive response.
type StatusError struct {
	Operation string
	Code      int
	Message   string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("archive %s: status %d", e.Operation, e.Code)
	}
	return fmt.Sprintf("archive %s: status %d: %s", e.Operation, e.Code, e.Message)
}

// Temporary reports whether the request may succeed when repeated.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}
