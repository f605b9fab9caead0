package errors

import (
	"fmt"
	"net/http"
)

// UpstreamError reports a failed call to the toolkit service: a network
// error or a non-success HTTP status. None are retried.
type UpstreamError struct {
	message string
}

func (v *UpstreamError) Error() string {
	return v.message
}

func (v *UpstreamError) StatusCode() int {
	return http.StatusBadGateway
}

func UpstreamErrorf(format string, args ...any) *UpstreamError {
	return &UpstreamError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &UpstreamError{}
