package errors

import (
	"fmt"
	"net/http"
)

type InternalError struct {
	message string
}

func (v *InternalError) Error() string {
	return v.message
}

func (v *InternalError) StatusCode() int {
	return http.StatusInternalServerError
}

func InternalErrorf(format string, args ...any) *InternalError {
	return &InternalError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &InternalError{}
