package errors

import (
	"fmt"
	"net/http"
)

type NotFoundError struct {
	message string
}

func (v *NotFoundError) Error() string {
	return v.message
}

func (v *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

func NotFoundErrorf(format string, args ...any) *NotFoundError {
	return &NotFoundError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &NotFoundError{}
