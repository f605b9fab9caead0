package errors

import (
	"fmt"
	"net/http"
)

type ValidationError struct {
	message string
}

func (v *ValidationError) Error() string {
	return v.message
}

func (v *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

func ValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &ValidationError{}
