package errors

import (
	stderrors "errors"
	"net/http"
)

type statusCoder interface {
	StatusCode() int
}

// StatusOf maps an error to its HTTP status. Errors outside the taxonomy
// default to 500.
func StatusOf(err error) int {
	var sc statusCoder
	if stderrors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}
