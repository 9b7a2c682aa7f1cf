package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
)

type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e HTTPError) Error() string {
	return e.Message
}

func BadRequest(msg string) HTTPError {
	return HTTPError{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

func NotFound(msg string) HTTPError {
	return HTTPError{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

func BadGateway(msg string) HTTPError {
	return HTTPError{
		Code:    http.StatusBadGateway,
		Message: msg,
	}
}

func InternalServerError(msg string) HTTPError {
	return HTTPError{
		Code:    http.StatusInternalServerError,
		Message: msg,
	}
}

func writeError(w http.ResponseWriter, err error) {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = InternalServerError(err.Error())
	}
	writeJSON(w, httpErr.Code, httpErr)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
