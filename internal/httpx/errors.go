package httpx

import (
	"errors"
	"log"
	"net/http"

	"bookshelf/internal/apperr"
)

// StatusCode maps an error to an HTTP status. Unclassified errors and the
// store/import kinds are server faults.
func StatusCode(err error) int {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			return http.StatusBadRequest
		case apperr.KindAuth:
			return http.StatusUnauthorized
		case apperr.KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// WriteError is the single point converting taxonomy errors into HTTP
// responses. Server faults are logged with detail and answered with a generic
// message; client faults echo their message and are not logged as faults.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := StatusCode(err)

	switch {
	case statusCode == http.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	case statusCode >= http.StatusInternalServerError:
		log.Printf("request failed method=%s path=%s request_id=%s error=%v",
			r.Method, r.URL.Path, RequestIDFrom(r), err)
		JSONError(w, statusCode, "internal server error")
	default:
		message := "bad request"
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Message != "" {
			message = ae.Message
		}
		JSONError(w, statusCode, message)
	}
}
