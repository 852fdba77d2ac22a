package httpx

import (
	"encoding/json"
	"net/http"
)

// ApiError is the envelope for every non-2xx JSON body.
type ApiError struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ApiError{Message: message})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
