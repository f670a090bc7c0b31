package handler

import (
	"net/http"
)

// HandleNotFound answers unknown routes with the JSON envelope and the path
func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, ErrorResponse{OK: false, Error: ErrMsgNotFound, Path: r.URL.Path})
	}
}

// HandleMethodNotAllowed answers known routes called with the wrong method
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{OK: false, Error: ErrMsgMethodNotAllowed, Path: r.URL.Path})
	}
}
