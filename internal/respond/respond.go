// Package respond writes JSON responses and the uniform error envelope.
package respond

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to encode response: %v", err)
	}
}

// Error writes err as {"success":false,"error":kind,"detail":message}.
// Unclassified errors are logged and reported as a generic server error.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.ServerError || kind == apperr.ProviderError {
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
	}
	JSON(w, apperr.Status(kind), ErrorBody{
		Success: false,
		Error:   string(kind),
		Detail:  apperr.Message(err),
	})
}

// Success is the body of update and delete responses.
func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Created is the body of create responses.
func Created(w http.ResponseWriter, id string) {
	JSON(w, http.StatusCreated, map[string]interface{}{"success": true, "id": id})
}
