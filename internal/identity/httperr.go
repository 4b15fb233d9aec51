package identity

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/CuratorSpace/CS-Backend/internal/storage"
)

// WriteError renders a domain error. Validation problems come back as JSON
// {field, reason}; everything else is a plain-text status.
func WriteError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		status := http.StatusBadRequest
		if ve.Reason == ReasonTaken {
			status = http.StatusConflict
		}
		WriteJSON(w, status, ve)
		return
	}

	var se *storage.StorageError
	if errors.As(err, &se) {
		log.Printf("storage failure: %v", se)
		http.Error(w, "Failed to store file", http.StatusInternalServerError)
		return
	}

	switch {
	case errors.Is(err, ErrAccountNotFound):
		http.Error(w, "Account not found", http.StatusNotFound)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		log.Printf("unexpected error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
