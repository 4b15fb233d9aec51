package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 32 << 20

func accountID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "accountID"), 10, 64)
	return uint(id), err
}

func ViewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		http.Error(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	acct, err := svc.View(id)
	if err != nil {
		identity.WriteError(w, err)
		return
	}
	identity.WriteJSON(w, http.StatusOK, acct)
}

// EditHandler accepts a multipart form: username, email, optional password,
// optional avatar file part.
func EditHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	id, err := accountID(r)
	if err != nil {
		http.Error(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	req := EditRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	file, header, err := r.FormFile("avatar")
	switch {
	case err == nil:
		defer file.Close()
		req.Avatar = &Upload{Name: header.Filename, Data: file}
	case errors.Is(err, http.ErrMissingFile):
		// no avatar replacement
	default:
		http.Error(w, "Invalid avatar upload", http.StatusBadRequest)
		return
	}

	acct, err := svc.Edit(r.Context(), principal, id, req)
	if err != nil {
		identity.WriteError(w, err)
		return
	}
	identity.WriteJSON(w, http.StatusOK, acct)
}

func ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	id, err := accountID(r)
	if err != nil {
		http.Error(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Current and new password are required", http.StatusBadRequest)
		return
	}

	if err := svc.ChangePassword(principal, id, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		identity.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Password updated")
}
