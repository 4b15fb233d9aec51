package curator

import (
	"errors"
	"net/http"
	"time"

	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/utils"
	"github.com/lib/pq"
)

const maxUploadBytes = 32 << 20

// SubmitHandler files a curator application for the logged-in account.
// Multipart form: first_name, last_name, date_of_birth (YYYY-MM-DD),
// certification, repeated specialties fields, optional certification file.
func SubmitHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	existing, err := store.CountForAccount(principal.AccountID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing > 0 {
		http.Error(w, "Application already submitted", http.StatusConflict)
		return
	}

	app := Application{
		AccountID:     principal.AccountID,
		FirstName:     r.FormValue("first_name"),
		LastName:      r.FormValue("last_name"),
		Certification: r.FormValue("certification"),
		Specialties:   pq.StringArray(r.Form["specialties"]),
		CreatedAt:     time.Now(),
	}

	if dob := r.FormValue("date_of_birth"); dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			http.Error(w, "Invalid date_of_birth, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		app.DateOfBirth = parsed
	}

	file, header, err := r.FormFile("certification_file")
	switch {
	case err == nil:
		defer file.Close()
		path, err := files.Save(r.Context(), header.Filename, file)
		if err != nil {
			identity.WriteError(w, err)
			return
		}
		app.CertificationPath = path
	case errors.Is(err, http.ErrMissingFile):
		// certificate upload is optional at submission time
	default:
		http.Error(w, "Invalid certification upload", http.StatusBadRequest)
		return
	}

	if err := store.Create(&app); err != nil {
		if errors.Is(err, ErrAlreadySubmitted) {
			http.Error(w, "Application already submitted", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to submit application", http.StatusInternalServerError)
		return
	}

	identity.WriteJSON(w, http.StatusCreated, app)
}

// MineHandler lists the logged-in account's own applications.
func MineHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	apps, err := store.ListForAccount(principal.AccountID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	identity.WriteJSON(w, http.StatusOK, apps)
}

// ListHandler returns all applications for review. Admin only.
func ListHandler(w http.ResponseWriter, r *http.Request) {
	apps, err := store.ListAll()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	identity.WriteJSON(w, http.StatusOK, apps)
}
