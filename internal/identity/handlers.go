package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/CuratorSpace/CS-Backend/internal/utils"
)

func sessionCookie(value string, expires time.Time, secure bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		// Cross-site frontends need SameSite=None, which requires Secure.
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	return cookie
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	acct, err := svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, acct)
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Username   string `json:"username"`
		Password   string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Data", http.StatusBadRequest)
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}

	acct, sess, err := svc.Login(identifier, req.Password)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrBadCredentials) {
			// The reasons stay distinct in the log only; a uniform response
			// avoids telling callers which accounts exist.
			log.Printf("login rejected for %q: %v", identifier, err)
			http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
			return
		}
		WriteError(w, err)
		return
	}

	http.SetCookie(w, sessionCookie(sess.SessionID, sess.ExpiresAt, svc.cfg.SecureCookies))
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"account_id": acct.ID,
		"username":   acct.Username,
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "Couldn't find cookie", http.StatusUnauthorized)
		return
	}

	if err := svc.Logout(cookie.Value); err != nil {
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "session_id",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Logout successful")
}

// MeHandler answers from the session snapshot; no store query.
func MeHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"account_id":  principal.AccountID,
		"username":    principal.Username,
		"email":       principal.Email,
		"role":        principal.Role,
		"avatar_path": principal.AvatarPath,
	})
}

func CheckUsernameHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		http.Error(w, "Missing username param", http.StatusBadRequest)
		return
	}

	available, err := svc.UsernameAvailable(username)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func CheckEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email param", http.StatusBadRequest)
		return
	}

	available, err := svc.EmailAvailable(email)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"available": available})
}
