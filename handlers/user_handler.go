package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/globalhorizons/backend/auth"
	"github.com/globalhorizons/backend/repository"
)

type UserHandler struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenManager
}

// Login handler: checks credentials and issues a signed admin token
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByUsername(r.Context(), creds.Username)
	if err != nil {
		log.Printf("login failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil {
		writeError(w, http.StatusBadRequest, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid password")
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		log.Printf("login failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	w.Header().Set("Authorization", token)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
