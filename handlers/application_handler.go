package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/globalhorizons/backend/models"
	"github.com/globalhorizons/backend/repository"
)

type ApplicationHandler struct {
	Repo repository.ApplicationRepository
}

// Apply handler: accepts a submission and stores it verbatim
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var app models.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	id, err := h.Repo.CreateApplication(r.Context(), &app)
	if err != nil {
		log.Printf("failed to submit application: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit application")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Application submitted successfully",
		"id":      id,
	})
}

// List handler: all applications, newest first (admin only, guarded upstream)
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Repo.ListApplications(r.Context())
	if err != nil {
		log.Printf("failed to fetch applications: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	writeJSON(w, http.StatusOK, apps)
}
