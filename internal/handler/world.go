package handler

import (
	"net/http"

	"github.com/osse101/QuestBot_Go/internal/game"
)

// HandleListLocations handles GET /world/locations
func HandleListLocations(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: newLocationViews(svc.Locations())})
	}
}

// HandleListItems handles GET /world/items
func HandleListItems(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: newItemViews(svc.Items())})
	}
}
