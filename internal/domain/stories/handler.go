package stories

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petcare-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/success-stories", func(sr chi.Router) {
		sr.Get("/", listAllHandler(svc))
		sr.Get("/shelter/{shelterId}", listByShelterHandler(svc))
		sr.Post("/", createStoryHandler(svc))
		sr.Put("/{id}", updateStoryHandler(svc))
		sr.Delete("/{id}", deleteStoryHandler(svc))
	})
}

type createStoryRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PetID       string   `json:"petId"`
	AdopterID   string   `json:"adopterId"`
	ShelterID   string   `json:"shelterId"`
	Images      []string `json:"images"`
}

type updateStoryRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
}

type storyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Pet         any       `json:"pet"`
	Adopter     any       `json:"adopter"`
	Shelter     any       `json:"shelter"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toStoryResponse(e ExpandedStory, withShelter bool) storyResponse {
	resp := storyResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Images:      e.Images,
		CreatedAt:   e.CreatedAt,
	}
	resp.Pet = e.Pet
	resp.Adopter = e.Adopter
	if withShelter {
		resp.Shelter = e.Shelter
	} else {
		resp.Shelter = e.ShelterID
	}
	return resp
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]storyResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toStoryResponse(e, true))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func listByShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByShelter(r.Context(), chi.URLParam(r, "shelterId"))
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]storyResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toStoryResponse(e, false))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createStoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createStoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			Title:       req.Title,
			Description: req.Description,
			PetID:       req.PetID,
			AdopterID:   req.AdopterID,
			ShelterID:   req.ShelterID,
			Images:      req.Images,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toStoryResponse(e, true))
	}
}

func updateStoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Title:       req.Title,
			Description: req.Description,
			Images:      req.Images,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Success story not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toStoryResponse(e, true))
	}
}

func deleteStoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Success story not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Success story deleted"})
	}
}
