package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petcare-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoption-requests", func(ar chi.Router) {
		ar.Get("/shelter/{shelterId}", listByShelterHandler(svc))
		ar.Get("/user/{userId}", listByUserHandler(svc))
		ar.Post("/", createRequestHandler(svc))
		ar.Put("/{id}", updateStatusHandler(svc))
		ar.Delete("/{id}", deleteRequestHandler(svc))
	})
}

type createRequestBody struct {
	PetID         string        `json:"petId"`
	RequesterID   string        `json:"requesterId"`
	ShelterID     string        `json:"shelterId"`
	Message       string        `json:"message"`
	RequesterInfo RequesterInfo `json:"requesterInfo"`
}

type updateStatusBody struct {
	Status Status `json:"status"`
}

type requestResponse struct {
	ID            string        `json:"id"`
	Pet           any           `json:"pet"`
	Requester     any           `json:"requester"`
	Shelter       any           `json:"shelter"`
	Status        Status        `json:"status"`
	Message       string        `json:"message"`
	RequesterInfo RequesterInfo `json:"requesterInfo"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// toRequestResponse: referencia expandida => documento (o null si colgante);
// referencia no expandida => id crudo.
func toRequestResponse(e ExpandedRequest, withRequester, withShelter bool) requestResponse {
	resp := requestResponse{
		ID:            e.ID,
		Status:        e.Status,
		Message:       e.Message,
		RequesterInfo: e.RequesterInfo,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	resp.Pet = e.Pet
	if withRequester {
		resp.Requester = e.Requester
	} else {
		resp.Requester = e.RequesterID
	}
	if withShelter {
		resp.Shelter = e.Shelter
	} else {
		resp.Shelter = e.ShelterID
	}
	return resp
}

// listByShelterHandler godoc
// @Summary Solicitudes de adopción de un refugio
// @Tags adoption-requests
// @Produce json
// @Param shelterId path string true "ID del refugio"
// @Success 200 {array} requestResponse
// @Failure 500 {object} object{message=string}
// @Router /api/adoption-requests/shelter/{shelterId} [get]
func listByShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByShelter(r.Context(), chi.URLParam(r, "shelterId"))
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]requestResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toRequestResponse(e, true, false))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func listByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByRequester(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]requestResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toRequestResponse(e, false, true))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			PetID:         req.PetID,
			RequesterID:   req.RequesterID,
			ShelterID:     req.ShelterID,
			Message:       req.Message,
			RequesterInfo: req.RequesterInfo,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toRequestResponse(e, true, true))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		e, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.Error(w, http.StatusNotFound, "Adoption request not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.Error(w, http.StatusBadRequest, err.Error())
			default:
				httpx.Error(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toRequestResponse(e, true, true))
	}
}

func deleteRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Adoption request not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Adoption request deleted"})
	}
}
