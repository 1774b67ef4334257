package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
	"petcare-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Get("/status/{status}", listByStatusHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
		ar.Put("/{id}", updateAppointmentHandler(svc))
		ar.Delete("/{id}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	Pet          string `json:"pet"`
	Owner        string `json:"owner"`
	Veterinarian string `json:"veterinarian"`
	Date         string `json:"date"` // RFC3339 o YYYY-MM-DD
	Reason       string `json:"reason"`
}

type updateAppointmentRequest struct {
	Date   *string `json:"date"`
	Reason *string `json:"reason"`
	Status *Status `json:"status"`
	Notes  *string `json:"notes"`
}

type appointmentResponse struct {
	ID           string      `json:"id"`
	Pet          *pets.Pet   `json:"pet"`
	Owner        *users.User `json:"owner"`
	Veterinarian *users.User `json:"veterinarian"`
	Date         time.Time   `json:"date"`
	Reason       string      `json:"reason"`
	Status       Status      `json:"status"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func toAppointmentResponse(e ExpandedAppointment) appointmentResponse {
	return appointmentResponse{
		ID:           e.ID,
		Pet:          e.Pet,
		Owner:        e.Owner,
		Veterinarian: e.Veterinarian,
		Date:         e.Date,
		Reason:       e.Reason,
		Status:       e.Status,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Filtra por ownerId o veterinarianId; si llegan ambos, gana ownerId.
// @Tags appointments
// @Produce json
// @Param ownerId query string false "Filtrar por dueño"
// @Param veterinarianId query string false "Filtrar por veterinario"
// @Success 200 {array} appointmentResponse
// @Failure 500 {object} object{message=string}
// @Router /api/appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("ownerId"), r.URL.Query().Get("veterinarianId"))
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toAppointmentResponse(e))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func listByStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByStatus(r.Context(), Status(chi.URLParam(r, "status")))
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toAppointmentResponse(e))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		if strings.TrimSpace(req.Date) == "" {
			httpx.Error(w, http.StatusBadRequest, "date is required")
			return
		}
		date, err := httpx.ParseDate(req.Date)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			PetID:          req.Pet,
			OwnerID:        req.Owner,
			VeterinarianID: req.Veterinarian,
			Date:           date,
			Reason:         req.Reason,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAppointmentResponse(e))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			Reason: req.Reason,
			Status: req.Status,
			Notes:  req.Notes,
		}
		if req.Date != nil {
			t, err := httpx.ParseDate(*req.Date)
			if err != nil {
				httpx.Error(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.Date = &t
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.Error(w, http.StatusNotFound, "Appointment not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.Error(w, http.StatusBadRequest, err.Error())
			default:
				httpx.Error(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(e))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Appointment not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Appointment removed"})
	}
}
