package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petcare-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/veterinarian-availability", func(vr chi.Router) {
		vr.Post("/", createWindowHandler(svc))
		// La ruta literal va antes que el wildcard {vetId}.
		vr.Get("/available/{date}/{time}", findAvailableHandler(svc))
		vr.Get("/{vetId}", listByVeterinarianHandler(svc))
		vr.Put("/{id}", updateWindowHandler(svc))
		vr.Delete("/{id}", deleteWindowHandler(svc))
	})
}

type createWindowRequest struct {
	Veterinarian string `json:"veterinarian"`
	Date         string `json:"date"` // RFC3339 o YYYY-MM-DD
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	IsAvailable  *bool  `json:"isAvailable"`
}

type updateWindowRequest struct {
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	IsAvailable *bool   `json:"isAvailable"`
}

type windowResponse struct {
	ID           string      `json:"id"`
	Veterinarian any         `json:"veterinarian"`
	Date         time.Time   `json:"date"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	IsAvailable  bool        `json:"isAvailable"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func toWindowResponse(win Window) windowResponse {
	return windowResponse{
		ID:           win.ID,
		Veterinarian: win.VeterinarianID,
		Date:         win.Date,
		StartTime:    win.StartTime,
		EndTime:      win.EndTime,
		IsAvailable:  win.IsAvailable,
		CreatedAt:    win.CreatedAt,
	}
}

func toExpandedWindowResponse(e ExpandedWindow) windowResponse {
	resp := toWindowResponse(e.Window)
	// Referencia colgante expandida => null, igual que populate.
	resp.Veterinarian = e.Veterinarian
	return resp
}

// listByVeterinarianHandler godoc
// @Summary Disponibilidad de un veterinario
// @Description Ventanas del veterinario, opcionalmente restringidas a un día calendario.
// @Tags availability
// @Produce json
// @Param vetId path string true "ID del veterinario"
// @Param date query string false "Fecha (YYYY-MM-DD) para restringir a ese día"
// @Success 200 {array} windowResponse
// @Failure 400 {object} object{message=string}
// @Router /api/veterinarian-availability/{vetId} [get]
func listByVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var day *time.Time
		if q := strings.TrimSpace(r.URL.Query().Get("date")); q != "" {
			t, err := httpx.ParseDate(q)
			if err != nil {
				httpx.Error(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
				return
			}
			day = &t
		}

		wins, err := svc.ListByVeterinarian(r.Context(), chi.URLParam(r, "vetId"), day)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]windowResponse, 0, len(wins))
		for _, win := range wins {
			out = append(out, toWindowResponse(win))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// findAvailableHandler godoc
// @Summary Veterinarios disponibles en fecha y hora
// @Description Ventanas del día cuya franja [startTime, endTime] contiene la hora pedida (bordes inclusive) con isAvailable=true. Expande veterinarian.
// @Tags availability
// @Produce json
// @Param date path string true "Fecha (YYYY-MM-DD)"
// @Param time path string true "Hora HH:MM con cero a la izquierda"
// @Success 200 {array} windowResponse
// @Failure 400 {object} object{message=string}
// @Router /api/veterinarian-availability/available/{date}/{time} [get]
func findAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := httpx.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
			return
		}

		items, err := svc.FindAvailable(r.Context(), day, chi.URLParam(r, "time"))
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]windowResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toExpandedWindowResponse(e))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createWindowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createWindowRequest
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

		win, err := svc.Create(r.Context(), CreateInput{
			VeterinarianID: req.Veterinarian,
			Date:           date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			IsAvailable:    req.IsAvailable,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toWindowResponse(win))
	}
}

func updateWindowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateWindowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		win, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			IsAvailable: req.IsAvailable,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Availability not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toWindowResponse(win))
	}
}

func deleteWindowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Availability not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Availability deleted"})
	}
}
