package health

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
	r.Route("/health", func(hr chi.Router) {
		hr.Get("/", listRecordsHandler(svc))
		hr.Post("/", createRecordHandler(svc))
		hr.Put("/{id}", updateRecordHandler(svc))
		hr.Delete("/{id}", deleteRecordHandler(svc))
	})
}

type createRecordRequest struct {
	Pet            string     `json:"pet"`
	RecordType     RecordType `json:"recordType"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Date           string     `json:"date"` // RFC3339 o YYYY-MM-DD
	NextDueDate    string     `json:"nextDueDate"`
	Veterinarian   string     `json:"veterinarian"`
	Diagnosis      string     `json:"diagnosis"`
	TreatmentNotes string     `json:"treatmentNotes"`
	Prescription   string     `json:"prescription"`
	XRayImages     []string   `json:"xrayImages"`
}

type recordResponse struct {
	ID             string      `json:"id"`
	Pet            *pets.Pet   `json:"pet"`
	RecordType     RecordType  `json:"recordType"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Date           time.Time   `json:"date"`
	NextDueDate    *time.Time  `json:"nextDueDate,omitempty"`
	Veterinarian   *users.User `json:"veterinarian"`
	Diagnosis      string      `json:"diagnosis"`
	TreatmentNotes string      `json:"treatmentNotes"`
	Prescription   string      `json:"prescription"`
	XRayImages     []string    `json:"xrayImages"`
	CreatedAt      time.Time   `json:"createdAt"`
}

func toRecordResponse(e ExpandedRecord) recordResponse {
	return recordResponse{
		ID:             e.ID,
		Pet:            e.Pet,
		RecordType:     e.RecordType,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date,
		NextDueDate:    e.NextDueDate,
		Veterinarian:   e.Veterinarian,
		Diagnosis:      e.Diagnosis,
		TreatmentNotes: e.TreatmentNotes,
		Prescription:   e.Prescription,
		XRayImages:     e.XRayImages,
		CreatedAt:      e.CreatedAt,
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := Filter{
			PetID:          strings.TrimSpace(r.URL.Query().Get("petId")),
			VeterinarianID: strings.TrimSpace(r.URL.Query().Get("veterinarianId")),
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toRecordResponse(e))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
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

		var nextDue *time.Time
		if strings.TrimSpace(req.NextDueDate) != "" {
			t, err := httpx.ParseDate(req.NextDueDate)
			if err != nil {
				httpx.Error(w, http.StatusBadRequest, "nextDueDate must be RFC3339 or YYYY-MM-DD")
				return
			}
			nextDue = &t
		}

		e, err := svc.Create(r.Context(), CreateInput{
			PetID:          req.Pet,
			RecordType:     req.RecordType,
			Title:          req.Title,
			Description:    req.Description,
			Date:           date,
			NextDueDate:    nextDue,
			VeterinarianID: req.Veterinarian,
			Diagnosis:      req.Diagnosis,
			TreatmentNotes: req.TreatmentNotes,
			Prescription:   req.Prescription,
			XRayImages:     req.XRayImages,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toRecordResponse(e))
	}
}

// updateRecordHandler hace merge: ausencia != limpiar.
// Para distinguir "no vino" de "vino vacío" se decodifica primero a raw map
// y recién después a los punteros del input.
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		var in UpdateInput

		if v, ok := raw["recordType"]; ok {
			var rt RecordType
			if err := json.Unmarshal(v, &rt); err != nil {
				httpx.Error(w, http.StatusBadRequest, "invalid recordType")
				return
			}
			in.RecordType = &rt
		}
		if s, ok, err := rawString(raw, "title"); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid title")
			return
		} else if ok {
			in.Title = &s
		}
		if s, ok, err := rawString(raw, "description"); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid description")
			return
		} else if ok {
			in.Description = &s
		}
		if v, ok := raw["date"]; ok {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				httpx.Error(w, http.StatusBadRequest, "invalid date")
				return
			}
			t, err := httpx.ParseDate(s)
			if err != nil {
				httpx.Error(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.Date = &t
		}
		if v, ok := raw["nextDueDate"]; ok {
			if string(v) == "null" {
				in.ClearNextDue = true
			} else {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					httpx.Error(w, http.StatusBadRequest, "invalid nextDueDate")
					return
				}
				if strings.TrimSpace(s) == "" {
					in.ClearNextDue = true
				} else {
					t, err := httpx.ParseDate(s)
					if err != nil {
						httpx.Error(w, http.StatusBadRequest, "nextDueDate must be RFC3339 or YYYY-MM-DD")
						return
					}
					in.NextDueDate = &t
				}
			}
		}
		if s, ok, err := rawString(raw, "veterinarian"); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid veterinarian")
			return
		} else if ok {
			in.VeterinarianID = &s
		}
		if s, ok, err := rawString(raw, "diagnosis"); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid diagnosis")
			return
		} else if ok {
			in.Diagnosis = &s
		}
		if s, ok, err := rawString(raw, "treatmentNotes"); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid treatmentNotes")
			return
		} else if ok {
			in.TreatmentNotes = &s
		}
		if s, ok, err := rawString(raw, "prescription"); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid prescription")
			return
		} else if ok {
			in.Prescription = &s
		}
		if v, ok := raw["xrayImages"]; ok {
			var imgs []string
			if err := json.Unmarshal(v, &imgs); err != nil {
				httpx.Error(w, http.StatusBadRequest, "invalid xrayImages")
				return
			}
			in.XRayImages = &imgs
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.Error(w, http.StatusNotFound, "Record not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.Error(w, http.StatusBadRequest, err.Error())
			default:
				httpx.Error(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toRecordResponse(e))
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Record not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Record removed"})
	}
}

func rawString(raw map[string]json.RawMessage, key string) (string, bool, error) {
	v, ok := raw[key]
	if !ok {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false, err
	}
	return s, true, nil
}
