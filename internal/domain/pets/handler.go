package pets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"petcare-backend/internal/platform/httpx"
	"petcare-backend/internal/platform/uploads"

	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service, files *uploads.Store) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc, files))
		pr.Get("/{id}", getPetHandler(svc))
		pr.Put("/{id}", updatePetHandler(svc, files))
		pr.Delete("/{id}", deletePetHandler(svc))
	})
}

type petResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Breed         string `json:"breed"`
	Species       string `json:"species"`
	Gender        Gender `json:"gender"`
	Photo         string `json:"photo"`
	Owner         any    `json:"owner"`
	IsForAdoption bool   `json:"isForAdoption"`
	HealthStatus  string `json:"healthStatus"`
	Shelter       any    `json:"shelter,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// toPetResponse replica el contrato de populate: la referencia sale como
// documento expandido si se resolvió, o como id crudo si no se expandió.
// Una referencia colgante expandida sale en null.
func toPetResponse(e ExpandedPet, withShelter bool) petResponse {
	resp := petResponse{
		ID:            e.ID,
		Name:          e.Name,
		Age:           e.Age,
		Breed:         e.Breed,
		Species:       e.Species,
		Gender:        e.Gender,
		Photo:         e.Photo,
		IsForAdoption: e.IsForAdoption,
		HealthStatus:  e.HealthStatus,
		CreatedAt:     e.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if e.Owner != nil {
		resp.Owner = e.Owner
	}
	if withShelter {
		if e.Shelter != nil {
			resp.Shelter = e.Shelter
		}
	} else if e.ShelterID != "" {
		resp.Shelter = e.ShelterID
	}
	return resp
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Filtros opcionales por ownerId, shelterId y forAdoption. Expande owner y shelter.
// @Tags pets
// @Produce json
// @Param ownerId query string false "Filtrar por dueño"
// @Param shelterId query string false "Filtrar por refugio"
// @Param forAdoption query bool false "Solo mascotas en adopción"
// @Success 200 {array} petResponse
// @Failure 500 {object} object{message=string}
// @Router /api/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := Filter{
			OwnerID:   strings.TrimSpace(r.URL.Query().Get("ownerId")),
			ShelterID: strings.TrimSpace(r.URL.Query().Get("shelterId")),
		}
		// Igual que el contrato original: solo forAdoption=true filtra.
		if r.URL.Query().Get("forAdoption") == "true" {
			t := true
			f.ForAdoption = &t
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toPetResponse(e, true))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota por id
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} object{message=string}
// @Router /api/pets/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Pet not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(e, false))
	}
}

// createPetHandler acepta multipart con campo de archivo opcional "photo".
// Orden deliberado: validar campos -> persistir foto -> crear registro.
// Si el registro falla con la foto ya en disco, se compensa borrándola.
func createPetHandler(svc *Service, files *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			httpx.Error(w, http.StatusBadRequest, "multipart form required")
			return
		}

		age, err := strconv.Atoi(strings.TrimSpace(r.FormValue("age")))
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "age must be a number")
			return
		}

		in := CreateInput{
			Name:          r.FormValue("name"),
			Age:           age,
			Breed:         r.FormValue("breed"),
			Species:       r.FormValue("species"),
			Gender:        r.FormValue("gender"),
			OwnerID:       r.FormValue("owner"),
			IsForAdoption: r.FormValue("isForAdoption") == "true",
			HealthStatus:  r.FormValue("healthStatus"),
			ShelterID:     r.FormValue("shelter"),
		}
		if err := in.Validate(); err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		file, header, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			name, saveErr := files.Save(file, header.Filename)
			if saveErr != nil {
				httpx.Error(w, http.StatusInternalServerError, saveErr.Error())
				return
			}
			in.Photo = name
		} else if !errors.Is(err, http.ErrMissingFile) {
			httpx.Error(w, http.StatusBadRequest, "invalid photo upload")
			return
		}

		e, err := svc.Create(r.Context(), in)
		if err != nil {
			if in.Photo != "" {
				_ = files.Remove(in.Photo)
			}
			if errors.Is(err, ErrInvalidInput) {
				httpx.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(e, false))
	}
}

// updatePetHandler reemplaza solo los campos presentes en el form.
// La foto anterior NO se borra al reemplazarla (huérfano aceptado).
func updatePetHandler(svc *Service, files *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			httpx.Error(w, http.StatusBadRequest, "multipart form required")
			return
		}

		var in UpdateInput
		form := r.MultipartForm.Value

		if v, ok := formField(form, "name"); ok {
			in.Name = &v
		}
		if v, ok := formField(form, "age"); ok {
			age, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				httpx.Error(w, http.StatusBadRequest, "age must be a number")
				return
			}
			in.Age = &age
		}
		if v, ok := formField(form, "breed"); ok {
			in.Breed = &v
		}
		if v, ok := formField(form, "species"); ok {
			in.Species = &v
		}
		if v, ok := formField(form, "gender"); ok {
			in.Gender = &v
		}
		if v, ok := formField(form, "owner"); ok {
			in.OwnerID = &v
		}
		if v, ok := formField(form, "isForAdoption"); ok {
			b := v == "true"
			in.IsForAdoption = &b
		}
		if v, ok := formField(form, "healthStatus"); ok {
			in.HealthStatus = &v
		}
		if v, ok := formField(form, "shelter"); ok {
			in.ShelterID = &v
		}

		var newPhoto string
		file, header, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			name, saveErr := files.Save(file, header.Filename)
			if saveErr != nil {
				httpx.Error(w, http.StatusInternalServerError, saveErr.Error())
				return
			}
			newPhoto = name
			in.Photo = &newPhoto
		} else if !errors.Is(err, http.ErrMissingFile) {
			httpx.Error(w, http.StatusBadRequest, "invalid photo upload")
			return
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			if newPhoto != "" {
				_ = files.Remove(newPhoto)
			}
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.Error(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.Error(w, http.StatusBadRequest, err.Error())
			default:
				httpx.Error(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(e, false))
	}
}

// deletePetHandler borra solo el registro: sin cascada sobre historiales,
// citas ni solicitudes (las referencias quedan huérfanas a propósito).
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Error(w, http.StatusNotFound, "Pet not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Pet removed"})
	}
}

func formField(form map[string][]string, key string) (string, bool) {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
