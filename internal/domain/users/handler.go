package users

import (
	"net/http"

	"petcare-backend/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/veterinarians", listVeterinariansHandler(svc))
}

// listVeterinariansHandler godoc
// @Summary Listar veterinarios
// @Description Devuelve todos los usuarios con rol Veterinarian.
// @Tags veterinarians
// @Produce json
// @Success 200 {array} User
// @Failure 500 {object} object{message=string}
// @Router /api/veterinarians [get]
func listVeterinariansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vets, err := svc.ListVeterinarians(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, vets)
	}
}
