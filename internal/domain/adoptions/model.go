package adoptions

import (
	"time"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

// Status de la solicitud. Etiqueta libre: no hay grafo de transiciones,
// Pending→Approved→Pending es legal si el caller así lo decide.
// @Enum Pending, Approved, Rejected
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// RequesterInfo es una copia point-in-time de los datos de contacto del
// solicitante, desacoplada del User vivo: si el usuario edita su perfil
// después, la solicitud conserva el snapshot.
type RequesterInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Request struct {
	ID            string
	PetID         string
	RequesterID   string
	ShelterID     string
	Status        Status
	Message       string
	RequesterInfo RequesterInfo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ExpandedRequest struct {
	Request
	Pet       *pets.Pet
	Requester *users.User
	Shelter   *users.User
}
