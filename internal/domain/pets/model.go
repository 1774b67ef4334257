package pets

import (
	"time"

	"petcare-backend/internal/domain/users"
)

// Gender define el género de la mascota.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

const DefaultHealthStatus = "Healthy"

// Pet representa una mascota registrada, sea de un dueño o de un refugio.
// Las referencias (owner/shelter) se guardan como ids; la expansión a
// documento completo ocurre al responder (ver ExpandedPet).
// Los tags json reflejan el documento crudo (referencias como id);
// otros módulos embeben este struct al expandir su referencia "pet".
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Breed   string `json:"breed"`
	Species string `json:"species"`
	Gender  Gender `json:"gender"`

	// Photo es el nombre de archivo relativo bajo el dir de uploads ("" = sin foto).
	Photo string `json:"photo"`

	OwnerID string `json:"owner"`

	// Campos de refugio: si IsForAdoption es true, ShelterID es obligatorio.
	IsForAdoption bool   `json:"isForAdoption"`
	HealthStatus  string `json:"healthStatus"`
	ShelterID     string `json:"shelter,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ExpandedPet es la vista con referencias expandidas.
// Una referencia colgante (usuario borrado) queda en nil, no es error.
type ExpandedPet struct {
	Pet
	Owner   *users.User
	Shelter *users.User
}
