package stories

import (
	"time"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

// Story es el registro público de una adopción concretada.
// El sistema no verifica que la adopción esté realmente cerrada:
// esa es responsabilidad del caller que la publica.
type Story struct {
	ID          string
	Title       string
	Description string
	PetID       string
	AdopterID   string
	ShelterID   string
	Images      []string
	CreatedAt   time.Time
}

type ExpandedStory struct {
	Story
	Pet     *pets.Pet
	Adopter *users.User
	Shelter *users.User
}
