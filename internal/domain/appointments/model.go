package appointments

import (
	"time"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

// Status define el estado de la cita.
// No hay máquina de estados: las transiciones las decide el caller.
// @Enum Scheduled, Completed, Cancelled, Rescheduled
type Status string

const (
	StatusScheduled   Status = "Scheduled"
	StatusCompleted   Status = "Completed"
	StatusCancelled   Status = "Cancelled"
	StatusRescheduled Status = "Rescheduled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Appointment vincula mascota, dueño y veterinario en una visita agendada.
type Appointment struct {
	ID             string
	PetID          string
	OwnerID        string
	VeterinarianID string
	Date           time.Time
	Reason         string
	Status         Status
	Notes          string
	CreatedAt      time.Time
}

type ExpandedAppointment struct {
	Appointment
	Pet          *pets.Pet
	Owner        *users.User
	Veterinarian *users.User
}
