package health

import (
	"time"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

// RecordType define el tipo de evento médico registrado.
// @Enum Vaccination, Deworming, Allergy, Medication, Checkup
type RecordType string

const (
	RecordVaccination RecordType = "Vaccination"
	RecordDeworming   RecordType = "Deworming"
	RecordAllergy     RecordType = "Allergy"
	RecordMedication  RecordType = "Medication"
	RecordCheckup     RecordType = "Checkup"
)

func ValidRecordType(t RecordType) bool {
	switch t {
	case RecordVaccination, RecordDeworming, RecordAllergy, RecordMedication, RecordCheckup:
		return true
	}
	return false
}

// Record es una entrada del historial médico de una mascota.
// Es historia casi inmutable: solo cambia vía update explícito.
type Record struct {
	ID             string
	PetID          string
	RecordType     RecordType
	Title          string
	Description    string
	Date           time.Time
	NextDueDate    *time.Time
	VeterinarianID string

	// Campos clínicos, todos opcionales (default vacío).
	Diagnosis      string
	TreatmentNotes string
	Prescription   string
	XRayImages     []string

	CreatedAt time.Time
}

type ExpandedRecord struct {
	Record
	Pet          *pets.Pet
	Veterinarian *users.User
}
