package availability

import (
	"time"

	"petcare-backend/internal/domain/users"
)

// Window es una ventana declarada de disponibilidad (o bloqueo) de un
// veterinario para una fecha calendario.
//
// StartTime/EndTime son strings "HH:MM" con cero a la izquierda y se
// comparan lexicográficamente. El formato no se valida: los clientes
// existentes envían siempre "HH:MM" y dependen de ese contrato.
type Window struct {
	ID             string
	VeterinarianID string
	Date           time.Time
	StartTime      string
	EndTime        string
	IsAvailable    bool
	CreatedAt      time.Time
}

type ExpandedWindow struct {
	Window
	Veterinarian *users.User
}

// DayBounds devuelve [00:00:00.000, 23:59:59.999] de la fecha dada,
// en la zona horaria local del servidor (no se normaliza a UTC).
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), day.Location())
	return start, end
}
