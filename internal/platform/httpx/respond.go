package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Antes cada módulo duplicaba su writeJSON; con siete resource managers
// ya conviene el helper común (ver nota en pets/handler.go histórico).

type messageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error responde el contrato de error del API: {"message": "..."} con el status dado.
func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, messageBody{Message: msg})
}

// ParseDate acepta RFC3339 o fecha simple YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
