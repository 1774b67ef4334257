package users

import "time"

// Role define el tipo de usuario dentro del sistema.
// @Enum Owner, Shelter, Veterinarian
type Role string

const (
	RoleOwner        Role = "Owner"
	RoleShelter      Role = "Shelter"
	RoleVeterinarian Role = "Veterinarian"
)

// User representa una identidad del directorio de usuarios.
// El directorio se mantiene fuera de este servicio (auth externo);
// acá solo se lee para listar veterinarios y expandir referencias.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  Role      `json:"userType"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
