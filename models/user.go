package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"nombre"`
	Surname      string    `json:"apellidos"`
	Email        string    `json:"email"`
	Phone        string    `json:"telefono"`
	Address      string    `json:"direccion"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
