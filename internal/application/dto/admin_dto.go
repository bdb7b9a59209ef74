package dto

import "github.com/shopspring/decimal"

// LoginRequest entrada para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse salida del login con el token de sesión.
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest entrada para crear un usuario. Password viaja en texto
// plano sobre TLS; el hash lo hace el backend.
type CreateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// UpdateUserRequest entrada para editar un usuario. Password se omite del JSON
// cuando está vacío: en edición, campo en blanco significa "sin cambio", nunca
// "borrar la contraseña".
type UpdateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Password string `json:"password,omitempty"`
}

// CreateRouteRequest entrada para crear una ruta.
type CreateRouteRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Distancia   float64         `json:"distancia"`
	Dificultad  string          `json:"dificultad"`
	Precio      decimal.Decimal `json:"precio"`
}

// StoreRequest entrada para crear o editar un comercio. El modelo de lectura
// no devuelve propietarioId, así que en edición el valor no puede verificarse
// contra el registro existente; es una limitación del contrato del backend.
type StoreRequest struct {
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	Ubicacion     string `json:"ubicacion"`
	PropietarioID int    `json:"propietarioId"`
}

// StatusUpdateRequest cuerpo de PUT …/{id}/status. Estado es texto libre: las
// constantes enumeradas son el contrato de presentación, no una máquina de
// estados verificada por este cliente.
type StatusUpdateRequest struct {
	Estado string `json:"estado"`
}
