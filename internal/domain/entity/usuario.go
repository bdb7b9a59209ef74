package entity

import (
	"strings"
	"time"
)

// Roles válidos para Usuario según los desplegables del panel.
// El backend puede devolver otros valores; se toleran como texto libre.
const (
	RolAdmin         = "Admin"
	RolComerciante   = "Comerciante"
	RolCreadorDeRuta = "Creador de Ruta"
	RolCiclista      = "Ciclista"
)

// Roles lista los roles en el orden en que se ofrecen al crear un usuario.
var Roles = []string{RolAdmin, RolComerciante, RolCreadorDeRuta, RolCiclista}

// RolValido indica si el rol es uno de los enumerados (case-insensitive).
func RolValido(rol string) bool {
	for _, r := range Roles {
		if strings.EqualFold(r, rol) {
			return true
		}
	}
	return false
}

// Usuario registro de usuario tal como lo devuelve GET /api/admin/users.
type Usuario struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BadgeRol mapea el rol a su tratamiento visual, con fallback para valores
// no reconocidos.
func BadgeRol(rol string) Badge {
	switch strings.ToLower(rol) {
	case "admin":
		return Badge{Label: RolAdmin, Tone: TonePrimary}
	case "comerciante":
		return Badge{Label: RolComerciante, Tone: ToneSuccess}
	case "creador de ruta":
		return Badge{Label: RolCreadorDeRuta, Tone: ToneWarning}
	case "ciclista":
		return Badge{Label: RolCiclista, Tone: ToneNeutral}
	default:
		return neutralBadge(rol)
	}
}
