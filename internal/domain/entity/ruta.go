package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de una ruta. El panel solo ofrece transiciones desde "pendiente",
// pero el backend no cierra contractualmente el conjunto.
const (
	RutaPendiente = "pendiente"
	RutaAprobada  = "aprobada"
	RutaRechazada = "rechazada"
)

// Dificultades conocidas de una ruta.
const (
	DificultadFacil      = "fácil"
	DificultadIntermedia = "intermedia"
	DificultadDificil    = "difícil"
)

// Creador referencia de solo lectura al creador de la ruta.
type Creador struct {
	Nombre string `json:"nombre"`
}

// Ruta registro de ruta ciclística tal como lo devuelve GET /api/admin/routes.
type Ruta struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Distancia   float64         `json:"distancia"` // km
	Dificultad  string          `json:"dificultad"`
	Precio      decimal.Decimal `json:"precio"`
	Estado      string          `json:"estado"`
	Creador     Creador         `json:"creador"`
}

// Pendiente indica si la ruta admite aprobación/rechazo desde el panel.
func (r Ruta) Pendiente() bool {
	return strings.EqualFold(r.Estado, RutaPendiente)
}

// BadgeEstadoRuta mapea el estado a su tratamiento visual, con fallback.
func BadgeEstadoRuta(estado string) Badge {
	switch strings.ToLower(estado) {
	case RutaAprobada:
		return Badge{Label: "Aprobada", Tone: ToneSuccess}
	case RutaPendiente:
		return Badge{Label: "Pendiente", Tone: ToneWarning}
	case RutaRechazada:
		return Badge{Label: "Rechazada", Tone: ToneDanger}
	default:
		return neutralBadge(estado)
	}
}

// BadgeDificultad mapea la dificultad a su tratamiento visual, con fallback.
func BadgeDificultad(dificultad string) Badge {
	switch strings.ToLower(dificultad) {
	case DificultadFacil:
		return Badge{Label: "Fácil", Tone: ToneSuccess}
	case DificultadIntermedia:
		return Badge{Label: "Intermedia", Tone: ToneWarning}
	case DificultadDificil:
		return Badge{Label: "Difícil", Tone: ToneDanger}
	default:
		return neutralBadge(dificultad)
	}
}
