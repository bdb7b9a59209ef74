package entity

import "strings"

// Estados de un comercio.
const (
	ComercioActivo    = "activo"
	ComercioPendiente = "pendiente"
	ComercioInactivo  = "inactivo"
)

// Propietario referencia de solo lectura al dueño del comercio.
// El modelo de lectura solo trae el nombre, nunca el id: por eso el
// formulario de edición no puede pre-rellenar propietarioId.
type Propietario struct {
	Nombre string `json:"nombre"`
}

// Comercio registro de comercio tal como lo devuelve GET /api/admin/stores.
type Comercio struct {
	ID          int         `json:"id"`
	Nombre      string      `json:"nombre"`
	Descripcion string      `json:"descripcion"`
	Ubicacion   string      `json:"ubicacion"`
	Estado      string      `json:"estado"`
	Propietario Propietario `json:"propietario"`
}

// Activo indica si el comercio está marcado como activo.
func (c Comercio) Activo() bool {
	return strings.EqualFold(c.Estado, ComercioActivo)
}

// Inactivo indica si el comercio está marcado como inactivo.
func (c Comercio) Inactivo() bool {
	return strings.EqualFold(c.Estado, ComercioInactivo)
}

// BadgeEstadoComercio mapea el estado a su tratamiento visual, con fallback.
func BadgeEstadoComercio(estado string) Badge {
	switch strings.ToLower(estado) {
	case ComercioActivo:
		return Badge{Label: "Activo", Tone: ToneSuccess}
	case ComercioPendiente:
		return Badge{Label: "Pendiente", Tone: ToneWarning}
	case ComercioInactivo:
		return Badge{Label: "Inactivo", Tone: ToneDanger}
	default:
		return neutralBadge(estado)
	}
}
