package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de transacción conocidos.
const (
	CompraRuta   = "compra_ruta"
	CompraTienda = "compra_tienda"
)

// UsuarioPago referencia de solo lectura al usuario que pagó.
type UsuarioPago struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// RutaRef referencia opcional a la ruta comprada.
type RutaRef struct {
	Nombre string `json:"nombre"`
}

// Transaccion registro de solo lectura devuelto por GET /api/admin/transactions.
// No existe contrato de creación/edición desde este cliente.
type Transaccion struct {
	ID      int             `json:"id"`
	Monto   decimal.Decimal `json:"monto"`
	Tipo    string          `json:"tipo"`
	Usuario UsuarioPago     `json:"usuario"`
	Ruta    *RutaRef        `json:"ruta,omitempty"`
}

// RutaNombre devuelve el nombre de la ruta asociada o "N/A" si no hay.
func (t Transaccion) RutaNombre() string {
	if t.Ruta == nil || t.Ruta.Nombre == "" {
		return "N/A"
	}
	return t.Ruta.Nombre
}

// BadgeTipoTransaccion mapea el tipo a su tratamiento visual, con fallback.
func BadgeTipoTransaccion(tipo string) Badge {
	switch strings.ToLower(tipo) {
	case CompraRuta:
		return Badge{Label: "Compra de Ruta", Tone: TonePrimary}
	case CompraTienda:
		return Badge{Label: "Compra en Tienda", Tone: ToneSuccess}
	default:
		return neutralBadge(tipo)
	}
}

// TotalMonto suma los montos de una lista de transacciones con aritmética decimal.
func TotalMonto(txs []Transaccion) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Monto)
	}
	return total
}
