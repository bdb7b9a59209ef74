package cli

import (
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

// esMX printer para números con separadores locales, como el
// toLocaleDateString('es-MX') del panel original.
var esMX = message.NewPrinter(language.MustParse("es-MX"))

// renderBadge colorea el badge según su tono. Valores no reconocidos llegan
// ya con tono neutro y el texto crudo.
func renderBadge(b entity.Badge) string {
	switch b.Tone {
	case entity.ToneSuccess:
		return color.GreenString(b.Label)
	case entity.ToneWarning:
		return color.YellowString(b.Label)
	case entity.ToneDanger:
		return color.RedString(b.Label)
	case entity.TonePrimary:
		return color.CyanString(b.Label)
	default:
		return b.Label
	}
}

// formatMonto formatea un monto en pesos con dos decimales y separadores es-MX.
func formatMonto(d decimal.Decimal) string {
	return esMX.Sprintf("$%.2f", d.InexactFloat64())
}

// formatFecha formatea una fecha al estilo corto es-MX (día/mes/año).
func formatFecha(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2/1/2006")
}

// newTable construye una tabla con el estilo de la consola.
func newTable(out io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetColumnSeparator(" ")
	return table
}
