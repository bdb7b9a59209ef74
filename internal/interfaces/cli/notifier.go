package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kaelo-app/admin-console/internal/application/ports"
)

// Verificar en tiempo de compilación que ToastNotifier implementa el puerto.
var _ ports.Notifier = (*ToastNotifier)(nil)

// ToastNotifier imprime las notificaciones transitorias de las pantallas en
// la terminal: el equivalente del toast del panel original.
type ToastNotifier struct {
	out io.Writer
}

// NewToastNotifier construye el notificador sobre el writer dado.
func NewToastNotifier(out io.Writer) *ToastNotifier {
	return &ToastNotifier{out: out}
}

// Success imprime una notificación de éxito.
func (n *ToastNotifier) Success(title, detail string) {
	fmt.Fprintf(n.out, "%s %s: %s\n", color.GreenString("✔"), color.New(color.Bold).Sprint(title), detail)
}

// Error imprime una notificación de error. No es fatal: la pantalla queda en
// su último estado bueno.
func (n *ToastNotifier) Error(title, detail string) {
	fmt.Fprintf(n.out, "%s %s: %s\n", color.RedString("✘"), color.New(color.Bold).Sprint(title), detail)
}
