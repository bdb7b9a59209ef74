package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm pide confirmación explícita antes de una acción destructiva. Es el
// equivalente del diálogo modal bloqueante del panel: cancelar no dispara la
// llamada, y no hay deshacer después de confirmar.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s Esta acción no se puede deshacer. [s/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí":
		return true
	default:
		return false
	}
}
