package ports

// Notifier define el puerto de notificaciones transitorias hacia el usuario
// (el "toast" del panel original). Las notificaciones nunca son fatales ni
// bloquean: la pantalla afectada queda en su último estado bueno.
type Notifier interface {
	// Success notifica el resultado de una operación exitosa.
	Success(title, detail string)
	// Error notifica un fallo en términos generales de la operación, sin
	// distinguir clase de error (red, HTTP, validación).
	Error(title, detail string)
}

// NopNotifier descarta todas las notificaciones.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Error(string, string)   {}
