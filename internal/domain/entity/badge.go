package entity

// Tono visual de un badge en la consola. El valor crudo siempre se conserva:
// el backend no garantiza un conjunto cerrado de estados/roles, así que un
// valor desconocido se muestra tal cual con el tono neutro en vez de
// descartar la fila.
type BadgeTone string

const (
	ToneSuccess BadgeTone = "success"
	ToneWarning BadgeTone = "warning"
	ToneDanger  BadgeTone = "danger"
	TonePrimary BadgeTone = "primary"
	ToneNeutral BadgeTone = "neutral"
)

// Badge etiqueta visual derivada de un valor enumerado.
type Badge struct {
	Label string    // texto a mostrar (normalizado si el valor es conocido)
	Tone  BadgeTone // tratamiento visual
}

func neutralBadge(raw string) Badge {
	return Badge{Label: raw, Tone: ToneNeutral}
}
