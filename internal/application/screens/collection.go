// Package screens contiene los controladores de pantalla del panel: uno por
// colección (usuarios, rutas, comercios, transacciones) más el dashboard.
//
// Todos siguen el mismo contrato de consistencia: cada mutación exitosa
// notifica y re-trae la colección completa; no hay caché, ni cola offline, ni
// actualización optimista. El refresco es stale-while-revalidate: la última
// colección buena se sigue mostrando mientras hay un fetch en vuelo, se
// reemplaza atómicamente si el fetch termina bien y se conserva si falla.
package screens

import "sync"

// collection estado de vista compartido por las pantallas de listado.
// El mutex protege contra respuestas tardías que llegan cuando otra operación
// ya actualizó el estado; las dos peticiones en vuelo no se coordinan entre
// sí y la última respuesta en llegar define el estado final.
type collection[T any] struct {
	mu     sync.Mutex
	items  []T
	loaded bool // false solo antes del primer fetch resuelto
}

// replace reemplaza la colección de forma atómica tras un fetch exitoso.
func (c *collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.loaded = true
}

// fail registra un fetch fallido: el estado previo se conserva tal cual, o se
// pasa a un estado cargado-vacío explícito si era la primera carga.
func (c *collection[T]) fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		c.items = nil
		c.loaded = true
	}
}

// snapshot devuelve una copia de la colección actual.
func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// isLoaded indica si ya se resolvió al menos un fetch (bien o mal).
func (c *collection[T]) isLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}
