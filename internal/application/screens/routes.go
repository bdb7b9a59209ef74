package screens

import (
	"context"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

// RoutesScreen controlador de la pantalla de rutas ciclísticas.
type RoutesScreen struct {
	api    ports.AdminAPI
	notify ports.Notifier
	routes collection[entity.Ruta]
}

// NewRoutesScreen construye el controlador.
func NewRoutesScreen(api ports.AdminAPI, notify ports.Notifier) *RoutesScreen {
	return &RoutesScreen{api: api, notify: notify}
}

// Refresh re-trae la colección completa.
func (s *RoutesScreen) Refresh(ctx context.Context) error {
	routes, err := s.api.ListRoutes(ctx)
	if err != nil {
		s.routes.fail()
		s.notify.Error("Error", "No se pudieron cargar las rutas")
		return err
	}
	s.routes.replace(routes)
	return nil
}

// Routes devuelve la colección actual.
func (s *RoutesScreen) Routes() []entity.Ruta { return s.routes.snapshot() }

// Loaded indica si ya se resolvió la primera carga.
func (s *RoutesScreen) Loaded() bool { return s.routes.isLoaded() }

// Approve marca la ruta como aprobada. El panel solo lo ofrece para rutas
// pendientes, pero esa restricción es presentacional.
func (s *RoutesScreen) Approve(ctx context.Context, id int) error {
	return s.UpdateStatus(ctx, id, entity.RutaAprobada)
}

// Reject marca la ruta como rechazada.
func (s *RoutesScreen) Reject(ctx context.Context, id int) error {
	return s.UpdateStatus(ctx, id, entity.RutaRechazada)
}

// UpdateStatus envía el estado dado (texto libre) y re-trae la colección.
func (s *RoutesScreen) UpdateStatus(ctx context.Context, id int, estado string) error {
	if err := s.api.UpdateRouteStatus(ctx, id, estado); err != nil {
		s.notify.Error("Error", "No se pudo actualizar la ruta")
		return err
	}
	s.notify.Success("Ruta actualizada", "La ruta ha sido "+estado)
	return s.Refresh(ctx)
}

// Create crea una ruta y re-trae la colección.
func (s *RoutesScreen) Create(ctx context.Context, in dto.CreateRouteRequest) error {
	if err := s.api.CreateRoute(ctx, in); err != nil {
		s.notify.Error("Error", "No se pudo crear la ruta")
		return err
	}
	s.notify.Success("Ruta creada", "La nueva ruta ha sido creada exitosamente")
	return s.Refresh(ctx)
}

// Delete elimina una ruta y re-trae la colección.
func (s *RoutesScreen) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteRoute(ctx, id); err != nil {
		s.notify.Error("Error", "No se pudo eliminar la ruta")
		return err
	}
	s.notify.Success("Ruta eliminada", "La ruta ha sido eliminada exitosamente")
	return s.Refresh(ctx)
}
