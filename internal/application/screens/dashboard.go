package screens

import (
	"context"
	"sync"

	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

// DashboardScreen controlador del dashboard. La foto agregada no tiene
// identidad: el backend la recalcula en cada petición.
type DashboardScreen struct {
	api    ports.AdminAPI
	notify ports.Notifier

	mu    sync.Mutex
	stats *entity.DashboardStats
}

// NewDashboardScreen construye el controlador.
func NewDashboardScreen(api ports.AdminAPI, notify ports.Notifier) *DashboardScreen {
	return &DashboardScreen{api: api, notify: notify}
}

// Refresh re-trae la foto agregada. En fallo conserva la anterior, si había.
func (s *DashboardScreen) Refresh(ctx context.Context) error {
	stats, err := s.api.DashboardStats(ctx)
	if err != nil {
		s.notify.Error("Error", "No se pudieron cargar las estadísticas")
		return err
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// Stats devuelve la última foto buena, o nil si nunca cargó.
func (s *DashboardScreen) Stats() *entity.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
