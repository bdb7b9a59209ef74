package screens

import (
	"context"

	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
	"github.com/kaelo-app/admin-console/internal/forms"
)

// StoresScreen controlador de la pantalla de comercios.
type StoresScreen struct {
	api    ports.AdminAPI
	notify ports.Notifier
	stores collection[entity.Comercio]
}

// NewStoresScreen construye el controlador.
func NewStoresScreen(api ports.AdminAPI, notify ports.Notifier) *StoresScreen {
	return &StoresScreen{api: api, notify: notify}
}

// Refresh re-trae la colección completa.
func (s *StoresScreen) Refresh(ctx context.Context) error {
	stores, err := s.api.ListStores(ctx)
	if err != nil {
		s.stores.fail()
		s.notify.Error("Error", "No se pudieron cargar los comercios")
		return err
	}
	s.stores.replace(stores)
	return nil
}

// Stores devuelve la colección actual.
func (s *StoresScreen) Stores() []entity.Comercio { return s.stores.snapshot() }

// Loaded indica si ya se resolvió la primera carga.
func (s *StoresScreen) Loaded() bool { return s.stores.isLoaded() }

// Create valida el formulario, crea el comercio y re-trae la colección.
func (s *StoresScreen) Create(ctx context.Context, form forms.StoreForm) error {
	if err := form.Validate(); err != nil {
		s.notify.Error("Error", "No se pudo crear el comercio")
		return err
	}
	if err := s.api.CreateStore(ctx, form.Payload()); err != nil {
		s.notify.Error("Error", "No se pudo crear el comercio")
		return err
	}
	s.notify.Success("Comercio creado", "El nuevo comercio ha sido creado exitosamente")
	return s.Refresh(ctx)
}

// Update valida el formulario, edita el comercio y re-trae la colección.
// propietarioId vuelve a pedirse porque el modelo de lectura no lo devuelve.
func (s *StoresScreen) Update(ctx context.Context, id int, form forms.StoreForm) error {
	if err := form.Validate(); err != nil {
		s.notify.Error("Error", "No se pudo actualizar el comercio")
		return err
	}
	if err := s.api.UpdateStore(ctx, id, form.Payload()); err != nil {
		s.notify.Error("Error", "No se pudo actualizar el comercio")
		return err
	}
	s.notify.Success("Comercio actualizado", "El comercio ha sido actualizado exitosamente")
	return s.Refresh(ctx)
}

// Activate marca el comercio como activo.
func (s *StoresScreen) Activate(ctx context.Context, id int) error {
	return s.UpdateStatus(ctx, id, entity.ComercioActivo)
}

// Deactivate marca el comercio como inactivo.
func (s *StoresScreen) Deactivate(ctx context.Context, id int) error {
	return s.UpdateStatus(ctx, id, entity.ComercioInactivo)
}

// UpdateStatus envía el estado dado (texto libre) y re-trae la colección.
func (s *StoresScreen) UpdateStatus(ctx context.Context, id int, estado string) error {
	if err := s.api.UpdateStoreStatus(ctx, id, estado); err != nil {
		s.notify.Error("Error", "No se pudo actualizar el comercio")
		return err
	}
	s.notify.Success("Comercio actualizado", "El comercio ha sido marcado como "+estado)
	return s.Refresh(ctx)
}

// Delete elimina un comercio y re-trae la colección.
func (s *StoresScreen) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteStore(ctx, id); err != nil {
		s.notify.Error("Error", "No se pudo eliminar el comercio")
		return err
	}
	s.notify.Success("Comercio eliminado", "El comercio ha sido eliminado exitosamente")
	return s.Refresh(ctx)
}
