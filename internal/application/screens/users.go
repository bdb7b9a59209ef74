package screens

import (
	"context"

	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
	"github.com/kaelo-app/admin-console/internal/forms"
)

// UsersScreen controlador de la pantalla de usuarios.
type UsersScreen struct {
	api    ports.AdminAPI
	notify ports.Notifier
	users  collection[entity.Usuario]
}

// NewUsersScreen construye el controlador.
func NewUsersScreen(api ports.AdminAPI, notify ports.Notifier) *UsersScreen {
	return &UsersScreen{api: api, notify: notify}
}

// Refresh re-trae la colección completa. En fallo notifica y conserva el
// último estado bueno (o deja la colección vacía si era la primera carga).
func (s *UsersScreen) Refresh(ctx context.Context) error {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.users.fail()
		s.notify.Error("Error", "No se pudieron cargar los usuarios")
		return err
	}
	s.users.replace(users)
	return nil
}

// Users devuelve la colección actual.
func (s *UsersScreen) Users() []entity.Usuario { return s.users.snapshot() }

// Loaded indica si ya se resolvió la primera carga.
func (s *UsersScreen) Loaded() bool { return s.users.isLoaded() }

// Create valida el formulario, crea el usuario y re-trae la colección.
// Un fallo de validación se reporta igual que uno de red y nada se envía.
func (s *UsersScreen) Create(ctx context.Context, form forms.UserForm) error {
	form.Editing = false
	if err := form.Validate(); err != nil {
		s.notify.Error("Error", "No se pudo crear el usuario")
		return err
	}
	if err := s.api.CreateUser(ctx, form.CreatePayload()); err != nil {
		s.notify.Error("Error", "No se pudo crear el usuario")
		return err
	}
	s.notify.Success("Usuario creado", "El nuevo usuario ha sido creado exitosamente")
	return s.Refresh(ctx)
}

// Update valida el formulario en modo edición, actualiza el usuario y re-trae
// la colección. Contraseña en blanco no viaja en el payload.
func (s *UsersScreen) Update(ctx context.Context, id int, form forms.UserForm) error {
	form.Editing = true
	if err := form.Validate(); err != nil {
		s.notify.Error("Error", "No se pudo actualizar el usuario")
		return err
	}
	if err := s.api.UpdateUser(ctx, id, form.UpdatePayload()); err != nil {
		s.notify.Error("Error", "No se pudo actualizar el usuario")
		return err
	}
	s.notify.Success("Usuario actualizado", "El usuario ha sido actualizado exitosamente")
	return s.Refresh(ctx)
}

// Delete elimina un usuario y re-trae la colección. La confirmación previa es
// responsabilidad de la capa de presentación; aquí la llamada es definitiva.
func (s *UsersScreen) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.notify.Error("Error", "No se pudo eliminar el usuario")
		return err
	}
	s.notify.Success("Usuario eliminado", "El usuario ha sido eliminado exitosamente")
	return s.Refresh(ctx)
}
