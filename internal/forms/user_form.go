// Package forms valida localmente los datos de creación/edición antes de que
// cualquier petición salga hacia el backend. Un fallo de validación se
// detecta de forma síncrona e impide el envío.
package forms

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

// Mínimos de longitud del formulario de usuario, como en el panel original.
const (
	MinNombre   = 2
	MinPassword = 6
)

// UserForm formulario de usuario. Editing distingue creación de edición:
// en edición la contraseña es opcional y, si queda en blanco, se omite del
// payload por completo ("sin cambio", nunca contraseña vacía).
type UserForm struct {
	Nombre   string
	Email    string
	Password string
	Rol      string
	Editing  bool
}

// Validate aplica las reglas locales del formulario. Los mensajes nombran el
// campo en español, como los del panel.
func (f UserForm) Validate() error {
	var errs []error
	if utf8.RuneCountInString(strings.TrimSpace(f.Nombre)) < MinNombre {
		errs = append(errs, fmt.Errorf("el nombre debe tener al menos %d caracteres", MinNombre))
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errs = append(errs, errors.New("introduce un email válido"))
	}
	if !entity.RolValido(f.Rol) {
		errs = append(errs, fmt.Errorf("rol no reconocido: %q", f.Rol))
	}
	// Regla cruzada: obligatoria al crear, opcional al editar.
	if f.Password == "" {
		if !f.Editing {
			errs = append(errs, errors.New("la contraseña es obligatoria para crear un usuario"))
		}
	} else if utf8.RuneCountInString(f.Password) < MinPassword {
		errs = append(errs, fmt.Errorf("la contraseña debe tener al menos %d caracteres", MinPassword))
	}
	return errors.Join(errs...)
}

// CreatePayload construye el cuerpo de creación. Debe llamarse tras Validate.
func (f UserForm) CreatePayload() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Nombre:   strings.TrimSpace(f.Nombre),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Rol:      f.Rol,
	}
}

// UpdatePayload construye el cuerpo de edición. Password solo se incluye si
// el usuario escribió una nueva; en blanco no viaja en el JSON.
func (f UserForm) UpdatePayload() dto.UpdateUserRequest {
	return dto.UpdateUserRequest{
		Nombre:   strings.TrimSpace(f.Nombre),
		Email:    strings.TrimSpace(f.Email),
		Rol:      f.Rol,
		Password: f.Password,
	}
}
