package forms

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kaelo-app/admin-console/internal/application/dto"
)

// Mínimos de longitud del formulario de comercio, como en el panel original.
const (
	MinNombreComercio = 2
	MinDescripcion    = 10
	MinUbicacion      = 5
)

// StoreForm formulario de comercio. PropietarioID se pide siempre, incluso al
// editar: el modelo de lectura no devuelve el id del propietario, así que no
// hay forma de pre-rellenarlo ni de verificar que la edición lo conserve.
type StoreForm struct {
	Nombre        string
	Descripcion   string
	Ubicacion     string
	PropietarioID int
}

// Validate aplica las reglas locales del formulario.
func (f StoreForm) Validate() error {
	var errs []error
	if utf8.RuneCountInString(strings.TrimSpace(f.Nombre)) < MinNombreComercio {
		errs = append(errs, fmt.Errorf("el nombre debe tener al menos %d caracteres", MinNombreComercio))
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Descripcion)) < MinDescripcion {
		errs = append(errs, fmt.Errorf("la descripción debe tener al menos %d caracteres", MinDescripcion))
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Ubicacion)) < MinUbicacion {
		errs = append(errs, fmt.Errorf("la ubicación debe tener al menos %d caracteres", MinUbicacion))
	}
	if f.PropietarioID < 1 {
		errs = append(errs, errors.New("el ID del propietario es obligatorio"))
	}
	return errors.Join(errs...)
}

// Payload construye el cuerpo de creación/edición del comercio.
func (f StoreForm) Payload() dto.StoreRequest {
	return dto.StoreRequest{
		Nombre:        strings.TrimSpace(f.Nombre),
		Descripcion:   strings.TrimSpace(f.Descripcion),
		Ubicacion:     strings.TrimSpace(f.Ubicacion),
		PropietarioID: f.PropietarioID,
	}
}
