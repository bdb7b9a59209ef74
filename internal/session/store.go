// Package session persiste el token de sesión del panel de administración.
//
// Es el equivalente del localStorage del navegador: exactamente un valor, bajo
// una ruta fija, que sobrevive reinicios del proceso. No hay lógica de
// expiración; un token revocado solo se descubre cuando el backend rechaza la
// siguiente petición.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenFileName nombre del archivo de token dentro del directorio de configuración.
const TokenFileName = "token"

// Store guarda el token en un archivo. Se construye explícitamente y se pasa
// al cliente API y al guard de la CLI; no hay estado global de paquete.
type Store struct {
	path string
}

// NewStore crea un Store sobre la ruta dada. Si path está vacío usa
// DefaultPath().
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath devuelve la ruta por defecto del token:
// <config-dir>/kaelo/token (ej. ~/.config/kaelo/token en Linux).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "kaelo", TokenFileName)
}

// Path devuelve la ruta del archivo de token.
func (s *Store) Path() string { return s.path }

// SetToken persiste el token, sobrescribiendo cualquier valor anterior.
func (s *Store) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Token devuelve el token persistido, o cadena vacía si no hay sesión.
// Nunca propaga error: un archivo ausente o ilegible equivale a "sin sesión".
func (s *Store) Token() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// ClearToken elimina el token persistido. Borrar una sesión inexistente no es error.
func (s *Store) ClearToken() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
