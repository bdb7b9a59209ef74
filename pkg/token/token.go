package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims campos de interés del token de sesión emitido por el backend.
// El cliente trata el token como opaco para autenticarse; esta inspección es
// solo informativa (kaeloctl whoami) y NO verifica la firma: el secreto vive
// en el backend.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Rol    string `json:"rol,omitempty"`
}

// Info resumen legible de un token de sesión.
type Info struct {
	Subject   string
	Email     string
	Rol       string
	IssuedAt  time.Time // cero si el claim no está presente
	ExpiresAt time.Time // cero si el claim no está presente
}

// Expired indica si el token trae expiración y ya pasó.
func (i Info) Expired() bool {
	return !i.ExpiresAt.IsZero() && time.Now().After(i.ExpiresAt)
}

// Inspect decodifica los claims del token sin verificar la firma.
// Retorna error si el token no es un JWT bien formado.
func Inspect(tokenString string) (*Info, error) {
	parser := jwt.NewParser()
	var claims Claims
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, fmt.Errorf("token: decodificar claims: %w", err)
	}

	info := &Info{
		Subject: claims.Subject,
		Email:   claims.Email,
		Rol:     claims.Rol,
	}
	if claims.Subject == "" && claims.UserID != "" {
		info.Subject = claims.UserID
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
