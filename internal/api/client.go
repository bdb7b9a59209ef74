// Package api implementa el cliente HTTP tipado del backend de Kaelo.
//
// Centraliza la inyección del header de autenticación y las formas de
// petición/respuesta de todos los endpoints de administración. Cada operación
// se ejecuta exactamente una vez por invocación: sin reintentos; la
// cancelación viene solo del context del llamador.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
	"github.com/kaelo-app/admin-console/internal/session"
	"github.com/kaelo-app/admin-console/pkg/logger"
)

// AuthHeader header propietario del backend para el token de sesión.
const AuthHeader = "x-auth-token"

// Verificar en tiempo de compilación que Client implementa el puerto AdminAPI.
var _ ports.AdminAPI = (*Client)(nil)

// Client cliente del backend de administración. Usa net/http de la stdlib;
// el backend no publica SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	log        *logger.Logger
}

// Options parámetros de construcción del cliente.
type Options struct {
	BaseURL string        // raíz del backend, sin barra final
	Timeout time.Duration // timeout de red; 0 = sin timeout, como el fetch original
}

// New construye el cliente. El Store de sesión se pasa explícitamente: el
// cliente lo lee en cada petición protegida y solo lo escribe en Login.
func New(opts Options, sessions *session.Store, log *logger.Logger) *Client {
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		sessions:   sessions,
		log:        log,
	}
}

// ── Núcleo de peticiones ──────────────────────────────────────────────────────

// do arma y ejecuta una petición JSON contra baseURL+path. Si auth es true
// adjunta el token de sesión actual. out, si no es nil, recibe el JSON de la
// respuesta. opMsg nombra la operación para el error genérico ("obtener
// usuarios", "crear comercio", …): por contrato no se distingue 4xx de 5xx ni
// se expone el cuerpo de error del backend.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out interface{}, opMsg string) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error al %s: serializar cuerpo: %w", opMsg, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error al %s: %w", opMsg, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set(AuthHeader, c.sessions.Token())
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).Err(err).Msg("fallo de transporte")
		return fmt.Errorf("error al %s: %w", opMsg, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("petición al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Descartar el cuerpo: el contrato solo expone el error genérico.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("error al %s: %w", opMsg, domain.ErrUnauthorized)
		}
		return fmt.Errorf("error al %s: %w (HTTP %d)", opMsg, domain.ErrRequestFailed, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error al %s: decodificar respuesta: %w", opMsg, err)
		}
	}
	return nil
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login autentica contra el backend y, si el login es exitoso, persiste el
// token en el Store de sesión antes de retornar. En fallo el Store queda
// intacto. Es la única operación que no lleva header de autenticación.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", false, in, &out, "iniciar sesión"); err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := c.sessions.SetToken(out.Token); err != nil {
			return nil, fmt.Errorf("error al iniciar sesión: guardar token: %w", err)
		}
	}
	return &out, nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardStats obtiene la foto agregada de la plataforma.
func (c *Client) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var out entity.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", true, nil, &out, "obtener estadísticas"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// ListUsers lista todos los usuarios de la plataforma.
func (c *Client) ListUsers(ctx context.Context) ([]entity.Usuario, error) {
	var out []entity.Usuario
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", true, nil, &out, "obtener usuarios"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser crea un usuario nuevo.
func (c *Client) CreateUser(ctx context.Context, in dto.CreateUserRequest) error {
	return c.do(ctx, http.MethodPost, "/api/admin/users", true, in, nil, "crear usuario")
}

// UpdateUser edita un usuario existente. Si in.Password está vacío el campo
// no viaja en el JSON (ver dto.UpdateUserRequest).
func (c *Client) UpdateUser(ctx context.Context, id int, in dto.UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", id), true, in, nil, "actualizar usuario")
}

// DeleteUser elimina un usuario.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), true, nil, nil, "eliminar usuario")
}

// ── Rutas ─────────────────────────────────────────────────────────────────────

// ListRoutes lista todas las rutas ciclísticas.
func (c *Client) ListRoutes(ctx context.Context) ([]entity.Ruta, error) {
	var out []entity.Ruta
	if err := c.do(ctx, http.MethodGet, "/api/admin/routes", true, nil, &out, "obtener rutas"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoute crea una ruta nueva.
func (c *Client) CreateRoute(ctx context.Context, in dto.CreateRouteRequest) error {
	return c.do(ctx, http.MethodPost, "/api/admin/routes", true, in, nil, "crear la ruta")
}

// UpdateRouteStatus cambia el estado de una ruta. estado es texto libre; el
// cliente no impone la máquina de estados del panel.
func (c *Client) UpdateRouteStatus(ctx context.Context, id int, estado string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/routes/%d/status", id), true,
		dto.StatusUpdateRequest{Estado: estado}, nil, "actualizar estado de ruta")
}

// DeleteRoute elimina una ruta.
func (c *Client) DeleteRoute(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/routes/%d", id), true, nil, nil, "eliminar ruta")
}

// ── Comercios ─────────────────────────────────────────────────────────────────

// ListStores lista todos los comercios registrados.
func (c *Client) ListStores(ctx context.Context) ([]entity.Comercio, error) {
	var out []entity.Comercio
	if err := c.do(ctx, http.MethodGet, "/api/admin/stores", true, nil, &out, "obtener comercios"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStore crea un comercio nuevo.
func (c *Client) CreateStore(ctx context.Context, in dto.StoreRequest) error {
	return c.do(ctx, http.MethodPost, "/api/admin/stores", true, in, nil, "crear el comercio")
}

// UpdateStore edita un comercio existente.
func (c *Client) UpdateStore(ctx context.Context, id int, in dto.StoreRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/stores/%d", id), true, in, nil, "actualizar el comercio")
}

// UpdateStoreStatus cambia el estado de un comercio.
func (c *Client) UpdateStoreStatus(ctx context.Context, id int, estado string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/stores/%d/status", id), true,
		dto.StatusUpdateRequest{Estado: estado}, nil, "actualizar estado de comercio")
}

// DeleteStore elimina un comercio.
func (c *Client) DeleteStore(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/stores/%d", id), true, nil, nil, "eliminar el comercio")
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// ListTransactions lista el historial de transacciones (solo lectura).
func (c *Client) ListTransactions(ctx context.Context) ([]entity.Transaccion, error) {
	var out []entity.Transaccion
	if err := c.do(ctx, http.MethodGet, "/api/admin/transactions", true, nil, &out, "obtener transacciones"); err != nil {
		return nil, err
	}
	return out, nil
}
