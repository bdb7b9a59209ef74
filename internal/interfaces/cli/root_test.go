package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
	"github.com/kaelo-app/admin-console/internal/interfaces/cli"
	"github.com/kaelo-app/admin-console/internal/session"
	"github.com/kaelo-app/admin-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub del puerto AdminAPI para ejercitar el árbol de comandos
// ──────────────────────────────────────────────────────────────────────────────

type fakeAPI struct {
	users       []entity.Usuario
	deleteCalls []int
}

var _ ports.AdminAPI = (*fakeAPI)(nil)

func (f *fakeAPI) Login(context.Context, dto.LoginRequest) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{Token: "T"}, nil
}
func (f *fakeAPI) DashboardStats(context.Context) (*entity.DashboardStats, error) {
	return &entity.DashboardStats{}, nil
}
func (f *fakeAPI) ListUsers(context.Context) ([]entity.Usuario, error) { return f.users, nil }
func (f *fakeAPI) CreateUser(context.Context, dto.CreateUserRequest) error {
	return nil
}
func (f *fakeAPI) UpdateUser(context.Context, int, dto.UpdateUserRequest) error { return nil }
func (f *fakeAPI) DeleteUser(_ context.Context, id int) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}
func (f *fakeAPI) ListRoutes(context.Context) ([]entity.Ruta, error)         { return nil, nil }
func (f *fakeAPI) CreateRoute(context.Context, dto.CreateRouteRequest) error { return nil }
func (f *fakeAPI) UpdateRouteStatus(context.Context, int, string) error      { return nil }
func (f *fakeAPI) DeleteRoute(context.Context, int) error                    { return nil }
func (f *fakeAPI) ListStores(context.Context) ([]entity.Comercio, error)     { return nil, nil }
func (f *fakeAPI) CreateStore(context.Context, dto.StoreRequest) error       { return nil }
func (f *fakeAPI) UpdateStore(context.Context, int, dto.StoreRequest) error  { return nil }
func (f *fakeAPI) UpdateStoreStatus(context.Context, int, string) error      { return nil }
func (f *fakeAPI) DeleteStore(context.Context, int) error                    { return nil }
func (f *fakeAPI) ListTransactions(context.Context) ([]entity.Transaccion, error) {
	return nil, nil
}

// newTestDeps arma las dependencias con sesión en un archivo temporal.
func newTestDeps(t *testing.T, api ports.AdminAPI, stdin string) (cli.Deps, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return cli.Deps{
		API:      api,
		Sessions: session.NewStore(filepath.Join(t.TempDir(), "token")),
		Notifier: ports.NopNotifier{},
		Log:      logger.New(logger.Config{Env: "production", Level: "error"}),
		In:       strings.NewReader(stdin),
		Out:      out,
	}, out
}

func execute(t *testing.T, deps cli.Deps, args ...string) error {
	t.Helper()
	root := cli.NewRootCmd(deps)
	root.SetArgs(args)
	root.SetOut(deps.Out)
	root.SetErr(deps.Out)
	return root.ExecuteContext(context.Background())
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SinSesion_BloqueaPantallasProtegidas(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAPI{}, "")

	err := execute(t, deps, "usuarios")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Contains(t, err.Error(), "kaeloctl login")
}

func TestGuard_ConSesion_PermiteElListado(t *testing.T) {
	api := &fakeAPI{users: []entity.Usuario{{ID: 1, Nombre: "Ana", Email: "ana@ejemplo.com", Rol: entity.RolAdmin}}}
	deps, out := newTestDeps(t, api, "")
	require.NoError(t, deps.Sessions.SetToken("T"))

	require.NoError(t, execute(t, deps, "usuarios"))

	assert.Contains(t, out.String(), "Ana")
	assert.Contains(t, out.String(), "Total de usuarios registrados: 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de borrado: cancelar la confirmación no dispara la llamada
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuariosEliminar_Cancelado_NoLlamaAlBackend(t *testing.T) {
	api := &fakeAPI{users: []entity.Usuario{{ID: 3, Nombre: "Luis"}}}
	deps, out := newTestDeps(t, api, "n\n")
	require.NoError(t, deps.Sessions.SetToken("T"))

	require.NoError(t, execute(t, deps, "usuarios", "eliminar", "3"))

	assert.Empty(t, api.deleteCalls, "cancelar la confirmación no debe invocar el delete")
	assert.Contains(t, out.String(), "Cancelado.")
}

func TestUsuariosEliminar_Confirmado_LlamaExactamenteUnaVez(t *testing.T) {
	api := &fakeAPI{users: []entity.Usuario{{ID: 3, Nombre: "Luis"}}}
	deps, _ := newTestDeps(t, api, "s\n")
	require.NoError(t, deps.Sessions.SetToken("T"))

	require.NoError(t, execute(t, deps, "usuarios", "eliminar", "3"))

	assert.Equal(t, []int{3}, api.deleteCalls)
}

func TestUsuariosEliminar_FlagYes_OmiteLaConfirmacion(t *testing.T) {
	api := &fakeAPI{}
	deps, _ := newTestDeps(t, api, "") // sin stdin: sin --yes fallaría la lectura
	require.NoError(t, deps.Sessions.SetToken("T"))

	require.NoError(t, execute(t, deps, "usuarios", "eliminar", "7", "--yes"))

	assert.Equal(t, []int{7}, api.deleteCalls)
}

func TestUsuariosEliminar_EntradaVacia_SeInterpretaComoNo(t *testing.T) {
	api := &fakeAPI{}
	deps, _ := newTestDeps(t, api, "\n")
	require.NoError(t, deps.Sessions.SetToken("T"))

	require.NoError(t, execute(t, deps, "usuarios", "eliminar", "3"))

	assert.Empty(t, api.deleteCalls)
}

func TestUsuariosEliminar_IDInvalido(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAPI{}, "")
	require.NoError(t, deps.Sessions.SetToken("T"))

	err := execute(t, deps, "usuarios", "eliminar", "abc", "--yes")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout borra la sesión persistida
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_BorraElToken(t *testing.T) {
	deps, _ := newTestDeps(t, &fakeAPI{}, "")
	require.NoError(t, deps.Sessions.SetToken("T"))

	require.NoError(t, execute(t, deps, "logout"))

	assert.Empty(t, deps.Sessions.Token())
}
