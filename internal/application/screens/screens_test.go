package screens_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/application/screens"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
	"github.com/kaelo-app/admin-console/internal/forms"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs del puerto AdminAPI y del Notifier
// ──────────────────────────────────────────────────────────────────────────────

var errBackend = errors.New("backend caído")

// stubAPI implementa ports.AdminAPI con funciones inyectables y contadores.
type stubAPI struct {
	listUsers    func() ([]entity.Usuario, error)
	listRoutes   func() ([]entity.Ruta, error)
	listStores   func() ([]entity.Comercio, error)
	listTxs      func() ([]entity.Transaccion, error)
	stats        func() (*entity.DashboardStats, error)
	updateStatus func(id int, estado string) error

	createUserCalls int
	deleteUserCalls int
	createStoreN    int
	listUserCalls   int
	listRouteCalls  int
	listStoreCalls  int
}

var _ ports.AdminAPI = (*stubAPI)(nil)

func (s *stubAPI) Login(context.Context, dto.LoginRequest) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{Token: "T"}, nil
}

func (s *stubAPI) DashboardStats(context.Context) (*entity.DashboardStats, error) {
	if s.stats != nil {
		return s.stats()
	}
	return &entity.DashboardStats{}, nil
}

func (s *stubAPI) ListUsers(context.Context) ([]entity.Usuario, error) {
	s.listUserCalls++
	if s.listUsers != nil {
		return s.listUsers()
	}
	return nil, nil
}

func (s *stubAPI) CreateUser(context.Context, dto.CreateUserRequest) error {
	s.createUserCalls++
	return nil
}

func (s *stubAPI) UpdateUser(context.Context, int, dto.UpdateUserRequest) error { return nil }

func (s *stubAPI) DeleteUser(context.Context, int) error {
	s.deleteUserCalls++
	return nil
}

func (s *stubAPI) ListRoutes(context.Context) ([]entity.Ruta, error) {
	s.listRouteCalls++
	if s.listRoutes != nil {
		return s.listRoutes()
	}
	return nil, nil
}

func (s *stubAPI) CreateRoute(context.Context, dto.CreateRouteRequest) error { return nil }

func (s *stubAPI) UpdateRouteStatus(_ context.Context, id int, estado string) error {
	if s.updateStatus != nil {
		return s.updateStatus(id, estado)
	}
	return nil
}

func (s *stubAPI) DeleteRoute(context.Context, int) error { return nil }

func (s *stubAPI) ListStores(context.Context) ([]entity.Comercio, error) {
	s.listStoreCalls++
	if s.listStores != nil {
		return s.listStores()
	}
	return nil, nil
}

func (s *stubAPI) CreateStore(context.Context, dto.StoreRequest) error {
	s.createStoreN++
	return nil
}

func (s *stubAPI) UpdateStore(context.Context, int, dto.StoreRequest) error { return nil }

func (s *stubAPI) UpdateStoreStatus(_ context.Context, id int, estado string) error {
	if s.updateStatus != nil {
		return s.updateStatus(id, estado)
	}
	return nil
}

func (s *stubAPI) DeleteStore(context.Context, int) error { return nil }

func (s *stubAPI) ListTransactions(context.Context) ([]entity.Transaccion, error) {
	if s.listTxs != nil {
		return s.listTxs()
	}
	return nil, nil
}

// spyNotifier acumula las notificaciones emitidas.
type spyNotifier struct {
	mu        sync.Mutex
	successes []string
	errores   []string
}

func (n *spyNotifier) Success(title, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title+": "+detail)
}

func (n *spyNotifier) Error(title, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errores = append(n.errores, title+": "+detail)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stale-while-revalidate: el último estado bueno se conserva en fallos
// ──────────────────────────────────────────────────────────────────────────────

func TestUsersScreen_RefreshFallido_ConservaColeccionAnterior(t *testing.T) {
	ok := true
	api := &stubAPI{listUsers: func() ([]entity.Usuario, error) {
		if !ok {
			return nil, errBackend
		}
		return []entity.Usuario{{ID: 1, Nombre: "Ana"}, {ID: 2, Nombre: "Luis"}}, nil
	}}
	notify := &spyNotifier{}
	screen := screens.NewUsersScreen(api, notify)

	require.NoError(t, screen.Refresh(context.Background()))
	require.Len(t, screen.Users(), 2)

	ok = false
	require.Error(t, screen.Refresh(context.Background()))

	assert.Len(t, screen.Users(), 2, "un refresh fallido debe conservar la última colección buena")
	assert.True(t, screen.Loaded())
	assert.Contains(t, notify.errores[0], "No se pudieron cargar los usuarios")
}

func TestUsersScreen_PrimeraCargaFallida_EstadoVacioExplicito(t *testing.T) {
	api := &stubAPI{listUsers: func() ([]entity.Usuario, error) { return nil, errBackend }}
	screen := screens.NewUsersScreen(api, &spyNotifier{})

	require.Error(t, screen.Refresh(context.Background()))

	assert.True(t, screen.Loaded(), "tras el primer fetch fallido la pantalla queda cargada y vacía")
	assert.Empty(t, screen.Users())
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de mutación: notificar y re-traer exactamente una vez
// ──────────────────────────────────────────────────────────────────────────────

func TestUsersScreen_Create_RefetchExactamenteUnaVez(t *testing.T) {
	api := &stubAPI{}
	notify := &spyNotifier{}
	screen := screens.NewUsersScreen(api, notify)

	form := forms.UserForm{Nombre: "Ana López", Email: "ana@ejemplo.com", Password: "secreto1", Rol: "Ciclista"}
	require.NoError(t, screen.Create(context.Background(), form))

	assert.Equal(t, 1, api.createUserCalls)
	assert.Equal(t, 1, api.listUserCalls, "tras crear debe haber exactamente un re-fetch")
	require.Len(t, notify.successes, 1)
	assert.Contains(t, notify.successes[0], "Usuario creado")
}

func TestUsersScreen_FormularioInvalido_NoDisparaPeticion(t *testing.T) {
	api := &stubAPI{}
	notify := &spyNotifier{}
	screen := screens.NewUsersScreen(api, notify)

	form := forms.UserForm{Nombre: "A", Email: "no-es-email", Rol: "Ciclista"}
	require.Error(t, screen.Create(context.Background(), form))

	assert.Zero(t, api.createUserCalls, "la validación local debe impedir el envío")
	assert.Zero(t, api.listUserCalls)
	assert.NotEmpty(t, notify.errores)
}

func TestUsersScreen_Delete_RefetchReflejaElBorrado(t *testing.T) {
	users := []entity.Usuario{{ID: 1, Nombre: "Ana"}, {ID: 2, Nombre: "Luis"}}
	api := &stubAPI{listUsers: func() ([]entity.Usuario, error) { return users, nil }}
	screen := screens.NewUsersScreen(api, &spyNotifier{})

	require.NoError(t, screen.Refresh(context.Background()))
	require.Len(t, screen.Users(), 2)

	// El backend es la autoridad: tras el delete, su lista ya no trae al usuario.
	users = []entity.Usuario{{ID: 2, Nombre: "Luis"}}
	require.NoError(t, screen.Delete(context.Background(), 1))

	assert.Equal(t, 1, api.deleteUserCalls)
	require.Len(t, screen.Users(), 1)
	assert.Equal(t, 2, screen.Users()[0].ID, "la fila borrada no debe seguir en la colección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario B: aprobar una ruta pendiente
// ──────────────────────────────────────────────────────────────────────────────

func TestRoutesScreen_Aprobar_EnviaEstadoYRefresca(t *testing.T) {
	estado := entity.RutaPendiente
	var enviado string
	api := &stubAPI{
		listRoutes: func() ([]entity.Ruta, error) {
			return []entity.Ruta{{ID: 1, Nombre: "Ruta Maya", Estado: estado}}, nil
		},
		updateStatus: func(id int, e string) error {
			enviado = e
			estado = e // el backend aplica la transición
			return nil
		},
	}
	notify := &spyNotifier{}
	screen := screens.NewRoutesScreen(api, notify)

	require.NoError(t, screen.Refresh(context.Background()))
	require.True(t, screen.Routes()[0].Pendiente())

	require.NoError(t, screen.Approve(context.Background(), 1))

	assert.Equal(t, entity.RutaAprobada, enviado)
	ruta := screen.Routes()[0]
	assert.Equal(t, entity.ToneSuccess, entity.BadgeEstadoRuta(ruta.Estado).Tone,
		"tras aprobar, el badge de la ruta re-traída debe ser el de aprobada")
	assert.Contains(t, notify.successes[0], "aprobada")
}

func TestRoutesScreen_MutacionFallida_ConservaEstado(t *testing.T) {
	api := &stubAPI{
		listRoutes: func() ([]entity.Ruta, error) {
			return []entity.Ruta{{ID: 1, Estado: entity.RutaPendiente}}, nil
		},
		updateStatus: func(int, string) error { return errBackend },
	}
	notify := &spyNotifier{}
	screen := screens.NewRoutesScreen(api, notify)

	require.NoError(t, screen.Refresh(context.Background()))
	calls := api.listRouteCalls

	require.Error(t, screen.Approve(context.Background(), 1))

	assert.Equal(t, calls, api.listRouteCalls, "una mutación fallida no debe re-traer la colección")
	assert.Equal(t, entity.RutaPendiente, screen.Routes()[0].Estado)
	assert.NotEmpty(t, notify.errores)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario C: crear un comercio válido
// ──────────────────────────────────────────────────────────────────────────────

func TestStoresScreen_CrearComercioValido(t *testing.T) {
	api := &stubAPI{}
	notify := &spyNotifier{}
	screen := screens.NewStoresScreen(api, notify)

	form := forms.StoreForm{
		Nombre:        "Tienda X",
		Descripcion:   "una tienda de diez caracteres",
		Ubicacion:     "Calle 1",
		PropietarioID: 5,
	}
	require.NoError(t, screen.Create(context.Background(), form))

	assert.Equal(t, 1, api.createStoreN)
	assert.Equal(t, 1, api.listStoreCalls, "tras crear debe re-traerse la lista de comercios")
	assert.Contains(t, notify.successes[0], "Comercio creado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionsScreen_TotalDecimal(t *testing.T) {
	api := &stubAPI{listTxs: func() ([]entity.Transaccion, error) {
		return []entity.Transaccion{
			{ID: 1, Monto: decimal.RequireFromString("100.10")},
			{ID: 2, Monto: decimal.RequireFromString("0.90")},
		}, nil
	}}
	screen := screens.NewTransactionsScreen(api, &spyNotifier{})

	require.NoError(t, screen.Refresh(context.Background()))
	assert.True(t, screen.Total().Equal(decimal.RequireFromString("101.00")))
}

func TestDashboardScreen_FalloConservaFotoAnterior(t *testing.T) {
	ok := true
	api := &stubAPI{stats: func() (*entity.DashboardStats, error) {
		if !ok {
			return nil, errBackend
		}
		return &entity.DashboardStats{TotalUsers: 7}, nil
	}}
	notify := &spyNotifier{}
	screen := screens.NewDashboardScreen(api, notify)

	require.NoError(t, screen.Refresh(context.Background()))
	ok = false
	require.Error(t, screen.Refresh(context.Background()))

	require.NotNil(t, screen.Stats())
	assert.Equal(t, 7, screen.Stats().TotalUsers, "el fallo debe conservar la última foto buena")
	assert.NotEmpty(t, notify.errores)
}
