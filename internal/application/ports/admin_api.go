package ports

import (
	"context"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

// AdminAPI define el puerto hacia el backend de administración. La
// implementación concreta es el cliente HTTP; para tests se inyecta un stub.
type AdminAPI interface {
	// Auth
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)

	// Dashboard
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)

	// Usuarios
	ListUsers(ctx context.Context) ([]entity.Usuario, error)
	CreateUser(ctx context.Context, in dto.CreateUserRequest) error
	UpdateUser(ctx context.Context, id int, in dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int) error

	// Rutas
	ListRoutes(ctx context.Context) ([]entity.Ruta, error)
	CreateRoute(ctx context.Context, in dto.CreateRouteRequest) error
	UpdateRouteStatus(ctx context.Context, id int, estado string) error
	DeleteRoute(ctx context.Context, id int) error

	// Comercios
	ListStores(ctx context.Context) ([]entity.Comercio, error)
	CreateStore(ctx context.Context, in dto.StoreRequest) error
	UpdateStore(ctx context.Context, id int, in dto.StoreRequest) error
	UpdateStoreStatus(ctx context.Context, id int, estado string) error
	DeleteStore(ctx context.Context, id int) error

	// Transacciones (solo lectura)
	ListTransactions(ctx context.Context) ([]entity.Transaccion, error)
}
