// Package cli implementa el front-end de terminal del panel: el árbol de
// comandos es la barra lateral, cada subcomando de listado es una pantalla y
// el guard de sesión es el equivalente del layout protegido.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/application/screens"
	"github.com/kaelo-app/admin-console/internal/domain"
	"github.com/kaelo-app/admin-console/internal/session"
	"github.com/kaelo-app/admin-console/pkg/logger"
)

// Deps dependencias para el árbol de comandos.
type Deps struct {
	API      ports.AdminAPI
	Sessions *session.Store
	Notifier ports.Notifier
	Log      *logger.Logger
	In       io.Reader
	Out      io.Writer
}

// NewRootCmd construye el comando raíz con todas las pantallas colgadas.
func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "kaeloctl",
		Short:         "Panel de administración de la plataforma Ruta Bici-Maya",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	usersScreen := screens.NewUsersScreen(deps.API, deps.Notifier)
	routesScreen := screens.NewRoutesScreen(deps.API, deps.Notifier)
	storesScreen := screens.NewStoresScreen(deps.API, deps.Notifier)
	txScreen := screens.NewTransactionsScreen(deps.API, deps.Notifier)
	dashScreen := screens.NewDashboardScreen(deps.API, deps.Notifier)

	root.AddCommand(
		newLoginCmd(deps),
		newLogoutCmd(deps),
		newWhoamiCmd(deps),
		newDashboardCmd(deps, dashScreen),
		newUsuariosCmd(deps, usersScreen),
		newRutasCmd(deps, routesScreen),
		newComerciosCmd(deps, storesScreen),
		newTransaccionesCmd(deps, txScreen),
	)
	return root
}

// guard verifica que haya una sesión persistida antes de ejecutar cualquier
// comando protegido. Es solo una conveniencia de cliente: el backend autoriza
// cada petición por su cuenta con el token.
func guard(deps Deps) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if deps.Sessions.Token() == "" {
			return fmt.Errorf("%w: inicia sesión con `kaeloctl login`", domain.ErrNoSession)
		}
		return nil
	}
}
