package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaelo-app/admin-console/internal/application/screens"
)

func newDashboardCmd(deps Deps, screen *screens.DashboardScreen) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Short:   "Resumen general de la plataforma",
		PreRunE: guard(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			stats := screen.Stats()
			fmt.Fprintln(deps.Out, "Resumen general de la plataforma Ruta Bici-Maya")
			fmt.Fprintln(deps.Out)
			fmt.Fprintf(deps.Out, "  Total Usuarios:    %s\n", esMX.Sprintf("%d", stats.TotalUsers))
			fmt.Fprintf(deps.Out, "  Total Rutas:       %s\n", esMX.Sprintf("%d", stats.TotalRoutes))
			fmt.Fprintf(deps.Out, "  Comercios Activos: %s\n", esMX.Sprintf("%d", stats.ActiveStores))
			fmt.Fprintf(deps.Out, "  Ventas Totales:    %s\n", formatMonto(stats.TotalSales))
			return nil
		},
	}
}
