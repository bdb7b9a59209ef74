package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/application/screens"
	"github.com/kaelo-app/admin-console/internal/domain"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

func newRutasCmd(deps Deps, screen *screens.RoutesScreen) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "rutas",
		Short:             "Gestión de rutas ciclísticas",
		PersistentPreRunE: guard(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			renderRutas(deps, screen)
			return nil
		},
	}
	cmd.AddCommand(newRutaCrearCmd(deps, screen))
	cmd.AddCommand(newRutaEstadoCmd(deps, screen, "aprobar", entity.RutaAprobada))
	cmd.AddCommand(newRutaEstadoCmd(deps, screen, "rechazar", entity.RutaRechazada))
	cmd.AddCommand(newRutaEliminarCmd(deps, screen))
	return cmd
}

func renderRutas(deps Deps, screen *screens.RoutesScreen) {
	routes := screen.Routes()
	table := newTable(deps.Out, []string{"ID", "Nombre", "Creador", "Distancia", "Dificultad", "Precio", "Estado"})
	for _, r := range routes {
		table.Append([]string{
			strconv.Itoa(r.ID),
			r.Nombre,
			r.Creador.Nombre,
			esMX.Sprintf("%.1f km", r.Distancia),
			renderBadge(entity.BadgeDificultad(r.Dificultad)),
			formatMonto(r.Precio),
			renderBadge(entity.BadgeEstadoRuta(r.Estado)),
		})
	}
	table.Render()
	fmt.Fprintf(deps.Out, "\nTotal de rutas: %d\n", len(routes))
}

func newRutaCrearCmd(deps Deps, screen *screens.RoutesScreen) *cobra.Command {
	var (
		nombre, descripcion, dificultad, precio string
		distancia                               float64
	)
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea una ruta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(precio)
			if err != nil {
				return fmt.Errorf("%w: precio inválido %q", domain.ErrInvalidInput, precio)
			}
			in := dto.CreateRouteRequest{
				Nombre:      nombre,
				Descripcion: descripcion,
				Distancia:   distancia,
				Dificultad:  dificultad,
				Precio:      p,
			}
			if err := screen.Create(cmd.Context(), in); err != nil {
				return err
			}
			renderRutas(deps, screen)
			return nil
		},
	}
	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre de la ruta")
	cmd.Flags().StringVar(&descripcion, "descripcion", "", "descripción")
	cmd.Flags().Float64Var(&distancia, "distancia", 0, "distancia en km")
	cmd.Flags().StringVar(&dificultad, "dificultad", entity.DificultadIntermedia, "fácil, intermedia o difícil")
	cmd.Flags().StringVar(&precio, "precio", "0", "precio en pesos")
	return cmd
}

func newRutaEstadoCmd(deps Deps, screen *screens.RoutesScreen, use, estado string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: fmt.Sprintf("Marca la ruta como %s", estado),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			if err := screen.UpdateStatus(cmd.Context(), id, estado); err != nil {
				return err
			}
			renderRutas(deps, screen)
			return nil
		},
	}
}

func newRutaEliminarCmd(deps Deps, screen *screens.RoutesScreen) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una ruta (pide confirmación)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			if !yes && !confirm(deps.In, deps.Out, fmt.Sprintf("¿Eliminar la ruta %d?", id)) {
				fmt.Fprintln(deps.Out, "Cancelado.")
				return nil
			}
			if err := screen.Delete(cmd.Context(), id); err != nil {
				return err
			}
			renderRutas(deps, screen)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "omite la confirmación")
	return cmd
}
