package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kaelo-app/admin-console/internal/application/screens"
	"github.com/kaelo-app/admin-console/internal/domain"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
	"github.com/kaelo-app/admin-console/internal/forms"
)

func newComerciosCmd(deps Deps, screen *screens.StoresScreen) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "comercios",
		Short:             "Gestión de comercios registrados",
		PersistentPreRunE: guard(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			renderComercios(deps, screen)
			return nil
		},
	}
	cmd.AddCommand(newComercioCrearCmd(deps, screen))
	cmd.AddCommand(newComercioEditarCmd(deps, screen))
	cmd.AddCommand(newComercioEstadoCmd(deps, screen, "activar", entity.ComercioActivo))
	cmd.AddCommand(newComercioEstadoCmd(deps, screen, "desactivar", entity.ComercioInactivo))
	cmd.AddCommand(newComercioEliminarCmd(deps, screen))
	return cmd
}

func renderComercios(deps Deps, screen *screens.StoresScreen) {
	stores := screen.Stores()
	table := newTable(deps.Out, []string{"ID", "Nombre", "Propietario", "Ubicación", "Estado"})
	for _, c := range stores {
		table.Append([]string{
			strconv.Itoa(c.ID),
			c.Nombre,
			c.Propietario.Nombre,
			c.Ubicacion,
			renderBadge(entity.BadgeEstadoComercio(c.Estado)),
		})
	}
	table.Render()
	fmt.Fprintf(deps.Out, "\nTotal de comercios: %d\n", len(stores))
}

func storeFormFlags(cmd *cobra.Command, form *forms.StoreForm) {
	cmd.Flags().StringVar(&form.Nombre, "nombre", "", "nombre del comercio")
	cmd.Flags().StringVar(&form.Descripcion, "descripcion", "", "descripción del comercio")
	cmd.Flags().StringVar(&form.Ubicacion, "ubicacion", "", "ubicación")
	cmd.Flags().IntVar(&form.PropietarioID, "propietario-id", 0, "id numérico del usuario propietario (rol Comerciante)")
}

func newComercioCrearCmd(deps Deps, screen *screens.StoresScreen) *cobra.Command {
	var form forms.StoreForm
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea un comercio nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Create(cmd.Context(), form); err != nil {
				return err
			}
			renderComercios(deps, screen)
			return nil
		},
	}
	storeFormFlags(cmd, &form)
	return cmd
}

func newComercioEditarCmd(deps Deps, screen *screens.StoresScreen) *cobra.Command {
	var form forms.StoreForm
	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Edita un comercio existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			// Pre-rellenar con los valores actuales. El propietario no puede
			// pre-rellenarse: el modelo de lectura no devuelve su id, así que
			// --propietario-id es obligatorio también al editar.
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			var actual *entity.Comercio
			for _, c := range screen.Stores() {
				if c.ID == id {
					actual = &c
					break
				}
			}
			if actual == nil {
				return fmt.Errorf("%w: no existe comercio con id %d", domain.ErrInvalidInput, id)
			}
			if !cmd.Flags().Changed("nombre") {
				form.Nombre = actual.Nombre
			}
			if !cmd.Flags().Changed("descripcion") {
				form.Descripcion = actual.Descripcion
			}
			if !cmd.Flags().Changed("ubicacion") {
				form.Ubicacion = actual.Ubicacion
			}
			if err := screen.Update(cmd.Context(), id, form); err != nil {
				return err
			}
			renderComercios(deps, screen)
			return nil
		},
	}
	storeFormFlags(cmd, &form)
	return cmd
}

func newComercioEstadoCmd(deps Deps, screen *screens.StoresScreen, use, estado string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: fmt.Sprintf("Marca el comercio como %s", estado),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			if err := screen.UpdateStatus(cmd.Context(), id, estado); err != nil {
				return err
			}
			renderComercios(deps, screen)
			return nil
		},
	}
}

func newComercioEliminarCmd(deps Deps, screen *screens.StoresScreen) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un comercio (pide confirmación)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			if !yes && !confirm(deps.In, deps.Out, fmt.Sprintf("¿Eliminar el comercio %d?", id)) {
				fmt.Fprintln(deps.Out, "Cancelado.")
				return nil
			}
			if err := screen.Delete(cmd.Context(), id); err != nil {
				return err
			}
			renderComercios(deps, screen)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "omite la confirmación")
	return cmd
}
