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

func newUsuariosCmd(deps Deps, screen *screens.UsersScreen) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "usuarios",
		Short:             "Gestión de usuarios de la plataforma",
		PersistentPreRunE: guard(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			renderUsuarios(deps, screen)
			return nil
		},
	}
	cmd.AddCommand(newUsuarioCrearCmd(deps, screen))
	cmd.AddCommand(newUsuarioEditarCmd(deps, screen))
	cmd.AddCommand(newUsuarioEliminarCmd(deps, screen))
	return cmd
}

func renderUsuarios(deps Deps, screen *screens.UsersScreen) {
	users := screen.Users()
	table := newTable(deps.Out, []string{"ID", "Nombre", "Email", "Rol", "Fecha de Registro"})
	for _, u := range users {
		table.Append([]string{
			strconv.Itoa(u.ID),
			u.Nombre,
			u.Email,
			renderBadge(entity.BadgeRol(u.Rol)),
			formatFecha(u.CreatedAt),
		})
	}
	table.Render()
	fmt.Fprintf(deps.Out, "\nTotal de usuarios registrados: %d\n", len(users))
}

func userFormFlags(cmd *cobra.Command, form *forms.UserForm) {
	cmd.Flags().StringVar(&form.Nombre, "nombre", "", "nombre completo")
	cmd.Flags().StringVar(&form.Email, "email", "", "email del usuario")
	cmd.Flags().StringVar(&form.Password, "password", "", "contraseña (en edición, vacío = sin cambio)")
	cmd.Flags().StringVar(&form.Rol, "rol", entity.RolCiclista, "rol: Admin, Comerciante, Creador de Ruta o Ciclista")
}

func newUsuarioCrearCmd(deps Deps, screen *screens.UsersScreen) *cobra.Command {
	var form forms.UserForm
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea un usuario nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Create(cmd.Context(), form); err != nil {
				return err
			}
			renderUsuarios(deps, screen)
			return nil
		},
	}
	userFormFlags(cmd, &form)
	return cmd
}

func newUsuarioEditarCmd(deps Deps, screen *screens.UsersScreen) *cobra.Command {
	var form forms.UserForm
	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Edita un usuario existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			// Pre-rellenar con los valores actuales, como el diálogo de edición;
			// la contraseña nunca se pre-rellena.
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			var actual *entity.Usuario
			for _, u := range screen.Users() {
				if u.ID == id {
					actual = &u
					break
				}
			}
			if actual == nil {
				return fmt.Errorf("%w: no existe usuario con id %d", domain.ErrInvalidInput, id)
			}
			if !cmd.Flags().Changed("nombre") {
				form.Nombre = actual.Nombre
			}
			if !cmd.Flags().Changed("email") {
				form.Email = actual.Email
			}
			if !cmd.Flags().Changed("rol") {
				form.Rol = actual.Rol
			}
			if err := screen.Update(cmd.Context(), id, form); err != nil {
				return err
			}
			renderUsuarios(deps, screen)
			return nil
		},
	}
	userFormFlags(cmd, &form)
	return cmd
}

func newUsuarioEliminarCmd(deps Deps, screen *screens.UsersScreen) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un usuario (pide confirmación)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, args[0])
			}
			if !yes && !confirm(deps.In, deps.Out, fmt.Sprintf("¿Eliminar el usuario %d?", id)) {
				fmt.Fprintln(deps.Out, "Cancelado.")
				return nil
			}
			if err := screen.Delete(cmd.Context(), id); err != nil {
				return err
			}
			renderUsuarios(deps, screen)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "omite la confirmación")
	return cmd
}
