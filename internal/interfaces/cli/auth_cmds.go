package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaelo-app/admin-console/internal/application/dto"
	"github.com/kaelo-app/admin-console/internal/domain"
	"github.com/kaelo-app/admin-console/pkg/token"
)

func newLoginCmd(deps Deps) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión como administrador",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
			}
			_, err := deps.API.Login(cmd.Context(), dto.LoginRequest{Email: email, Password: password})
			if err != nil {
				deps.Notifier.Error("Error", "Credenciales incorrectas o fallo del servidor")
				return err
			}
			deps.Notifier.Success("Sesión iniciada", "Bienvenido al panel de administración")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del administrador")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	return cmd
}

func newLogoutCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra el token local",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Sessions.ClearToken(); err != nil {
				return err
			}
			deps.Notifier.Success("Sesión cerrada", "El token local ha sido eliminado")
			return nil
		},
	}
}

func newWhoamiCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Muestra la identidad de la sesión actual",
		PreRunE: guard(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := token.Inspect(deps.Sessions.Token())
			if err != nil {
				// Token opaco no-JWT: sigue siendo una sesión válida para el backend.
				fmt.Fprintln(deps.Out, "Sesión activa (token opaco, sin claims legibles)")
				return nil
			}
			if info.Email != "" {
				fmt.Fprintf(deps.Out, "Email:  %s\n", info.Email)
			}
			if info.Subject != "" {
				fmt.Fprintf(deps.Out, "Sujeto: %s\n", info.Subject)
			}
			if info.Rol != "" {
				fmt.Fprintf(deps.Out, "Rol:    %s\n", info.Rol)
			}
			if !info.ExpiresAt.IsZero() {
				fmt.Fprintf(deps.Out, "Expira: %s\n", formatFecha(info.ExpiresAt))
				if info.Expired() {
					return errors.Join(domain.ErrUnauthorized, errors.New("el token ya expiró; vuelve a iniciar sesión"))
				}
			}
			return nil
		},
	}
}
