package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kaelo-app/admin-console/internal/application/screens"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

func newTransaccionesCmd(deps Deps, screen *screens.TransactionsScreen) *cobra.Command {
	return &cobra.Command{
		Use:     "transacciones",
		Short:   "Historial de transacciones de la plataforma",
		PreRunE: guard(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}
			txs := screen.Transactions()
			table := newTable(deps.Out, []string{"ID", "Usuario", "Email", "Tipo", "Ruta/Producto", "Monto"})
			for _, t := range txs {
				table.Append([]string{
					"#" + strconv.Itoa(t.ID),
					t.Usuario.Nombre,
					t.Usuario.Email,
					renderBadge(entity.BadgeTipoTransaccion(t.Tipo)),
					t.RutaNombre(),
					formatMonto(t.Monto),
				})
			}
			table.Render()
			fmt.Fprintf(deps.Out, "\nTotal de transacciones: %d | Monto total: %s\n",
				len(txs), formatMonto(screen.Total()))
			return nil
		},
	}
}
