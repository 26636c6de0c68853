package sheets

import (
	"context"
	"fmt"

	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
)

// PedidoRepository reads and appends the BD_Pedidos ledger. The ledger
// is append-only: rows are never updated or deleted from here.
type PedidoRepository struct {
	values Values
}

func NewPedidoRepository(values Values) *PedidoRepository {
	return &PedidoRepository{values: values}
}

func (r *PedidoRepository) ListFolios(ctx context.Context) ([]string, error) {
	rows, err := r.values.Get(ctx, rangoFolios)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read folios: %w", err)
	}

	folios := make([]string, 0, len(rows))
	for _, row := range rows {
		if f := celda(row, 0); f != "" {
			folios = append(folios, f)
		}
	}
	return folios, nil
}

func (r *PedidoRepository) ListFilas(ctx context.Context) ([]pedido.FilaPedido, error) {
	rows, err := r.values.Get(ctx, rangoPedidos)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read pedidos: %w", err)
	}

	filas := make([]pedido.FilaPedido, 0, len(rows))
	for _, row := range rows {
		f := filaFromRow(row)
		if f.PedidoID == "" {
			continue
		}
		filas = append(filas, f)
	}
	return filas, nil
}

// AppendFilas persists all rows of one submission in a single batched
// append call.
func (r *PedidoRepository) AppendFilas(ctx context.Context, filas []pedido.FilaPedido) error {
	rows := make([][]interface{}, 0, len(filas))
	for _, f := range filas {
		rows = append(rows, filaToRow(f))
	}

	if err := r.values.Append(ctx, rangoPedidosAppend, rows); err != nil {
		return fmt.Errorf("repository: failed to append pedido rows: %w", err)
	}
	return nil
}
