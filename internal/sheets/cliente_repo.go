package sheets

import (
	"context"
	"fmt"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
)

// ClienteRepository reads the catalog tabs. It satisfies the catalog's
// contract of excluding rows with an empty lookup key before they ever
// reach the domain layer.
type ClienteRepository struct {
	values Values
}

func NewClienteRepository(values Values) *ClienteRepository {
	return &ClienteRepository{values: values}
}

func (r *ClienteRepository) ListClientes(ctx context.Context) ([]cliente.Cliente, error) {
	rows, err := r.values.Get(ctx, rangoClientes)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read clientes: %w", err)
	}

	clientes := make([]cliente.Cliente, 0, len(rows))
	for _, row := range rows {
		c := clienteFromRow(row)
		if c.Diccionario == "" {
			continue
		}
		clientes = append(clientes, c)
	}
	return clientes, nil
}

func (r *ClienteRepository) ListProductos(ctx context.Context) ([]cliente.Producto, error) {
	rows, err := r.values.Get(ctx, rangoProductos)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read productos: %w", err)
	}

	productos := make([]cliente.Producto, 0, len(rows))
	for _, row := range rows {
		p := productoFromRow(row)
		if p.Cliente == "" || p.Producto == "" {
			continue
		}
		productos = append(productos, p)
	}
	return productos, nil
}
