package pedido

import "github.com/CompromisoPro/Control-de-pedidos/internal/cliente"

// Borrador holds the quantities an operator has typed so far, keyed by
// the composite product identity and scoped to the currently selected
// client. It replaces the original UI's global quantity map with an
// explicit object: switching clients clears every quantity, so numbers
// entered for one client can never leak into another client's order.
type Borrador struct {
	diccionario string
	cantidades  map[string]int
}

func NuevoBorrador() *Borrador {
	return &Borrador{cantidades: make(map[string]int)}
}

// Cliente returns the diccionario of the currently selected client.
func (b *Borrador) Cliente() string {
	return b.diccionario
}

// SetCliente selects a client. Selecting a different client resets all
// quantities; re-selecting the current one keeps them.
func (b *Borrador) SetCliente(diccionario string) {
	if diccionario == b.diccionario {
		return
	}
	b.diccionario = diccionario
	b.cantidades = make(map[string]int)
}

// SetCantidad records the quantity for one catalog row. Zero or
// negative means "not ordered" and removes the entry.
func (b *Borrador) SetCantidad(p cliente.Producto, cantidad int) {
	if cantidad <= 0 {
		delete(b.cantidades, p.Key())
		return
	}
	b.cantidades[p.Key()] = cantidad
}

// Cantidad returns the quantity entered for one catalog row, zero when
// none has been entered.
func (b *Borrador) Cantidad(p cliente.Producto) int {
	return b.cantidades[p.Key()]
}

// Items materializes the draft against the client's catalog: one
// ItemPedido per row with a positive quantity, with the line total
// already computed.
func (b *Borrador) Items(productos []cliente.Producto) []ItemPedido {
	items := make([]ItemPedido, 0)
	for _, p := range productos {
		cantidad := b.cantidades[p.Key()]
		if cantidad <= 0 {
			continue
		}
		items = append(items, ItemPedido{
			Producto:       p.Producto,
			Formato:        p.Formato,
			Detalle:        p.DetalleProducto,
			Cantidad:       cantidad,
			PrecioUnitario: p.PrecioNeto,
			TotalNeto:      TotalLinea(cantidad, p.PrecioNeto),
		})
	}
	return items
}

// Totales computes the live summary for the draft as currently typed.
func (b *Borrador) Totales(productos []cliente.Producto) Totales {
	return CalcularTotales(b.Items(productos))
}
