package pedido_test

import (
	"testing"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func producto(nombre, formato, detalle, precio string) cliente.Producto {
	return cliente.Producto{
		Cliente:         "fruteria-sur",
		Producto:        nombre,
		Formato:         formato,
		DetalleProducto: detalle,
		PrecioNeto:      decimal.RequireFromString(precio),
	}
}

func TestBorradorCantidades(t *testing.T) {
	lechuga := producto("Lechuga Hidropónica", "Caja 12un", "", "5900")
	lechugaMediana := producto("Lechuga Hidropónica", "Caja 6un", "mediana", "3200")

	b := pedido.NuevoBorrador()
	b.SetCliente("fruteria-sur")

	b.SetCantidad(lechuga, 3)
	assert.Equal(t, 3, b.Cantidad(lechuga))
	// Same product name, different formato: tracked independently.
	assert.Equal(t, 0, b.Cantidad(lechugaMediana))

	b.SetCantidad(lechuga, 0)
	assert.Equal(t, 0, b.Cantidad(lechuga))

	b.SetCantidad(lechugaMediana, -2)
	assert.Equal(t, 0, b.Cantidad(lechugaMediana))
}

func TestBorradorSetClienteResetsCantidades(t *testing.T) {
	albahaca := producto("Albahaca", "Bandeja", "", "1500")

	b := pedido.NuevoBorrador()
	b.SetCliente("fruteria-sur")
	b.SetCantidad(albahaca, 8)

	// Re-selecting the same client keeps the draft.
	b.SetCliente("fruteria-sur")
	assert.Equal(t, 8, b.Cantidad(albahaca))

	// Switching clients clears every quantity.
	b.SetCliente("almacen-central")
	assert.Equal(t, "almacen-central", b.Cliente())
	assert.Equal(t, 0, b.Cantidad(albahaca))
}

func TestBorradorItems(t *testing.T) {
	catalogo := []cliente.Producto{
		producto("Albahaca", "Bandeja", "", "1500"),
		producto("Lechuga Hidropónica", "Caja 12un", "", "5900"),
		producto("Rúcula", "Bolsa 500g", "", "2100"),
	}

	b := pedido.NuevoBorrador()
	b.SetCliente("fruteria-sur")
	b.SetCantidad(catalogo[0], 2)
	b.SetCantidad(catalogo[2], 1)

	items := b.Items(catalogo)

	assert.Len(t, items, 2)
	assert.Equal(t, "Albahaca", items[0].Producto)
	assert.Equal(t, "3000", items[0].TotalNeto.String())
	assert.Equal(t, "Rúcula", items[1].Producto)
	assert.Equal(t, "2100", items[1].TotalNeto.String())

	tot := b.Totales(catalogo)
	assert.Equal(t, "5100", tot.Subtotal.String())
	assert.Equal(t, "969", tot.IVA.String())
	assert.Equal(t, "6069", tot.Total.String())
}
