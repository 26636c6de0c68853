package pedido_test

import (
	"testing"

	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(cantidad int, precio string) pedido.ItemPedido {
	p := decimal.RequireFromString(precio)
	return pedido.ItemPedido{
		Cantidad:       cantidad,
		PrecioUnitario: p,
		TotalNeto:      pedido.TotalLinea(cantidad, p),
	}
}

func TestCalcularTotales(t *testing.T) {
	tests := []struct {
		name         string
		items        []pedido.ItemPedido
		wantSubtotal string
		wantIVA      string
		wantTotal    string
	}{
		{
			name:         "single_item",
			items:        []pedido.ItemPedido{item(3, "1000")},
			wantSubtotal: "3000",
			wantIVA:      "570",
			wantTotal:    "3570",
		},
		{
			name:         "multiple_items",
			items:        []pedido.ItemPedido{item(2, "1500"), item(1, "4990"), item(10, "350")},
			wantSubtotal: "11490",
			wantIVA:      "2183",
			wantTotal:    "13673",
		},
		{
			name: "tax_rounds_half_away_from_zero",
			// 1450 * 0.19 = 275.5, rounds to 276.
			items:        []pedido.ItemPedido{item(1, "1450")},
			wantSubtotal: "1450",
			wantIVA:      "276",
			wantTotal:    "1726",
		},
		{
			name: "only_tax_is_rounded",
			// Fractional unit prices keep the subtotal unrounded;
			// 1047.5 * 0.19 = 199.025 → 199.
			items:        []pedido.ItemPedido{item(5, "209.5")},
			wantSubtotal: "1047.5",
			wantIVA:      "199",
			wantTotal:    "1246.5",
		},
		{
			name:         "zero_price_items",
			items:        []pedido.ItemPedido{item(4, "0")},
			wantSubtotal: "0",
			wantIVA:      "0",
			wantTotal:    "0",
		},
		{
			name:         "no_items",
			items:        nil,
			wantSubtotal: "0",
			wantIVA:      "0",
			wantTotal:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tot := pedido.CalcularTotales(tt.items)

			assert.Equal(t, tt.wantSubtotal, tot.Subtotal.String())
			assert.Equal(t, tt.wantIVA, tot.IVA.String())
			assert.Equal(t, tt.wantTotal, tot.Total.String())
			assert.True(t, tot.Total.Equal(tot.Subtotal.Add(tot.IVA)), "total must equal subtotal + iva")
		})
	}
}

func TestCalcularTotalesDeterministic(t *testing.T) {
	items := []pedido.ItemPedido{item(7, "1234"), item(3, "99.9")}

	primera := pedido.CalcularTotales(items)
	segunda := pedido.CalcularTotales(items)

	assert.True(t, primera.Subtotal.Equal(segunda.Subtotal))
	assert.True(t, primera.IVA.Equal(segunda.IVA))
	assert.True(t, primera.Total.Equal(segunda.Total))
}

func TestTotalLinea(t *testing.T) {
	assert.Equal(t, "2995", pedido.TotalLinea(5, decimal.RequireFromString("599")).String())
	assert.Equal(t, "0", pedido.TotalLinea(0, decimal.RequireFromString("599")).String())
}
