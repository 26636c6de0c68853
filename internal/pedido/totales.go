package pedido

import "github.com/shopspring/decimal"

var tasaIVA = decimal.NewFromFloat(0.19)

// Totales is the derived money breakdown of an order.
type Totales struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
}

// CalcularTotales computes subtotal, IVA and total from order items.
// Rounding happens exactly once, on the IVA amount, to whole pesos
// (half away from zero); line totals and the subtotal are never
// rounded. Every consumer of order totals — the submission workflow,
// the confirmation payload, the sales note — goes through this one
// function so the three can never diverge.
func CalcularTotales(items []ItemPedido) Totales {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(TotalLinea(item.Cantidad, item.PrecioUnitario))
	}

	iva := subtotal.Mul(tasaIVA).Round(0)

	return Totales{
		Subtotal: subtotal,
		IVA:      iva,
		Total:    subtotal.Add(iva),
	}
}

// TotalLinea is cantidad × precio unitario, unrounded.
func TotalLinea(cantidad int, precioUnitario decimal.Decimal) decimal.Decimal {
	return precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
}
