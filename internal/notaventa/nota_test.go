package notaventa

import (
	"bytes"
	"testing"

	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func pedidoDePrueba() *pedido.Pedido {
	items := []pedido.ItemPedido{
		{Producto: "Lechuga Hidropónica", Formato: "Caja 12un", Cantidad: 3, PrecioUnitario: decimal.NewFromInt(1000)},
		{Producto: "Albahaca", Formato: "Bandeja", Detalle: "Orgánica", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(500)},
	}
	tot := pedido.CalcularTotales(items)
	return &pedido.Pedido{
		ID:            "HC-2025-0008",
		FechaRegistro: "2025-06-15T09:00:00Z",
		FechaDespacho: "2025-06-20",
		Cliente:       "fruteria-sur",
		NombreOficial: "Frutería del Sur SpA",
		RUT:           "76.123.456-7",
		Direccion:     "Av. Central 123",
		Comuna:        "Maipú",
		FormaPago:     "30 días",
		Items:         items,
		Estado:        pedido.EstadoPendiente,
		Subtotal:      tot.Subtotal,
		IVA:           tot.IVA,
		Total:         tot.Total,
	}
}

func celda(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(hojaNota, ref, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestGenerar(t *testing.T) {
	p := pedidoDePrueba()

	f, err := Generar(p)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "HIDROCAMPO", celda(t, f, "A1"))
	assert.Equal(t, "NOTA DE VENTA", celda(t, f, "E1"))
	assert.Equal(t, "HC-2025-0008", celda(t, f, "F1"))

	assert.Equal(t, "Frutería del Sur SpA", celda(t, f, "B4"))
	assert.Equal(t, "76.123.456-7", celda(t, f, "B5"))
	assert.Equal(t, "15-06-2025", celda(t, f, "F4"))
	assert.Equal(t, "2025-06-20", celda(t, f, "F5"))

	// No observaciones, so the product table starts at row 12.
	assert.Equal(t, "Producto", celda(t, f, "A12"))
	assert.Equal(t, "Lechuga Hidropónica", celda(t, f, "A13"))
	assert.Equal(t, "3", celda(t, f, "D13"))
	assert.Equal(t, "3000", celda(t, f, "F13"))
	assert.Equal(t, "Orgánica", celda(t, f, "C14"))
	assert.Equal(t, "1000", celda(t, f, "F14"))

	assert.Equal(t, "Subtotal", celda(t, f, "E16"))
	assert.Equal(t, "4000", celda(t, f, "F16"))
	assert.Equal(t, "IVA (19%)", celda(t, f, "E17"))
	assert.Equal(t, "760", celda(t, f, "F17"))
	assert.Equal(t, "TOTAL", celda(t, f, "E18"))
	assert.Equal(t, "4760", celda(t, f, "F18"))
}

func TestGenerarFallbacks(t *testing.T) {
	p := pedidoDePrueba()
	p.NombreOficial = ""
	p.RUT = ""
	p.Direccion = ""
	p.FormaPago = ""
	p.Items[1].Detalle = ""

	f, err := Generar(p)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "fruteria-sur", celda(t, f, "B4"))
	assert.Equal(t, "No registrado", celda(t, f, "B5"))
	assert.Equal(t, "No registrada", celda(t, f, "B6"))
	assert.Equal(t, "A convenir", celda(t, f, "B10"))
	assert.Equal(t, "-", celda(t, f, "C14"))
}

func TestGenerarConObservaciones(t *testing.T) {
	p := pedidoDePrueba()
	p.Observaciones = "Entregar antes de las 9am"

	f, err := Generar(p)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Observaciones", celda(t, f, "A12"))
	assert.Equal(t, "Entregar antes de las 9am", celda(t, f, "B12"))

	// The table shifts down two rows.
	assert.Equal(t, "Producto", celda(t, f, "A14"))
	assert.Equal(t, "Lechuga Hidropónica", celda(t, f, "A15"))
}

func TestEscribir(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Escribir(pedidoDePrueba(), &buf))

	// xlsx is a zip archive; check the signature rather than the size.
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestNombreArchivo(t *testing.T) {
	assert.Equal(t, "nota-venta-HC-2025-0008.xlsx", NombreArchivo(pedidoDePrueba()))
}
