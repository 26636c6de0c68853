package sheets

import (
	"strconv"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/shopspring/decimal"
)

// Tab ranges. Row 1 of every tab is a header, so reads start at row 2.
const (
	rangoClientes      = "BBDD_Clientes!A2:L"
	rangoProductos     = "BD_Productos!A2:F"
	rangoPedidos       = "BD_Pedidos!A2:S"
	rangoFolios        = "BD_Pedidos!A2:A"
	rangoPedidosAppend = "BD_Pedidos!A:S"
)

// BBDD_Clientes columns. Column H (index 7) is a spreadsheet-internal
// helper column and is not mapped.
const (
	colClienteDiccionario = iota
	colClienteNombre
	colClienteRUT
	colClienteDireccion
	colClienteComuna
	colClienteFormaPago
	colClienteComentario
	_
	colClienteContacto
	colClienteTelefono
	colClienteEmail
	colClienteHoraRecepcion
)

// BD_Productos columns. Column B (index 1) is a helper column.
const (
	colProductoCliente = iota
	_
	colProductoNombre
	colProductoFormato
	colProductoDetalle
	colProductoPrecio
)

// BD_Pedidos columns, one ledger row per order line.
const (
	colPedidoID = iota
	colPedidoFechaRegistro
	colPedidoFechaDespacho
	colPedidoCliente
	colPedidoNombreOficial
	colPedidoRUT
	colPedidoDireccion
	colPedidoComuna
	colPedidoContacto
	colPedidoTelefono
	colPedidoFormaPago
	colPedidoProducto
	colPedidoFormato
	colPedidoDetalle
	colPedidoCantidad
	colPedidoPrecioUnitario
	colPedidoTotalNeto
	colPedidoObservaciones
	colPedidoEstado
)

// celda returns the cell at index i, or "" when the API returned a
// short row (trailing empty cells are omitted by the Sheets API).
func celda(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// decimalCelda parses a money cell leniently: a blank or malformed
// value becomes zero, the way the original's parseFloat fallback
// behaved. The ledger is hand-editable and must not break reads.
func decimalCelda(row []string, i int) decimal.Decimal {
	d, err := decimal.NewFromString(celda(row, i))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func cantidadCelda(row []string, i int) int {
	s := celda(row, i)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Quantities occasionally come back as "3.0" from the sheet.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func clienteFromRow(row []string) cliente.Cliente {
	return cliente.Cliente{
		Diccionario:      celda(row, colClienteDiccionario),
		NombreOficial:    celda(row, colClienteNombre),
		RUT:              celda(row, colClienteRUT),
		DireccionEntrega: celda(row, colClienteDireccion),
		Comuna:           celda(row, colClienteComuna),
		FormaPago:        celda(row, colClienteFormaPago),
		Comentario:       celda(row, colClienteComentario),
		Contacto:         celda(row, colClienteContacto),
		Telefono:         celda(row, colClienteTelefono),
		Email:            celda(row, colClienteEmail),
		HoraRecepcion:    celda(row, colClienteHoraRecepcion),
	}
}

func productoFromRow(row []string) cliente.Producto {
	return cliente.Producto{
		Cliente:         celda(row, colProductoCliente),
		Producto:        celda(row, colProductoNombre),
		Formato:         celda(row, colProductoFormato),
		DetalleProducto: celda(row, colProductoDetalle),
		PrecioNeto:      decimalCelda(row, colProductoPrecio),
	}
}

func filaFromRow(row []string) pedido.FilaPedido {
	estado := pedido.Estado(celda(row, colPedidoEstado))
	if estado == "" {
		estado = pedido.EstadoPendiente
	}
	return pedido.FilaPedido{
		PedidoID:       celda(row, colPedidoID),
		FechaRegistro:  celda(row, colPedidoFechaRegistro),
		FechaDespacho:  celda(row, colPedidoFechaDespacho),
		Cliente:        celda(row, colPedidoCliente),
		NombreOficial:  celda(row, colPedidoNombreOficial),
		RUT:            celda(row, colPedidoRUT),
		Direccion:      celda(row, colPedidoDireccion),
		Comuna:         celda(row, colPedidoComuna),
		Contacto:       celda(row, colPedidoContacto),
		Telefono:       celda(row, colPedidoTelefono),
		FormaPago:      celda(row, colPedidoFormaPago),
		Producto:       celda(row, colPedidoProducto),
		Formato:        celda(row, colPedidoFormato),
		Detalle:        celda(row, colPedidoDetalle),
		Cantidad:       cantidadCelda(row, colPedidoCantidad),
		PrecioUnitario: decimalCelda(row, colPedidoPrecioUnitario),
		TotalNeto:      decimalCelda(row, colPedidoTotalNeto),
		Observaciones:  celda(row, colPedidoObservaciones),
		Estado:         estado,
	}
}

func filaToRow(f pedido.FilaPedido) []interface{} {
	return []interface{}{
		f.PedidoID,
		f.FechaRegistro,
		f.FechaDespacho,
		f.Cliente,
		f.NombreOficial,
		f.RUT,
		f.Direccion,
		f.Comuna,
		f.Contacto,
		f.Telefono,
		f.FormaPago,
		f.Producto,
		f.Formato,
		f.Detalle,
		f.Cantidad,
		f.PrecioUnitario.String(),
		f.TotalNeto.String(),
		f.Observaciones,
		f.Estado.String(),
	}
}
