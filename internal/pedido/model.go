package pedido

import (
	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/shopspring/decimal"
)

// The original API serves plain JSON numbers for money; keep that wire
// format instead of shopspring's default quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoProcesando Estado = "procesando"
	EstadoCompletado Estado = "completado"
	EstadoCancelado  Estado = "cancelado"
)

func (e Estado) String() string {
	return string(e)
}

// ItemPedido is one finalized order line. TotalNeto is always
// recomputed server-side as Cantidad × PrecioUnitario; a client-supplied
// value is never trusted.
type ItemPedido struct {
	Producto       string          `json:"producto"`
	Formato        string          `json:"formato"`
	Detalle        string          `json:"detalle"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	TotalNeto      decimal.Decimal `json:"totalNeto"`
}

// Pedido is a logical order: one folio grouping one or more persisted
// line rows. The client fields are a snapshot taken at submission time,
// not a reference — later edits to the client in the spreadsheet must
// not change past orders.
type Pedido struct {
	ID            string          `json:"id"`
	FechaRegistro string          `json:"fechaRegistro"`
	FechaDespacho string          `json:"fechaDespacho"`
	Cliente       string          `json:"cliente"`
	NombreOficial string          `json:"nombreOficial"`
	RUT           string          `json:"rut"`
	Direccion     string          `json:"direccion"`
	Comuna        string          `json:"comuna"`
	Contacto      string          `json:"contacto"`
	Telefono      string          `json:"telefono"`
	FormaPago     string          `json:"formaPago"`
	Items         []ItemPedido    `json:"items"`
	Observaciones string          `json:"observaciones"`
	Estado        Estado          `json:"estado"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	IVA           decimal.Decimal `json:"iva"`
	Total         decimal.Decimal `json:"total"`
}

// FilaPedido is the flattened, one-row-per-product representation the
// ledger actually stores. It is the unit of persistence; a Pedido is
// reconstructed by grouping filas sharing the same folio.
type FilaPedido struct {
	PedidoID       string
	FechaRegistro  string
	FechaDespacho  string
	Cliente        string
	NombreOficial  string
	RUT            string
	Direccion      string
	Comuna         string
	Contacto       string
	Telefono       string
	FormaPago      string
	Producto       string
	Formato        string
	Detalle        string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	TotalNeto      decimal.Decimal
	Observaciones  string
	Estado         Estado
}

// NuevasFilas flattens a validated order into its ledger rows: one row
// per item, all sharing the folio, timestamp and estado.
func NuevasFilas(c *cliente.Cliente, pedidoID, fechaRegistro, fechaDespacho, observaciones string, items []ItemPedido) []FilaPedido {
	filas := make([]FilaPedido, 0, len(items))
	for _, item := range items {
		filas = append(filas, FilaPedido{
			PedidoID:       pedidoID,
			FechaRegistro:  fechaRegistro,
			FechaDespacho:  fechaDespacho,
			Cliente:        c.Diccionario,
			NombreOficial:  c.NombreOficial,
			RUT:            c.RUT,
			Direccion:      c.DireccionEntrega,
			Comuna:         c.Comuna,
			Contacto:       c.Contacto,
			Telefono:       c.Telefono,
			FormaPago:      c.FormaPago,
			Producto:       item.Producto,
			Formato:        item.Formato,
			Detalle:        item.Detalle,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			TotalNeto:      item.TotalNeto,
			Observaciones:  observaciones,
			Estado:         EstadoPendiente,
		})
	}
	return filas
}
