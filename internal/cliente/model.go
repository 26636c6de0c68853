package cliente

import "github.com/shopspring/decimal"

// Cliente is a customer record as maintained in the BBDD_Clientes tab.
// Records are created and edited out-of-band in the spreadsheet; this
// service only reads them. Diccionario is the free-text lookup key that
// joins clients to their negotiated price list.
type Cliente struct {
	Diccionario      string `json:"diccionarioCliente"`
	NombreOficial    string `json:"nombreOficial"`
	RUT              string `json:"rut"`
	DireccionEntrega string `json:"direccionEntrega"`
	Comuna           string `json:"comuna"`
	FormaPago        string `json:"formaPago"`
	Comentario       string `json:"comentario"`
	Contacto         string `json:"contacto"`
	Telefono         string `json:"telefono"`
	Email            string `json:"email"`
	HoraRecepcion    string `json:"horaRecepcion"`
}

// Producto is one negotiated product-for-client row from BD_Productos.
// There is no stored id: the same product name can recur for a client
// with a different formato or detalle, so identity is the composite of
// (producto, formato, detalle).
type Producto struct {
	Cliente         string          `json:"cliente"`
	Producto        string          `json:"producto"`
	Formato         string          `json:"formato"`
	DetalleProducto string          `json:"detalleProducto"`
	PrecioNeto      decimal.Decimal `json:"precioNeto"`
}

// Key returns the composite identity used to track quantities for this
// catalog row.
func (p Producto) Key() string {
	return p.Producto + "|" + p.Formato + "|" + p.DetalleProducto
}
