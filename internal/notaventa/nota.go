// Package notaventa renders a finalized pedido as a printable sales
// note workbook. Rendering is a pure function of the order data: it
// never touches the stores, so a failed render cannot affect a
// persisted order.
package notaventa

import (
	"fmt"
	"io"
	"time"

	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/xuri/excelize/v2"
)

const hojaNota = "Nota de Venta"

// Generar builds the sales-note workbook for one order. Totals come
// from the shared computation over the order's items, never from a
// caller-supplied figure.
func Generar(p *pedido.Pedido) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", hojaNota); err != nil {
		return nil, fmt.Errorf("notaventa: failed to rename sheet: %w", err)
	}

	tituloStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("notaventa: failed to create style: %w", err)
	}
	encabezadoStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("notaventa: failed to create style: %w", err)
	}
	monedaStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: puntero(`$#,##0`)})
	if err != nil {
		return nil, fmt.Errorf("notaventa: failed to create style: %w", err)
	}

	set := func(celda string, valor interface{}) {
		// SetCellValue only fails on a malformed reference; every
		// reference below is a literal.
		_ = f.SetCellValue(hojaNota, celda, valor)
	}

	set("A1", "HIDROCAMPO")
	set("A2", "Cultivando Sabor")
	set("E1", "NOTA DE VENTA")
	set("F1", p.ID)
	_ = f.SetCellStyle(hojaNota, "A1", "A1", tituloStyle)
	_ = f.SetCellStyle(hojaNota, "E1", "F1", encabezadoStyle)

	set("A4", "Cliente")
	set("B4", nombreCliente(p))
	set("A5", "RUT")
	set("B5", oDefecto(p.RUT, "No registrado"))
	set("A6", "Dirección")
	set("B6", oDefecto(p.Direccion, "No registrada"))
	set("B7", p.Comuna)
	set("A8", "Contacto")
	set("B8", oDefecto(p.Contacto, "No registrado"))
	set("B9", p.Telefono)
	set("A10", "Forma de pago")
	set("B10", oDefecto(p.FormaPago, "A convenir"))

	set("E4", "Emisión")
	set("F4", fechaEmision(p))
	set("E5", "Despacho")
	set("F5", p.FechaDespacho)

	fila := 12
	if p.Observaciones != "" {
		set(fmt.Sprintf("A%d", fila), "Observaciones")
		set(fmt.Sprintf("B%d", fila), p.Observaciones)
		fila += 2
	}

	columnas := []string{"Producto", "Formato", "Detalle", "Cant.", "Precio", "Total"}
	for i, titulo := range columnas {
		ref, _ := excelize.CoordinatesToCellName(i+1, fila)
		set(ref, titulo)
	}
	inicioRef, _ := excelize.CoordinatesToCellName(1, fila)
	finRef, _ := excelize.CoordinatesToCellName(len(columnas), fila)
	_ = f.SetCellStyle(hojaNota, inicioRef, finRef, encabezadoStyle)
	fila++

	for _, item := range p.Items {
		set(fmt.Sprintf("A%d", fila), item.Producto)
		set(fmt.Sprintf("B%d", fila), item.Formato)
		set(fmt.Sprintf("C%d", fila), oDefecto(item.Detalle, "-"))
		set(fmt.Sprintf("D%d", fila), item.Cantidad)
		precio, _ := item.PrecioUnitario.Float64()
		total, _ := pedido.TotalLinea(item.Cantidad, item.PrecioUnitario).Float64()
		set(fmt.Sprintf("E%d", fila), precio)
		set(fmt.Sprintf("F%d", fila), total)
		_ = f.SetCellStyle(hojaNota, fmt.Sprintf("E%d", fila), fmt.Sprintf("F%d", fila), monedaStyle)
		fila++
	}

	tot := pedido.CalcularTotales(p.Items)
	fila++
	subtotal, _ := tot.Subtotal.Float64()
	iva, _ := tot.IVA.Float64()
	totalFinal, _ := tot.Total.Float64()

	set(fmt.Sprintf("E%d", fila), "Subtotal")
	set(fmt.Sprintf("F%d", fila), subtotal)
	set(fmt.Sprintf("E%d", fila+1), "IVA (19%)")
	set(fmt.Sprintf("F%d", fila+1), iva)
	set(fmt.Sprintf("E%d", fila+2), "TOTAL")
	set(fmt.Sprintf("F%d", fila+2), totalFinal)
	_ = f.SetCellStyle(hojaNota, fmt.Sprintf("E%d", fila+2), fmt.Sprintf("F%d", fila+2), encabezadoStyle)
	_ = f.SetCellStyle(hojaNota, fmt.Sprintf("F%d", fila), fmt.Sprintf("F%d", fila+2), monedaStyle)

	_ = f.SetColWidth(hojaNota, "A", "A", 28)
	_ = f.SetColWidth(hojaNota, "B", "C", 18)
	_ = f.SetColWidth(hojaNota, "E", "F", 14)

	return f, nil
}

// Escribir renders the note and streams the workbook to w.
func Escribir(p *pedido.Pedido, w io.Writer) error {
	f, err := Generar(p)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("notaventa: failed to write workbook: %w", err)
	}
	return nil
}

// NombreArchivo is the download filename for an order's note.
func NombreArchivo(p *pedido.Pedido) string {
	return fmt.Sprintf("nota-venta-%s.xlsx", p.ID)
}

func nombreCliente(p *pedido.Pedido) string {
	if p.NombreOficial != "" {
		return p.NombreOficial
	}
	return p.Cliente
}

func fechaEmision(p *pedido.Pedido) string {
	if t, err := time.Parse(time.RFC3339, p.FechaRegistro); err == nil {
		return t.Format("02-01-2006")
	}
	return p.FechaRegistro
}

func oDefecto(valor, defecto string) string {
	if valor == "" {
		return defecto
	}
	return valor
}

func puntero(s string) *string {
	return &s
}
