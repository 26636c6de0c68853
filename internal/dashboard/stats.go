// Package dashboard aggregates the flattened order ledger into sales
// metrics. Everything is recomputed from scratch on each call: the
// ledger is small and an incremental scheme would not pay for itself.
package dashboard

import (
	"sort"
	"time"

	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/shopspring/decimal"
)

type Stats struct {
	VentaHoy        decimal.Decimal   `json:"ventaHoy"`
	VentaMes        decimal.Decimal   `json:"ventaMes"`
	VentaProyectada decimal.Decimal   `json:"ventaProyectada"`
	PedidosHoy      int               `json:"pedidosHoy"`
	PedidosMes      int               `json:"pedidosMes"`
	ClientesActivos int               `json:"clientesActivos"`
	TicketPromedio  decimal.Decimal   `json:"ticketPromedio"`
	ProductoTop     string            `json:"productoTop"`
	CrecimientoMes  float64           `json:"crecimientoMes"`
	TopProductos    []RankingProducto `json:"topProductos"`
	TopClientes     []RankingCliente  `json:"topClientes"`
	Recientes       []PedidoReciente  `json:"pedidosRecientes"`
}

type RankingProducto struct {
	Nombre   string          `json:"nombre"`
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

type RankingCliente struct {
	Nombre string          `json:"nombre"`
	Total  decimal.Decimal `json:"total"`
}

type PedidoReciente struct {
	ID      string          `json:"id"`
	Cliente string          `json:"cliente"`
	Fecha   string          `json:"fecha"`
	Total   decimal.Decimal `json:"total"`
}

const topN = 5

// Calcular aggregates the ledger relative to ahora. Rows whose
// registration timestamp cannot be parsed are excluded from the
// period windows but still count toward the all-time rankings.
func Calcular(filas []pedido.FilaPedido, ahora time.Time) Stats {
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	inicioMesAnterior := inicioMes.AddDate(0, -1, 0)
	diasEnMes := inicioMes.AddDate(0, 1, -1).Day()
	diaActual := ahora.Day()

	ventaHoy := decimal.Zero
	ventaMes := decimal.Zero
	ventaMesAnterior := decimal.Zero
	foliosHoy := make(map[string]struct{})
	foliosMes := make(map[string]struct{})
	clientesMes := make(map[string]struct{})
	productoVentasMes := make(map[string]decimal.Decimal)

	for _, f := range filas {
		fecha, ok := parseFecha(f.FechaRegistro)
		if !ok {
			continue
		}
		fecha = fecha.In(ahora.Location())
		dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, ahora.Location())

		if dia.Equal(hoy) {
			ventaHoy = ventaHoy.Add(f.TotalNeto)
			foliosHoy[f.PedidoID] = struct{}{}
		}
		switch {
		case !dia.Before(inicioMes):
			ventaMes = ventaMes.Add(f.TotalNeto)
			foliosMes[f.PedidoID] = struct{}{}
			clientesMes[f.Cliente] = struct{}{}
			productoVentasMes[f.Producto] = productoVentasMes[f.Producto].Add(f.TotalNeto)
		case !dia.Before(inicioMesAnterior):
			ventaMesAnterior = ventaMesAnterior.Add(f.TotalNeto)
		}
	}

	// Linear month-end projection from the daily average so far.
	ventaProyectada := decimal.Zero
	if diaActual > 0 {
		promedioDiario := ventaMes.Div(decimal.NewFromInt(int64(diaActual)))
		ventaProyectada = promedioDiario.Mul(decimal.NewFromInt(int64(diasEnMes)))
	}

	ticketPromedio := decimal.Zero
	if len(foliosMes) > 0 {
		ticketPromedio = ventaMes.Div(decimal.NewFromInt(int64(len(foliosMes))))
	}

	// Growth vs the prior month. A zero prior month reports 0%, never
	// a division by zero.
	crecimiento := 0.0
	if ventaMesAnterior.IsPositive() {
		crecimiento, _ = ventaMes.Sub(ventaMesAnterior).
			Div(ventaMesAnterior).
			Mul(decimal.NewFromInt(100)).
			Float64()
	}

	productoTop := "N/A"
	topMes := decimal.Zero
	for nombre, total := range productoVentasMes {
		if total.GreaterThan(topMes) || (total.Equal(topMes) && productoTop != "N/A" && nombre < productoTop) {
			productoTop = nombre
			topMes = total
		}
	}

	return Stats{
		VentaHoy:        ventaHoy,
		VentaMes:        ventaMes,
		VentaProyectada: ventaProyectada,
		PedidosHoy:      len(foliosHoy),
		PedidosMes:      len(foliosMes),
		ClientesActivos: len(clientesMes),
		TicketPromedio:  ticketPromedio,
		ProductoTop:     productoTop,
		CrecimientoMes:  crecimiento,
		TopProductos:    topProductos(filas),
		TopClientes:     topClientes(filas),
		Recientes:       recientes(filas),
	}
}

// topProductos ranks products by all-time revenue, accumulating
// quantities alongside.
func topProductos(filas []pedido.FilaPedido) []RankingProducto {
	acumulado := make(map[string]*RankingProducto)
	for _, f := range filas {
		r, ok := acumulado[f.Producto]
		if !ok {
			r = &RankingProducto{Nombre: f.Producto}
			acumulado[f.Producto] = r
		}
		r.Cantidad += f.Cantidad
		r.Total = r.Total.Add(f.TotalNeto)
	}

	ranking := make([]RankingProducto, 0, len(acumulado))
	for _, r := range acumulado {
		ranking = append(ranking, *r)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if !ranking[i].Total.Equal(ranking[j].Total) {
			return ranking[i].Total.GreaterThan(ranking[j].Total)
		}
		return ranking[i].Nombre < ranking[j].Nombre
	})
	return limitar(ranking)
}

func topClientes(filas []pedido.FilaPedido) []RankingCliente {
	acumulado := make(map[string]decimal.Decimal)
	for _, f := range filas {
		acumulado[f.Cliente] = acumulado[f.Cliente].Add(f.TotalNeto)
	}

	ranking := make([]RankingCliente, 0, len(acumulado))
	for nombre, total := range acumulado {
		ranking = append(ranking, RankingCliente{Nombre: nombre, Total: total})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if !ranking[i].Total.Equal(ranking[j].Total) {
			return ranking[i].Total.GreaterThan(ranking[j].Total)
		}
		return ranking[i].Nombre < ranking[j].Nombre
	})
	return limitar(ranking)
}

// recientes lists the latest orders with their per-order totals.
func recientes(filas []pedido.FilaPedido) []PedidoReciente {
	porFolio := make(map[string]*PedidoReciente)
	var orden []string
	for _, f := range filas {
		r, ok := porFolio[f.PedidoID]
		if !ok {
			r = &PedidoReciente{ID: f.PedidoID, Cliente: f.Cliente, Fecha: f.FechaRegistro}
			porFolio[f.PedidoID] = r
			orden = append(orden, f.PedidoID)
		}
		r.Total = r.Total.Add(f.TotalNeto)
	}

	lista := make([]PedidoReciente, 0, len(orden))
	for _, id := range orden {
		lista = append(lista, *porFolio[id])
	}
	sort.SliceStable(lista, func(i, j int) bool {
		return lista[i].Fecha > lista[j].Fecha
	})
	return limitar(lista)
}

func limitar[T any](s []T) []T {
	if len(s) > topN {
		return s[:topN]
	}
	return s
}

func parseFecha(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
