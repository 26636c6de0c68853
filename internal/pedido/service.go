package pedido

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrClienteRequerido       = errors.New("Cliente es requerido")
	ErrFechaDespachoRequerida = errors.New("Fecha de despacho es requerida")
	ErrFechaDespachoInvalida  = errors.New("Fecha de despacho inválida")
	ErrSinProductos           = errors.New("Debe incluir al menos un producto")
	ErrSinCantidades          = errors.New("Debe incluir al menos un producto con cantidad mayor a 0")
	ErrPedidoNoEncontrado     = errors.New("pedido no encontrado")
)

// Repository is the append-only order ledger. AppendFilas must persist
// all rows in a single batched call: one submission, one append.
type Repository interface {
	ListFolios(ctx context.Context) ([]string, error)
	ListFilas(ctx context.Context) ([]FilaPedido, error)
	AppendFilas(ctx context.Context, filas []FilaPedido) error
}

// Solicitud is the submission payload as received from the operator's
// form. Line totals are ignored if present; the service recomputes
// them.
type Solicitud struct {
	ClienteDiccionario string          `json:"clienteDiccionario"`
	FechaDespacho      string          `json:"fechaDespacho"`
	Items              []ItemSolicitud `json:"items"`
	Observaciones      string          `json:"observaciones"`
}

type ItemSolicitud struct {
	Producto       string  `json:"producto"`
	Formato        string  `json:"formato"`
	Detalle        string  `json:"detalle"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
}

type Service interface {
	Crear(ctx context.Context, sol *Solicitud) (*Pedido, error)
	Listar(ctx context.Context) ([]Pedido, error)
	GetByID(ctx context.Context, id string) (*Pedido, error)
	ListarFilas(ctx context.Context) ([]FilaPedido, error)
}

type service struct {
	repo     Repository
	clientes cliente.Service

	// Serializes the read-folio/append sequence so two submissions in
	// the same process cannot allocate the same folio. Two separate
	// processes still can: the spreadsheet offers no atomic counter.
	mu sync.Mutex
}

func NewService(repo Repository, clientes cliente.Service) Service {
	return &service{repo: repo, clientes: clientes}
}

// Crear validates and persists a submission. Preconditions are checked
// in a fixed order, each with its own failure mode: client key, dispatch
// date, at least one positive-quantity item, then client resolution.
func (s *service) Crear(ctx context.Context, sol *Solicitud) (*Pedido, error) {
	if sol.ClienteDiccionario == "" {
		return nil, ErrClienteRequerido
	}

	if sol.FechaDespacho == "" {
		return nil, ErrFechaDespachoRequerida
	}
	// Parseability only. The date picker is the not-before-today guard;
	// the original accepted past dates server-side and so do we.
	if _, err := time.Parse("2006-01-02", sol.FechaDespacho); err != nil {
		return nil, ErrFechaDespachoInvalida
	}

	if len(sol.Items) == 0 {
		return nil, ErrSinProductos
	}

	items := procesarItems(sol.Items)
	if len(items) == 0 {
		return nil, ErrSinCantidades
	}

	cli, err := s.clientes.GetByDiccionario(ctx, sol.ClienteDiccionario)
	if err != nil {
		if errors.Is(err, cliente.ErrClienteNoEncontrado) {
			return nil, cliente.ErrClienteNoEncontrado
		}
		return nil, fmt.Errorf("service: failed to resolve cliente: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folios, err := s.repo.ListFolios(ctx)
	if err != nil {
		// A failed ledger read must abort the submission. Falling back
		// to an empty set would fabricate HC-<year>-0001 and silently
		// reuse an existing folio.
		log.Error().Err(err).Msg("service: failed to read folios for allocation")
		return nil, fmt.Errorf("service: failed to allocate folio: %w", err)
	}

	ahora := time.Now().UTC()
	folio := SiguienteFolio(folios, ahora.Year())
	fechaRegistro := ahora.Format(time.RFC3339)

	filas := NuevasFilas(cli, folio, fechaRegistro, sol.FechaDespacho, sol.Observaciones, items)
	if err := s.repo.AppendFilas(ctx, filas); err != nil {
		log.Error().Err(err).Str("pedido_id", folio).Msg("service: failed to append filas to ledger")
		return nil, fmt.Errorf("service: failed to persist pedido: %w", err)
	}

	tot := CalcularTotales(items)

	log.Info().
		Str("pedido_id", folio).
		Str("cliente", cli.Diccionario).
		Int("items", len(items)).
		Str("total", tot.Total.String()).
		Msg("service: pedido created")

	return &Pedido{
		ID:            folio,
		FechaRegistro: fechaRegistro,
		FechaDespacho: sol.FechaDespacho,
		Cliente:       cli.Diccionario,
		NombreOficial: cli.NombreOficial,
		RUT:           cli.RUT,
		Direccion:     cli.DireccionEntrega,
		Comuna:        cli.Comuna,
		Contacto:      cli.Contacto,
		Telefono:      cli.Telefono,
		FormaPago:     cli.FormaPago,
		Items:         items,
		Observaciones: sol.Observaciones,
		Estado:        EstadoPendiente,
		Subtotal:      tot.Subtotal,
		IVA:           tot.IVA,
		Total:         tot.Total,
	}, nil
}

// procesarItems recomputes each line server-side and drops lines
// without a positive quantity. The filter is strictly > 0: a zero
// quantity means "not ordered" and a negative one is operator error,
// never a negative ledger row.
func procesarItems(entrada []ItemSolicitud) []ItemPedido {
	items := make([]ItemPedido, 0, len(entrada))
	for _, it := range entrada {
		if it.Cantidad <= 0 {
			continue
		}
		precio := decimal.NewFromFloat(it.PrecioUnitario)
		items = append(items, ItemPedido{
			Producto:       it.Producto,
			Formato:        it.Formato,
			Detalle:        it.Detalle,
			Cantidad:       it.Cantidad,
			PrecioUnitario: precio,
			TotalNeto:      TotalLinea(it.Cantidad, precio),
		})
	}
	return items
}

// Listar reconstructs orders from the flattened ledger, newest first.
func (s *service) Listar(ctx context.Context) ([]Pedido, error) {
	filas, err := s.repo.ListFilas(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch filas from repository")
		return nil, fmt.Errorf("service: failed to fetch pedidos: %w", err)
	}

	pedidos := Agrupar(filas)

	sort.SliceStable(pedidos, func(i, j int) bool {
		return pedidos[i].FechaRegistro > pedidos[j].FechaRegistro
	})

	return pedidos, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Pedido, error) {
	pedidos, err := s.Listar(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pedidos {
		if pedidos[i].ID == id {
			return &pedidos[i], nil
		}
	}
	return nil, ErrPedidoNoEncontrado
}

// ListarFilas exposes the raw flattened rows, the shape the dashboard
// aggregates over.
func (s *service) ListarFilas(ctx context.Context) ([]FilaPedido, error) {
	filas, err := s.repo.ListFilas(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch filas from repository")
		return nil, fmt.Errorf("service: failed to fetch filas: %w", err)
	}
	return filas, nil
}

// Agrupar rebuilds logical orders from ledger rows sharing a folio.
// Header fields come from the first row seen for each folio; totals are
// recomputed from the grouped items through the shared computation.
func Agrupar(filas []FilaPedido) []Pedido {
	porFolio := make(map[string]*Pedido)
	var orden []string

	for _, f := range filas {
		if f.PedidoID == "" {
			continue
		}
		p, ok := porFolio[f.PedidoID]
		if !ok {
			p = &Pedido{
				ID:            f.PedidoID,
				FechaRegistro: f.FechaRegistro,
				FechaDespacho: f.FechaDespacho,
				Cliente:       f.Cliente,
				NombreOficial: f.NombreOficial,
				RUT:           f.RUT,
				Direccion:     f.Direccion,
				Comuna:        f.Comuna,
				Contacto:      f.Contacto,
				Telefono:      f.Telefono,
				FormaPago:     f.FormaPago,
				Observaciones: f.Observaciones,
				Estado:        f.Estado,
				Items:         make([]ItemPedido, 0, 1),
			}
			if p.Estado == "" {
				p.Estado = EstadoPendiente
			}
			porFolio[f.PedidoID] = p
			orden = append(orden, f.PedidoID)
		}
		p.Items = append(p.Items, ItemPedido{
			Producto:       f.Producto,
			Formato:        f.Formato,
			Detalle:        f.Detalle,
			Cantidad:       f.Cantidad,
			PrecioUnitario: f.PrecioUnitario,
			TotalNeto:      f.TotalNeto,
		})
	}

	pedidos := make([]Pedido, 0, len(orden))
	for _, id := range orden {
		p := porFolio[id]
		tot := CalcularTotales(p.Items)
		p.Subtotal = tot.Subtotal
		p.IVA = tot.IVA
		p.Total = tot.Total
		pedidos = append(pedidos, *p)
	}
	return pedidos
}
