package cliente

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrClienteNoEncontrado = errors.New("cliente no encontrado")

// Repository reads the catalog tabs of the spreadsheet. Implementations
// must already exclude rows with an empty diccionario (clients) or an
// empty cliente/producto (products).
type Repository interface {
	ListClientes(ctx context.Context) ([]Cliente, error)
	ListProductos(ctx context.Context) ([]Producto, error)
}

type Service interface {
	ListClientes(ctx context.Context) ([]Cliente, error)
	GetByDiccionario(ctx context.Context, diccionario string) (*Cliente, error)
	ProductosDe(ctx context.Context, diccionario string) ([]Producto, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListClientes returns every client sorted by diccionario, ascending
// and case-insensitive, the order the selector presents them in.
func (s *service) ListClientes(ctx context.Context) ([]Cliente, error) {
	clientes, err := s.repo.ListClientes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch clientes from repository")
		return nil, fmt.Errorf("service: failed to fetch clientes: %w", err)
	}

	sort.SliceStable(clientes, func(i, j int) bool {
		return strings.ToLower(clientes[i].Diccionario) < strings.ToLower(clientes[j].Diccionario)
	})

	return clientes, nil
}

// GetByDiccionario resolves the free-text lookup key to the full client
// record. The match is exact: the diccionario is the foreign key the
// whole spreadsheet is organized around.
func (s *service) GetByDiccionario(ctx context.Context, diccionario string) (*Cliente, error) {
	clientes, err := s.repo.ListClientes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch clientes from repository")
		return nil, fmt.Errorf("service: failed to fetch clientes: %w", err)
	}

	for i := range clientes {
		if clientes[i].Diccionario == diccionario {
			return &clientes[i], nil
		}
	}

	log.Warn().Str("diccionario", diccionario).Msg("service: cliente not found")
	return nil, ErrClienteNoEncontrado
}

// ProductosDe returns the negotiated price list for one client, sorted
// by product name.
func (s *service) ProductosDe(ctx context.Context, diccionario string) ([]Producto, error) {
	productos, err := s.repo.ListProductos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to fetch productos from repository")
		return nil, fmt.Errorf("service: failed to fetch productos: %w", err)
	}

	filtered := make([]Producto, 0)
	for _, p := range productos {
		if p.Cliente == diccionario {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Producto) < strings.ToLower(filtered[j].Producto)
	})

	return filtered, nil
}
