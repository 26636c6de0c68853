package cliente_test

import (
	"context"
	"errors"
	"testing"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	listClientesFunc  func(ctx context.Context) ([]cliente.Cliente, error)
	listProductosFunc func(ctx context.Context) ([]cliente.Producto, error)
}

func (m *mockRepository) ListClientes(ctx context.Context) ([]cliente.Cliente, error) {
	return m.listClientesFunc(ctx)
}

func (m *mockRepository) ListProductos(ctx context.Context) ([]cliente.Producto, error) {
	return m.listProductosFunc(ctx)
}

func TestServiceListClientesSorted(t *testing.T) {
	repo := &mockRepository{
		listClientesFunc: func(ctx context.Context) ([]cliente.Cliente, error) {
			return []cliente.Cliente{
				{Diccionario: "verduleria-norte"},
				{Diccionario: "Almacen-Central"},
				{Diccionario: "fruteria-sur"},
			}, nil
		},
	}
	svc := cliente.NewService(repo)

	clientes, err := svc.ListClientes(context.Background())

	require.NoError(t, err)
	require.Len(t, clientes, 3)
	// Ascending, case-insensitive.
	assert.Equal(t, "Almacen-Central", clientes[0].Diccionario)
	assert.Equal(t, "fruteria-sur", clientes[1].Diccionario)
	assert.Equal(t, "verduleria-norte", clientes[2].Diccionario)
}

func TestServiceListClientesRepoError(t *testing.T) {
	repo := &mockRepository{
		listClientesFunc: func(ctx context.Context) ([]cliente.Cliente, error) {
			return nil, errors.New("read failed")
		},
	}
	svc := cliente.NewService(repo)

	clientes, err := svc.ListClientes(context.Background())

	assert.Nil(t, clientes)
	assert.Error(t, err)
}

func TestServiceGetByDiccionario(t *testing.T) {
	repo := &mockRepository{
		listClientesFunc: func(ctx context.Context) ([]cliente.Cliente, error) {
			return []cliente.Cliente{
				{Diccionario: "fruteria-sur", NombreOficial: "Frutería del Sur SpA"},
				{Diccionario: "almacen-central", NombreOficial: "Almacén Central Ltda"},
			}, nil
		},
	}
	svc := cliente.NewService(repo)

	c, err := svc.GetByDiccionario(context.Background(), "almacen-central")
	require.NoError(t, err)
	assert.Equal(t, "Almacén Central Ltda", c.NombreOficial)

	// The match is exact, not case-folded: the diccionario is the key
	// exactly as stored.
	_, err = svc.GetByDiccionario(context.Background(), "Almacen-Central")
	assert.ErrorIs(t, err, cliente.ErrClienteNoEncontrado)

	_, err = svc.GetByDiccionario(context.Background(), "no-existe")
	assert.ErrorIs(t, err, cliente.ErrClienteNoEncontrado)
}

func TestServiceProductosDe(t *testing.T) {
	repo := &mockRepository{
		listProductosFunc: func(ctx context.Context) ([]cliente.Producto, error) {
			return []cliente.Producto{
				{Cliente: "fruteria-sur", Producto: "Rúcula", PrecioNeto: decimal.NewFromInt(2100)},
				{Cliente: "almacen-central", Producto: "Albahaca", PrecioNeto: decimal.NewFromInt(1400)},
				{Cliente: "fruteria-sur", Producto: "Albahaca", PrecioNeto: decimal.NewFromInt(1500)},
			}, nil
		},
	}
	svc := cliente.NewService(repo)

	productos, err := svc.ProductosDe(context.Background(), "fruteria-sur")

	require.NoError(t, err)
	require.Len(t, productos, 2)
	// Only this client's rows, sorted by product name; the same
	// product for another client keeps its own price.
	assert.Equal(t, "Albahaca", productos[0].Producto)
	assert.Equal(t, "1500", productos[0].PrecioNeto.String())
	assert.Equal(t, "Rúcula", productos[1].Producto)
}

func TestProductoKey(t *testing.T) {
	a := cliente.Producto{Producto: "Lechuga", Formato: "Caja 12un", DetalleProducto: "mediana"}
	b := cliente.Producto{Producto: "Lechuga", Formato: "Caja 12un", DetalleProducto: ""}

	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, "Lechuga|Caja 12un|mediana", a.Key())
}
