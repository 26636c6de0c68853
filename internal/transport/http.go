package transport

import (
	"net/http"
	"time"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/CompromisoPro/Control-de-pedidos/internal/handler"
	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/CompromisoPro/Control-de-pedidos/internal/sheets"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// NewRouter wires repositories, services and handlers over the given
// spreadsheet values client.
func NewRouter(values sheets.Values) *chi.Mux {
	clienteRepo := sheets.NewClienteRepository(values)
	pedidoRepo := sheets.NewPedidoRepository(values)

	clienteSvc := cliente.NewService(clienteRepo)
	pedidoSvc := pedido.NewService(pedidoRepo, clienteSvc)

	clienteHandler := handler.NewClienteHandler(clienteSvc)
	pedidoHandler := handler.NewPedidoHandler(pedidoSvc)
	dashboardHandler := handler.NewDashboardHandler(pedidoSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/clientes", clienteHandler.GetClientes)
		r.Get("/productos", clienteHandler.GetProductos)
		r.Post("/pedidos", pedidoHandler.CrearPedido)
		r.Get("/pedidos", pedidoHandler.GetPedidos)
		r.Get("/pedidos/{id}/nota", pedidoHandler.GetNota)
		r.Get("/dashboard", dashboardHandler.GetStats)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request handled")
	})
}
