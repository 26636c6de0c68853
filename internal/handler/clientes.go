package handler

import (
	"net/http"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/rs/zerolog/log"
)

// ClienteHandler serves the catalog endpoints: the client list and the
// per-client price list.
type ClienteHandler struct {
	svc cliente.Service
}

func NewClienteHandler(svc cliente.Service) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

func (h *ClienteHandler) GetClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.svc.ListClientes(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to get clientes")
		respondWithError(w, http.StatusInternalServerError, "Error al obtener clientes")
		return
	}

	respondWithData(w, http.StatusOK, clientes)
}

func (h *ClienteHandler) GetProductos(w http.ResponseWriter, r *http.Request) {
	diccionario := r.URL.Query().Get("cliente")
	if diccionario == "" {
		respondWithError(w, http.StatusBadRequest, "Parámetro cliente es requerido")
		return
	}

	productos, err := h.svc.ProductosDe(r.Context(), diccionario)
	if err != nil {
		log.Error().Err(err).Str("cliente", diccionario).Msg("handler: failed to get productos")
		respondWithError(w, http.StatusInternalServerError, "Error al obtener productos")
		return
	}

	respondWithData(w, http.StatusOK, productos)
}
