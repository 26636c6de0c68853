package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CompromisoPro/Control-de-pedidos/internal/cliente"
	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/rs/zerolog/log"
)

// APIResponse is the uniform envelope every endpoint answers with.
// No error is allowed to escape a handler in any other shape.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, APIResponse{Success: false, Error: message})
}

func respondWithData(w http.ResponseWriter, code int, data interface{}) {
	respondWithJSON(w, code, APIResponse{Success: true, Data: data})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Error interno del servidor"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, pedido.ErrClienteRequerido),
		errors.Is(err, pedido.ErrFechaDespachoRequerida),
		errors.Is(err, pedido.ErrFechaDespachoInvalida),
		errors.Is(err, pedido.ErrSinProductos),
		errors.Is(err, pedido.ErrSinCantidades):
		return http.StatusBadRequest
	case errors.Is(err, cliente.ErrClienteNoEncontrado),
		errors.Is(err, pedido.ErrPedidoNoEncontrado):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
