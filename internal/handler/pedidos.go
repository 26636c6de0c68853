package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/CompromisoPro/Control-de-pedidos/internal/notaventa"
	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PedidoHandler serves order submission, the order list and the
// printable sales note.
type PedidoHandler struct {
	svc pedido.Service
}

func NewPedidoHandler(svc pedido.Service) *PedidoHandler {
	return &PedidoHandler{svc: svc}
}

// ConfirmacionPedido is the POST /api/pedidos success payload: the
// allocated folio plus the canonical totals for immediate display.
type ConfirmacionPedido struct {
	PedidoID      string              `json:"pedidoId"`
	Cliente       ClienteConfirmacion `json:"cliente"`
	Items         []pedido.ItemPedido `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	IVA           decimal.Decimal     `json:"iva"`
	Total         decimal.Decimal     `json:"total"`
	FechaDespacho string              `json:"fechaDespacho"`
}

type ClienteConfirmacion struct {
	Diccionario   string `json:"diccionarioCliente"`
	NombreOficial string `json:"nombreOficial"`
	RUT           string `json:"rut"`
	Direccion     string `json:"direccionEntrega"`
	Comuna        string `json:"comuna"`
	FormaPago     string `json:"formaPago"`
	Contacto      string `json:"contacto"`
	Telefono      string `json:"telefono"`
}

func (h *PedidoHandler) CrearPedido(w http.ResponseWriter, r *http.Request) {
	var sol pedido.Solicitud
	if err := json.NewDecoder(r.Body).Decode(&sol); err != nil {
		respondWithError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
		return
	}

	p, err := h.svc.Crear(r.Context(), &sol)
	if err != nil {
		code := mapErrorToStatusCode(err)
		switch code {
		case http.StatusBadRequest:
			log.Warn().Err(err).Msg("handler: pedido rejected")
			respondWithError(w, code, err.Error())
		case http.StatusNotFound:
			log.Warn().Str("cliente", sol.ClienteDiccionario).Msg("handler: cliente not found")
			respondWithError(w, code, "Cliente no encontrado")
		default:
			log.Error().Err(err).Msg("handler: failed to create pedido")
			respondWithError(w, code, fmt.Sprintf("Error al crear pedido: %v", err))
		}
		return
	}

	respondWithData(w, http.StatusOK, ConfirmacionPedido{
		PedidoID: p.ID,
		Cliente: ClienteConfirmacion{
			Diccionario:   p.Cliente,
			NombreOficial: p.NombreOficial,
			RUT:           p.RUT,
			Direccion:     p.Direccion,
			Comuna:        p.Comuna,
			FormaPago:     p.FormaPago,
			Contacto:      p.Contacto,
			Telefono:      p.Telefono,
		},
		Items:         p.Items,
		Subtotal:      p.Subtotal,
		IVA:           p.IVA,
		Total:         p.Total,
		FechaDespacho: p.FechaDespacho,
	})
}

func (h *PedidoHandler) GetPedidos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.svc.Listar(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to get pedidos")
		respondWithError(w, http.StatusInternalServerError, "Error al obtener pedidos")
		return
	}

	respondWithData(w, http.StatusOK, pedidos)
}

// GetNota streams the sales-note workbook for one order.
func (h *PedidoHandler) GetNota(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pedido.ErrPedidoNoEncontrado) {
			respondWithError(w, http.StatusNotFound, "Pedido no encontrado")
			return
		}
		log.Error().Err(err).Str("pedido_id", id).Msg("handler: failed to get pedido for nota")
		respondWithError(w, http.StatusInternalServerError, "Error al obtener pedido")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", notaventa.NombreArchivo(p)))

	if err := notaventa.Escribir(p, w); err != nil {
		// Headers are already out; all that is left is to log.
		log.Error().Err(err).Str("pedido_id", id).Msg("handler: failed to render nota de venta")
	}
}
