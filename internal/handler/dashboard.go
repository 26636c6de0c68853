package handler

import (
	"net/http"
	"time"

	"github.com/CompromisoPro/Control-de-pedidos/internal/dashboard"
	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/rs/zerolog/log"
)

// DashboardHandler serves the aggregated sales metrics.
type DashboardHandler struct {
	svc pedido.Service
}

func NewDashboardHandler(svc pedido.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	filas, err := h.svc.ListarFilas(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to get filas for dashboard")
		respondWithError(w, http.StatusInternalServerError, "Error al cargar datos")
		return
	}

	respondWithData(w, http.StatusOK, dashboard.Calcular(filas, time.Now()))
}
