package pedido_test

import (
	"testing"

	"github.com/CompromisoPro/Control-de-pedidos/internal/pedido"
	"github.com/stretchr/testify/assert"
)

func TestSiguienteFolio(t *testing.T) {
	tests := []struct {
		name   string
		folios []string
		year   int
		want   string
	}{
		{
			name:   "increments_max_of_current_year",
			folios: []string{"HC-2025-0001", "HC-2025-0007", "HC-2024-0099"},
			year:   2025,
			want:   "HC-2025-0008",
		},
		{
			name:   "empty_ledger_starts_at_one",
			folios: []string{},
			year:   2026,
			want:   "HC-2026-0001",
		},
		{
			name:   "year_rollover_restarts_sequence",
			folios: []string{"HC-2025-0421", "HC-2025-0422"},
			year:   2026,
			want:   "HC-2026-0001",
		},
		{
			name:   "malformed_folios_are_ignored",
			folios: []string{"HC-2025-0003", "nota manual", "HC-2025-12", "HC-25-0004", ""},
			year:   2025,
			want:   "HC-2025-0004",
		},
		{
			name:   "sequence_is_zero_padded",
			folios: []string{"HC-2025-0009"},
			year:   2025,
			want:   "HC-2025-0010",
		},
		{
			name:   "order_of_folios_does_not_matter",
			folios: []string{"HC-2025-0100", "HC-2025-0002"},
			year:   2025,
			want:   "HC-2025-0101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pedido.SiguienteFolio(tt.folios, tt.year))
		})
	}
}
