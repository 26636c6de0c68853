package pedido

import (
	"fmt"
	"regexp"
	"strconv"
)

var folioPattern = regexp.MustCompile(`^HC-(\d{4})-(\d{4})$`)

// SiguienteFolio derives the next order folio for a year from the set
// of folios already in the ledger. Folios look like HC-2025-0042; the
// sequence is scoped to the year, so the rollover to a new year
// restarts at 0001 simply because no prior-year folio matches.
// Malformed entries are skipped, not errors: the ledger column is
// hand-editable and has historically contained stray values.
func SiguienteFolio(folios []string, year int) string {
	ultimo := 0
	for _, f := range folios {
		m := folioPattern.FindStringSubmatch(f)
		if m == nil {
			continue
		}
		if m[1] != strconv.Itoa(year) {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if n > ultimo {
			ultimo = n
		}
	}

	return fmt.Sprintf("HC-%d-%04d", year, ultimo+1)
}
