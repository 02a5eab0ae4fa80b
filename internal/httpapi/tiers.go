package httpapi

import (
	"net/http"

	"github.com/bayneri/boxoffice/internal/scenario"
)

type tierResponse struct {
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

// HandleTiers lists the commentator tiers accepted by /v1/estimates.
func HandleTiers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		var out []tierResponse
		for _, tier := range scenario.Tiers() {
			out = append(out, tierResponse{Name: tier.Name, Cost: tier.Cost, Description: tier.Description})
		}
		writeJSON(w, http.StatusOK, map[string][]tierResponse{"tiers": out})
	}
}
