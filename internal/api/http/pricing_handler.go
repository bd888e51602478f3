package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/service"
)

// PricingHandler exposes availability and quoting for a category and period.
type PricingHandler struct {
	pricing *service.PricingEngine
	catalog service.CatalogService
}

func NewPricingHandler(pricing *service.PricingEngine, catalog service.CatalogService) *PricingHandler {
	return &PricingHandler{pricing: pricing, catalog: catalog}
}

type availabilityResponse struct {
	Category   domain.CategoryCode `json:"category"`
	Capacity   int                 `json:"capacity"`
	Occupied   int                 `json:"occupied"`
	Available  int                 `json:"available"`
	QuoteCents *int64              `json:"quote_cents,omitempty"`
}

func (h *PricingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	pickupAt, err := time.Parse(time.RFC3339, r.URL.Query().Get("pickup_at"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "pickup_at must be RFC 3339"})
		return
	}
	returnAt, err := time.Parse(time.RFC3339, r.URL.Query().Get("return_at"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "return_at must be RFC 3339"})
		return
	}
	period, err := domain.NewPeriod(pickupAt, returnAt)
	if err != nil {
		writeError(w, err)
		return
	}

	category, err := h.catalog.GetCategory(r.Context(), domain.CategoryCode(mux.Vars(r)["code"]))
	if err != nil {
		writeError(w, err)
		return
	}

	occupied, err := h.pricing.Occupancy(r.Context(), category.Code, period)
	if err != nil {
		writeError(w, err)
		return
	}
	available := category.Capacity - occupied
	if available < 0 {
		available = 0
	}

	resp := availabilityResponse{
		Category:  category.Code,
		Capacity:  category.Capacity,
		Occupied:  occupied,
		Available: available,
	}
	if available > 0 {
		quote, err := h.pricing.Quote(r.Context(), category, period)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.QuoteCents = &quote
	}
	writeJSON(w, http.StatusOK, resp)
}
