package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/service"
)

// CatalogHandler serves category and fleet endpoints
type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	code := domain.CategoryCode(mux.Vars(r)["code"])
	category, err := h.catalog.GetCategory(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if !decodeBody(w, r, &category) {
		return
	}
	if err := h.catalog.SaveCategory(r.Context(), &category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var cmd service.AddVehicleCommand
	if !decodeBody(w, r, &cmd) {
		return
	}
	vehicle, err := h.catalog.AddVehicle(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.catalog.GetVehicle(r.Context(), mux.Vars(r)["plate"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *CatalogHandler) ListAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	category := domain.CategoryCode(r.URL.Query().Get("category"))
	city := r.URL.Query().Get("city")
	vehicles, err := h.catalog.ListAvailableVehicles(r.Context(), category, city)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *CatalogHandler) DecommissionVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.catalog.DecommissionVehicle(r.Context(), mux.Vars(r)["plate"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}
