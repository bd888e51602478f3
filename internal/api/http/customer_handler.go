package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"alugacar-backend/internal/service"
)

// CustomerHandler serves the customer registry endpoints
type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.CustomerInput
	if !decodeBody(w, r, &input) {
		return
	}
	customer, err := h.customers.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetByTaxID(r.Context(), mux.Vars(r)["taxID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
