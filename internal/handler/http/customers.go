package http

import (
	"encoding/json"
	"net/http"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customers, err := h.services.CustomerService.ListRecent(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during customer listing")
		h.writeMessage(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if customers == nil {
		// an empty list serialises as [], not null
		customers = []models.Customer{}
	}

	utils.WriteJSON(w, models.CustomerListResponse{Customers: customers}, http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	_, result, err := h.services.CustomerService.Create(ctx, customer)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during customer creation")
		h.writeMessage(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if !result.Valid {
		h.writeMessage(w, result.Message, http.StatusBadRequest)
		return
	}

	h.writeMessage(w, result.Message, http.StatusCreated)
}
