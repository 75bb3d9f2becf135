package pricing_rules

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgRequiredFields     = "name and type are required"
	msgInvalidRule        = "Invalid pricing rule"
	msgNotFound           = "Rule not found"
)

type Handler struct {
	service PricingRuleService
	logger  Logger
}

func NewHandler(service PricingRuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/pricing-rules
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListPricingRules(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, rules)
}

// Create POST /api/pricing-rules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePricingRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.CreatePricingRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /pricing-rules - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgRequiredFields))

		default:
			h.logger.Error("POST /pricing-rules - Failed to create rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing-rules - Rule created: rule_id=%s, type=%s", rule.ID, rule.Type)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}

// Update PUT /api/pricing-rules/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["id"]

	var req models.UpdatePricingRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /pricing-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.UpdatePricingRule(r.Context(), ruleID, &req)
	if err != nil {
		h.respondError(w, "PUT /pricing-rules/{id}", ruleID, err)
		return
	}

	h.logger.Info("PUT /pricing-rules/{id} - Rule updated: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}

// Delete DELETE /api/pricing-rules/{id}
// Отвечает удаленным правилом
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["id"]

	rule, err := h.service.DeletePricingRule(r.Context(), ruleID)
	if err != nil {
		h.respondError(w, "DELETE /pricing-rules/{id}", ruleID, err)
		return
	}

	h.logger.Info("DELETE /pricing-rules/{id} - Rule deleted: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}

func (h *Handler) respondError(w http.ResponseWriter, route, ruleID string, err error) {
	switch {
	case errors.Is(err, catalog.ErrRuleNotFound):
		h.logger.Warn("%s - Rule not found: rule_id=%s", route, ruleID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid rule: rule_id=%s, error=%v", route, ruleID, err)
		handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgInvalidRule))

	default:
		h.logger.Error("%s - Failed: rule_id=%s, error=%v", route, ruleID, err)
		handlers.RespondInternalError(w)
	}
}
