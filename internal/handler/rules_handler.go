package handler

import (
	"net/http"

	"rulebook/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// RulesHandler exposes the validation rules over HTTP.
type RulesHandler struct {
	service service.RulesService
	logger  zerolog.Logger
}

// NewRulesHandler creates a new rules handler.
func NewRulesHandler(service service.RulesService, logger zerolog.Logger) *RulesHandler {
	return &RulesHandler{
		service: service,
		logger:  logger.With().Str("handler", "rules").Logger(),
	}
}

// GetCoupons handles GET /api/coupons.
func (h *RulesHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Coupons(), h.logger)
}

// CalculateDiscount handles POST /api/discounts.
func (h *RulesHandler) CalculateDiscount(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(w, r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	price, err := field(body, "price")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	code, err := field(body, "code")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.CalculateDiscount(price, code)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}

// ValidateUser handles POST /api/users/validate.
func (h *RulesHandler) ValidateUser(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(w, r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	username, err := field(body, "username")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	age, err := field(body, "age")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	resp := h.service.ValidateUser(username, age)
	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, resp, h.logger)
}

// PriceInRange handles GET /api/prices/in-range?value=&min=&max=.
func (h *RulesHandler) PriceInRange(w http.ResponseWriter, r *http.Request) {
	value, err := queryFloat(r, "value")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	minPrice, err := queryFloat(r, "min")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	maxPrice, err := queryFloat(r, "max")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.PriceInRange(value, minPrice, maxPrice), h.logger)
}

// ValidateUsername handles POST /api/usernames/validate.
func (h *RulesHandler) ValidateUsername(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(w, r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	name, err := field(body, "name")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	minLength, err := optionalLength(body, "minLength")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	maxLength, err := optionalLength(body, "maxLength")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.ValidateUsername(name, minLength, maxLength), h.logger)
}

// GetDrivingAges handles GET /api/driving-ages.
func (h *RulesHandler) GetDrivingAges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.DrivingAges(), h.logger)
}

// CanDrive handles GET /api/driving-ages/{country}/eligibility?age=.
func (h *RulesHandler) CanDrive(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")

	age, err := queryFloat(r, "age")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.CanDrive(age, country)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}
