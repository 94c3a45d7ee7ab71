package quote

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// Handler exposes the shipping cost calculator endpoints.
type Handler struct {
	service *Service
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service}
}

// Routes mounts the calculator endpoints under r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.Calculate)
	r.Get("/options", h.Options)
}

// Calculate handles POST /api/calculator.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "calculator not configured", nil)
		return
	}
	loc := h.service.Catalog().FromRequest(r)
	var req Request
	if err := common.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, pricing.ErrMeasureOutOfRange) {
			err = h.service.translate(loc, err)
		}
		common.WriteError(w, err)
		return
	}
	view, err := h.service.Calculate(r.Context(), loc, req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.Data(w, http.StatusOK, view)
}

// Options handles GET /api/calculator/options.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "calculator not configured", nil)
		return
	}
	loc := h.service.Catalog().FromRequest(r)
	common.Data(w, http.StatusOK, h.service.Options(loc))
}
