package lead

import (
	"errors"
	"net/http"

	"github.com/noah-isme/logistikpro/internal/common"
)

// Handler exposes the lead capture endpoint.
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

// Submit handles POST /api/request.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "lead service not configured", nil)
		return
	}
	var req Request
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	loc := h.service.catalog.FromRequest(r)
	receipt, err := h.service.Submit(r.Context(), loc, req, common.ClientIP(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	common.Data(w, http.StatusCreated, receipt)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	cat := h.service.catalog
	loc := cat.FromRequest(r)
	status := http.StatusUnprocessableEntity
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrMissingRequiredField):
		common.WriteError(w, common.NewAppError("MISSING_REQUIRED_FIELD", cat.Label(loc, "error.required_contact"), status, err))
	case errors.Is(err, ErrConsentRequired):
		common.WriteError(w, common.NewAppError("CONSENT_REQUIRED", cat.Label(loc, "error.consent"), status, err))
	case errors.Is(err, ErrInvalidEmail):
		common.WriteError(w, common.NewAppError("INVALID_EMAIL", cat.Label(loc, "error.invalid_email"), status, err))
	case errors.Is(err, ErrInvalidPhone):
		common.WriteError(w, common.NewAppError("INVALID_PHONE", cat.Label(loc, "error.invalid_phone"), status, err))
	case errors.As(err, &verr):
		common.WriteError(w, common.NewAppError("VALIDATION_FAILED", cat.Label(loc, "error.validation"), status, err).WithDetails(verr.Issues))
	default:
		common.WriteError(w, err)
	}
}
