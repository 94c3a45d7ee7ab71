package lead

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/obs"
)

var (
	// ErrMissingRequiredField is returned when name or phone is blank.
	ErrMissingRequiredField = errors.New("name and phone are required")
	// ErrConsentRequired is returned when the privacy policy box is unchecked.
	ErrConsentRequired = errors.New("privacy policy consent is required")
	// ErrInvalidPhone is returned when the phone does not have 11 digits.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email")
)

// ValidationError carries field-level issues from struct validation.
type ValidationError struct {
	Issues []common.FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Message)
	}
	return "invalid lead: " + strings.Join(parts, "; ")
}

// Lead is an accepted submission ready to hand to notifiers.
type Lead struct {
	ID         uuid.UUID
	Locale     i18n.Locale
	Request    Request
	Message    string
	ReceivedAt time.Time
	ClientIP   string
}

// Notifier relays an accepted lead to the sales team.
type Notifier interface {
	Notify(ctx context.Context, lead Lead) error
}

// LogNotifier writes each lead as a structured log event.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, lead Lead) error {
	n.Logger.Info().
		Str("lead_id", lead.ID.String()).
		Str("source", string(lead.Request.Source)).
		Str("locale", string(lead.Locale)).
		Str("name", lead.Request.Name).
		Str("phone", lead.Request.Phone).
		Str("contact_method", lead.Request.ContactMethod).
		Strs("services", lead.Request.Services).
		Str("client_ip", lead.ClientIP).
		Str("message", lead.Message).
		Msg("lead_received")
	return nil
}

// Receipt acknowledges an accepted lead.
type Receipt struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// Service validates, formats and relays lead submissions.
type Service struct {
	catalog   *i18n.Catalog
	validator *common.Validator
	notifiers []Notifier
	logger    zerolog.Logger
	now       func() time.Time
}

// ServiceConfig configures the Service dependencies.
type ServiceConfig struct {
	Catalog   *i18n.Catalog
	Validator *common.Validator
	Notifiers []Notifier
	Logger    zerolog.Logger
	Now       func() time.Time
}

// NewService constructs a Service.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		catalog:   cfg.Catalog,
		validator: cfg.Validator,
		notifiers: cfg.Notifiers,
		logger:    cfg.Logger,
		now:       cfg.Now,
	}
	if s.catalog == nil {
		s.catalog, _ = i18n.NewCatalog(i18n.RU)
	}
	if s.validator == nil {
		s.validator = common.NewValidator()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Validate normalises req and checks it in the order the form reports
// problems: required contact fields, consent, then format rules.
func (s *Service) Validate(req Request) (Request, error) {
	req = req.Normalize()
	if req.Name == "" || req.Phone == "" {
		return req, ErrMissingRequiredField
	}
	if !req.Agree {
		return req, ErrConsentRequired
	}
	if issues := s.validator.Struct(req); len(issues) > 0 {
		for _, issue := range issues {
			if issue.Field == "email" && issue.Rule == "email" {
				return req, ErrInvalidEmail
			}
		}
		return req, &ValidationError{Issues: issues}
	}
	if !ValidPhone(req.Phone) {
		return req, ErrInvalidPhone
	}
	return req, nil
}

// Submit validates req, formats the manager message and hands the lead to
// every notifier. Notifier failures are logged but do not reject the lead.
func (s *Service) Submit(ctx context.Context, loc i18n.Locale, req Request, clientIP string) (Receipt, error) {
	normalized, err := s.Validate(req)
	if err != nil {
		obs.ObserveLead(sourceLabel(normalized.Source), "rejected")
		return Receipt{}, err
	}

	lead := Lead{
		ID:         uuid.New(),
		Locale:     loc,
		Request:    normalized,
		Message:    FormatMessage(s.catalog, loc, normalized),
		ReceivedAt: s.now().UTC(),
		ClientIP:   clientIP,
	}
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, lead); err != nil {
			obs.ObserveLeadNotifyFailure()
			s.logger.Error().Err(err).Str("lead_id", lead.ID.String()).Str("notifier", fmt.Sprintf("%T", n)).Msg("lead notify failed")
		}
	}
	obs.ObserveLead(sourceLabel(normalized.Source), "accepted")
	return Receipt{ID: lead.ID, Message: s.catalog.Label(loc, "lead.success")}, nil
}

func sourceLabel(src Source) string {
	switch src {
	case SourceDetailed, SourceQuick:
		return string(src)
	default:
		return "unknown"
	}
}
