package quote

import (
	"context"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/obs"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// Service prices calculator submissions and renders them for a locale.
type Service struct {
	calc    *pricing.Calculator
	catalog *i18n.Catalog
}

// NewService constructs a Service. Nil arguments fall back to the built-in
// tariff and catalog.
func NewService(calc *pricing.Calculator, catalog *i18n.Catalog) *Service {
	if calc == nil {
		calc = pricing.Default()
	}
	if catalog == nil {
		catalog, _ = i18n.NewCatalog(i18n.RU)
	}
	return &Service{calc: calc, catalog: catalog}
}

// Calculate validates req, prices it and renders the result for loc.
func (s *Service) Calculate(ctx context.Context, loc i18n.Locale, req Request) (View, error) {
	_, span := obs.Tracer("logistikpro/quote").Start(ctx, "pricing.quote")
	defer span.End()

	shipment, err := req.Shipment()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		obs.ObserveQuote("invalid", "rejected", 0)
		return View{}, s.translate(loc, err)
	}
	span.SetAttributes(
		attribute.String("quote.from", shipment.From.String()),
		attribute.String("quote.to", shipment.To.String()),
		attribute.String("quote.tier", shipment.Tier.String()),
	)

	q := s.calc.Quote(shipment)
	span.SetAttributes(
		attribute.Int64("quote.distance_km", q.DistanceKm),
		attribute.Int64("quote.total", q.TotalPrice),
	)
	obs.ObserveQuote(shipment.Tier.String(), "ok", float64(q.TotalPrice))
	return render(s.catalog, loc, q, shipment.From, shipment.To), nil
}

// Options returns the localised form choices.
func (s *Service) Options(loc i18n.Locale) Options {
	return options(s.catalog, loc)
}

// Catalog exposes the catalog used for rendering.
func (s *Service) Catalog() *i18n.Catalog { return s.catalog }

func (s *Service) translate(loc i18n.Locale, err error) error {
	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, pricing.ErrInvalidRoute):
		return common.NewAppError("INVALID_ROUTE", s.catalog.Label(loc, "error.invalid_route"), status, err)
	case errors.Is(err, pricing.ErrUnknownCity):
		return common.NewAppError("UNKNOWN_CITY", s.catalog.Label(loc, "error.unknown_city"), status, err)
	case errors.Is(err, pricing.ErrUnknownServiceTier):
		return common.NewAppError("UNKNOWN_SERVICE_TIER", s.catalog.Label(loc, "error.unknown_tier"), status, err)
	case errors.Is(err, pricing.ErrMeasureOutOfRange):
		return common.NewAppError("VALIDATION_FAILED", s.catalog.Label(loc, "error.out_of_range"), status, err)
	case errors.Is(err, pricing.ErrNegativeMeasure):
		return common.NewAppError("VALIDATION_FAILED", s.catalog.Label(loc, "error.negative"), status, err)
	default:
		return common.NewAppError("VALIDATION_FAILED", s.catalog.Label(loc, "error.validation"), status, err)
	}
}
