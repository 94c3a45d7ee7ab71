package quote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/pricing"
	"github.com/noah-isme/logistikpro/internal/quote"
)

type envelope struct {
	Data  quote.View `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	catalog, err := i18n.NewCatalog(i18n.RU)
	require.NoError(t, err)
	h := quote.NewHandler(quote.HandlerConfig{Service: quote.NewService(pricing.Default(), catalog)})
	r := chi.NewRouter()
	r.Route("/api/calculator", h.Routes)
	return r
}

func post(t *testing.T, srv http.Handler, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr, env
}

func TestCalculateStandardShipment(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	rr, env := post(t, srv, "/api/calculator", `{"cityFrom":"moscow","cityTo":"spb","weight":500,"serviceType":"standard"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	v := env.Data
	assert.Equal(t, i18n.RU, v.Locale)
	assert.Equal(t, "Москва", v.Route.From.Name)
	assert.Equal(t, "Санкт-Петербург", v.Route.To.Name)
	assert.EqualValues(t, 700, v.Route.DistanceKm)
	assert.Equal(t, "700 км", v.Route.Distance)
	assert.Equal(t, "Стандартная", v.Tier.Name)
	assert.Equal(t, "3-5 дней", v.Tier.Days)
	assert.EqualValues(t, 52500, v.BasePrice)
	assert.EqualValues(t, 0, v.ExtrasPrice)
	assert.EqualValues(t, 52500, v.TotalPrice)
	assert.Equal(t, "52\u00a0500 ₽", v.TotalPriceFormatted)
	assert.Empty(t, v.Extras)
}

func TestCalculateVolumeFromDimensionsWithExtras(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	body := `{"cityFrom":"moscow","cityTo":"kazan","weight":"","length":"100","width":"100","height":"200",
		"serviceType":"express","insurance":true,"doorToDoor":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculator?lang=en", strings.NewReader(body))
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	v := env.Data
	assert.Equal(t, i18n.EN, v.Locale)
	assert.Equal(t, "2", v.VolumeM3.String())
	assert.Equal(t, "500", v.BillableWeightKg.String())
	assert.EqualValues(t, 90000, v.BasePrice)
	assert.EqualValues(t, 3000, v.ExtrasPrice)
	assert.EqualValues(t, 93000, v.TotalPrice)
	assert.Equal(t, "93,000 ₽", v.TotalPriceFormatted)
	require.Len(t, v.Extras, 2)
	assert.Equal(t, "insurance", v.Extras[0].Kind)
	assert.Equal(t, "1800", v.Extras[0].Amount.String())
	assert.Equal(t, "doorToDoor", v.Extras[1].Kind)
	assert.Equal(t, "1,200 ₽", v.Extras[1].Formatted)
}

func TestCalculateDefaultsToStandardTier(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	rr, env := post(t, srv, "/api/calculator", `{"cityFrom":"moscow","cityTo":"spb","weight":10}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "standard", env.Data.Tier.Key)
	assert.EqualValues(t, 1500, env.Data.TotalPrice)
}

func TestCalculateValidationErrors(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"same city", `{"cityFrom":"moscow","cityTo":"moscow","weight":10}`, "INVALID_ROUTE"},
		{"unknown city", `{"cityFrom":"paris","cityTo":"moscow","weight":10}`, "UNKNOWN_CITY"},
		{"unknown tier", `{"cityFrom":"spb","cityTo":"moscow","weight":10,"serviceType":"teleport"}`, "UNKNOWN_SERVICE_TIER"},
		{"negative weight", `{"cityFrom":"spb","cityTo":"moscow","weight":-1}`, "VALIDATION_FAILED"},
		{"negative side", `{"cityFrom":"spb","cityTo":"moscow","weight":1,"length":-5,"width":1,"height":1}`, "VALIDATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := post(t, srv, "/api/calculator", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}

	rr, env := post(t, srv, "/api/calculator", `{"cityFrom":"moscow","cityTo":"moscow"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Города отправки и доставки должны различаться", env.Error.Message)
}

func TestCalculateMalformedJSON(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	rr, env := post(t, srv, "/api/calculator", `{"cityFrom":`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	rr, env = post(t, srv, "/api/calculator", `{"weight":"abc","cityFrom":"moscow","cityTo":"spb"}`)
	require.Equal(t, http.StatusOK, rr.Code, "unparsable form strings count as zero")
	assert.EqualValues(t, 1500, env.Data.TotalPrice)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/calculator/options?lang=en", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var env struct {
		Data quote.Options `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, i18n.EN, env.Data.Locale)
	require.Len(t, env.Data.Cities, len(pricing.Cities()))
	assert.Equal(t, quote.Option{Key: "moscow", Label: "Moscow"}, env.Data.Cities[0])
	require.Len(t, env.Data.Tiers, 3)
	assert.Equal(t, "express", env.Data.Tiers[1].Key)
	assert.Equal(t, "1.5", env.Data.Tiers[1].Multiplier.String())
	require.Len(t, env.Data.Extras, 4)
	assert.Equal(t, "doorToDoor", env.Data.Extras[3].Key)
}

func TestMeasureUnmarshal(t *testing.T) {
	t.Parallel()

	var m quote.Measure
	require.NoError(t, json.Unmarshal([]byte(`"2,5"`), &m))
	assert.True(t, m.Set)
	assert.Equal(t, "2.5", m.Value.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.False(t, m.Set)

	require.NoError(t, json.Unmarshal([]byte(`"  "`), &m))
	assert.False(t, m.Set)

	require.NoError(t, json.Unmarshal([]byte(`12.75`), &m))
	assert.Equal(t, "12.75", m.Value.String())

	require.ErrorIs(t, json.Unmarshal([]byte(`"1e100000000"`), &m), pricing.ErrMeasureOutOfRange)
	require.ErrorIs(t, json.Unmarshal([]byte(`1e-40`), &m), pricing.ErrMeasureOutOfRange)
}

func TestCalculateRejectsOutOfRangeMeasures(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	bodies := map[string]string{
		"huge weight":          `{"cityFrom":"moscow","cityTo":"spb","weight":1e20,"serviceType":"standard"}`,
		"huge exponent":        `{"cityFrom":"moscow","cityTo":"spb","weight":"1e100000000"}`,
		"huge number exponent": `{"cityFrom":"moscow","cityTo":"spb","weight":1e100000000}`,
		"tiny exponent":        `{"cityFrom":"moscow","cityTo":"spb","weight":"1e-100000000"}`,
		"long digits":          `{"cityFrom":"moscow","cityTo":"spb","weight":` + strings.Repeat("9", 200) + `}`,
		"huge volume":          `{"cityFrom":"moscow","cityTo":"spb","weight":1,"volume":"20000"}`,
		"huge side":            `{"cityFrom":"moscow","cityTo":"spb","weight":1,"length":1000000,"width":1,"height":1}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rr, env := post(t, srv, "/api/calculator", body)
			require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, env.Error.Message, "1 000 000 кг")
		})
	}

	rr, env := post(t, srv, "/api/calculator", `{"cityFrom":"moscow","cityTo":"spb","weight":1000000,"volume":10000,"serviceType":"express"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Positive(t, env.Data.TotalPrice)
}

func TestCalculateReportsExactExtraAmounts(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	rr, env := post(t, srv, "/api/calculator", `{"cityFrom":"moscow","cityTo":"spb","weight":333,"insurance":true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Len(t, env.Data.Extras, 1)
	assert.Equal(t, "699.3", env.Data.Extras[0].Amount.String())
	assert.EqualValues(t, 34965, env.Data.BasePrice)
	assert.EqualValues(t, 699, env.Data.ExtrasPrice)
	assert.EqualValues(t, 35664, env.Data.TotalPrice)
}
