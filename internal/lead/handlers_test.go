package lead_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/logistikpro/internal/lead"
)

func TestHandlerSubmit(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	h := lead.NewHandler(lead.HandlerConfig{Service: lead.NewService(lead.ServiceConfig{
		Catalog:   newCatalog(t),
		Notifiers: []lead.Notifier{notifier},
	})})

	body := `{"name":"Ivan","phone":"89161234567","agree":true,"services":["express"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/request?lang=en", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Submit(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Data lead.Receipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotZero(t, resp.Data.ID)
	assert.Equal(t, "Thank you! Your request has been received. A manager will contact you shortly.", resp.Data.Message)
	require.Len(t, notifier.leads, 1)
	assert.Contains(t, notifier.leads[0].Message, "✓ Express delivery")
}

func TestHandlerSubmitErrors(t *testing.T) {
	t.Parallel()

	h := lead.NewHandler(lead.HandlerConfig{Service: lead.NewService(lead.ServiceConfig{Catalog: newCatalog(t)})})

	tests := []struct {
		name    string
		body    string
		status  int
		code    string
		message string
	}{
		{"missing phone", `{"name":"Ivan","agree":true}`, http.StatusUnprocessableEntity, "MISSING_REQUIRED_FIELD", "Пожалуйста, заполните обязательные поля: имя и телефон"},
		{"no consent", `{"name":"Ivan","phone":"89161234567"}`, http.StatusUnprocessableEntity, "CONSENT_REQUIRED", "Пожалуйста, подтвердите согласие с политикой конфиденциальности"},
		{"bad email", `{"name":"Ivan","phone":"89161234567","agree":true,"email":"x@"}`, http.StatusUnprocessableEntity, "INVALID_EMAIL", ""},
		{"short phone", `{"name":"Ivan","phone":"123","agree":true}`, http.StatusUnprocessableEntity, "INVALID_PHONE", ""},
		{"bad source", `{"name":"Ivan","phone":"89161234567","agree":true,"source":"fax"}`, http.StatusUnprocessableEntity, "VALIDATION_FAILED", ""},
		{"malformed", `{"name":`, http.StatusBadRequest, "BAD_REQUEST", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Submit(rr, httptest.NewRequest(http.MethodPost, "/api/request", strings.NewReader(tt.body)))
			require.Equal(t, tt.status, rr.Code, rr.Body.String())
			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Error.Message)
			}
		})
	}
}
