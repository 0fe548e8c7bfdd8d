package response_test

import (
	"errors"
	"fitstudio/shared/failure"
	"fitstudio/transport/http/response"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON_RawBody(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "OK")

	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid input",
			err:      failure.BadRequestFromString("client_name is required"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"client_name is required","kind":"invalid_input"}`,
		},
		{
			name:     "not found",
			err:      failure.NotFound("class not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"class not found","kind":"not_found"}`,
		},
		{
			name:     "wrapped conflict",
			err:      fmt.Errorf("book: %w", failure.Conflict("class has already started")),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"class has already started","kind":"conflict"}`,
		},
		{
			name:     "internal hides cause",
			err:      errors.New("pq: password authentication failed"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error","kind":"internal"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"REQUEST LIMIT EXCEEDED","kind":"too_many_requests"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithUnhealthy(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
