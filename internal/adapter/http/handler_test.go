package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubtag/internal/core/port"
)

// stubGenerator returns canned results for router tests.
type stubGenerator struct {
	result *port.GenerationResult
	err    error
}

func (s *stubGenerator) GenerateForOrder(context.Context, uuid.UUID) (*port.GenerationResult, error) {
	return s.result, s.err
}

func (s *stubGenerator) GenerateForAsset(context.Context, uuid.UUID) (*port.GenerationResult, error) {
	return s.result, s.err
}

func (s *stubGenerator) Refresh(context.Context, uuid.UUID) (*port.GenerationResult, error) {
	return s.result, s.err
}

func (s *stubGenerator) ListScripts(context.Context, uuid.UUID, string) ([]port.RenderedScript, error) {
	return nil, s.err
}

func (s *stubGenerator) Export(context.Context, uuid.UUID) (string, error) {
	return "<!DOCTYPE html>", s.err
}

func newTestHandler(svc port.ScriptGenerator) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, prometheus.NewRegistry()).Router()
}

func TestGenerateEndpointReturnsCounts(t *testing.T) {
	h := newTestHandler(&stubGenerator{result: &port.GenerationResult{Generated: 2, Skipped: 1}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/scripts/generate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res port.GenerationResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 2, res.Generated)
	assert.Equal(t, 1, res.Skipped)
}

func TestGenerateEndpointRejectsBadUUID(t *testing.T) {
	h := newTestHandler(&stubGenerator{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/not-a-uuid/scripts/generate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingOrderMapsTo404(t *testing.T) {
	h := newTestHandler(&stubGenerator{err: port.ErrOrderNotFound})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/scripts/refresh", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportEndpointServesHTML(t *testing.T) {
	h := newTestHandler(&stubGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+uuid.NewString()+"/scripts/export", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}
