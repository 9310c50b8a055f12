package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"playlog/config"
	deliverycontext "playlog/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.Default())

	var ctxID string
	e.Use(m.Process)
	e.GET("/", func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "given")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "given", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "given", ctxID)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), ctxID)
}

func TestLoggerMiddleware_DebugOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	for _, debug := range []bool{false, true} {
		buf.Reset()
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/games", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/games?x=1", nil))

		if !debug {
			assert.Empty(t, buf.String())

			continue
		}

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "HTTP Request", line["msg"])
		assert.Equal(t, "/games", line["route"])
		assert.Equal(t, "x=1", line["query"])
		assert.EqualValues(t, http.StatusOK, line["status"])
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetricsMiddleware()

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/players", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })
	e.GET("/metrics", m.Handler())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/players", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/players", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `playlog_http_requests_total{method="GET",route="/players",status="200"} 2`)
	assert.Contains(t, body, `playlog_http_requests_total{method="GET",route="/boom",status="418"} 1`)
	assert.Contains(t, body, "playlog_http_request_duration_seconds_bucket")

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var durationCount uint64
	for _, family := range families {
		if family.GetName() != "playlog_http_request_duration_seconds" {
			continue
		}
		for _, metric := range family.GetMetric() {
			durationCount += metric.GetHistogram().GetSampleCount()
		}
	}
	// Two /players, one /boom and the earlier /metrics scrape.
	assert.Equal(t, uint64(4), durationCount)
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}
