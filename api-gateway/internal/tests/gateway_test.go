package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lunchbox-marketplace/api-gateway/internal/gateway"
	"lunchbox-marketplace/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testConfig = gateway.Config{
	OrderSvcURL:     "http://order-svc",
	AnalyticsSvcURL: "http://analytics-svc",
}

func upstreamResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, zap.NewNop().Sugar())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Upstream(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/analytics/top-today", want: "http://analytics-svc"},
		{path: "/api/restaurants/r-1/analytics", want: "http://analytics-svc"},
		{path: "/api/restaurants/r-1/top-lunchboxes", want: "http://analytics-svc"},
		{path: "/api/restaurants/r-1/analytics/", want: "http://analytics-svc"},
		{path: "/api/restaurants", want: "http://order-svc"},
		{path: "/api/restaurants/r-1", want: "http://order-svc"},
		{path: "/api/restaurants/r-1/lunchboxes", want: "http://order-svc"},
		{path: "/api/restaurants/owner/u-1", want: "http://order-svc"},
		{path: "/api/orders/o-1/qrcode", want: "http://order-svc"},
		{path: "/api/cart/items", want: "http://order-svc"},
	}

	gw := gateway.NewGateway(testConfig, nil, zap.NewNop().Sugar())
	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			assert.Equal(t, testCase.want, gw.Upstream(testCase.path))
		})
	}
}

func TestGateway_ProxyForwardsRequest(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, zap.NewNop().Sugar())

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Method == http.MethodPost &&
			req.URL.String() == "http://order-svc/api/cart/items?x=1" &&
			req.Header.Get("Authorization") == "Bearer tok" &&
			req.Header.Get("X-Cart-Session") == "sess-1" &&
			req.Header.Get("Connection") == "" &&
			string(body) == `{"lunchboxId":"lb-1","quantity":1}`
	})).Return(upstreamResponse(http.StatusCreated, `{"items":[]}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items?x=1", strings.NewReader(`{"lunchboxId":"lb-1","quantity":1}`))
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("X-Cart-Session", "sess-1")
	req.Header.Set("Connection", "keep-alive")
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"items":[]}`, rr.Body.String())
}

func TestGateway_ProxyAnalytics(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, zap.NewNop().Sugar())
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "analytics-svc" && req.URL.Path == "/api/restaurants/r-1/analytics"
	})).Return(upstreamResponse(http.StatusForbidden, `{"code":"forbidden"}`), nil).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants/r-1/analytics", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGateway_UpstreamDown(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient, zap.NewNop().Sugar())
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestGateway_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	gw := gateway.NewGateway(gateway.Config{StaticDir: dir}, nil, zap.NewNop().Sugar())
	routes := gw.SetupRoutes()

	tests := []struct {
		path string
		want string
	}{
		{path: "/app.js", want: "console.log(1)"},
		{path: "/orders/ord-1", want: "<html>app</html>"},
	}
	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			routes.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, testCase.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), testCase.want)
		})
	}
}

func TestGateway_NoStaticDir(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil, zap.NewNop().Sugar())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
