package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	AnalyticsSvcURL string
	// StaticDir holds the built web client. Empty disables static serving.
	StaticDir string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.SugaredLogger
}

func NewGateway(config Config, client HTTPClient, logger *zap.SugaredLogger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

// Headers that describe a single connection and must not be forwarded.
var hopHeaders = map[string]bool{
	"Connection":          true,
	"Keep-Alive":          true,
	"Proxy-Authenticate":  true,
	"Proxy-Authorization": true,
	"Te":                  true,
	"Trailer":             true,
	"Transfer-Encoding":   true,
	"Upgrade":             true,
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Upstream picks the service that owns an /api path.
func (g *Gateway) Upstream(path string) string {
	if strings.HasPrefix(path, "/api/analytics/") {
		return g.config.AnalyticsSvcURL
	}
	if rest, ok := strings.CutPrefix(path, "/api/restaurants/"); ok {
		parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
		if len(parts) == 2 && (parts[1] == "analytics" || parts[1] == "top-lunchboxes") {
			return g.config.AnalyticsSvcURL
		}
	}
	return g.config.OrderSvcURL
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Errorw("failed to build upstream request", "url", url, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}
	copyHeaders(req.Header, r.Header)
	req.ContentLength = r.ContentLength
	if host := clientIP(r); host != "" {
		req.Header.Set("X-Forwarded-For", host)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Errorw("upstream unavailable", "method", r.Method, "path", r.URL.Path, "upstream", targetURL, "error", err)
		writeError(w, http.StatusBadGateway, "upstream service unavailable", "bad_gateway")
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warnw("failed to copy upstream response", "path", r.URL.Path, "error", err)
	}
	g.logger.Debugw("proxied", "method", r.Method, "path", r.URL.Path, "upstream", targetURL, "status", resp.StatusCode)
}

func (g *Gateway) APIHandler(w http.ResponseWriter, r *http.Request) {
	g.ProxyRequest(w, r, g.Upstream(r.URL.Path))
}

// StaticHandler serves the web client. Unknown paths get index.html so the
// client-side router can resolve them.
func (g *Gateway) StaticHandler(w http.ResponseWriter, r *http.Request) {
	if g.config.StaticDir == "" {
		http.NotFound(w, r)
		return
	}
	name := filepath.Join(g.config.StaticDir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}
	http.ServeFile(w, r, filepath.Join(g.config.StaticDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.APIHandler)
	r.PathPrefix("/").HandlerFunc(g.StaticHandler)
	return r
}

func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		if hopHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		dst[k] = append([]string(nil), v...)
	}
}

func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	if prior := r.Header.Get("X-Forwarded-For"); prior != "" {
		return prior + ", " + host
	}
	return host
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}
