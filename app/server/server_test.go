package main

import (
	"docs-site/app/server/acme"
	"docs-site/app/server/config"
	"docs-site/app/server/handlers"
	"docs-site/app/server/metrics"
	"docs-site/app/server/static"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestSite(t *testing.T, mutate func(cfg *config.Config)) *echo.Echo {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>docs</html>"), 0644))

	s, err := static.New(root)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	var cfg config.Config
	cfg.Site.DocumentRoot = root
	mutate(&cfg)

	l := zaptest.NewLogger(t)
	m := metrics.New()
	handlerApp := handlers.NewApp(l, s, acme.NewResolver(acme.MapSource{
		"ACME_TOKEN": "token",
		"ACME_KEY":   "key",
	}), m)

	return newSiteServer(&cfg, l, handlerApp, m)
}

func request(e *echo.Echo, target, remoteAddr string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSiteServerAcmeBypassesRedirectAndRateLimit(t *testing.T) {
	e := newTestSite(t, func(cfg *config.Config) {
		cfg.System.ForceHTTPSRedirect = true
		cfg.System.RateLimit = 1
	})

	// 纯 HTTP 的普通请求被重定向
	rec := request(e, "/index.html", "192.0.2.1:1234", nil)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)

	// ACME 验证请求不重定向、不限流
	for i := 0; i < 5; i++ {
		rec = request(e, "/.well-known/acme-challenge/token", "192.0.2.1:1234", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "key", rec.Body.String())
	}

	// HTTPS 请求受限流约束，伪造的 X-Forwarded-For 无法绕过
	https := map[string]string{echo.HeaderXForwardedProto: "https"}
	assert.Equal(t, http.StatusOK, request(e, "/index.html", "192.0.2.2:1234", https).Code)

	spoofed := map[string]string{
		echo.HeaderXForwardedProto: "https",
		echo.HeaderXForwardedFor:   "198.51.100.7",
	}
	assert.Equal(t, http.StatusTooManyRequests, request(e, "/index.html", "192.0.2.2:1234", spoofed).Code)
}

func TestSiteServerAPIDocsOnlyInDebug(t *testing.T) {
	e := newTestSite(t, func(cfg *config.Config) {})
	rec := request(e, "/_debug/api/apispec.json", "127.0.0.1:1234", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	e = newTestSite(t, func(cfg *config.Config) {
		cfg.System.Debug = true
	})

	rec = request(e, "/_debug/api/apispec.json", "127.0.0.1:1234", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acme-challenge")

	// 非本机访问被拒绝，伪造 X-Forwarded-For 也不行
	rec = request(e, "/_debug/api/apispec.json", "192.0.2.1:1234", map[string]string{
		echo.HeaderXForwardedFor: "127.0.0.1",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// 站点内容不受影响
	rec = request(e, "/", "192.0.2.1:1234", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>docs</html>", rec.Body.String())
}

func TestOpsServer(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("x"), 0644))
	s, err := static.New(root)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ops := newOpsServer(handlers.NewApp(zaptest.NewLogger(t), s, nil, metrics.New()))

	assert.Equal(t, http.StatusOK, request(ops, "/healthz", "192.0.2.1:1234", nil).Code)
	assert.Equal(t, http.StatusOK, request(ops, "/metrics", "192.0.2.1:1234", nil).Code)
	assert.Equal(t, http.StatusNotFound, request(ops, "/index.html", "192.0.2.1:1234", nil).Code)
}
