package apidocs

import (
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSpec(t *testing.T) {
	specJSON, err := Spec()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(specJSON, &doc))
	assert.Contains(t, doc.Paths, "/")
	assert.Contains(t, doc.Paths, "/.well-known/acme-challenge/{token}")
}

func TestDoc(t *testing.T) {
	specJSON, err := Spec()
	require.NoError(t, err)

	e := echo.New()
	e.Pre(Doc("/_debug/api", specJSON))
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "site")
	})

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/_debug/api")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/_debug/api/apidocs", rec.Header().Get(echo.HeaderLocation))

	rec = get("/_debug/api/apidocs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-url="/_debug/api/apispec.json"`)

	rec = get("/_debug/api/apispec.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(specJSON), rec.Body.String())

	rec = get("/notes/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "site", rec.Body.String())
}

func TestDocAuthorizer(t *testing.T) {
	e := echo.New()
	e.Pre(Doc("/_debug/api", []byte(`{}`), WithAuthorizer(func(echo.Context) bool {
		return false
	})))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_debug/api/apispec.json", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoopbackOnly(t *testing.T) {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()

	tests := map[string]bool{
		"127.0.0.1:40000": true,
		"[::1]:40000":     true,
		"192.0.2.1:40000": false,
		"10.0.0.5:40000":  false,
	}

	for remoteAddr, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/_debug/api", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set(echo.HeaderXForwardedFor, "127.0.0.1")
		assert.Equal(t, want, LoopbackOnly(e.NewContext(req, httptest.NewRecorder())), remoteAddr)
	}
}
