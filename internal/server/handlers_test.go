package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/woozymasta/geojson/internal/config"

	gojson "github.com/goccy/go-json"
)

const square = `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}`

func newTestServer(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	return NewServerContext(cfg).Routes()
}

func post(h http.Handler, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return rec
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	h := newTestServer(t, nil)

	rec := post(h, "/api/validate", square)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("Content-Type"), "application/geo+json")
	is.Equal(rec.Header().Get("X-Geo-Bbox"), "0,0,1,1")
	is.Equal(rec.Header().Get("X-Geo-Type"), "Polygon")
	is.Equal(rec.Header().Get("X-Geo-Issues"), "0")
	is.True(rec.Header().Get(RequestIDHeader) != "")
	is.Equal(rec.Body.String(), square)
}

func TestValidateRejects(t *testing.T) {
	is := is.New(t)
	h := newTestServer(t, nil)

	rec := post(h, "/api/validate", `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0]]]}`)
	is.Equal(rec.Code, http.StatusUnprocessableEntity)

	var body errorResponse
	is.NoErr(gojson.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Path, "coordinates[0]")
	is.True(strings.Contains(body.Error, "identical"))

	rec = post(h, "/api/validate", `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("X-Geo-Issues"), "1")

	rec = post(h, "/api/validate?orientation=reject", `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`)
	is.Equal(rec.Code, http.StatusUnprocessableEntity)
	is.NoErr(gojson.Unmarshal(rec.Body.Bytes(), &body))
	is.Equal(body.Path, "coordinates[0]")

	rec = post(h, "/api/validate?orientation=upside-down", square)
	is.Equal(rec.Code, http.StatusBadRequest)
}

func TestValidateLimits(t *testing.T) {
	is := is.New(t)
	h := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 16 })

	rec := post(h, "/api/validate", square)
	is.Equal(rec.Code, http.StatusRequestEntityTooLarge)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/validate", nil))
	is.Equal(rec.Code, http.StatusMethodNotAllowed)
	is.Equal(rec.Header().Get("Allow"), http.MethodPost)
}

func TestValidateFormats(t *testing.T) {
	is := is.New(t)
	h := newTestServer(t, nil)

	rec := post(h, "/api/validate?format=yaml", square)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("Content-Type"), "application/yaml")
	is.True(strings.HasPrefix(rec.Body.String(), "type: Polygon\n"))

	rec = post(h, "/api/validate?report=true", square)
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Header().Get("Content-Type"), "application/json")

	var report struct {
		Type     string    `json:"type"`
		Polygons int       `json:"polygons"`
		BBox     []float64 `json:"bbox"`
	}
	is.NoErr(gojson.Unmarshal(rec.Body.Bytes(), &report))
	is.Equal(report.Type, "Polygon")
	is.Equal(report.Polygons, 1)
	is.Equal(report.BBox, []float64{0, 0, 1, 1})

	rec = post(h, "/api/validate?indent=2", square)
	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.Contains(rec.Body.String(), "\n  \"type\": \"Polygon\""))

	rec = post(h, "/api/validate?format=xml", square)
	is.Equal(rec.Code, http.StatusBadRequest)
}

func TestTypesAndHealth(t *testing.T) {
	is := is.New(t)
	h := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/types", nil))
	is.Equal(rec.Code, http.StatusOK)

	var types []typeInfo
	is.NoErr(gojson.Unmarshal(rec.Body.Bytes(), &types))
	is.Equal(len(types), 9)
	is.Equal(string(types[0].Type), "Feature")
	is.True(!types[0].Geometry)
	is.True(!types[len(types)-1].Supported)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Body.String(), "ok\n")
}

func TestRequestIDPropagation(t *testing.T) {
	is := is.New(t)

	var seen string
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	const id = "0b8e2c35-6f7a-4d0e-9d53-0c2a8c1b6e11"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	is.Equal(rec.Code, http.StatusTeapot)
	is.Equal(seen, id)
	is.Equal(rec.Header().Get(RequestIDHeader), id)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	is.True(seen != "not-a-uuid")
	is.Equal(rec.Header().Get(RequestIDHeader), seen)
}
