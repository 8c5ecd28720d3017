// Package server handles HTTP requests and middleware.
package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/geo"
	"github.com/woozymasta/geojson/internal/processor"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeGeoJSON = "application/geo+json"
	contentTypeJSON    = "application/json"
	contentTypeYAML    = "application/yaml"
)

type errorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

type typeInfo struct {
	Type      geo.Type `json:"type"`
	Geometry  bool     `json:"geometry"`
	Supported bool     `json:"supported"`
}

// HandleValidate decodes the request body, audits it and answers with the
// normalized document, or with the report when ?report=true.
//
// Query parameters: format (json|yaml), indent, orientation, report.
func (s *ServerContext) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	cfg, format, indent, err := s.requestOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	data, err := readBody(w, r, cfg.MaxBodyBytes)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := processor.Process(data, cfg)
	if err != nil {
		var ve *geo.ValidationError
		if errors.As(err, &ve) {
			log.Debug().Err(err).Str("path", ve.Path).Msg("Document rejected")
			writeError(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Err.Error(), Path: ve.Path})
			return
		}
		writeError(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("X-Geo-Type", report.Type.String())
	w.Header().Set("X-Geo-Hash", strconv.FormatUint(report.Object.Hash(), 16))
	w.Header().Set("X-Geo-Issues", strconv.Itoa(len(report.Issues)))
	if len(report.BBox) == 4 {
		w.Header().Set("X-Geo-Bbox", formatBBox(report.BBox))
	}

	var (
		body        []byte
		contentType string
	)
	if r.URL.Query().Get("report") == "true" {
		body, err = processor.EncodeReport(report, format, indent)
		contentType = contentTypeJSON
	} else {
		body, err = processor.Encode(report.Object, format, indent)
		contentType = contentTypeGeoJSON
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if format == processor.FormatYAML {
		contentType = contentTypeYAML
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(body)
}

// requestOptions overlays query parameters on the server configuration.
func (s *ServerContext) requestOptions(r *http.Request) (*config.Config, string, int, error) {
	cfg := *s.Config
	q := r.URL.Query()

	format := q.Get("format")
	switch format {
	case "", processor.FormatJSON, processor.FormatYAML:
	default:
		return nil, "", 0, errors.New("format must be json or yaml")
	}

	indent := cfg.Indent
	if v := q.Get("indent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 8 {
			return nil, "", 0, errors.New("indent must be between 0 and 8")
		}
		indent = n
	}

	if v := q.Get("orientation"); v != "" {
		o, err := config.ParseOrientation(v)
		if err != nil {
			return nil, "", 0, err
		}
		cfg.Orientation = o
	}

	return &cfg, format, indent, nil
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer func() { _ = body.Close() }()
	return io.ReadAll(body)
}

func formatBBox(b []float64) string {
	parts := make([]string, len(b))
	for i, f := range b {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// HandleTypes lists the known type names.
func (s *ServerContext) HandleTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	types := make([]typeInfo, 0, len(geo.Types))
	for _, t := range geo.Types {
		types = append(types, typeInfo{
			Type:      t,
			Geometry:  t.IsGeometry(),
			Supported: t != geo.TypeGeometryCollection,
		})
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	// Ignoring error as we cannot handle client disconnects
	_ = gojson.NewEncoder(w).Encode(types)
}

// HandleHealth answers liveness checks.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok\n"))
}

func writeError(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(body)
}
