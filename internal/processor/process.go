package processor

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/geo"
)

// ErrOrientation is reported for badly wound rings under the reject policy.
var ErrOrientation = errors.New("ring has the wrong winding order")

// Ring roles.
const (
	RoleExterior = "exterior"
	RoleInterior = "interior"
)

// Issue is a ring whose winding does not match its role.
type Issue struct {
	Path       string  `json:"path" yaml:"path"`
	Role       string  `json:"role" yaml:"role"`
	SignedArea float64 `json:"signed_area" yaml:"signed_area"`
}

// Report describes a validated document.
type Report struct {
	Object     geo.Object `json:"-" yaml:"-"`
	Type       geo.Type   `json:"type" yaml:"type"`
	Features   int        `json:"features" yaml:"features"`
	Geometries int        `json:"geometries" yaml:"geometries"`
	Polygons   int        `json:"polygons" yaml:"polygons"`
	Bound      *orb.Bound `json:"-" yaml:"-"`
	// BBox is Bound as [west, south, east, north].
	BBox   []float64 `json:"bbox,omitempty" yaml:"bbox,flow,omitempty"`
	Issues []Issue   `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Process parses data and audits ring winding according to cfg.
//
// A document that fails to decode yields a *geo.ValidationError. Under the
// reject policy the first winding issue is returned as a *geo.ValidationError
// wrapping ErrOrientation, together with the report.
func Process(data []byte, cfg *config.Config) (*Report, error) {
	obj, err := geo.Parse(data)
	if err != nil {
		return nil, err
	}

	report := &Report{Object: obj, Type: obj.Type()}
	switch o := obj.(type) {
	case geo.Feature:
		report.Features = 1
	case geo.FeatureCollection:
		report.Features = o.Len()
	}
	geo.Walk(obj, func(geo.Geometry) { report.Geometries++ })
	report.Polygons = len(geo.Polygons(obj))

	if b, ok := geo.Bound(obj); ok {
		report.Bound = &b
		report.BBox = []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
	}

	if cfg.Orientation == config.OrientationIgnore {
		return report, nil
	}

	report.Issues = audit(obj)
	for _, issue := range report.Issues {
		log.Debug().
			Str("path", issue.Path).
			Str("role", issue.Role).
			Float64("signed_area", issue.SignedArea).
			Msg("Ring winding issue")
	}

	if cfg.Orientation == config.OrientationReject && len(report.Issues) > 0 {
		first := report.Issues[0]
		return report, &geo.ValidationError{Err: ErrOrientation, Path: first.Path, Value: first.Role}
	}

	return report, nil
}

// audit walks every polygon of obj in document order.
func audit(obj geo.Object) []Issue {
	var issues []Issue
	switch o := obj.(type) {
	case geo.FeatureCollection:
		for i, f := range o.Features() {
			issues = append(issues, auditGeometry(f.Geometry(), fmt.Sprintf("features[%d].geometry.coordinates", i))...)
		}
	case geo.Feature:
		issues = auditGeometry(o.Geometry(), "geometry.coordinates")
	case geo.Geometry:
		issues = auditGeometry(o, "coordinates")
	}
	return issues
}

func auditGeometry(g geo.Geometry, path string) []Issue {
	switch x := g.(type) {
	case geo.Polygon:
		return auditPolygon(x, path)
	case geo.MultiPolygon:
		var issues []Issue
		for i, p := range x.Polygons() {
			issues = append(issues, auditPolygon(p, fmt.Sprintf("%s[%d]", path, i))...)
		}
		return issues
	}
	return nil
}

func auditPolygon(p geo.Polygon, path string) []Issue {
	var issues []Issue
	for i, r := range p.Rings() {
		exterior := i == 0
		if r.IsValidRing(exterior) {
			continue
		}
		role := RoleInterior
		if exterior {
			role = RoleExterior
		}
		issues = append(issues, Issue{
			Path:       fmt.Sprintf("%s[%d]", path, i),
			Role:       role,
			SignedArea: r.SignedArea(),
		})
	}
	return issues
}
