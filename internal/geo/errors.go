package geo

import (
	"errors"
	"fmt"
	"strings"
)

// Position
var (
	ErrLongitudeMin         = fmt.Errorf("longitude must be equal to or greater than %g", LongitudeMin)
	ErrLongitudeMax         = fmt.Errorf("longitude must be lesser than or equal to %g", LongitudeMax)
	ErrLatitudeMin          = fmt.Errorf("latitude must be equal to or greater than %g", LatitudeMin)
	ErrLatitudeMax          = fmt.Errorf("latitude must be lesser than or equal to %g", LatitudeMax)
	ErrAltitudeMin          = fmt.Errorf("altitude must be equal to or greater than %g", AltitudeMin)
	ErrNotFinite            = errors.New("coordinate must be a finite number")
	ErrPositionTooShort     = errors.New("position must have at least 2 coordinates")
	ErrPositionTooLong      = errors.New("position must have at most 3 coordinates")
	ErrPositionNotNumeric   = errors.New("position coordinates must be numeric values")
	ErrPositionNotArray     = errors.New("position must be an array")
	ErrCoordinatesMissing   = errors.New("coordinates are not defined")
	ErrCoordinatesNotArray  = errors.New("coordinates must be an array")
	ErrCoordinatesNotNested = errors.New("coordinates must be an array of arrays")
)

// Lines and rings
var (
	ErrLineStringTooShort = errors.New("LineString must have at least two positions")
	ErrRingTooShort       = errors.New("LinearRing must have at least four positions")
	ErrRingNotClosed      = errors.New("first and last positions of a LinearRing must be identical")
	ErrRingNotDefined     = errors.New("ring is not defined")
)

// Polygons and collections
var (
	ErrPolygonNoRings         = errors.New("Polygon must have at least one ring")
	ErrMultiPointEmpty        = errors.New("MultiPoint must have at least one position")
	ErrMultiLineStringEmpty   = errors.New("MultiLineString must have at least one LineString")
	ErrMultiPolygonEmpty      = errors.New("MultiPolygon must have at least one Polygon")
	ErrGeometryMissing        = errors.New("geometry is not defined")
	ErrPropertyKeyEmpty       = errors.New("property key is not defined")
	ErrPropertyValueMissing   = errors.New("property value is not defined")
	ErrPropertyValueInvalid   = errors.New("property value is not representable as JSON")
	ErrPropertyValueInexact   = errors.New("integer property value is not exactly representable as a JSON number")
	ErrPropertiesNotObject    = errors.New("properties must be an object")
	ErrIDEmpty                = errors.New("id cannot be empty")
	ErrIDInvalid              = errors.New("id must be a string or a number")
	ErrFeaturesMissing        = errors.New("features are not defined")
	ErrFeaturesNotArray       = errors.New("features must be an array")
	ErrFeatureCollectionEmpty = errors.New("FeatureCollection must have at least one feature")
)

// Discriminator and documents
var (
	ErrTypeNotDefined  = errors.New("GeoJSON type is not defined")
	ErrTypeEmpty       = errors.New("GeoJSON type is empty")
	ErrTypeUnknown     = errors.New("GeoJSON type is unknown")
	ErrTypeNotValid    = errors.New("GeoJSON type is not valid")
	ErrTypeUnsupported = errors.New("GeoJSON type is not supported")
	ErrNotObject       = errors.New("GeoJSON document must be an object")
	ErrMalformed       = errors.New("GeoJSON document is not valid JSON")
)

// ValidationError reports the first invariant violated while building or
// decoding a value.
type ValidationError struct {
	// Err is one of the package sentinels.
	Err error
	// Path locates the failure inside a decoded document, e.g. "coordinates[0][3]".
	// It is empty for direct constructor calls.
	Path string
	// Value is the offending value, if any.
	Value any
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("geojson: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error, value any) error {
	return &ValidationError{Err: err, Value: value}
}

// at prefixes the path of a validation error with a parent segment.
// Segments starting with '[' are appended without a separating dot.
func at(err error, segment string) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	cp := *ve
	switch {
	case cp.Path == "":
		cp.Path = segment
	case strings.HasPrefix(cp.Path, "["):
		cp.Path = segment + cp.Path
	default:
		cp.Path = segment + "." + cp.Path
	}
	return &cp
}

func atIndex(err error, segment string, i int) error {
	return at(err, fmt.Sprintf("%s[%d]", segment, i))
}
