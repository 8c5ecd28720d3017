package processor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/woozymasta/geojson/internal/geo"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode renders a document in the given format. JSON is compact when indent
// is zero; YAML always uses indent, defaulting to 2.
func Encode(e geo.Encoder, format string, indent int) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := gojson.Marshal(e)
		if err != nil {
			return nil, err
		}
		if indent <= 0 {
			return data, nil
		}
		var buf bytes.Buffer
		if err := gojson.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatYAML:
		if indent <= 0 {
			indent = 2
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(indent)
		if err := enc.Encode(geo.YAML(e)); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// EncodeReport renders the report summary in the given format.
func EncodeReport(r *Report, format string, indent int) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		if indent <= 0 {
			return gojson.Marshal(r)
		}
		return gojson.MarshalIndent(r, "", strings.Repeat(" ", indent))
	case FormatYAML:
		return yaml.Marshal(r)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
