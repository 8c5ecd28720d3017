package geo

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

func squareFeature(t *testing.T) Feature {
	t.Helper()
	p, err := NewPolygon(square(t))
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFeature(p)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFeatureProperties(t *testing.T) {
	is := is.New(t)

	f := squareFeature(t)
	is.True(!f.HasProperties())

	named, err := f.WithProperty("name", "square")
	is.NoErr(err)
	is.True(!f.HasProperty("name"))
	is.Equal(named.NumberOfProperties(), 1)

	named, err = named.WithProperty("sides", 4)
	is.NoErr(err)
	v, ok := named.Property("sides")
	is.True(ok)
	is.Equal(v, 4.0)

	type tag struct {
		Label string `json:"label"`
	}
	named, err = named.WithProperty("tag", tag{Label: "a"})
	is.NoErr(err)
	v, _ = named.Property("tag")
	is.Equal(v, map[string]any{"label": "a"})

	_, err = f.WithProperty("", 1)
	is.True(errors.Is(err, ErrPropertyKeyEmpty))

	_, err = f.WithProperty("k", nil)
	is.True(errors.Is(err, ErrPropertyValueMissing))

	_, err = f.WithProperty("k", math.NaN())
	is.True(errors.Is(err, ErrPropertyValueInvalid))

	_, err = f.WithProperty("k", make(chan int))
	is.True(errors.Is(err, ErrPropertyValueInvalid))

	big, err := f.WithProperty("k", int64(1)<<53)
	is.NoErr(err)
	v, _ = big.Property("k")
	is.Equal(v, float64(1<<53))

	_, err = f.WithProperty("k", int64(1)<<53+1)
	is.True(errors.Is(err, ErrPropertyValueInexact))

	_, err = f.WithProperty("k", uint64(math.MaxUint64))
	is.True(errors.Is(err, ErrPropertyValueInexact))

	_, err = f.WithProperty("k", json.Number("9007199254740993"))
	is.True(errors.Is(err, ErrPropertyValueInexact))

	_, err = f.WithProperty("k", map[string]any{"deep": int64(-1) << 60})
	is.True(errors.Is(err, ErrPropertyValueInexact))

	is.True(!named.WithoutProperty("name").HasProperty("name"))
	is.True(named.HasProperty("name"))
}

func TestFeaturePropertyIsolation(t *testing.T) {
	is := is.New(t)

	f, err := squareFeature(t).WithProperty("list", []any{1, "x"})
	is.NoErr(err)

	v, _ := f.Property("list")
	v.([]any)[0] = "changed"
	props := f.Properties()
	props["extra"] = true

	v, _ = f.Property("list")
	is.Equal(v, []any{1.0, "x"})
	is.Equal(f.NumberOfProperties(), 1)
}

func TestFeatureEqualityIgnoresID(t *testing.T) {
	is := is.New(t)

	f := squareFeature(t)
	a, err := f.WithID("a")
	is.NoErr(err)
	b, err := f.WithID("b")
	is.NoErr(err)

	is.True(a.Equal(b))
	is.Equal(a.Hash(), b.Hash())

	id, ok := a.ID()
	is.True(ok)
	is.Equal(id, "a")

	_, err = f.WithID("")
	is.True(errors.Is(err, ErrIDEmpty))

	c, err := a.WithProperty("k", "v")
	is.NoErr(err)
	is.True(!a.Equal(c))
}

func TestNewFeatureRequiresGeometry(t *testing.T) {
	is := is.New(t)

	_, err := NewFeature(nil)
	is.True(errors.Is(err, ErrGeometryMissing))
}

func TestDecodeFeature(t *testing.T) {
	is := is.New(t)

	f, err := DecodeFeature(fastjson.MustParse(`{
		"type": "Feature",
		"id": 102374,
		"geometry": {"type": "Point", "coordinates": [1, 2]},
		"properties": {"a": {"b": [1, "x", true, null]}}
	}`))
	is.NoErr(err)
	id, ok := f.ID()
	is.True(ok)
	is.Equal(id, "102374")
	v, _ := f.Property("a")
	is.Equal(v, map[string]any{"b": []any{1.0, "x", true, nil}})

	f, err = DecodeFeature(fastjson.MustParse(
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]}}`))
	is.NoErr(err)
	is.True(!f.HasProperties())
	is.True(!f.HasID())

	for _, tc := range []struct {
		doc  string
		err  error
		path string
	}{
		{`{"type":"Feature","geometry":null}`, ErrGeometryMissing, "geometry"},
		{`{"type":"Feature"}`, ErrGeometryMissing, "geometry"},
		{`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,100]}}`, ErrLatitudeMax, "geometry.coordinates"},
		{`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":[]}`, ErrPropertiesNotObject, "properties"},
		{`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"id":""}`, ErrIDEmpty, "id"},
		{`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"id":true}`, ErrIDInvalid, "id"},
		{`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"":1}}`, ErrPropertyKeyEmpty, "properties"},
	} {
		_, err := DecodeFeature(fastjson.MustParse(tc.doc))
		is.True(errors.Is(err, tc.err))
		var ve *ValidationError
		is.True(errors.As(err, &ve))
		is.Equal(ve.Path, tc.path)
	}
}

func TestFeatureEncode(t *testing.T) {
	is := is.New(t)

	p, err := NewPointLonLat(1, 2)
	is.NoErr(err)
	f, err := NewFeature(p)
	is.NoErr(err)
	f, err = f.WithProperty("b", 2)
	is.NoErr(err)
	f, err = f.WithProperty("a", "x")
	is.NoErr(err)
	f, err = f.WithID("f1")
	is.NoErr(err)

	is.Equal(f.String(),
		`{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"a":"x","b":2},"id":"f1"}`)
}

func TestFeatureCollection(t *testing.T) {
	is := is.New(t)

	_, err := NewFeatureCollection()
	is.True(errors.Is(err, ErrFeatureCollectionEmpty))

	f := squareFeature(t)
	c, err := NewFeatureCollection(f)
	is.NoErr(err)
	is.Equal(c.Len(), 1)

	_, err = c.WithFeatures(nil)
	is.True(errors.Is(err, ErrFeatureCollectionEmpty))

	_, err = c.Append(Feature{})
	is.True(errors.Is(err, ErrGeometryMissing))

	c2, err := c.Append(f)
	is.NoErr(err)
	is.Equal(c2.Len(), 2)
	is.Equal(c.Len(), 1)
	is.True(!c.Equal(c2))

	data, err := c2.MarshalJSON()
	is.NoErr(err)
	is.True(strings.Contains(string(data), `"properties":{}}`))

	var decoded FeatureCollection
	is.NoErr(decoded.UnmarshalJSON(data))
	is.True(decoded.Equal(c2))
}

func TestDecodeFeatureCollection(t *testing.T) {
	is := is.New(t)

	for _, tc := range []struct {
		doc  string
		err  error
		path string
	}{
		{`{"type":"FeatureCollection"}`, ErrFeaturesMissing, "features"},
		{`{"type":"FeatureCollection","features":{}}`, ErrFeaturesNotArray, "features"},
		{`{"type":"FeatureCollection","features":[]}`, ErrFeatureCollectionEmpty, "features"},
		{`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]}},{"type":"Feature"}]}`,
			ErrGeometryMissing, "features[1].geometry"},
	} {
		_, err := DecodeFeatureCollection(fastjson.MustParse(tc.doc))
		is.True(errors.Is(err, tc.err))
		var ve *ValidationError
		is.True(errors.As(err, &ve))
		is.Equal(ve.Path, tc.path)
	}
}

func TestFeatureCollectionYAML(t *testing.T) {
	is := is.New(t)

	f, err := squareFeature(t).WithProperty("name", "square")
	is.NoErr(err)
	c, err := NewFeatureCollection(f)
	is.NoErr(err)

	out, err := yaml.Marshal(c)
	is.NoErr(err)
	is.True(strings.Contains(string(out), "type: FeatureCollection"))
	is.True(strings.Contains(string(out), "[0, 1]"))

	var doc struct {
		Type     string `yaml:"type"`
		Features []struct {
			Type       string         `yaml:"type"`
			Properties map[string]any `yaml:"properties"`
		} `yaml:"features"`
	}
	is.NoErr(yaml.Unmarshal(out, &doc))
	is.Equal(doc.Type, "FeatureCollection")
	is.Equal(len(doc.Features), 1)
	is.Equal(doc.Features[0].Properties["name"], "square")
}
