package geo

import (
	"github.com/valyala/fastjson"
)

// Feature is a geometry with properties and an optional identifier.
type Feature struct {
	geometry   Geometry
	properties Properties
	id         string
}

// NewFeature returns a feature without properties.
func NewFeature(g Geometry) (Feature, error) {
	if g == nil {
		return Feature{}, invalid(ErrGeometryMissing, nil)
	}
	return Feature{geometry: g, properties: Properties{}}, nil
}

func (Feature) Type() Type { return TypeFeature }

func (f Feature) Geometry() Geometry {
	return f.geometry
}

// ID returns the identifier and whether one is set.
func (f Feature) ID() (string, bool) {
	return f.id, f.id != ""
}

func (f Feature) HasID() bool {
	return f.id != ""
}

// WithID returns a copy of f with the identifier set.
func (f Feature) WithID(id string) (Feature, error) {
	if id == "" {
		return Feature{}, invalid(ErrIDEmpty, nil)
	}
	f.id = id
	return f, nil
}

// WithProperty returns a copy of f with key set to value. The value is
// stored in canonical JSON form, so an int is read back as float64. Integers
// outside ±2^53 are rejected with ErrPropertyValueInexact since float64
// cannot hold them exactly.
func (f Feature) WithProperty(key string, value any) (Feature, error) {
	if key == "" {
		return Feature{}, invalid(ErrPropertyKeyEmpty, nil)
	}
	if value == nil {
		return Feature{}, at(invalid(ErrPropertyValueMissing, nil), key)
	}
	v, err := normalize(value)
	if err != nil {
		return Feature{}, at(err, key)
	}
	f.properties = f.properties.clone()
	f.properties[key] = v
	return f, nil
}

// WithoutProperty returns a copy of f without key.
func (f Feature) WithoutProperty(key string) Feature {
	f.properties = f.properties.clone()
	delete(f.properties, key)
	return f
}

// Property returns a copy of the value stored under key.
func (f Feature) Property(key string) (any, bool) {
	v, ok := f.properties[key]
	return clone(v), ok
}

func (f Feature) HasProperty(key string) bool {
	_, ok := f.properties[key]
	return ok
}

// Properties returns a deep copy of the properties.
func (f Feature) Properties() Properties {
	return f.properties.clone()
}

func (f Feature) HasProperties() bool {
	return len(f.properties) > 0
}

func (f Feature) NumberOfProperties() int {
	return len(f.properties)
}

// Equal compares geometry and properties. The identifier is not part of the
// comparison.
func (f Feature) Equal(o Feature) bool {
	if f.geometry == nil || o.geometry == nil {
		return f.geometry == nil && o.geometry == nil && f.properties.equal(o.properties)
	}
	return f.geometry.Equal(o.geometry) && f.properties.equal(o.properties)
}

func (f Feature) Hash() uint64 {
	h := newHasher(TypeFeature)
	if f.geometry != nil {
		h.u64(f.geometry.Hash())
	}
	f.properties.hashInto(h)
	return h.sum()
}

// DecodeFeature reads a {"type":"Feature"} object. A missing or null
// "properties" member yields no properties; numeric identifiers are kept as
// their JSON text.
func DecodeFeature(v *fastjson.Value) (Feature, error) {
	if err := expectType(v, TypeFeature); err != nil {
		return Feature{}, err
	}

	gv := v.Get(fieldGeometry)
	if gv == nil || gv.Type() == fastjson.TypeNull {
		return Feature{}, at(invalid(ErrGeometryMissing, nil), fieldGeometry)
	}
	g, err := DecodeGeometry(gv)
	if err != nil {
		return Feature{}, at(err, fieldGeometry)
	}

	props, err := decodeProperties(v.Get(fieldProperties))
	if err != nil {
		return Feature{}, at(err, fieldProperties)
	}

	id, err := decodeID(v.Get(fieldID))
	if err != nil {
		return Feature{}, at(err, fieldID)
	}

	return Feature{geometry: g, properties: props, id: id}, nil
}

func decodeID(v *fastjson.Value) (string, error) {
	if v == nil || v.Type() == fastjson.TypeNull {
		return "", nil
	}
	switch v.Type() {
	case fastjson.TypeString:
		id := string(v.GetStringBytes())
		if id == "" {
			return "", invalid(ErrIDEmpty, nil)
		}
		return id, nil
	case fastjson.TypeNumber:
		return v.String(), nil
	}
	return "", invalid(ErrIDInvalid, v.Type().String())
}

func (f Feature) Encode(a *fastjson.Arena) *fastjson.Value {
	o := a.NewObject()
	o.Set(fieldType, a.NewString(TypeFeature.String()))
	if f.geometry != nil {
		o.Set(fieldGeometry, f.geometry.Encode(a))
	} else {
		o.Set(fieldGeometry, a.NewNull())
	}
	o.Set(fieldProperties, f.properties.encode(a))
	if f.id != "" {
		o.Set(fieldID, a.NewString(f.id))
	}
	return o
}

func (f Feature) MarshalJSON() ([]byte, error) {
	return marshal(f), nil
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeFeature(v)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

func (f Feature) MarshalYAML() (any, error) {
	return yamlNode(f), nil
}

func (f Feature) String() string {
	return string(marshal(f))
}
