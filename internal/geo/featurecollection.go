package geo

import (
	"slices"

	"github.com/valyala/fastjson"
)

// FeatureCollection is a non-empty ordered sequence of features.
type FeatureCollection struct {
	features []Feature
}

func NewFeatureCollection(features ...Feature) (FeatureCollection, error) {
	if err := validateFeatures(features); err != nil {
		return FeatureCollection{}, err
	}
	return FeatureCollection{features: slices.Clone(features)}, nil
}

func validateFeatures(features []Feature) error {
	if len(features) == 0 {
		return invalid(ErrFeatureCollectionEmpty, 0)
	}
	for i, f := range features {
		if f.geometry == nil {
			return atIndex(invalid(ErrGeometryMissing, nil), fieldFeatures, i)
		}
	}
	return nil
}

func (FeatureCollection) Type() Type { return TypeFeatureCollection }

// WithFeatures returns a collection holding features instead of the current ones.
func (c FeatureCollection) WithFeatures(features []Feature) (FeatureCollection, error) {
	return NewFeatureCollection(features...)
}

// Append returns a copy of c with fs added at the end.
func (c FeatureCollection) Append(fs ...Feature) (FeatureCollection, error) {
	return NewFeatureCollection(append(slices.Clone(c.features), fs...)...)
}

func (c FeatureCollection) Features() []Feature {
	return slices.Clone(c.features)
}

// Feature returns the feature at index i. It panics if i is out of range.
func (c FeatureCollection) Feature(i int) Feature {
	return c.features[i]
}

func (c FeatureCollection) Len() int {
	return len(c.features)
}

func (c FeatureCollection) Equal(o FeatureCollection) bool {
	return slices.EqualFunc(c.features, o.features, Feature.Equal)
}

func (c FeatureCollection) Hash() uint64 {
	h := newHasher(TypeFeatureCollection)
	h.u64(uint64(len(c.features)))
	for _, f := range c.features {
		h.u64(f.Hash())
	}
	return h.sum()
}

// DecodeFeatureCollection reads a {"type":"FeatureCollection"} object.
func DecodeFeatureCollection(v *fastjson.Value) (FeatureCollection, error) {
	if err := expectType(v, TypeFeatureCollection); err != nil {
		return FeatureCollection{}, err
	}

	fv := v.Get(fieldFeatures)
	if fv == nil || fv.Type() == fastjson.TypeNull {
		return FeatureCollection{}, at(invalid(ErrFeaturesMissing, nil), fieldFeatures)
	}
	if fv.Type() != fastjson.TypeArray {
		return FeatureCollection{}, at(invalid(ErrFeaturesNotArray, fv.Type().String()), fieldFeatures)
	}
	items := fv.GetArray()
	if len(items) == 0 {
		return FeatureCollection{}, at(invalid(ErrFeatureCollectionEmpty, 0), fieldFeatures)
	}

	features := make([]Feature, len(items))
	for i, item := range items {
		f, err := DecodeFeature(item)
		if err != nil {
			return FeatureCollection{}, atIndex(err, fieldFeatures, i)
		}
		features[i] = f
	}
	return FeatureCollection{features: features}, nil
}

// Encode writes the features and an empty "properties" object.
func (c FeatureCollection) Encode(a *fastjson.Arena) *fastjson.Value {
	arr := a.NewArray()
	for i, f := range c.features {
		arr.SetArrayItem(i, f.Encode(a))
	}
	o := a.NewObject()
	o.Set(fieldType, a.NewString(TypeFeatureCollection.String()))
	o.Set(fieldFeatures, arr)
	o.Set(fieldProperties, a.NewObject())
	return o
}

func (c FeatureCollection) MarshalJSON() ([]byte, error) {
	return marshal(c), nil
}

func (c *FeatureCollection) UnmarshalJSON(data []byte) error {
	v, err := parseDocument(data)
	if err != nil {
		return err
	}
	decoded, err := DecodeFeatureCollection(v)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

func (c FeatureCollection) MarshalYAML() (any, error) {
	return yamlNode(c), nil
}

func (c FeatureCollection) String() string {
	return string(marshal(c))
}
