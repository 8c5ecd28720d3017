package geo

import (
	"encoding/json"
	"maps"
	"math"
	"reflect"
	"slices"

	gojson "github.com/goccy/go-json"
	"github.com/valyala/fastjson"
)

// Properties are the free-form members of a Feature. Values are kept in
// their canonical JSON form: nil, bool, float64, string, []any and
// map[string]any.
type Properties map[string]any

// normalize converts v to canonical JSON form.
func normalize(v any) (any, error) {
	var a fastjson.Arena
	jv, err := toValue(&a, v)
	if err != nil {
		return nil, err
	}
	return fromValue(jv), nil
}

func toValue(a *fastjson.Arena, v any) (*fastjson.Value, error) {
	switch x := v.(type) {
	case nil:
		return a.NewNull(), nil
	case *fastjson.Value:
		if x == nil {
			return a.NewNull(), nil
		}
		return x, nil
	case bool:
		if x {
			return a.NewTrue(), nil
		}
		return a.NewFalse(), nil
	case string:
		return a.NewString(x), nil
	case float64:
		return number(a, x)
	case float32:
		return number(a, float64(x))
	case int:
		return integer(a, int64(x))
	case int32:
		return a.NewNumberInt(int(x)), nil
	case int64:
		return integer(a, x)
	case uint:
		return unsigned(a, uint64(x))
	case uint32:
		return a.NewNumberFloat64(float64(x)), nil
	case uint64:
		return unsigned(a, x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return integer(a, i)
		}
		f, err := x.Float64()
		if err != nil {
			return nil, invalid(ErrPropertyValueInvalid, x)
		}
		return number(a, f)
	case []any:
		arr := a.NewArray()
		for i, item := range x {
			iv, err := toValue(a, item)
			if err != nil {
				return nil, err
			}
			arr.SetArrayItem(i, iv)
		}
		return arr, nil
	case map[string]any:
		return objectValue(a, x)
	case Properties:
		return objectValue(a, x)
	}

	// anything else goes through its JSON form
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, invalid(ErrPropertyValueInvalid, reflect.TypeOf(v).String())
	}
	jv, err := fastjson.ParseBytes(b)
	if err != nil {
		return nil, invalid(ErrPropertyValueInvalid, reflect.TypeOf(v).String())
	}
	return jv, nil
}

// Integers beyond ±2^53 have no exact float64 form.
const maxExactInt = 1 << 53

func number(a *fastjson.Arena, f float64) (*fastjson.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalid(ErrPropertyValueInvalid, f)
	}
	return a.NewNumberFloat64(positiveZero(f)), nil
}

func integer(a *fastjson.Arena, i int64) (*fastjson.Value, error) {
	if i > maxExactInt || i < -maxExactInt {
		return nil, invalid(ErrPropertyValueInexact, i)
	}
	return a.NewNumberFloat64(float64(i)), nil
}

func unsigned(a *fastjson.Arena, u uint64) (*fastjson.Value, error) {
	if u > maxExactInt {
		return nil, invalid(ErrPropertyValueInexact, u)
	}
	return a.NewNumberFloat64(float64(u)), nil
}

// positiveZero folds -0 into 0; the two compare equal and must encode alike.
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func objectValue(a *fastjson.Arena, m map[string]any) (*fastjson.Value, error) {
	o := a.NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		kv, err := toValue(a, m[k])
		if err != nil {
			return nil, at(err, k)
		}
		o.Set(k, kv)
	}
	return o, nil
}

func fromValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return positiveZero(v.GetFloat64())
	case fastjson.TypeArray:
		items := v.GetArray()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fromValue(item)
		}
		return out
	case fastjson.TypeObject:
		o := v.GetObject()
		out := make(map[string]any, o.Len())
		o.Visit(func(k []byte, item *fastjson.Value) {
			out[string(k)] = fromValue(item)
		})
		return out
	}
	return nil
}

// clone deep-copies a canonical value.
func clone(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = clone(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = clone(item)
		}
		return out
	}
	return v
}

func (p Properties) clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = clone(v)
	}
	return out
}

func (p Properties) equal(o Properties) bool {
	if len(p) != len(o) {
		return false
	}
	for k, v := range p {
		ov, ok := o[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

func (p Properties) hashInto(h *hasher) {
	var a fastjson.Arena
	// canonical values always encode
	v, _ := objectValue(&a, p)
	h.str(string(v.MarshalTo(nil)))
}

func (p Properties) encode(a *fastjson.Arena) *fastjson.Value {
	v, err := objectValue(a, p)
	if err != nil {
		return a.NewObject()
	}
	return v
}

func decodeProperties(v *fastjson.Value) (Properties, error) {
	if v == nil || v.Type() == fastjson.TypeNull {
		return Properties{}, nil
	}
	if v.Type() != fastjson.TypeObject {
		return nil, invalid(ErrPropertiesNotObject, v.Type().String())
	}
	props := Properties(fromValue(v).(map[string]any))
	if _, ok := props[""]; ok {
		return nil, invalid(ErrPropertyKeyEmpty, nil)
	}
	return props, nil
}
