package geo

import (
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

// YAML returns the YAML node tree of e. Member order follows the JSON
// encoding and numeric arrays (positions) use flow style.
func YAML(e Encoder) *yaml.Node {
	return yamlNode(e)
}

func yamlNode(e Encoder) *yaml.Node {
	var a fastjson.Arena
	return toYAML(e.Encode(&a))
}

func toYAML(v *fastjson.Value) *yaml.Node {
	switch v.Type() {
	case fastjson.TypeObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		v.GetObject().Visit(func(k []byte, item *fastjson.Value) {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(k)}
			n.Content = append(n.Content, key, toYAML(item))
		})
		return n

	case fastjson.TypeArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		numeric := true
		for _, item := range v.GetArray() {
			numeric = numeric && item.Type() == fastjson.TypeNumber
			n.Content = append(n.Content, toYAML(item))
		}
		if numeric && len(n.Content) > 0 {
			n.Style = yaml.FlowStyle
		}
		return n

	case fastjson.TypeString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v.GetStringBytes())}
	case fastjson.TypeNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}
	case fastjson.TypeTrue:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
	case fastjson.TypeFalse:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
