package load

import (
	"strconv"

	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"

	"github.com/jsonptrio/jsonptr/xerrors"
)

// parseYAML decodes YAML into a fastjson value. The conversion goes through
// yaml.Node rather than map[string]any so that object keys keep their
// document order, which pointers rely on for reverse lookup.
func parseYAML(data []byte) (*fastjson.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	arena := &fastjson.Arena{}
	return yamlToValue(arena, &root)
}

func yamlToValue(arena *fastjson.Arena, node *yaml.Node) (*fastjson.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return arena.NewNull(), nil
		}
		return yamlToValue(arena, node.Content[0])
	case yaml.MappingNode:
		obj := arena.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, xerrors.Errorf("line %d: non-scalar mapping key", key.Line)
			}
			val, err := yamlToValue(arena, node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key.Value, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := arena.NewArray()
		for i, item := range node.Content {
			val, err := yamlToValue(arena, item)
			if err != nil {
				return nil, err
			}
			arr.SetArrayItem(i, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		return yamlScalar(arena, node)
	case yaml.AliasNode:
		return yamlToValue(arena, node.Alias)
	default:
		return nil, xerrors.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

func yamlScalar(arena *fastjson.Arena, node *yaml.Node) (*fastjson.Value, error) {
	switch node.Tag {
	case "!!null":
		return arena.NewNull(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return nil, xerrors.Errorf("line %d: bad bool %q", node.Line, node.Value)
		}
		if b {
			return arena.NewTrue(), nil
		}
		return arena.NewFalse(), nil
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, xerrors.Errorf("line %d: bad integer %q", node.Line, node.Value)
		}
		return arena.NewNumberInt(int(n)), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, xerrors.Errorf("line %d: bad float %q", node.Line, node.Value)
		}
		return arena.NewNumberFloat64(f), nil
	default:
		// strings, timestamps and unknown tags all become JSON strings
		return arena.NewString(node.Value), nil
	}
}
