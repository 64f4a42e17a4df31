package config

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// missingKeys walks a decoded document alongside the Go type it decodes into
// and returns the document path of every yaml-tagged field whose key is absent
// or null. A key that is present with a zero value ("" or 0) is not missing.
// Values whose shape does not match the type are left to the decoder.
func missingKeys(node *yaml.Node, t reflect.Type, path string) []string {
	node = resolveNode(node)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return missingStructKeys(node, t, path)
	case reflect.Slice, reflect.Array:
		if node == nil || node.Kind != yaml.SequenceNode {
			return nil
		}
		var missing []string
		for i, item := range node.Content {
			missing = append(missing, missingKeys(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i))...)
		}
		return missing
	}
	return nil
}

func missingStructKeys(node *yaml.Node, t reflect.Type, path string) []string {
	var values map[string]*yaml.Node
	switch {
	case node == nil:
		values = map[string]*yaml.Node{}
	case node.Kind == yaml.MappingNode:
		values = make(map[string]*yaml.Node, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			values[node.Content[i].Value] = node.Content[i+1]
		}
	default:
		return nil
	}

	var missing []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if !field.IsExported() || name == "" || name == "-" {
			continue
		}

		fieldPath := joinPath(path, name)
		value, ok := values[name]
		if !ok || isNull(value) {
			missing = append(missing, fieldPath)
			continue
		}
		missing = append(missing, missingKeys(value, field.Type, fieldPath)...)
	}
	return missing
}

// resolveNode unwraps documents and aliases. An empty document yields nil.
func resolveNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		case 0:
			return nil
		default:
			return node
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	node = resolveNode(node)
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
