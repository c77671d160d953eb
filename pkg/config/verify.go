package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Only the subset of the schema used by Config is checked: required properties, types and minimums.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if err := checkNode(schema, configMap, defs, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// checkNode validates value against a schema node, resolving local $defs references
func checkNode(node map[string]any, value any, defs map[string]any, path string) error {
	if ref, ok := node["$ref"].(string); ok {
		def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
		if !ok {
			return fmt.Errorf("%s: unknown reference %s", pathName(path), ref)
		}
		return checkNode(def, value, defs, path)
	}

	switch node["type"] {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", pathName(path))
		}
		if req, ok := node["required"].([]any); ok {
			for _, r := range req {
				if _, ok := obj[fmt.Sprint(r)]; !ok {
					return fmt.Errorf("%s.%s is required", pathName(path), r)
				}
			}
		}
		props, _ := node["properties"].(map[string]any)
		for name, p := range props {
			pnode, ok := p.(map[string]any)
			if !ok {
				continue
			}
			v, ok := obj[name]
			if !ok {
				continue
			}
			if err := checkNode(pnode, v, defs, path+"."+name); err != nil {
				return err
			}
		}
	case "array":
		if value == nil {
			return nil // nil slice marshals as null
		}
		arr, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", pathName(path))
		}
		items, _ := node["items"].(map[string]any)
		for i, v := range arr {
			if items == nil {
				break
			}
			if err := checkNode(items, v, defs, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case "integer", "number":
		num, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%s: expected number", pathName(path))
		}
		if minimum, ok := node["minimum"].(float64); ok && num < minimum {
			return fmt.Errorf("%s: %v is less than minimum %v", pathName(path), num, minimum)
		}
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s: expected string", pathName(path))
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", pathName(path))
		}
	}
	return nil
}

func pathName(path string) string {
	if path == "" {
		return "config"
	}
	return strings.TrimPrefix(path, ".")
}

// schemaID is the published id of the readlist config schema
const schemaID = "https://github.com/umputun/readlist/pkg/config/config"

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	schema := jsonschema.Reflect(&Config{})
	schema.ID = jsonschema.ID(schemaID)
	schema.Title = "readlist configuration"
	schema.Description = "server, database, feed refresh and feed list settings of readlist"
	return schema, nil
}
