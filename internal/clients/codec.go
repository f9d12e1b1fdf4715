package clients

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// decodeConfig parses raw configuration file content into a generic document.
// JSONC is standardized (comments and trailing commas stripped) before JSON
// decoding.
func decodeConfig(format Format, data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	doc := make(map[string]any)

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case FormatJSONC:
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("failed to standardize JSONC config: %w", err)
		}
		if err := json.Unmarshal(standardized, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSONC config: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	return doc, nil
}

// encodeConfig serializes a generic document with stable (sorted) key
// ordering. JSONC files are written back as plain JSON: comments from the
// original file are not preserved, unrelated keys are.
func encodeConfig(format Format, doc map[string]any) ([]byte, error) {
	switch format {
	case FormatJSON, FormatJSONC:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize JSON config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to serialize TOML config: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize YAML config: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}
