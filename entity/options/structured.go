package options

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FromTOML reads top-level scalar entries of a TOML document into a Map.
func FromTOML(r io.Reader, name string) (Map, error) {
	raw := make(map[string]any)
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &FormatError{Path: name, Err: fmt.Errorf("failed to decode TOML: %w", err)}
	}
	return flatten(raw, name)
}

// FromYAML reads top-level scalar entries of a YAML document into a Map.
// An empty document yields an empty Map.
func FromYAML(r io.Reader, name string) (Map, error) {
	raw := make(map[string]any)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, &FormatError{Path: name, Err: fmt.Errorf("failed to decode YAML: %w", err)}
	}
	return flatten(raw, name)
}

func flatten(raw map[string]any, name string) (Map, error) {
	optionMap := make(Map, len(raw))
	for k, v := range raw {
		s, err := scalar(v)
		if err != nil {
			return nil, &FormatError{Path: name, Text: k, Err: err}
		}
		optionMap[k] = s
	}
	return optionMap, nil
}

// scalar renders a decoded value the way it would be written in the line
// grammar, so every source is resolved by the same integer parsing.
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNestedValue, v)
	}
}
