package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
)

var errNoJSON = errors.New("no JSON object found")

// ExtractJSON returns the first JSON object in a model response, tolerating
// markdown code fences and surrounding prose.
func ExtractJSON(content string) (json.RawMessage, error) {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if json.Valid([]byte(s)) && strings.HasPrefix(s, "{") {
		return json.RawMessage(s), nil
	}

	start := strings.Index(s, "{")
	if start < 0 {
		return nil, errNoJSON
	}
	dec := json.NewDecoder(strings.NewReader(s[start:]))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Conforms checks a decoded reply against the schema's required keys and
// declared types. Null counts as absent. Enum values are not enforced here;
// callers normalise them.
func Conforms(raw json.RawMessage, s *services.Schema) error {
	if s == nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return conforms(v, s, "$")
}

func conforms(v any, s *services.Schema, path string) error {
	switch services.SchemaType(strings.ToLower(string(s.Type))) {
	case services.SchemaObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", path)
		}
		for _, key := range s.Required {
			if val, ok := obj[key]; !ok || val == nil {
				return fmt.Errorf("%s.%s: required field missing", path, key)
			}
		}
		for key, prop := range s.Properties {
			val, ok := obj[key]
			if !ok || val == nil || prop == nil {
				continue
			}
			if err := conforms(val, prop, path+"."+key); err != nil {
				return err
			}
		}
	case services.SchemaArray:
		items, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", path)
		}
		if s.Items == nil {
			return nil
		}
		for i, item := range items {
			if item == nil {
				continue
			}
			if err := conforms(item, s.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case services.SchemaString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%s: expected string", path)
		}
	case services.SchemaBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", path)
		}
	case services.SchemaNumber:
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%s: expected number", path)
		}
	case services.SchemaInteger:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("%s: expected integer", path)
		}
	}
	return nil
}
