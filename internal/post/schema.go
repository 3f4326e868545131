package post

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// headerSchemaJSON is the strict contract for the header block: the three
// required fields, the optional tags sequence and slug override, and nothing
// else. Unknown keys are rejected rather than coerced or ignored.
const headerSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["title", "description", "date"],
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"date": {"type": "string"},
		"tags": {"type": "array", "items": {"type": "string"}},
		"slug": {"type": "string"}
	}
}`

var headerSchema = jsonschema.MustCompileString("post-header.schema.json", headerSchemaJSON)

// validateHeader applies the header schema to the normalised metadata map.
func validateHeader(name string, header map[string]any) error {
	if err := headerSchema.Validate(header); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			kind, field := classifySchemaError(verr)
			return &ParseError{Name: name, Field: field, Kind: kind, Cause: err}
		}
		return &ParseError{Name: name, Kind: ErrInvalidField, Cause: err}
	}
	return nil
}

var schemaFieldRe = regexp.MustCompile(`'([^']+)'`)

func classifySchemaError(err *jsonschema.ValidationError) (error, string) {
	leaf := err
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if idx := strings.IndexByte(field, '/'); idx >= 0 {
		field = field[:idx]
	}
	if field == "" {
		if m := schemaFieldRe.FindStringSubmatch(leaf.Message); m != nil {
			field = m[1]
		}
	}

	switch {
	case strings.Contains(leaf.KeywordLocation, "additionalProperties"):
		return ErrUnknownField, field
	case strings.Contains(leaf.KeywordLocation, "required"):
		return ErrMissingField, field
	case field == "tags":
		return ErrMalformedTags, field
	default:
		return ErrInvalidField, field
	}
}

// normalizeValue rewrites a YAML-decoded value into the JSON value space the
// schema validator accepts: timestamps become RFC 3339 strings, integer
// variants become float64, anything exotic is stringified. The input is
// never mutated.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case nil, bool, string, float64:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return fmt.Sprintf("%v", value)
	}
}
