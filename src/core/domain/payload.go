package domain

import "math"

// Payload is an untyped request body, as decoded from JSON, plus any fields the
// caller adds (owner, path ids). Entities are built from it by the Parse* functions.
type Payload map[string]any

// Validation codes shared by every entity; prefixed with the entity name.
const (
	codeMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	codeTypeMismatch    = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// absent reports whether a value counts as not provided: no key, null, empty
// string, false or zero.
func absent(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0 || math.IsNaN(v)
	case float32:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case int32:
		return v == 0
	}
	return false
}

// requireStrings runs the presence check over all fields, then the type check.
// A payload that is both incomplete and mistyped reports the missing property.
func requireStrings(entity string, p Payload, fields ...string) (map[string]string, error) {
	for _, f := range fields {
		if absent(p[f]) {
			return nil, NewValidationError(entity+"."+codeMissingProperty, ErrMissingProperty, f, "required property is missing")
		}
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := p[f].(string)
		if !ok {
			return nil, NewValidationError(entity+"."+codeTypeMismatch, ErrTypeMismatch, f, "property must be a string")
		}
		out[f] = s
	}
	return out, nil
}
