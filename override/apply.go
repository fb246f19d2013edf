package override

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Apply parses overrides and applies each directive to a copy of base,
// returning the modified configuration. base is never mutated.
//
// Directive paths address the JSON representation of T, so a struct
// field tagged `json:"rsi_period"` is overridden with
// "rsi_period:3". Nested fields use dotted paths. Each literal is
// converted to the type of the existing value at its path: integer for
// integral numbers, float for fractional numbers, bool for booleans,
// and the raw string otherwise. A path that does not exist in base
// fails with ErrUnknownPath; a literal that cannot be converted fails
// with ErrTypeConversion.
//
// Every directive is attempted even when earlier ones fail. On any
// failure Apply returns the zero T and an *ApplyError aggregating one
// *DirectiveError per failed directive; base is left untouched either
// way. Directives are absolute assignments, so applying the same
// overrides twice yields the same configuration as applying them once.
func Apply[T any](base T, overrides string) (T, error) {
	var zero T

	directives, err := ParseDirectives(overrides)
	if err != nil {
		return zero, err
	}

	doc, err := json.Marshal(base)
	if err != nil {
		return zero, fmt.Errorf("marshal base configuration: %w", err)
	}

	var failures []error
	for _, d := range directives {
		existing := gjson.GetBytes(doc, d.Path)
		if !existing.Exists() {
			failures = append(failures, &DirectiveError{
				Path:  d.Path,
				Value: d.Value,
				Err:   ErrUnknownPath,
			})
			continue
		}

		converted, convErr := convertLiteral(existing, d.Value)
		if convErr != nil {
			failures = append(failures, &DirectiveError{
				Path:  d.Path,
				Value: d.Value,
				Err:   convErr,
			})
			continue
		}

		doc, err = sjson.SetBytes(doc, d.Path, converted)
		if err != nil {
			failures = append(failures, &DirectiveError{
				Path:  d.Path,
				Value: d.Value,
				Err:   err,
			})
		}
	}
	if len(failures) > 0 {
		return zero, &ApplyError{Errors: failures}
	}

	var out T
	if err := json.Unmarshal(doc, &out); err != nil {
		// A fractional literal set over an integral base number decodes
		// fine as JSON but can still miss the Go field's type. Trace the
		// failing field back to its directive so the caller sees a
		// conversion failure, not a bare decode error.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			for _, d := range directives {
				if d.Path != typeErr.Field {
					continue
				}
				return zero, &ApplyError{Errors: []error{&DirectiveError{
					Path:  d.Path,
					Value: d.Value,
					Err: fmt.Errorf("%w: %q does not fit type %s",
						ErrTypeConversion, d.Value, typeErr.Type),
				}}}
			}
		}
		return zero, fmt.Errorf("unmarshal overridden configuration: %w", err)
	}
	return out, nil
}

// convertLiteral converts a raw directive literal to match the type of
// the value currently at the directive's path.
func convertLiteral(existing gjson.Result, literal string) (any, error) {
	switch existing.Type {
	case gjson.Number:
		// Integral JSON numbers take integer literals; fractional
		// literals still pass when the stored number itself carries a
		// fraction or exponent.
		if isIntegral(existing.Raw) {
			if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
				return i, nil
			}
		}
		if f, err := strconv.ParseFloat(literal, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("%w: %q is not numeric", ErrTypeConversion, literal)
	case gjson.True, gjson.False:
		switch strings.ToLower(literal) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrTypeConversion, literal)
	case gjson.String:
		return literal, nil
	case gjson.Null:
		return inferLiteral(literal), nil
	default:
		return nil, fmt.Errorf("%w: path holds a structured value", ErrTypeConversion)
	}
}

// isIntegral reports whether a raw JSON number has no fractional or
// exponent part.
func isIntegral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

// inferLiteral picks a type for a literal assigned over a JSON null,
// where the base value gives no type to match: bool, then integer,
// then float, then the raw string.
func inferLiteral(literal string) any {
	switch strings.ToLower(literal) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return f
	}
	return literal
}
