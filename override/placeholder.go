package override

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseParams parses an override string into a parameter map, inferring
// each value's type from the literal itself rather than from a base
// configuration: "true"/"false" become bool, "none"/"null"/"" become
// nil, integer and float literals become int64 and float64, and
// anything else stays a string. This is the form consumed by
// placeholder expansion, where parameters are assigned before any base
// field exists to match against.
func ParseParams(s string) (map[string]any, error) {
	directives, err := ParseDirectives(s)
	if err != nil {
		return nil, err
	}
	params := make(map[string]any, len(directives))
	for _, d := range directives {
		params[d.Path] = inferLiteral(d.Value)
	}
	return params, nil
}

// ExpandPlaceholders walks value and replaces every string of the exact
// form "{name}" with params["name"], recursing into maps and slices.
// The input is never mutated; maps and slices containing replacements
// are rebuilt. A placeholder naming a parameter that is not in params
// fails with an error wrapping ErrUnknownPlaceholder.
//
// Only whole-string placeholders are substituted, so the replacement
// keeps the parameter's type: {"value": "{rsi_level}"} with
// params{"rsi_level": 8} yields {"value": 8}, not "8".
func ExpandPlaceholders(value any, params map[string]any) (any, error) {
	switch v := value.(type) {
	case string:
		name, ok := placeholderName(v)
		if !ok {
			return v, nil
		}
		resolved, ok := params[name]
		if !ok {
			return nil, fmt.Errorf("%w: placeholder %q", ErrUnknownPlaceholder, v)
		}
		return resolved, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			expanded, err := ExpandPlaceholders(elem, params)
			if err != nil {
				return nil, err
			}
			out[key] = expanded
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			expanded, err := ExpandPlaceholders(elem, params)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	default:
		return value, nil
	}
}

// placeholderName extracts the parameter name from a whole-string
// "{name}" placeholder.
func placeholderName(s string) (string, bool) {
	if len(s) < 3 || !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", false
	}
	name := s[1 : len(s)-1]
	if strings.ContainsAny(name, "{}") {
		return "", false
	}
	return name, true
}

var descPlaceholderRE = regexp.MustCompile(`\{([^:}]+)(?::([^}]+))?\}`)

// ExpandDescription substitutes placeholders inside free text, where
// they may appear mid-string and carry an optional format spec:
// "{name}" renders the value directly and "{name:,}" renders a number
// with thousands separators. Placeholders naming unknown parameters
// are left in place unchanged, so template text survives partial
// parameter sets.
func ExpandDescription(desc string, params map[string]any) string {
	return descPlaceholderRE.ReplaceAllStringFunc(desc, func(match string) string {
		groups := descPlaceholderRE.FindStringSubmatch(match)
		name, spec := groups[1], groups[2]
		value, ok := params[name]
		if !ok {
			return match
		}
		if spec == "," {
			if grouped, ok := groupThousands(value); ok {
				return grouped
			}
		}
		return fmt.Sprintf("%v", value)
	})
}

// groupThousands renders a numeric value with commas every three
// digits in the integer part, e.g. 1500000 -> "1,500,000".
func groupThousands(value any) (string, bool) {
	var text string
	switch v := value.(type) {
	case int:
		text = strconv.FormatInt(int64(v), 10)
	case int64:
		text = strconv.FormatInt(v, 10)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "", false
	}

	intPart, fracPart, hasFrac := strings.Cut(text, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String(), true
}
