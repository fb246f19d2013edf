package override

import (
	"fmt"
	"strings"
)

// Directive is a single parameter assignment parsed from an override
// string.
type Directive struct {
	// Path is a dotted path into the configuration's JSON
	// representation, e.g. "rsi_period" or "risk.max_drawdown".
	Path string

	// Value is the raw literal to assign, before type conversion.
	Value string
}

// ParseDirectives splits an override string of the form
// "k1:v1;k2:v2" into its directives. Whitespace around keys, values,
// and separators is ignored, as are empty segments, so
// " rsi_period : 3 ;; rsi_level:8 " parses cleanly. An empty or
// all-whitespace string yields no directives.
//
// Each non-empty segment must contain a ':' with a non-empty key, or
// ParseDirectives returns an error wrapping ErrInvalidDirective.
func ParseDirectives(s string) ([]Directive, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var directives []Directive
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q is not in key:value form",
				ErrInvalidDirective, part)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: %q has an empty key",
				ErrInvalidDirective, part)
		}
		directives = append(directives, Directive{
			Path:  key,
			Value: strings.TrimSpace(value),
		})
	}
	return directives, nil
}
