package strategy

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/connorslab/tradecore/override"
)

// WithParams applies an override string to a strategy's parameter
// struct, returning the patched copy. Paths address JSON field names,
// so a field tagged `json:"rsi_period"` is set with "rsi_period:3".
// An override naming a field the struct does not have fails with
// override.ErrUnknownPath; params is never mutated.
func WithParams[T any](params T, overrides string) (T, error) {
	return override.Apply(params, overrides)
}

// Parameters lists the configurable parameters of a params struct:
// every exported field of a basic type (integer, float, bool, string),
// keyed by its JSON name and holding its current value. Non-basic and
// unexported fields are skipped. A nil or non-struct value yields an
// empty map.
func Parameters(v any) map[string]any {
	params := make(map[string]any)
	for _, f := range paramFields(v) {
		params[f.name] = f.value
	}
	return params
}

// paramField is one configurable field in declaration order.
type paramField struct {
	name  string
	value any
}

func paramFields(v any) []paramField {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	var fields []paramField
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		value := rv.Field(i)
		switch value.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.Bool, reflect.String:
		default:
			continue
		}

		fields = append(fields, paramField{
			name:  jsonFieldName(field),
			value: value.Interface(),
		})
	}
	return fields
}

// jsonFieldName returns the field's JSON name, falling back to the Go
// field name when no tag is set.
func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// ParameterInfo renders help text listing a strategy's configurable
// parameters with their current values and an example override string.
func ParameterInfo(strategyName string, params any) string {
	fields := paramFields(params)
	if len(fields) == 0 {
		return fmt.Sprintf("No configurable parameters available for %s", strategyName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available parameters for %s:\n", strategyName)
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %v (%T)\n", f.name, f.value, f.value)
	}

	b.WriteString("\nExample usage:\n")
	examples := make([]string, 0, 3)
	for _, f := range fields {
		if len(examples) == 3 {
			break
		}
		examples = append(examples, f.name+":"+exampleValue(f.value))
	}
	fmt.Fprintf(&b, "  --strategy-params %q", strings.Join(examples, ";"))
	return b.String()
}

// exampleValue renders a plausible alternative to a parameter's
// current value for the usage example.
func exampleValue(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(!rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n > 0 {
			return strconv.FormatInt(n*2, 10)
		}
		return "10"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n := rv.Uint(); n > 0 {
			return strconv.FormatUint(n*2, 10)
		}
		return "10"
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(math.Round(rv.Float()*150)/100, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
