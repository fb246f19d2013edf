// Package override applies compact textual parameter overrides to
// configuration values.
//
// An override string is a batch of directives separated by ';', each
// in "key:value" form. Apply resolves each key as a dotted path into
// the JSON representation of a base configuration, converts the
// literal to the type of the existing field, and assigns it on a copy,
// leaving the base untouched:
//
//	cfg, err := override.Apply(base, "rsi_level:8;rsi_period:3")
//
// Directives are absolute assignments, so applying the same string
// twice gives the same result as applying it once. All directives in a
// batch are attempted before failures are reported as one aggregate
// *ApplyError.
//
// The package also expands {name} placeholders in configuration values
// and in free-text descriptions, where a parameter map supplies the
// substitutions. See ExpandPlaceholders and ExpandDescription.
package override
