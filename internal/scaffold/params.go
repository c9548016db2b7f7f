package scaffold

import (
	"fmt"
	"strings"
)

// DefaultFieldType is assumed when neither the field nor the model declares a type.
const DefaultFieldType = "string"

// resolveField fills a missing type from the model column types.
func resolveField(f FieldSpec, columnTypes map[string]string) FieldSpec {
	if f.Type != "" {
		return f
	}
	if t, ok := columnTypes[f.Name]; ok && t != "" {
		return FieldSpec{Name: f.Name, Type: t}
	}
	return FieldSpec{Name: f.Name, Type: DefaultFieldType}
}

// ParamToken returns the permit token for a single typed field.
func ParamToken(f FieldSpec) string {
	switch strings.ToLower(f.Type) {
	case "files", "array":
		return fmt.Sprintf("{ %s: [] }", f.Name)
	case "json", "jsonb", "hash":
		return fmt.Sprintf("{ %s: {} }", f.Name)
	default:
		return ":" + f.Name
	}
}

// ParamTokens returns one permit token per field, in input order.
func ParamTokens(fields []FieldSpec, columnTypes map[string]string) []string {
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = ParamToken(resolveField(f, columnTypes))
	}
	return tokens
}

// SynthesizeParams builds the permit list for a controller's strong parameters,
// e.g. ":name, :email, { attachments: [] }".
func SynthesizeParams(fields []FieldSpec, columnTypes map[string]string) string {
	return strings.Join(ParamTokens(fields, columnTypes), ", ")
}
