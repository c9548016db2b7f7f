package scaffold

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// Name transformation helpers. Pluralization follows the Rails inflection
// rules so generated constants and table names line up with ActiveSupport.

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// ToPascalCase converts a string to PascalCase ("test_models" -> "TestModels").
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = capitalize(strings.ToLower(word))
	}
	return strings.Join(words, "")
}

// Camelize converts a snake path to a Ruby constant path,
// so "core/use_cases" becomes "Core::UseCases".
func Camelize(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = ToPascalCase(p)
	}
	return strings.Join(parts, "::")
}

// Pluralize returns the plural form of a snake_case word.
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	return inflect.Pluralize(s)
}

// Singularize returns the singular form of a snake_case word.
func Singularize(s string) string {
	if s == "" {
		return s
	}
	return inflect.Singularize(s)
}

// LocalName returns the last segment of a namespaced constant ("Models::User" -> "User").
func LocalName(constant string) string {
	parts := strings.Split(constant, "::")
	return parts[len(parts)-1]
}

// TableName derives the conventional table for a model constant
// ("Models::User" -> "models_users").
func TableName(constant string) string {
	parts := strings.Split(constant, "::")
	for i, p := range parts {
		parts[i] = ToSnakeCase(p)
	}
	last := len(parts) - 1
	parts[last] = Pluralize(parts[last])
	return strings.Join(parts, "_")
}

// Humanize turns a column name into a label ("created_at" -> "Created at").
func Humanize(s string) string {
	s = strings.TrimSuffix(s, "_id")
	return capitalize(strings.ReplaceAll(ToSnakeCase(s), "_", " "))
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "::", " ")

	// Insert space before uppercase letters in camelCase/PascalCase, and
	// before the last capital of an acronym run ("APIKey" -> "API Key").
	var result strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			endsAcronym := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsSpace(prev) && (!unicode.IsUpper(prev) || endsAcronym) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return strings.Fields(result.String())
}
