package domain

import (
	"strings"
	"unicode"
)

// NormalizeExerciseName produces the form used for equality checks: trimmed,
// lowercased, internal whitespace collapsed to single spaces. It is never
// stored.
func NormalizeExerciseName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// CanonicalExerciseName produces the form used for storage and display:
// trimmed, whitespace collapsed, each word title-cased ("bench  press" ->
// "Bench Press").
func CanonicalExerciseName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ExerciseNamesMatch reports whether two names refer to the same exercise
// under normalization.
func ExerciseNamesMatch(a, b string) bool {
	return NormalizeExerciseName(a) == NormalizeExerciseName(b)
}
