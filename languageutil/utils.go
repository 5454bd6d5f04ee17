package languageutil

import (
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of every word ("date night" -> "Date Night").
// A Caser keeps state, so a fresh one is built per call.
func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func Lower(s string) string {
	return cases.Lower(language.English).String(strings.TrimSpace(s))
}

// Slug joins the words of s with "+", the form placeholder
// image services expect in their text query.
func Slug(s string) string {
	return strings.Join(strings.Fields(s), "+")
}

// RandomChoice returns one element of items, or "" for an empty list.
func RandomChoice(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rand.Intn(len(items))]
}

// RandomInt returns a uniformly drawn integer in the closed range [min, max].
func RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}
