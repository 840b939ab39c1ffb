package utils

import (
	"github.com/gosimple/slug"
)

// NormalizeSlug creates a URL-friendly slug using the gosimple/slug library
// This handles all Unicode characters including Turkish, European, and other languages
func NormalizeSlug(text string) string {
	if text == "" {
		return ""
	}

	return slug.Make(text)
}

// JobSlug creates a slug for a job posting from its title
func JobSlug(title string) string {
	if title == "" {
		return "job"
	}
	return NormalizeSlug(title)
}
