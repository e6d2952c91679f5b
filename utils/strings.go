package utils

import (
	"regexp"
	"strings"
)

// NormalizeEmail lowercases and trims an email for storage consistency
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FormatFullName joins first and last name for display
func FormatFullName(firstName, lastName string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		return "Unknown"
	}
	return name
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
