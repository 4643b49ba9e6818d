package export

import (
	"fmt"
	"strings"
)

// BuildFileName assembles "<prefix>-<label>.<ext>" with the label reduced
// to filesystem-safe characters.
func BuildFileName(prefix, label, ext string) string {
	label = sanitizeFileName(label)
	if label == "" {
		return fmt.Sprintf("%s.%s", prefix, ext)
	}
	return fmt.Sprintf("%s-%s.%s", prefix, label, ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
