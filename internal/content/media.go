package content

import (
	"regexp"
	"strings"
)

var imgPattern = regexp.MustCompile(`img:[^\s]+`)

// SplitMedia extracts img:<path> markers from raw text. It returns the text
// with markers removed and trimmed, plus the image paths in order of
// appearance. Paths are relative to the content root.
func SplitMedia(raw string) (string, []string) {
	if raw == "" {
		return "", nil
	}
	var images []string
	clean := imgPattern.ReplaceAllStringFunc(raw, func(m string) string {
		images = append(images, strings.TrimPrefix(m, "img:"))
		return ""
	})
	return strings.TrimSpace(clean), images
}
