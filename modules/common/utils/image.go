package utils

import (
	"regexp"
	"strings"
)

// EncodedImage is a base64 payload tagged with its MIME type.
type EncodedImage struct {
	MimeType string
	Base64   string
}

// dataURLPattern - data:<mime>;base64, 접두사 (case-insensitive, non-greedy)
var dataURLPattern = regexp.MustCompile(`(?i)^data:(.*?);base64,`)

// NormalizeEncodedImage accepts either a data-URL or a bare base64 string and
// splits it into {mimeType, base64}. Bare strings default to image/jpeg.
// Total over all string inputs - it never fails.
func NormalizeEncodedImage(input string) EncodedImage {
	trimmed := strings.TrimSpace(input)

	if m := dataURLPattern.FindStringSubmatch(trimmed); m != nil {
		return EncodedImage{
			MimeType: m[1],
			Base64:   trimmed[len(m[0]):],
		}
	}

	return EncodedImage{
		MimeType: "image/jpeg",
		Base64:   trimmed,
	}
}
