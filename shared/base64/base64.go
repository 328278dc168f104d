package base64

import "strings"

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

// GetContentType returns the media type of a data URI, or "" when value is not one.
func GetContentType(value string) string {
	if !strings.HasPrefix(value, dataPrefix) {
		return ""
	}

	end := strings.Index(value, base64Marker)
	if end == -1 {
		return ""
	}

	return value[len(dataPrefix):end]
}
