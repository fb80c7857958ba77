package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBookingID returns an identifier of the form BK-XXXXXXXX, where the
// suffix is the first 8 hex characters of a random UUID, uppercased.
func GenerateBookingID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BK-" + raw[:8]
}
