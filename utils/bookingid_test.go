package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		id := GenerateBookingID()
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerateBookingIDUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := GenerateBookingID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate booking id after %d iterations: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
