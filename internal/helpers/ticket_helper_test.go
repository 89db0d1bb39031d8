package helpers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ticketNumberPattern = regexp.MustCompile(`^TKT\d{6}[A-Z0-9]{6}$`)

func TestGenerateTicketNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		number := GenerateTicketNumber()
		assert.Regexp(t, ticketNumberPattern, number)
		assert.Len(t, number, 15)
	}
}

func TestGenerateTicketNumberVariation(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[GenerateTicketNumber()] = true
	}
	// The random suffix alone gives 36^6 combinations; a same-millisecond
	// batch of a thousand should not collide.
	assert.Greater(t, len(seen), 990)
}
